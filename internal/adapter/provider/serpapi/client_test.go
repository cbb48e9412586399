package serpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkao/mcp-hub/internal/domain"
)

func testCredential() func() string {
	return func() string { return "test-api-key" }
}

func TestClientSearchSuccess(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"best_flights":[{"price":12000}]}`))
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithCredential(testCredential()),
	)

	q := domain.FlightQuery{
		TripType:      domain.TripRoundTrip,
		Origin:        "TPE",
		Destination:   "KIX",
		DepartureDate: "2025-06-29",
		ReturnDate:    "2025-07-03",
	}

	body, err := client.Search(context.Background(), q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"best_flights":[{"price":12000}]}`, string(body))

	// The outbound query carries the engine, credential, and built params.
	assert.Equal(t, "google_flights", gotQuery["engine"])
	assert.Equal(t, "test-api-key", gotQuery["api_key"])
	assert.Equal(t, "1", gotQuery["type"])
	assert.Equal(t, "TPE", gotQuery["departure_id"])
	assert.Equal(t, "KIX", gotQuery["arrival_id"])
	assert.Equal(t, "2025-06-29", gotQuery["outbound_date"])
	assert.Equal(t, "2025-07-03", gotQuery["return_date"])
}

func TestClientSearchMissingCredential(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithCredential(func() string { return "" }),
	)

	// The credential check precedes validation: even an invalid query fails
	// with the credential error, and nothing reaches the network.
	_, err := client.Search(context.Background(), domain.FlightQuery{TripType: "bogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingCredential))
	assert.Contains(t, err.Error(), CredentialEnv)
	assert.Equal(t, int32(0), requests.Load())
}

func TestClientSearchValidationFailureSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithCredential(testCredential()))

	q := domain.FlightQuery{TripType: domain.TripRoundTrip, Origin: "TPE", Destination: "KIX", DepartureDate: "2025-06-29"}
	_, err := client.Search(context.Background(), q)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.Equal(t, int32(0), requests.Load())
}

func TestClientSearchUpstreamFailure(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, body: `{"error":"Invalid API key"}`},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, body: `{"error":"Plan limit reached"}`},
		{name: "server error", statusCode: http.StatusInternalServerError, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL), WithCredential(testCredential()))

			q := domain.FlightQuery{Origin: "TPE", Destination: "KIX", DepartureDate: "2025-06-29"}
			_, err := client.Search(context.Background(), q)

			require.Error(t, err)
			var upstream *domain.UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, ProviderName, upstream.Provider)
			assert.Equal(t, tt.statusCode, upstream.StatusCode)

			// Fail-fast: a single attempt, no retries.
			assert.Equal(t, int32(1), requests.Load())
		})
	}
}

func TestClientSearchNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithCredential(testCredential()))

	q := domain.FlightQuery{Origin: "TPE", Destination: "KIX", DepartureDate: "2025-06-29"}
	_, err := client.Search(context.Background(), q)

	require.Error(t, err)
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Contains(t, err.Error(), "non-JSON")
}

func TestClientSearchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithCredential(testCredential()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := domain.FlightQuery{Origin: "TPE", Destination: "KIX", DepartureDate: "2025-06-29"}
	_, err := client.Search(ctx, q)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
