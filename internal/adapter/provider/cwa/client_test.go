package cwa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkao/mcp-hub/internal/domain"
)

func TestClientForecast(t *testing.T) {
	tests := []struct {
		name         string
		credential   string
		locationName string
		wantParams   url.Values
	}{
		{
			name:       "no credential and no location sends bare request",
			wantParams: url.Values{},
		},
		{
			name:       "credential becomes Authorization parameter",
			credential: "CWA-1234",
			wantParams: url.Values{"Authorization": {"CWA-1234"}},
		},
		{
			name:         "location filter forwarded",
			locationName: "臺北市",
			wantParams:   url.Values{"locationName": {"臺北市"}},
		},
		{
			name:         "credential and location combined",
			credential:   "CWA-1234",
			locationName: "高雄市",
			wantParams:   url.Values{"Authorization": {"CWA-1234"}, "locationName": {"高雄市"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotParams url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotParams = r.URL.Query()
				w.Write([]byte(`{"success":"true","records":{"location":[]}}`))
			}))
			defer server.Close()

			client := NewClient(
				WithBaseURL(server.URL),
				WithCredential(func() string { return tt.credential }),
			)

			body, err := client.Forecast(context.Background(), tt.locationName)
			require.NoError(t, err)
			assert.JSONEq(t, `{"success":"true","records":{"location":[]}}`, string(body))
			assert.Equal(t, tt.wantParams, gotParams)
		})
	}
}

func TestClientForecastUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid authorization"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithCredential(func() string { return "bad" }))

	_, err := client.Forecast(context.Background(), "")
	require.Error(t, err)

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, ProviderName, upstream.Provider)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "invalid authorization")
}

func TestClientForecastNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("service temporarily unavailable"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithCredential(func() string { return "" }))

	_, err := client.Forecast(context.Background(), "")
	require.Error(t, err)

	var upstream *domain.UpstreamError
	assert.True(t, errors.As(err, &upstream))
}
