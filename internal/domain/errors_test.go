package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	tests := []struct {
		name         string
		err          *UpstreamError
		wantContains []string
	}{
		{
			name: "non-success status with body",
			err:  NewUpstreamError("serpapi_google_flights", 403, `{"error":"Invalid API key"}`),
			wantContains: []string{"serpapi_google_flights", "403", "Invalid API key"},
		},
		{
			name:         "non-success status without body",
			err:          NewUpstreamError("cwa_open_data", 500, ""),
			wantContains: []string{"cwa_open_data", "500"},
		},
		{
			name:         "transport failure",
			err:          NewUpstreamTransportError("serpapi_google_flights", errors.New("connection refused")),
			wantContains: []string{"serpapi_google_flights", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.wantContains {
				assert.Contains(t, tt.err.Error(), want)
			}
		})
	}
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	err := NewUpstreamTransportError("serpapi_google_flights", underlying)

	assert.True(t, errors.Is(err, underlying))

	var upstream *UpstreamError
	assert.True(t, errors.As(fmt.Errorf("search failed: %w", err), &upstream))
	assert.Equal(t, "serpapi_google_flights", upstream.Provider)
}

func TestUpstreamErrorTruncatesBody(t *testing.T) {
	body := strings.Repeat("x", 5000)
	err := NewUpstreamError("serpapi_google_flights", 502, body)

	assert.Len(t, err.Body, 512)
}

func TestSentinelErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	assert.True(t, errors.Is(wrapped, ErrInvalidRequest))
	assert.False(t, errors.Is(wrapped, ErrMissingCredential))

	cred := fmt.Errorf("%w: environment variable SERPAPI_API_KEY is not set", ErrMissingCredential)
	assert.True(t, errors.Is(cred, ErrMissingCredential))
}
