package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkao/mcp-hub/internal/domain"
)

// stubForecaster records the location it receives.
type stubForecaster struct {
	gotLocation string
	body        json.RawMessage
	err         error
}

func (s *stubForecaster) Forecast(ctx context.Context, locationName string) (json.RawMessage, error) {
	s.gotLocation = locationName
	if s.err != nil {
		return nil, s.err
	}
	return s.body, nil
}

func TestWeatherForecastTool(t *testing.T) {
	tests := []struct {
		name         string
		args         map[string]any
		wantLocation string
	}{
		{name: "no location returns all forecasts", args: map[string]any{}, wantLocation: ""},
		{name: "location filter forwarded", args: map[string]any{"locationName": "臺北市"}, wantLocation: "臺北市"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecaster := &stubForecaster{body: json.RawMessage(`{"records":{"location":[]}}`)}
			weatherTool := NewWeatherForecastTool(forecaster)

			out, err := weatherTool.Invoke(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLocation, forecaster.gotLocation)
			assert.JSONEq(t, `{"records":{"location":[]}}`, string(out.(json.RawMessage)))
		})
	}
}

func TestWeatherForecastToolRejectsNonStringLocation(t *testing.T) {
	weatherTool := NewWeatherForecastTool(&stubForecaster{})

	_, err := weatherTool.Invoke(context.Background(), map[string]any{"locationName": 42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestWeatherForecastToolPropagatesUpstreamError(t *testing.T) {
	upstream := domain.NewUpstreamError("cwa_open_data", 500, "")
	weatherTool := NewWeatherForecastTool(&stubForecaster{err: upstream})

	_, err := weatherTool.Invoke(context.Background(), map[string]any{})
	require.Error(t, err)

	var got *domain.UpstreamError
	assert.True(t, errors.As(err, &got))
}
