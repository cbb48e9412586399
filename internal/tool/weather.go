package tool

import (
	"context"
	"encoding/json"

	"github.com/shkao/mcp-hub/internal/domain"
)

// WeatherForecastName is the canonical name of the weather forecast tool.
const WeatherForecastName = "get_weather_forecast"

// WeatherForecaster is the provider client the weather tool delegates to.
type WeatherForecaster interface {
	Forecast(ctx context.Context, locationName string) (json.RawMessage, error)
}

// WeatherForecastTool fetches a 36-hour weather forecast, optionally
// filtered to a single city or county.
type WeatherForecastTool struct {
	forecaster WeatherForecaster
}

// NewWeatherForecastTool creates the weather forecast tool.
func NewWeatherForecastTool(forecaster WeatherForecaster) *WeatherForecastTool {
	return &WeatherForecastTool{forecaster: forecaster}
}

// Name returns the tool identifier.
func (t *WeatherForecastTool) Name() string {
	return WeatherForecastName
}

// Definition describes the weather tool and its argument schema.
func (t *WeatherForecastTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name: WeatherForecastName,
		Description: "Fetch a 36-hour weather forecast for Taiwan. " +
			"Optionally filter the forecast to a specific city or county.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"locationName": map[string]any{
					"type":        "string",
					"description": "City or county name to filter the forecast. Omit for all locations.",
				},
			},
			"additionalProperties": false,
		},
	}
}

// Invoke fetches the forecast for the requested location.
func (t *WeatherForecastTool) Invoke(ctx context.Context, args map[string]any) (any, error) {
	locationName, err := stringArg(args, "locationName")
	if err != nil {
		return nil, err
	}
	return t.forecaster.Forecast(ctx, locationName)
}
