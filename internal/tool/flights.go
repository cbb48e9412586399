package tool

import (
	"context"
	"encoding/json"

	"github.com/shkao/mcp-hub/internal/domain"
)

// FlightSearchName is the canonical name of the flight search tool.
const FlightSearchName = "search_flights"

// FlightSearcher is the provider client the flight search tool delegates to.
type FlightSearcher interface {
	Search(ctx context.Context, q domain.FlightQuery) (json.RawMessage, error)
}

// FlightSearchTool searches for flights through an external flight API.
// It decodes the loosely-typed tool arguments into a structured FlightQuery
// at the boundary and hands it to the provider client; all validation and
// parameter assembly happens behind that call.
type FlightSearchTool struct {
	searcher        FlightSearcher
	defaultCurrency string
}

// NewFlightSearchTool creates the flight search tool. defaultCurrency is
// applied when the caller does not supply one.
func NewFlightSearchTool(searcher FlightSearcher, defaultCurrency string) *FlightSearchTool {
	return &FlightSearchTool{
		searcher:        searcher,
		defaultCurrency: defaultCurrency,
	}
}

// Name returns the tool identifier.
func (t *FlightSearchTool) Name() string {
	return FlightSearchName
}

// Definition describes the flight search tool and its argument schema.
func (t *FlightSearchTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name: FlightSearchName,
		Description: "Search for flights, including prices, schedules, and available routes. " +
			"Supports one-way, round-trip, and multi-city itineraries.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"trip_type": map[string]any{
					"type":        "string",
					"enum":        []string{"oneway", "roundtrip", "multicity"},
					"description": "Itinerary shape (default: oneway)",
				},
				"origin": map[string]any{
					"type":        "string",
					"description": `Origin airport code (e.g. "TPE") for oneway and roundtrip searches`,
				},
				"destination": map[string]any{
					"type":        "string",
					"description": `Destination airport code (e.g. "KIX") for oneway and roundtrip searches`,
				},
				"departure_date": map[string]any{
					"type":        "string",
					"description": "Departure date in YYYY-MM-DD format",
				},
				"return_date": map[string]any{
					"type":        "string",
					"description": "Return date in YYYY-MM-DD format (required for roundtrip)",
				},
				"multi_city_json": map[string]any{
					"type": "string",
					"description": "JSON array of segment objects for multicity searches, e.g. " +
						`[{"departure_id":"TPE","arrival_id":"NRT","date":"2025-06-29"},{"arrival_id":"TPE","date":"2025-07-03"}]. ` +
						"A segment's departure_id may be omitted after the first segment and is inferred from the previous arrival.",
				},
				"adults": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"description": "Number of adult passengers (default: 1)",
				},
				"children": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"description": "Number of child passengers (default: 0)",
				},
				"infants_in_seat": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"description": "Number of infants occupying a seat (default: 0)",
				},
				"infants_on_lap": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"description": "Number of lap infants (default: 0)",
				},
				"travel_class": map[string]any{
					"type":        "string",
					"enum":        []string{"economy", "premium_economy", "business", "first"},
					"description": "Cabin class (default: economy)",
				},
				"sort_by": map[string]any{
					"type":        "string",
					"enum":        []string{"top", "price", "departure", "arrival", "duration", "emissions"},
					"description": "Result ordering (default: top)",
				},
				"stops": map[string]any{
					"type":        "integer",
					"description": "0 = any, 1 = nonstop only, 2 = one stop or fewer, 3 = two stops or fewer",
				},
				"max_price": map[string]any{
					"type":        []string{"integer", "string"},
					"description": "Upper price bound in the search currency; must be a positive integer",
				},
				"include_airlines": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": `Restrict results to these airline codes (e.g. ["BR","JX"])`,
				},
				"exclude_airlines": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Remove these airline codes from results",
				},
				"currency": map[string]any{
					"type":        "string",
					"description": `Currency code for prices (default: "TWD")`,
				},
				"hl": map[string]any{
					"type":        "string",
					"description": `Interface language (e.g. "en")`,
				},
				"gl": map[string]any{
					"type":        "string",
					"description": `Country code for the search (e.g. "tw")`,
				},
				"deep_search": map[string]any{
					"type":        "boolean",
					"description": "Enable the exhaustive search mode",
				},
				"show_hidden": map[string]any{
					"type":        "boolean",
					"description": "Include hidden results",
				},
			},
			"additionalProperties": false,
		},
	}
}

// Invoke decodes the arguments into a FlightQuery and executes the search.
func (t *FlightSearchTool) Invoke(ctx context.Context, args map[string]any) (any, error) {
	q, err := t.decodeQuery(args)
	if err != nil {
		return nil, err
	}
	return t.searcher.Search(ctx, q)
}

// decodeQuery converts the raw argument map into a structured FlightQuery.
// The multi-city text encoding is decoded here, at the boundary, so the
// builder only ever sees structured segments.
func (t *FlightSearchTool) decodeQuery(args map[string]any) (domain.FlightQuery, error) {
	var q domain.FlightQuery
	var err error

	var tripType string
	if tripType, err = stringArg(args, "trip_type"); err != nil {
		return q, err
	}
	q.TripType = domain.TripType(tripType)

	if q.Origin, err = stringArg(args, "origin"); err != nil {
		return q, err
	}
	if q.Destination, err = stringArg(args, "destination"); err != nil {
		return q, err
	}
	if q.DepartureDate, err = stringArg(args, "departure_date"); err != nil {
		return q, err
	}
	if q.ReturnDate, err = stringArg(args, "return_date"); err != nil {
		return q, err
	}

	var rawSegments string
	if rawSegments, err = stringArg(args, "multi_city_json"); err != nil {
		return q, err
	}
	if rawSegments != "" {
		if q.Segments, err = domain.ParseSegments(rawSegments); err != nil {
			return q, err
		}
	}

	if q.Adults, err = intArg(args, "adults", 0); err != nil {
		return q, err
	}
	if q.Children, err = intArg(args, "children", 0); err != nil {
		return q, err
	}
	if q.InfantsInSeat, err = intArg(args, "infants_in_seat", 0); err != nil {
		return q, err
	}
	if q.InfantsOnLap, err = intArg(args, "infants_on_lap", 0); err != nil {
		return q, err
	}

	var travelClass string
	if travelClass, err = stringArg(args, "travel_class"); err != nil {
		return q, err
	}
	q.TravelClass = domain.TravelClass(travelClass)

	var sortBy string
	if sortBy, err = stringArg(args, "sort_by"); err != nil {
		return q, err
	}
	q.SortBy = domain.SortOption(sortBy)

	if q.Stops, err = optionalIntArg(args, "stops"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = optionalIntArg(args, "max_price"); err != nil {
		return q, err
	}
	if q.IncludeAirlines, err = stringListArg(args, "include_airlines"); err != nil {
		return q, err
	}
	if q.ExcludeAirlines, err = stringListArg(args, "exclude_airlines"); err != nil {
		return q, err
	}
	if q.Currency, err = stringArg(args, "currency"); err != nil {
		return q, err
	}
	if q.Currency == "" {
		q.Currency = t.defaultCurrency
	}
	if q.Language, err = stringArg(args, "hl"); err != nil {
		return q, err
	}
	if q.Country, err = stringArg(args, "gl"); err != nil {
		return q, err
	}
	if q.DeepSearch, err = optionalBoolArg(args, "deep_search"); err != nil {
		return q, err
	}
	if q.ShowHidden, err = optionalBoolArg(args, "show_hidden"); err != nil {
		return q, err
	}

	return q, nil
}
