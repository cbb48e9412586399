// Package serpapi implements the flight search provider adapter for the
// SerpAPI Google Flights API. The query builder is a pure validate-then-
// transform function; the client owns the single outbound GET.
//
// For the upstream parameter surface see https://serpapi.com/google-flights-api
package serpapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shkao/mcp-hub/internal/domain"
)

// paramRule declares one optional outbound parameter: its key, whether the
// query supplies it, and how it serializes. Optional filters contribute to
// the output only through this table, so the required-vs-optional split is a
// single auditable list instead of per-field branching.
type paramRule struct {
	key     string
	present func(q *domain.FlightQuery) bool
	value   func(q *domain.FlightQuery) string
}

// optionalParams covers every optional filter. Booleans serialize to their
// lowercase textual form; lists join with commas.
var optionalParams = []paramRule{
	{
		key:     "stops",
		present: func(q *domain.FlightQuery) bool { return q.Stops != nil },
		value:   func(q *domain.FlightQuery) string { return strconv.Itoa(*q.Stops) },
	},
	{
		key:     "max_price",
		present: func(q *domain.FlightQuery) bool { return q.MaxPrice != nil },
		value:   func(q *domain.FlightQuery) string { return strconv.Itoa(*q.MaxPrice) },
	},
	{
		key:     "include_airlines",
		present: func(q *domain.FlightQuery) bool { return len(q.IncludeAirlines) > 0 },
		value:   func(q *domain.FlightQuery) string { return strings.Join(q.IncludeAirlines, ",") },
	},
	{
		key:     "exclude_airlines",
		present: func(q *domain.FlightQuery) bool { return len(q.ExcludeAirlines) > 0 },
		value:   func(q *domain.FlightQuery) string { return strings.Join(q.ExcludeAirlines, ",") },
	},
	{
		key:     "currency",
		present: func(q *domain.FlightQuery) bool { return q.Currency != "" },
		value:   func(q *domain.FlightQuery) string { return q.Currency },
	},
	{
		key:     "hl",
		present: func(q *domain.FlightQuery) bool { return q.Language != "" },
		value:   func(q *domain.FlightQuery) string { return q.Language },
	},
	{
		key:     "gl",
		present: func(q *domain.FlightQuery) bool { return q.Country != "" },
		value:   func(q *domain.FlightQuery) string { return q.Country },
	},
	{
		key:     "deep_search",
		present: func(q *domain.FlightQuery) bool { return q.DeepSearch != nil },
		value:   func(q *domain.FlightQuery) string { return strconv.FormatBool(*q.DeepSearch) },
	},
	{
		key:     "show_hidden",
		present: func(q *domain.FlightQuery) bool { return q.ShowHidden != nil },
		value:   func(q *domain.FlightQuery) string { return strconv.FormatBool(*q.ShowHidden) },
	},
}

// BuildParams validates the query and assembles the flat outbound parameter
// set. It performs no I/O and retains no state; identical inputs produce
// identical outputs. Any invariant violation returns a wrapped
// domain.ErrInvalidRequest before a single parameter is emitted to the caller.
func BuildParams(q domain.FlightQuery) (url.Values, error) {
	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("type", strconv.Itoa(q.TripType.Code()))

	switch q.TripType {
	case domain.TripMultiCity:
		// Dates and locations live inside the segments; no top-level
		// departure_id, arrival_id, or dates are emitted.
		segments, err := q.NormalizedSegments()
		if err != nil {
			return nil, err
		}
		encoded, err := domain.EncodeSegments(segments)
		if err != nil {
			return nil, err
		}
		params.Set("multi_city_json", encoded)
	case domain.TripRoundTrip:
		params.Set("departure_id", q.Origin)
		params.Set("arrival_id", q.Destination)
		params.Set("outbound_date", q.DepartureDate)
		params.Set("return_date", q.ReturnDate)
	default:
		params.Set("departure_id", q.Origin)
		params.Set("arrival_id", q.Destination)
		params.Set("outbound_date", q.DepartureDate)
	}

	// Required-with-default fields are serialized unconditionally, even when
	// zero. Passenger counts are required fields with defaults, not filters.
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children", strconv.Itoa(q.Children))
	params.Set("infants_in_seat", strconv.Itoa(q.InfantsInSeat))
	params.Set("infants_on_lap", strconv.Itoa(q.InfantsOnLap))
	params.Set("travel_class", strconv.Itoa(q.TravelClass.Code()))
	params.Set("sort_by", strconv.Itoa(q.SortBy.Code()))

	for _, rule := range optionalParams {
		if rule.present(&q) {
			params.Set(rule.key, rule.value(&q))
		}
	}

	return params, nil
}
