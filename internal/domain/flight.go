// Package domain contains the core entities and rules for the tool hub.
// These entities are transport-agnostic and form the foundation upon which
// the tool, provider, and HTTP layers are built.
package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TripType identifies the itinerary shape of a flight search.
type TripType string

// Recognized trip types.
const (
	// TripRoundTrip searches an outbound plus a return date
	TripRoundTrip TripType = "roundtrip"

	// TripOneWay searches a single outbound date (default)
	TripOneWay TripType = "oneway"

	// TripMultiCity searches an ordered sequence of segments
	TripMultiCity TripType = "multicity"
)

// IsValid checks if the trip type is a recognized value.
func (t TripType) IsValid() bool {
	switch t {
	case TripRoundTrip, TripOneWay, TripMultiCity:
		return true
	default:
		return false
	}
}

// Code returns the numeric trip type code used by the upstream flight API.
func (t TripType) Code() int {
	switch t {
	case TripRoundTrip:
		return 1
	case TripMultiCity:
		return 3
	default:
		return 2
	}
}

// TravelClass is the cabin class for a flight search.
type TravelClass string

// Recognized travel classes.
const (
	ClassEconomy        TravelClass = "economy"
	ClassPremiumEconomy TravelClass = "premium_economy"
	ClassBusiness       TravelClass = "business"
	ClassFirst          TravelClass = "first"
)

// IsValid checks if the travel class is a recognized value.
func (c TravelClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return true
	default:
		return false
	}
}

// Code returns the numeric travel class code used by the upstream flight API.
func (c TravelClass) Code() int {
	switch c {
	case ClassPremiumEconomy:
		return 2
	case ClassBusiness:
		return 3
	case ClassFirst:
		return 4
	default:
		return 1
	}
}

// SortOption defines how the upstream API orders flight results.
type SortOption string

// Recognized sort options.
const (
	SortByTop       SortOption = "top"
	SortByPrice     SortOption = "price"
	SortByDeparture SortOption = "departure"
	SortByArrival   SortOption = "arrival"
	SortByDuration  SortOption = "duration"
	SortByEmissions SortOption = "emissions"
)

// IsValid checks if the sort option is a recognized value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByTop, SortByPrice, SortByDeparture, SortByArrival, SortByDuration, SortByEmissions:
		return true
	default:
		return false
	}
}

// Code returns the numeric sort code used by the upstream flight API.
func (s SortOption) Code() int {
	switch s {
	case SortByPrice:
		return 2
	case SortByDeparture:
		return 3
	case SortByArrival:
		return 4
	case SortByDuration:
		return 5
	case SortByEmissions:
		return 6
	default:
		return 1
	}
}

// FlightSegment is one leg of a multi-city itinerary.
type FlightSegment struct {
	// DepartureID is the departure location code. It may be omitted for any
	// segment after the first, in which case it is inferred from the previous
	// segment's arrival during normalization.
	DepartureID string `json:"departure_id,omitempty"`

	// ArrivalID is the arrival location code (always required)
	ArrivalID string `json:"arrival_id"`

	// Date is the segment date in YYYY-MM-DD format (always required)
	Date string `json:"date"`
}

// FlightQuery defines the full set of recognized fields for a flight search.
// It is created fresh per call and treated as immutable once validation
// begins; segment normalization operates on a copy.
type FlightQuery struct {
	// TripType selects the itinerary shape (default: oneway)
	TripType TripType `json:"trip_type,omitempty"`

	// Origin is the departure location code for oneway and roundtrip searches.
	// Ignored for multicity, where segments carry the locations.
	Origin string `json:"origin,omitempty"`

	// Destination is the arrival location code for oneway and roundtrip searches
	Destination string `json:"destination,omitempty"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date,omitempty"`

	// ReturnDate is the return date in YYYY-MM-DD format (roundtrip only)
	ReturnDate string `json:"return_date,omitempty"`

	// Segments is the ordered multi-city itinerary (multicity only)
	Segments []FlightSegment `json:"segments,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults,omitempty"`

	// Children is the number of child passengers
	Children int `json:"children,omitempty"`

	// InfantsInSeat is the number of infants occupying a seat
	InfantsInSeat int `json:"infants_in_seat,omitempty"`

	// InfantsOnLap is the number of lap infants
	InfantsOnLap int `json:"infants_on_lap,omitempty"`

	// TravelClass is the cabin class (default: economy)
	TravelClass TravelClass `json:"travel_class,omitempty"`

	// SortBy orders the results (default: top)
	SortBy SortOption `json:"sort_by,omitempty"`

	// Stops limits the number of stops: 0 = any, 1 = nonstop only,
	// 2 = one stop or fewer, 3 = two stops or fewer
	Stops *int `json:"stops,omitempty"`

	// MaxPrice is an upper price bound; must be strictly positive when present
	MaxPrice *int `json:"max_price,omitempty"`

	// IncludeAirlines restricts results to these airline codes.
	// Mutually exclusive with ExcludeAirlines.
	IncludeAirlines []string `json:"include_airlines,omitempty"`

	// ExcludeAirlines removes these airline codes from results
	ExcludeAirlines []string `json:"exclude_airlines,omitempty"`

	// Currency is the ISO 4217 price currency (e.g. "TWD")
	Currency string `json:"currency,omitempty"`

	// Language is the upstream API interface language (e.g. "en")
	Language string `json:"hl,omitempty"`

	// Country is the upstream API country code (e.g. "tw")
	Country string `json:"gl,omitempty"`

	// DeepSearch enables the upstream API's exhaustive search mode
	DeepSearch *bool `json:"deep_search,omitempty"`

	// ShowHidden includes hidden results in the upstream response
	ShowHidden *bool `json:"show_hidden,omitempty"`
}

// locationCodeRegex matches location codes accepted by the upstream API:
// IATA airport codes ("TPE") and city/kgmid-style identifiers.
var locationCodeRegex = regexp.MustCompile(`^[A-Za-z0-9/,_-]{3,}$`)

// flightDateRegex matches dates in YYYY-MM-DD format.
var flightDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// currencyRegex matches ISO 4217 currency codes.
var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SetDefaults applies default values to empty required-with-default fields.
// It does not touch optional filters: those stay absent unless supplied.
func (q *FlightQuery) SetDefaults() {
	if q.TripType == "" {
		q.TripType = TripOneWay
	}
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.TravelClass == "" {
		q.TravelClass = ClassEconomy
	}
	if q.SortBy == "" {
		q.SortBy = SortByTop
	}
}

// Validate checks the query against the trip-type invariants and the shape
// rules for every supplied field. It returns a wrapped ErrInvalidRequest on
// the first violation. Per-segment checks happen in NormalizedSegments.
func (q *FlightQuery) Validate() error {
	if !q.TripType.IsValid() {
		return fmt.Errorf("%w: trip_type must be one of: oneway, roundtrip, multicity; got %q", ErrInvalidRequest, q.TripType)
	}

	switch q.TripType {
	case TripMultiCity:
		if len(q.Segments) == 0 {
			return fmt.Errorf("%w: multicity search requires at least one segment", ErrInvalidRequest)
		}
	default:
		if err := q.validateRoute(); err != nil {
			return err
		}
		if err := q.validateDates(); err != nil {
			return err
		}
	}

	if err := q.validatePassengers(); err != nil {
		return err
	}

	if !q.TravelClass.IsValid() {
		return fmt.Errorf("%w: travel_class must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, q.TravelClass)
	}
	if !q.SortBy.IsValid() {
		return fmt.Errorf("%w: sort_by must be one of: top, price, departure, arrival, duration, emissions; got %q", ErrInvalidRequest, q.SortBy)
	}

	return q.validateFilters()
}

func (q *FlightQuery) validateRoute() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !locationCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid location code, got %q", ErrInvalidRequest, q.Origin)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !locationCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid location code, got %q", ErrInvalidRequest, q.Destination)
	}
	if strings.EqualFold(q.Origin, q.Destination) {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	return nil
}

func (q *FlightQuery) validateDates() error {
	if q.DepartureDate == "" {
		return fmt.Errorf("%w: departure_date is required", ErrInvalidRequest)
	}
	if err := validateDate("departure_date", q.DepartureDate); err != nil {
		return err
	}

	if q.TripType == TripRoundTrip {
		if q.ReturnDate == "" {
			return fmt.Errorf("%w: return_date is required for roundtrip searches", ErrInvalidRequest)
		}
		if err := validateDate("return_date", q.ReturnDate); err != nil {
			return err
		}
	}
	return nil
}

func (q *FlightQuery) validatePassengers() error {
	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Children < 0 {
		return fmt.Errorf("%w: children cannot be negative", ErrInvalidRequest)
	}
	if q.InfantsInSeat < 0 {
		return fmt.Errorf("%w: infants_in_seat cannot be negative", ErrInvalidRequest)
	}
	if q.InfantsOnLap < 0 {
		return fmt.Errorf("%w: infants_on_lap cannot be negative", ErrInvalidRequest)
	}
	total := q.Adults + q.Children + q.InfantsInSeat + q.InfantsOnLap
	if total > 9 {
		return fmt.Errorf("%w: total passengers cannot exceed 9, got %d", ErrInvalidRequest, total)
	}
	return nil
}

func (q *FlightQuery) validateFilters() error {
	if q.Stops != nil && (*q.Stops < 0 || *q.Stops > 3) {
		return fmt.Errorf("%w: stops must be between 0 and 3, got %d", ErrInvalidRequest, *q.Stops)
	}
	if q.MaxPrice != nil && *q.MaxPrice <= 0 {
		return fmt.Errorf("%w: max_price must be a positive integer, got %d", ErrInvalidRequest, *q.MaxPrice)
	}
	if len(q.IncludeAirlines) > 0 && len(q.ExcludeAirlines) > 0 {
		return fmt.Errorf("%w: include_airlines and exclude_airlines cannot be combined", ErrInvalidRequest)
	}
	for _, code := range q.IncludeAirlines {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("%w: include_airlines contains an empty airline code", ErrInvalidRequest)
		}
	}
	for _, code := range q.ExcludeAirlines {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("%w: exclude_airlines contains an empty airline code", ErrInvalidRequest)
		}
	}
	if q.Currency != "" && !currencyRegex.MatchString(q.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter ISO 4217 code, got %q", ErrInvalidRequest, q.Currency)
	}
	return nil
}

// validateDate checks a date field for YYYY-MM-DD shape and calendar validity.
func validateDate(field, value string) error {
	if !flightDateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

// NormalizedSegments validates the multi-city itinerary and returns an
// enriched copy in which every segment has a departure, an arrival, and a
// date. A segment's missing departure is inferred from the previous segment's
// arrival; traversal order matters because a segment is enriched before the
// next one is inspected. The first segment must carry its departure
// explicitly. Error messages reference the 1-indexed segment number.
func (q *FlightQuery) NormalizedSegments() ([]FlightSegment, error) {
	if len(q.Segments) == 0 {
		return nil, fmt.Errorf("%w: multicity search requires at least one segment", ErrInvalidRequest)
	}

	segments := make([]FlightSegment, len(q.Segments))
	copy(segments, q.Segments)

	for i := range segments {
		n := i + 1

		if strings.TrimSpace(segments[i].ArrivalID) == "" {
			return nil, fmt.Errorf("%w: segment %d is missing an arrival location", ErrInvalidRequest, n)
		}
		if segments[i].Date == "" {
			return nil, fmt.Errorf("%w: segment %d is missing a date", ErrInvalidRequest, n)
		}
		if err := validateDate(fmt.Sprintf("segment %d date", n), segments[i].Date); err != nil {
			return nil, err
		}

		if strings.TrimSpace(segments[i].DepartureID) == "" {
			if i == 0 {
				return nil, fmt.Errorf("%w: segment 1 must specify a departure location explicitly", ErrInvalidRequest)
			}
			prev := segments[i-1].ArrivalID
			if strings.TrimSpace(prev) == "" {
				return nil, fmt.Errorf("%w: cannot infer departure for segment %d", ErrInvalidRequest, n)
			}
			segments[i].DepartureID = prev
		}
	}

	return segments, nil
}

// ParseSegments decodes the textual multi-city encoding into an ordered
// segment sequence. The encoding is a JSON array of segment objects; anything
// else fails with a wrapped ErrInvalidRequest. This is the boundary codec:
// everything past it operates on structured segments only.
func ParseSegments(raw string) ([]FlightSegment, error) {
	var segments []FlightSegment
	if err := json.Unmarshal([]byte(raw), &segments); err != nil {
		return nil, fmt.Errorf("%w: multi_city_json must be a JSON array of segment objects: %v", ErrInvalidRequest, err)
	}
	return segments, nil
}

// EncodeSegments encodes a segment sequence back to the textual form used by
// the upstream API's multi_city_json parameter.
func EncodeSegments(segments []FlightSegment) (string, error) {
	encoded, err := json.Marshal(segments)
	if err != nil {
		return "", fmt.Errorf("encode segments: %w", err)
	}
	return string(encoded), nil
}
