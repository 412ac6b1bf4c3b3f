package model

import "encoding/json"

// ViewType tags the view a directive or resolved view refers to.
type ViewType string

const (
	ViewEmpty      ViewType = "empty"
	ViewCars       ViewType = "cars"
	ViewComparison ViewType = "comparison"
	ViewBooking    ViewType = "booking"
	ViewCarDetail  ViewType = "car_detail"
	ViewMap        ViewType = "map"
)

// ViewDirective is the model's structured intent after extraction. Exactly
// one payload field is populated, selected by Type: Filters for cars, Specs
// for comparison, Data (raw passthrough) for everything else.
type ViewDirective struct {
	Type    ViewType
	Filters *SearchCriteria
	Specs   []ComparisonSpec
	Data    json.RawMessage
}

// ParsedReply is the outcome of directive extraction: the user-facing text
// plus an optional view directive. A nil Directive means "no view change".
type ParsedReply struct {
	Message   string
	Directive *ViewDirective
}

// ResolvedView is the outward-facing view: cars and comparison payloads carry
// concrete inventory records, all other tags carry the directive's payload
// unchanged. This is the only view shape ever returned to callers.
type ResolvedView struct {
	Type ViewType `json:"type"`
	Data any      `json:"data,omitempty"`
}

// CarsViewData is the resolved payload for the "cars" view.
type CarsViewData struct {
	Cars []Car `json:"cars"`
}

// ComparisonViewData is the resolved payload for the "comparison" view.
type ComparisonViewData struct {
	Cars []Car `json:"cars"`
}
