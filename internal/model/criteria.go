package model

// SearchCriteria is the sparse filter set the model may emit for the "cars"
// view. Absent (nil) fields impose no constraint.
type SearchCriteria struct {
	Category      *string  `json:"category,omitempty"`
	Make          *string  `json:"make,omitempty"`
	Model         *string  `json:"model,omitempty"`
	Transmission  *string  `json:"transmission,omitempty"`
	FuelType      *string  `json:"fuelType,omitempty"`
	MileagePolicy *string  `json:"mileagePolicy,omitempty"`
	MaxDailyRate  *int     `json:"maxDailyRate,omitempty"`
	MinDailyRate  *int     `json:"minDailyRate,omitempty"`
	MinSeats      *int     `json:"minSeats,omitempty"`
	Features      []string `json:"features,omitempty"`
	Location      *string  `json:"location,omitempty"`
	PickupMethod  *string  `json:"pickupMethod,omitempty"`
	Available     *bool    `json:"available,omitempty"`
}

// SearchRequest is the direct search endpoint's body.
type SearchRequest struct {
	Filters SearchCriteria `json:"filters"`
}

// SearchResponse is the direct search endpoint's reply.
type SearchResponse struct {
	Cars  []Car `json:"cars"`
	Total int   `json:"total"`
}

// ComparisonSpec names one car of a side-by-side comparison by free-text
// make and model, resolved against the inventory by substring match.
type ComparisonSpec struct {
	Make  string `json:"make"`
	Model string `json:"model"`
}
