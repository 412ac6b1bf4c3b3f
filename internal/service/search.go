package service

import (
	"strings"

	"churro/internal/inventory"
	"churro/internal/model"
	"churro/internal/utils"
)

// SearchService evaluates sparse criteria against the inventory store. A
// record matches when every present criterion holds; absent fields impose no
// constraint. Results keep the store's insertion order; there is no
// re-ranking.
type SearchService struct {
	store *inventory.Store
}

// NewSearchService creates a new search service
func NewSearchService(store *inventory.Store) *SearchService {
	return &SearchService{store: store}
}

// Search returns every record matching the criteria, in store order. Empty
// criteria matches everything; criteria that match nothing return an empty
// slice, not an error.
func (s *SearchService) Search(criteria model.SearchCriteria) []model.Car {
	matches := make([]model.Car, 0)
	for _, car := range s.store.All() {
		if matchesCriteria(car, criteria) {
			matches = append(matches, car)
		}
	}
	return matches
}

// SearchAvailable runs Search with available forced to true, overriding any
// value the criteria carried. Unavailable vehicles are never surfaced to the
// end user regardless of what the model requested.
func (s *SearchService) SearchAvailable(criteria model.SearchCriteria) []model.Car {
	available := true
	criteria.Available = &available
	return s.Search(criteria)
}

func matchesCriteria(car model.Car, c model.SearchCriteria) bool {
	// Closed-vocabulary fields: exact, case-sensitive.
	if c.Category != nil && string(car.Category) != *c.Category {
		return false
	}
	if c.Transmission != nil && car.Transmission != *c.Transmission {
		return false
	}
	if c.FuelType != nil && car.FuelType != *c.FuelType {
		return false
	}
	if c.PickupMethod != nil && car.PickupMethod != *c.PickupMethod {
		return false
	}

	// Free-text fields: case-insensitive substring containment.
	if c.Make != nil && !containsFold(car.Make, *c.Make) {
		return false
	}
	if c.Model != nil && !containsFold(car.Model, *c.Model) {
		return false
	}
	if c.Location != nil && !containsFold(car.Location, *c.Location) {
		return false
	}
	if c.MileagePolicy != nil && !containsFold(car.MileagePolicy, *c.MileagePolicy) {
		return false
	}

	// Numeric bounds.
	if c.MaxDailyRate != nil && car.DailyRate > *c.MaxDailyRate {
		return false
	}
	if c.MinDailyRate != nil && car.DailyRate < *c.MinDailyRate {
		return false
	}
	if c.MinSeats != nil && car.Seats < *c.MinSeats {
		return false
	}

	// Features: match-ANY across the requested set.
	if len(c.Features) > 0 && !utils.MatchesAnyFeature(c.Features, car.Features) {
		return false
	}

	if c.Available != nil && car.Available != *c.Available {
		return false
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
