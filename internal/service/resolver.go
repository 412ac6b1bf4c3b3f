package service

import (
	"strings"

	"churro/internal/inventory"
	"churro/internal/model"
)

// SpecResolver maps free-text (make, model) pairs to canonical inventory
// records for comparison views.
type SpecResolver struct {
	store *inventory.Store
}

// NewSpecResolver creates a new spec resolver
func NewSpecResolver(store *inventory.Store) *SpecResolver {
	return &SpecResolver{store: store}
}

// Resolve returns the first record, in store order, whose make contains the
// given make and whose model contains the given model, case-insensitively.
// When several records qualify (two trims of the same model) the first wins;
// there is deliberately no further disambiguation.
func (r *SpecResolver) Resolve(make, carModel string) (model.Car, bool) {
	makeLower := strings.ToLower(strings.TrimSpace(make))
	modelLower := strings.ToLower(strings.TrimSpace(carModel))
	if makeLower == "" && modelLower == "" {
		return model.Car{}, false
	}

	for _, car := range r.store.All() {
		if strings.Contains(strings.ToLower(car.Make), makeLower) &&
			strings.Contains(strings.ToLower(car.Model), modelLower) {
			return car, true
		}
	}
	return model.Car{}, false
}

// ResolveSpecs resolves each spec in order, silently dropping any that have
// no inventory match. The result may legitimately hold fewer records than
// were requested.
func (r *SpecResolver) ResolveSpecs(specs []model.ComparisonSpec) []model.Car {
	cars := make([]model.Car, 0, len(specs))
	for _, spec := range specs {
		if car, ok := r.Resolve(spec.Make, spec.Model); ok {
			cars = append(cars, car)
		}
	}
	return cars
}
