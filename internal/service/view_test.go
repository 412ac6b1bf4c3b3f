package service

import (
	"encoding/json"
	"testing"

	"churro/internal/model"
)

func newTestViewResolver(t *testing.T) *ViewResolver {
	t.Helper()
	store := newTestStore(t)
	return NewViewResolver(NewSearchService(store), NewSpecResolver(store))
}

func TestResolveNilDirective(t *testing.T) {
	if got := newTestViewResolver(t).Resolve(nil); got != nil {
		t.Errorf("Resolve(nil) = %+v, want nil", got)
	}
}

func TestResolveCarsView(t *testing.T) {
	views := newTestViewResolver(t)

	view := views.Resolve(&model.ViewDirective{
		Type:    model.ViewCars,
		Filters: &model.SearchCriteria{Category: strPtr("luxury")},
	})
	if view == nil || view.Type != model.ViewCars {
		t.Fatalf("view = %+v, want cars", view)
	}
	// The only luxury car is unavailable, so the grid is empty rather than
	// surfacing it.
	data, ok := view.Data.(model.CarsViewData)
	if !ok {
		t.Fatalf("Data is %T, want CarsViewData", view.Data)
	}
	if len(data.Cars) != 0 {
		t.Errorf("Cars = %v, want none", carIDs(data.Cars))
	}
}

func TestResolveCarsViewNilFilters(t *testing.T) {
	views := newTestViewResolver(t)

	view := views.Resolve(&model.ViewDirective{Type: model.ViewCars})
	data, ok := view.Data.(model.CarsViewData)
	if !ok {
		t.Fatalf("Data is %T, want CarsViewData", view.Data)
	}
	if !sameIDs(data.Cars, []string{"1", "2", "3", "5"}) {
		t.Errorf("Cars = %v, want all available cars in store order", carIDs(data.Cars))
	}
}

func TestResolveComparisonView(t *testing.T) {
	views := newTestViewResolver(t)

	view := views.Resolve(&model.ViewDirective{
		Type: model.ViewComparison,
		Specs: []model.ComparisonSpec{
			{Make: "BMW", Model: "M4"},
			{Make: "Ferrari", Model: "Roma"},
			{Make: "Tesla", Model: "Model S"},
		},
	})
	if view == nil || view.Type != model.ViewComparison {
		t.Fatalf("view = %+v, want comparison", view)
	}
	data, ok := view.Data.(model.ComparisonViewData)
	if !ok {
		t.Fatalf("Data is %T, want ComparisonViewData", view.Data)
	}
	// Unresolved specs are dropped; the request order of the rest holds.
	if !sameIDs(data.Cars, []string{"5", "1"}) {
		t.Errorf("Cars = %v, want [5 1]", carIDs(data.Cars))
	}
}

func TestResolvePassthroughViews(t *testing.T) {
	views := newTestViewResolver(t)

	payload := json.RawMessage(`{"location": "SFO", "startDate": "2026-09-01"}`)
	view := views.Resolve(&model.ViewDirective{Type: model.ViewBooking, Data: payload})
	if view == nil || view.Type != model.ViewBooking {
		t.Fatalf("view = %+v, want booking", view)
	}
	raw, ok := view.Data.(json.RawMessage)
	if !ok || string(raw) != string(payload) {
		t.Errorf("Data = %v, want payload carried through untouched", view.Data)
	}

	// A payload-less tag resolves with no data at all.
	view = views.Resolve(&model.ViewDirective{Type: model.ViewEmpty})
	if view == nil || view.Type != model.ViewEmpty {
		t.Fatalf("view = %+v, want empty", view)
	}
	if view.Data != nil {
		t.Errorf("Data = %v, want nil", view.Data)
	}
}
