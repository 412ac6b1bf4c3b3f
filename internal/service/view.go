package service

import (
	"churro/internal/model"
)

// ViewResolver turns a parsed reply's directive into the outward-facing view.
// A ViewDirective never escapes the pipeline unresolved: cars and comparison
// payloads are replaced with concrete inventory records, everything else
// passes through unchanged.
type ViewResolver struct {
	search   *SearchService
	resolver *SpecResolver
}

// NewViewResolver creates a new view resolver
func NewViewResolver(search *SearchService, resolver *SpecResolver) *ViewResolver {
	return &ViewResolver{search: search, resolver: resolver}
}

// Resolve dispatches on the directive tag. Nil directive means no view
// change (nil result). No side effects beyond read-only store lookups; no
// retries at this layer.
func (v *ViewResolver) Resolve(directive *model.ViewDirective) *model.ResolvedView {
	if directive == nil {
		return nil
	}

	switch directive.Type {
	case model.ViewCars:
		filters := model.SearchCriteria{}
		if directive.Filters != nil {
			filters = *directive.Filters
		}
		// Unrecognized filter values are not validated up front; they
		// simply match nothing, which is a valid empty result.
		cars := v.search.SearchAvailable(filters)
		return &model.ResolvedView{
			Type: model.ViewCars,
			Data: model.CarsViewData{Cars: cars},
		}

	case model.ViewComparison:
		cars := v.resolver.ResolveSpecs(directive.Specs)
		return &model.ResolvedView{
			Type: model.ViewComparison,
			Data: model.ComparisonViewData{Cars: cars},
		}

	default:
		// booking, car_detail, map, empty and anything unrecognized carry
		// no server-resolvable content.
		out := &model.ResolvedView{Type: directive.Type}
		if len(directive.Data) > 0 {
			out.Data = directive.Data
		}
		return out
	}
}
