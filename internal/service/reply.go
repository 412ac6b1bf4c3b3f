package service

import (
	"encoding/json"

	"churro/internal/model"
	"churro/internal/utils"
)

// maxComparisonSpecs caps how many cars one comparison may name.
const maxComparisonSpecs = 3

// replyEnvelope mirrors the object the model is instructed to emit.
type replyEnvelope struct {
	Message string        `json:"message"`
	View    *viewEnvelope `json:"view,omitempty"`
}

type viewEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type carsPayload struct {
	Filters *model.SearchCriteria `json:"filters,omitempty"`
}

type comparisonPayload struct {
	Cars []model.ComparisonSpec `json:"cars"`
}

// ExtractReply turns raw model output into a ParsedReply. The model is an
// untrusted collaborator: any failure to recover a well-formed object
// downgrades to a plain-text reply carrying the raw text, never an error.
func ExtractReply(raw string) model.ParsedReply {
	var env replyEnvelope
	if err := utils.ParseAIJSON(raw, &env); err != nil {
		return model.ParsedReply{Message: raw}
	}

	// An object without a usable message field is treated the same as
	// unparseable output: the user still sees the model's text.
	if env.Message == "" {
		return model.ParsedReply{Message: raw}
	}

	reply := model.ParsedReply{Message: env.Message}
	if env.View == nil || env.View.Type == "" {
		return reply
	}
	reply.Directive = buildDirective(env.View)
	return reply
}

// buildDirective validates the view payload against its tag. Cars and
// comparison payloads are decoded into their typed shapes here so downstream
// code can dispatch without field-presence checks; a payload that does not
// decode for its tag drops the directive (message is kept). All other tags
// carry their payload through untouched.
func buildDirective(view *viewEnvelope) *model.ViewDirective {
	tag := model.ViewType(view.Type)
	switch tag {
	case model.ViewCars:
		var payload carsPayload
		if len(view.Data) > 0 {
			if err := json.Unmarshal(view.Data, &payload); err != nil {
				return nil
			}
		}
		filters := payload.Filters
		if filters == nil {
			filters = &model.SearchCriteria{}
		}
		return &model.ViewDirective{Type: tag, Filters: filters}

	case model.ViewComparison:
		var payload comparisonPayload
		if len(view.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(view.Data, &payload); err != nil {
			return nil
		}
		if len(payload.Cars) == 0 {
			return nil
		}
		specs := payload.Cars
		if len(specs) > maxComparisonSpecs {
			specs = specs[:maxComparisonSpecs]
		}
		return &model.ViewDirective{Type: tag, Specs: specs}

	default:
		return &model.ViewDirective{Type: tag, Data: view.Data}
	}
}
