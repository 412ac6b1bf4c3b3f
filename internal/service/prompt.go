package service

import (
	"fmt"
	"strings"

	"churro/internal/inventory"
	"churro/internal/model"
)

// maxPromptInteractions bounds how many interaction events are rendered into
// the system instruction.
const maxPromptInteractions = 10

const promptTemplate = `You are a helpful AI assistant for a premium car rental platform called Churro. Help users find the perfect car.

Available inventory (one car per line):
%s

Respond ONLY with a valid JSON object — no markdown, no code fences — in this exact shape:
{
  "message": "Your conversational reply to the user",
  "view": { "type": "cars", "data": { "filters": { /* see filter fields below */ } } }
}

View rules:
- "cars"       → show a filtered car grid; include "data.filters" with only the filters you are confident about.
- "comparison" → compare 2-3 cars side by side; include "data.cars" as [{"make": "...", "model": "..."}].
- "booking"    → show the booking form; include optional "data": { "location", "startDate", "endDate" }.
- "empty"      → return to the welcome screen.
- Omit "view" entirely for clarifying questions or purely conversational replies.

Filter fields (all optional, omit what the user did not signal):
- category: one of economy, sedan, suv, luxury, sports, minivan, electric, truck
- make, model, location: free text, matched as substrings
- transmission: "automatic" or "manual"
- fuelType: "gasoline", "hybrid" or "electric"
- pickupMethod: "Downtown" or "Airport"
- mileagePolicy: free text, e.g. "Unlimited"
- maxDailyRate, minDailyRate: integers in cents ("under $200/day" → "maxDailyRate": 20000)
- minSeats: integer ("fits 6 people" → "minSeats": 6)
- features: array of feature keywords, any match counts

Known locations: %s
Known features: %s

Filtering guidance:
- Apply every signal you have as a filter — vehicle type, budget, seats, fuel, city.
- Cars the user clicked are strong preference signals; weight them heavily.
- With no signal at all, show the full inventory and ask one short narrowing question.
- The view and the message are independent — you can show results AND ask a follow-up.
- Do not invent filter values outside the vocabularies above.`

// PromptComposer builds the system instruction for the model gateway. The
// catalog block is fixed at construction; Compose only varies with the
// interaction events it is given.
type PromptComposer struct {
	base string
}

// NewPromptComposer renders the catalog description from the store once.
func NewPromptComposer(store *inventory.Store) *PromptComposer {
	cars := store.All()

	lines := make([]string, 0, len(cars))
	locationSet := make(map[string]bool)
	locations := make([]string, 0)
	featureSet := make(map[string]bool)
	features := make([]string, 0)

	for _, car := range cars {
		lines = append(lines, fmt.Sprintf(
			"- %d %s %s | %s | $%d/day | %d seats | %s | %s | %s | pickup: %s | available: %t",
			car.Year, car.Make, car.Model, car.Category, car.DailyRate/100,
			car.Seats, car.Transmission, car.FuelType, car.Location,
			car.PickupMethod, car.Available,
		))
		if !locationSet[car.Location] {
			locationSet[car.Location] = true
			locations = append(locations, car.Location)
		}
		for _, f := range car.Features {
			if !featureSet[f] {
				featureSet[f] = true
				features = append(features, f)
			}
		}
	}

	base := fmt.Sprintf(promptTemplate,
		strings.Join(lines, "\n"),
		strings.Join(locations, "; "),
		strings.Join(features, ", "),
	)
	return &PromptComposer{base: base}
}

// Compose returns the system instruction, appending a rendered list of the
// last interaction events when there are any. Same inputs, same output; the
// composer holds no per-request state.
func (p *PromptComposer) Compose(interactions []model.Interaction) string {
	if len(interactions) == 0 {
		return p.base
	}

	recent := interactions
	if len(recent) > maxPromptInteractions {
		recent = recent[len(recent)-maxPromptInteractions:]
	}

	var sb strings.Builder
	sb.WriteString(p.base)
	sb.WriteString("\n\nUser's recent on-page interactions (interest signals):")
	for _, ev := range recent {
		sb.WriteString(fmt.Sprintf("\n- Viewed/clicked: %d %s %s ($%d/day, %s, %s)",
			ev.Car.Year, ev.Car.Make, ev.Car.Model, ev.Car.DailyRate/100,
			ev.Car.Category, ev.Car.Location))
	}
	return sb.String()
}
