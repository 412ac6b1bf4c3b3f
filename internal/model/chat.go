package model

// ChatMessage is one prior conversation turn, owned by the caller and passed
// in by value on every request.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Interaction records a prior car the user engaged with, as the UI sent it.
type Interaction struct {
	Type      string `json:"type"` // e.g. "car_click"
	Car       Car    `json:"car"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// ChatRequest is the inbound request from the UI collaborator.
type ChatRequest struct {
	Message      string        `json:"message" binding:"required"`
	History      []ChatMessage `json:"history,omitempty"`
	Interactions []Interaction `json:"interactions,omitempty"`
}

// ChatResponse is the outbound reply. View is omitted entirely when the
// directive carried no view change.
type ChatResponse struct {
	Message string        `json:"message"`
	View    *ResolvedView `json:"view,omitempty"`
}

// InteractionLogCap is the hard cap on retained interaction events.
const InteractionLogCap = 10

// InteractionLog is a fixed-capacity FIFO of interaction events with
// drop-oldest eviction. The pipeline itself only ever reads event slices;
// this structure is for callers that maintain the buffer in-process.
type InteractionLog struct {
	events []Interaction
}

// Push appends an event, evicting the oldest when the log is at capacity.
func (l *InteractionLog) Push(e Interaction) {
	if len(l.events) >= InteractionLogCap {
		l.events = l.events[len(l.events)-InteractionLogCap+1:]
	}
	l.events = append(l.events, e)
}

// Events returns the retained events, oldest first.
func (l *InteractionLog) Events() []Interaction {
	out := make([]Interaction, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of retained events.
func (l *InteractionLog) Len() int {
	return len(l.events)
}
