package service

import (
	"context"

	"churro/internal/model"
)

// ChatCompleter is the model gateway contract: one synchronous turn, raw text
// back. Implementations return the exact bytes the model produced, with no
// interpretation and no retries. Transport failures surface as errors to the
// caller, which owns the user-facing fallback.
type ChatCompleter interface {
	// Complete sends the system instruction, prior turns and the new user
	// message, and returns the model's raw text reply.
	Complete(ctx context.Context, userMessage, systemInstruction string, history []model.ChatMessage) (string, error)

	// IsEnabled reports whether the gateway is configured and ready. A
	// disabled gateway is a normal, representable state that every caller
	// must handle.
	IsEnabled() bool
}

// Ensure AnthropicClient implements ChatCompleter
var _ ChatCompleter = (*AnthropicClient)(nil)
