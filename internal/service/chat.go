package service

import (
	"context"
	"errors"
	"fmt"

	"churro/internal/model"

	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned when the model gateway was never constructed
// (no API key). It degrades the chat endpoint, not the process.
var ErrNotConfigured = errors.New("model gateway is not configured")

// ChatService runs one request through the resolution pipeline: compose the
// system instruction, complete the chat turn, extract a directive from the
// raw reply, resolve it into a renderable view. The service is stateless per
// request; every invocation receives its full input as arguments.
type ChatService struct {
	gateway  ChatCompleter
	composer *PromptComposer
	views    *ViewResolver
}

// NewChatService creates a chat service. gateway may be nil when the API key
// is absent; Chat reports ErrNotConfigured in that case.
func NewChatService(gateway ChatCompleter, composer *PromptComposer, views *ViewResolver) *ChatService {
	return &ChatService{gateway: gateway, composer: composer, views: views}
}

// Chat resolves one user message into a reply and optional view. Only
// configuration and transport failures surface as errors; every model-output
// irregularity is absorbed into a best-effort successful response.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if s.gateway == nil || !s.gateway.IsEnabled() {
		return nil, ErrNotConfigured
	}

	system := s.composer.Compose(req.Interactions)

	raw, err := s.gateway.Complete(ctx, req.Message, system, req.History)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	reply := ExtractReply(raw)
	if reply.Directive == nil && reply.Message == raw {
		logrus.Debug("model reply carried no structured directive")
	}

	return &model.ChatResponse{
		Message: reply.Message,
		View:    s.views.Resolve(reply.Directive),
	}, nil
}
