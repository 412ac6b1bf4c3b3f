package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"churro/internal/model"
	"churro/internal/service"

	"github.com/gin-gonic/gin"
)

type stubGateway struct {
	reply string
	err   error
}

func (s *stubGateway) Complete(context.Context, string, string, []model.ChatMessage) (string, error) {
	return s.reply, s.err
}

func (s *stubGateway) IsEnabled() bool { return true }

func newChatRouter(t *testing.T, gateway service.ChatCompleter) *gin.Engine {
	t.Helper()
	store := newTestStore(t)
	views := service.NewViewResolver(service.NewSearchService(store), service.NewSpecResolver(store))
	chat := service.NewChatService(gateway, service.NewPromptComposer(store), views)

	router := gin.New()
	router.POST("/api/v1/chat", NewChatHandler(chat).Chat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	gateway := &stubGateway{
		reply: `{"message": "Here is our electric option", "view": {"type": "cars", "data": {"filters": {"fuelType": "electric"}}}}`,
	}
	router := newChatRouter(t, gateway)

	w := postChat(router, `{"message": "something electric"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
		View    *struct {
			Type string `json:"type"`
			Data struct {
				Cars []model.Car `json:"cars"`
			} `json:"data"`
		} `json:"view"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "Here is our electric option" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.View == nil || resp.View.Type != "cars" {
		t.Fatalf("view = %+v, want cars", resp.View)
	}
	if len(resp.View.Data.Cars) != 1 || resp.View.Data.Cars[0].ID != "1" {
		t.Errorf("view cars = %+v, want the Tesla", resp.View.Data.Cars)
	}
}

func TestChatEndpointPlainReplyOmitsView(t *testing.T) {
	router := newChatRouter(t, &stubGateway{reply: "Which city are you in?"})

	w := postChat(router, `{"message": "I need a car"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.Contains(w.Body.String(), `"view"`) {
		t.Errorf("view key present in %s, want omitted", w.Body.String())
	}
}

func TestChatEndpointNotConfigured(t *testing.T) {
	router := newChatRouter(t, nil)

	w := postChat(router, `{"message": "hello"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var resp model.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "API key not configured." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestChatEndpointGatewayFailure(t *testing.T) {
	router := newChatRouter(t, &stubGateway{err: errors.New("dial tcp: timeout")})

	w := postChat(router, `{"message": "hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp model.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "I'm having trouble connecting. Please try again." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	router := newChatRouter(t, &stubGateway{reply: "hi"})

	w := postChat(router, `{"history": []}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
