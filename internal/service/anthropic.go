package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"churro/internal/config"
	"churro/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	anthropicVersion   = "2023-06-01"
	batchesBetaHeader  = "message-batches-2024-09-24"
	defaultPollSeconds = 5
)

// AnthropicClient speaks the Anthropic Messages API over plain HTTP: the
// synchronous /messages call used by the interactive pipeline, and the
// Message Batches API used by the offline batch tool.
type AnthropicClient struct {
	config     *config.AnthropicConfig
	httpClient *http.Client
}

// NewAnthropicClient creates a new Anthropic API client
func NewAnthropicClient(cfg *config.AnthropicConfig) *AnthropicClient {
	return &AnthropicClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *AnthropicClient) IsEnabled() bool {
	return c.config.Enabled
}

// messageParam is one turn in a Messages API request.
type messageParam struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesRequest is the /messages request body.
type messagesRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []messageParam `json:"messages"`
}

// messagesResponse is the /messages response body.
type messagesResponse struct {
	ID      string `json:"id"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Complete performs one synchronous chat turn and returns the raw reply text.
func (c *AnthropicClient) Complete(ctx context.Context, userMessage, systemInstruction string, history []model.ChatMessage) (string, error) {
	if !c.config.Enabled {
		return "", fmt.Errorf("anthropic API is not enabled (missing API key)")
	}

	messages := make([]messageParam, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, messageParam{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, messageParam{Role: "user", Content: userMessage})

	req := messagesRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		System:    systemInstruction,
		Messages:  messages,
	}

	var resp messagesResponse
	if err := c.post(ctx, "/messages", c.baseHeaders(), req, &resp); err != nil {
		return "", err
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("anthropic returned no content blocks")
	}
	return resp.Content[0].Text, nil
}

// BatchRequest is one entry in a batch submission.
type BatchRequest struct {
	CustomID string             `json:"custom_id"`
	Params   BatchRequestParams `json:"params"`
}

// BatchRequestParams mirrors the per-request Messages parameters.
type BatchRequestParams struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []messageParam `json:"messages"`
}

// BatchStatus is the processing state of a message batch.
type BatchStatus struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	ProcessingStatus string `json:"processing_status"` // in_progress, canceling, ended
	RequestCounts    struct {
		Processing int `json:"processing"`
		Succeeded  int `json:"succeeded"`
		Errored    int `json:"errored"`
		Canceled   int `json:"canceled"`
		Expired    int `json:"expired"`
	} `json:"request_counts"`
	CreatedAt  string  `json:"created_at"`
	ExpiresAt  string  `json:"expires_at"`
	EndedAt    *string `json:"ended_at"`
	ResultsURL *string `json:"results_url"`
}

// BatchResult is one line of a batch's JSONL results.
type BatchResult struct {
	CustomID string `json:"custom_id"`
	Result   struct {
		Type    string `json:"type"` // succeeded, errored, canceled, expired
		Message *struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
			StopReason string `json:"stop_reason"`
		} `json:"message,omitempty"`
		Error *struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error,omitempty"`
	} `json:"result"`
}

// Text returns the first text block of a succeeded result, or "".
func (r BatchResult) Text() string {
	if r.Result.Message == nil || len(r.Result.Message.Content) == 0 {
		return ""
	}
	return r.Result.Message.Content[0].Text
}

// MakeBatchRequest builds a BatchRequest with the client's defaults. An empty
// customID gets a generated UUID.
func (c *AnthropicClient) MakeBatchRequest(customID, userMessage, system string, history []model.ChatMessage) BatchRequest {
	if customID == "" {
		customID = uuid.NewString()
	}
	messages := make([]messageParam, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, messageParam{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, messageParam{Role: "user", Content: userMessage})
	return BatchRequest{
		CustomID: customID,
		Params: BatchRequestParams{
			Model:     c.config.Model,
			MaxTokens: c.config.MaxTokens,
			System:    system,
			Messages:  messages,
		},
	}
}

// CreateBatch submits a message batch and returns its initial status.
func (c *AnthropicClient) CreateBatch(ctx context.Context, requests []BatchRequest) (*BatchStatus, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("anthropic API is not enabled (missing API key)")
	}
	body := map[string]any{"requests": requests}
	var status BatchStatus
	if err := c.post(ctx, "/messages/batches", c.batchHeaders(), body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetBatchStatus fetches the current status of a batch.
func (c *AnthropicClient) GetBatchStatus(ctx context.Context, batchID string) (*BatchStatus, error) {
	var status BatchStatus
	if err := c.get(ctx, "/messages/batches/"+batchID, c.batchHeaders(), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetBatchResults downloads and parses the JSONL results of an ended batch.
func (c *AnthropicClient) GetBatchResults(ctx context.Context, batchID string) ([]BatchResult, error) {
	url := c.config.APIBase + "/messages/batches/" + batchID + "/results"
	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	applyHeaders(httpReq, c.batchHeaders())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var results []BatchResult
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var r BatchResult
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("failed to parse result line: %w", err)
		}
		results = append(results, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return results, nil
}

// PollBatch polls a batch until its processing status is "ended" or the
// context is canceled.
func (c *AnthropicClient) PollBatch(ctx context.Context, batchID string, interval time.Duration) (*BatchStatus, error) {
	if interval <= 0 {
		interval = defaultPollSeconds * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.GetBatchStatus(ctx, batchID)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"batch":     batchID,
			"status":    status.ProcessingStatus,
			"succeeded": status.RequestCounts.Succeeded,
			"errored":   status.RequestCounts.Errored,
		}).Info("batch progress")

		if status.ProcessingStatus == "ended" {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// SubmitAndWait submits a batch, waits for it to end, and returns its results.
func (c *AnthropicClient) SubmitAndWait(ctx context.Context, requests []BatchRequest, interval time.Duration) ([]BatchResult, error) {
	batch, err := c.CreateBatch(ctx, requests)
	if err != nil {
		return nil, err
	}
	logrus.Infof("batch created: %s (%d requests)", batch.ID, len(requests))

	if _, err := c.PollBatch(ctx, batch.ID, interval); err != nil {
		return nil, err
	}
	return c.GetBatchResults(ctx, batch.ID)
}

func (c *AnthropicClient) baseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":      "application/json",
		"x-api-key":         c.config.APIKey,
		"anthropic-version": anthropicVersion,
	}
}

// The Batch API requires its own beta header on top of the base headers.
func (c *AnthropicClient) batchHeaders() map[string]string {
	h := c.baseHeaders()
	h["anthropic-beta"] = batchesBetaHeader
	return h
}

func (c *AnthropicClient) post(ctx context.Context, path string, headers map[string]string, body, out any) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.APIBase+path, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	applyHeaders(httpReq, headers)

	return c.do(httpReq, out)
}

func (c *AnthropicClient) get(ctx context.Context, path string, headers map[string]string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.config.APIBase+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	applyHeaders(httpReq, headers)

	return c.do(httpReq, out)
}

func (c *AnthropicClient) do(httpReq *http.Request, out any) error {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func applyHeaders(req *http.Request, headers map[string]string) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}
