package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yungbote/learnsphere-backend/internal/config"
	"github.com/yungbote/learnsphere-backend/internal/logger"
)

// OpenRouterClient is the outbound LLM dependency. Content services receive
// it explicitly; a nil client means fallback mode and every AI endpoint
// serves its static content instead.
type OpenRouterClient interface {
	Complete(ctx context.Context, system string, user string, opts CompletionOptions) (string, error)
}

type CompletionOptions struct {
	Temperature  float64
	JSONResponse bool
}

type openRouterClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenRouterClient(cfg config.Config, log *logger.Logger) (OpenRouterClient, error) {
	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("missing OpenRouter API key")
	}
	timeout := cfg.OpenRouterTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &openRouterClient{
		log:        log.With("service", "OpenRouterClient"),
		baseURL:    cfg.OpenRouterBaseURL,
		apiKey:     cfg.OpenRouterAPIKey,
		model:      cfg.OpenRouterModel,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type openRouterHTTPError struct {
	StatusCode int
	Body       string
}

func (e *openRouterHTTPError) Error() string {
	return fmt.Sprintf("openrouter http %d: %s", e.StatusCode, e.Body)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openRouterClient) do(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &openRouterHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("openrouter decode error: %w; raw=%s", err, string(raw))
	}
	return nil
}

// Complete performs a single chat-completion call. One attempt only: any
// failure is the caller's signal to substitute fallback content.
func (c *openRouterClient) Complete(ctx context.Context, system string, user string, opts CompletionOptions) (string, error) {
	req := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: opts.Temperature,
	}
	if opts.JSONResponse {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var resp chatCompletionResponse
	if err := c.do(ctx, "/chat/completions", req, &resp); err != nil {
		c.log.Warn("OpenRouter request failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
