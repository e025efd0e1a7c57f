package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"expense-capture/internal/config"
	"expense-capture/internal/dto"
)

var (
	ErrLLMNotConfigured = errors.New("llm api key is not configured")
	ErrLLMEmptyResponse = errors.New("llm returned no choices")
)

// LLMStatusError is returned for any non-2xx answer from the completions endpoint
type LLMStatusError struct {
	StatusCode int
	Message    string
}

func (e *LLMStatusError) Error() string {
	return fmt.Sprintf("llm request failed (%d): %s", e.StatusCode, e.Message)
}

type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

// newAPIClient builds the http.Client shared by the OpenAI-compatible adapters
func newAPIClient(apiKey string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &AuthTransport{
			apiKey: apiKey,
			base:   http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// LLMClient talks to an OpenAI-compatible chat completions API
type LLMClient struct {
	config *config.LLMConfig
	client *http.Client
	logger *slog.Logger
}

func NewLLMClient(cfg *config.LLMConfig, logger *slog.Logger) LLMClientInterface {
	return &LLMClient{
		config: cfg,
		client: newAPIClient(cfg.APIKey, cfg.Timeout),
		logger: logger,
	}
}

func (c *LLMClient) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *LLMClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("llm request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// Complete asks for a JSON object answer and returns the assistant message content
func (c *LLMClient) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrLLMNotConfigured
	}

	payload := dto.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []dto.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature:    c.config.Temperature,
		ResponseFormat: &dto.ResponseFormat{Type: "json_object"},
	}

	req, err := c.buildRequest(ctx, http.MethodPost, "/chat/completions", payload)
	if err != nil {
		return "", err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return "", err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var completion dto.ChatCompletionResponse
		if err := json.Unmarshal(body, &completion); err != nil {
			return "", fmt.Errorf("decode completion response: %w", err)
		}
		if len(completion.Choices) == 0 {
			return "", ErrLLMEmptyResponse
		}

		c.logger.Debug("llm completion received",
			"model", completion.Model,
			"finish_reason", completion.Choices[0].FinishReason,
		)

		return completion.Choices[0].Message.Content, nil

	default:
		message := string(body)
		var errResp dto.APIErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}

		c.logger.Error("llm error response",
			"status", resp.StatusCode,
			"message", message,
		)

		return "", &LLMStatusError{StatusCode: resp.StatusCode, Message: message}
	}
}
