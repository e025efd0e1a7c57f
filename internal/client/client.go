package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"expense-capture/internal/dto"
	"expense-capture/internal/errors"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// APIError is returned for every non-2xx answer from the expense API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []string
	TraceID    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d) %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is lets callers match on the error code, e.g. errors.Is(err, &APIError{Code: "EXPENSE_001"})
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// Client is a thin HTTP client for the expense capture API
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) buildRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends req and decodes a 2xx body into out. Anything else becomes an *APIError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("expense api request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}

	var envelope errors.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
		apiErr.TraceID = envelope.Error.TraceID
	}

	return apiErr
}

// ParseExpense sends free text for extraction. A 207 answer is returned without error;
// the unsaved items are listed in the response's Errors.
func (c *Client) ParseExpense(ctx context.Context, userID uuid.UUID, text string) (*dto.ParseExpenseResponse, error) {
	req, err := c.buildRequest(ctx, http.MethodPost, "/parse-expense", nil, dto.ParseExpenseRequest{
		Text:   text,
		UserID: userID.String(),
	})
	if err != nil {
		return nil, err
	}

	var resp dto.ParseExpenseResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseAudio uploads a recording as multipart form data
func (c *Client) ParseAudio(ctx context.Context, userID uuid.UUID, filename string, audio io.Reader) (*dto.ParseExpenseResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}
	if err := writer.WriteField("userId", userID.String()); err != nil {
		return nil, fmt.Errorf("write userId field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse-audio", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var resp dto.ParseExpenseResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CorrectExpense(ctx context.Context, correction dto.CorrectExpenseRequest) error {
	req, err := c.buildRequest(ctx, http.MethodPost, "/correct-expense", nil, correction)
	if err != nil {
		return err
	}

	var resp dto.CorrectExpenseResponse
	if err := c.do(req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("correction of expense %s was not acknowledged", correction.ExpenseID)
	}
	return nil
}

// ListExpenses returns the user's expenses; an empty category lists all of them
func (c *Client) ListExpenses(ctx context.Context, userID uuid.UUID, category string) (*dto.ListExpensesResponse, error) {
	query := url.Values{"user_id": {userID.String()}}
	if category != "" {
		query.Set("category", category)
	}

	req, err := c.buildRequest(ctx, http.MethodGet, "/expenses", query, nil)
	if err != nil {
		return nil, err
	}

	var resp dto.ListExpensesResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/expenses/summary", url.Values{"user_id": {userID.String()}}, nil)
	if err != nil {
		return nil, err
	}

	var resp dto.SummaryResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Corrections(ctx context.Context) (*dto.CorrectionsResponse, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/corrections", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp dto.CorrectionsResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CorrectionHistory fetches the corrections applied to one expense
func (c *Client) CorrectionHistory(ctx context.Context, expenseID uuid.UUID) (*dto.CorrectionHistoryResponse, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/expenses/"+expenseID.String()+"/corrections", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp dto.CorrectionHistoryResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) error {
	req, err := c.buildRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
