package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ---------- Chat completions ----------

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

type APIErrorResponse struct {
	Error APIErrorDetail `json:"error"`
}

type APIErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"`
}

// ---------- Transcription ----------

type TranscriptionResponse struct {
	Text string `json:"text"`
}

// ---------- Extraction payload ----------

// LLMExtraction is the JSON object the model is instructed to return
type LLMExtraction struct {
	Expenses     []LLMExpense `json:"expenses"`
	MonthContext string       `json:"month_context"`
}

type LLMExpense struct {
	Amount   FlexibleAmount `json:"amount"`
	Currency string         `json:"currency"`
	Category string         `json:"category"`
	Title    string         `json:"title"`
}

// FlexibleAmount accepts a JSON number, a numeric string or null and keeps the raw text.
// Parsing is left to normalization so an unparsable value degrades to zero instead of
// failing the whole payload.
type FlexibleAmount string

func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = FlexibleAmount(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount must be a number or string: %w", err)
		}
		*a = FlexibleAmount(n.String())
	}

	return nil
}
