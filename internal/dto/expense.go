package dto

import (
	"time"

	"expense-capture/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// amounts and totals go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseExpenseRequest is the body of POST /parse-expense
type ParseExpenseRequest struct {
	Text   string `json:"text" validate:"required"`
	UserID string `json:"userId" validate:"required,uuid"`
}

// ExpenseResponse is a persisted expense as returned to clients
type ExpenseResponse struct {
	ExpenseID  uuid.UUID       `json:"expense_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Category   string          `json:"category"`
	Title      string          `json:"title"`
	Source     string          `json:"source,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	AudioURL   string          `json:"audio_url,omitempty"`
}

// ItemErrorResponse reports an extracted expense that could not be saved
type ItemErrorResponse struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Error string `json:"error"`
}

// ParseExpenseResponse is returned by both ingestion endpoints
type ParseExpenseResponse struct {
	Source       string              `json:"source"`
	RawText      string              `json:"raw_text"`
	MonthContext string              `json:"month_context"`
	AudioURL     string              `json:"audio_url,omitempty"`
	Expenses     []ExpenseResponse   `json:"expenses"`
	Errors       []ItemErrorResponse `json:"errors,omitempty"`
}

type ListExpensesRequest struct {
	UserID   string `query:"user_id" validate:"required,uuid"`
	Category string `query:"category" validate:"omitempty,expense_category"`
}

type ListExpensesResponse struct {
	Category string            `json:"category"`
	Total    decimal.Decimal   `json:"total"`
	Expenses []ExpenseResponse `json:"expenses"`
}

type SummaryRequest struct {
	UserID string `query:"user_id" validate:"required,uuid"`
}

type MonthSummaryResponse struct {
	Month      string                     `json:"month"`
	Total      decimal.Decimal            `json:"total"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

type SummaryResponse struct {
	Months []MonthSummaryResponse `json:"months"`
}

func NewExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:  e.ID,
		Amount:     e.Amount,
		Currency:   e.Currency,
		Category:   e.Category,
		Title:      e.Description,
		Source:     e.Source,
		OccurredAt: e.OccurredAt,
		AudioURL:   e.AudioURL(),
	}
}

func NewExpenseResponses(expenses []*models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, NewExpenseResponse(e))
	}
	return responses
}

// NewParseExpenseResponse renders an ingestion result. Failed items are listed separately
// so that the saved ones are never hidden.
func NewParseExpenseResponse(result *models.IngestionResult) ParseExpenseResponse {
	response := ParseExpenseResponse{
		Source:       result.Source,
		RawText:      result.RawText,
		MonthContext: result.MonthContext,
		AudioURL:     result.AudioURL,
		Expenses:     NewExpenseResponses(result.Succeeded()),
	}

	for _, item := range result.Failed() {
		response.Errors = append(response.Errors, ItemErrorResponse{
			Index: item.Index,
			Title: item.Candidate.Title,
			Error: "failed to save expense",
		})
	}

	return response
}

// ToModel rebuilds an expense from its API representation, used on the client side
func (r ExpenseResponse) ToModel() *models.Expense {
	e := &models.Expense{
		ID:          r.ExpenseID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Category:    r.Category,
		Description: r.Title,
		Source:      r.Source,
		OccurredAt:  r.OccurredAt,
	}
	if r.AudioURL != "" {
		audioURL := r.AudioURL
		e.AudioPath = &audioURL
	}
	return e
}
