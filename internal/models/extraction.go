package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ExtractionSourceLLM      = "llm"
	ExtractionSourceFallback = "fallback"

	MonthContextCurrent = "current"

	UnknownExpenseTitle = "Unknown expense"
	DefaultExpenseTitle = "Expense"
)

// CandidateExpense is a normalized extraction output that has not been persisted yet
type CandidateExpense struct {
	Amount     decimal.Decimal
	Currency   string
	Category   string
	Title      string
	OccurredAt time.Time
}

// ExtractionResult is the outcome of turning free text into candidate expenses.
// Candidates is never empty.
type ExtractionResult struct {
	Candidates   []CandidateExpense
	MonthContext string
	Source       string
}

// ItemResult is the persistence outcome of one candidate in an ingested batch
type ItemResult struct {
	Index     int
	Candidate CandidateExpense
	Expense   *Expense
	Err       error
}

// IngestionResult is the full envelope returned for one text or voice ingestion
type IngestionResult struct {
	Source       string
	RawText      string
	MonthContext string
	AudioURL     string
	UserID       uuid.UUID
	Items        []ItemResult
}

// Succeeded returns the persisted expenses in extraction order
func (r *IngestionResult) Succeeded() []*Expense {
	expenses := make([]*Expense, 0, len(r.Items))
	for _, item := range r.Items {
		if item.Err == nil && item.Expense != nil {
			expenses = append(expenses, item.Expense)
		}
	}
	return expenses
}

// Failed returns the items whose insert failed
func (r *IngestionResult) Failed() []ItemResult {
	var failed []ItemResult
	for _, item := range r.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}

// Err joins every per-item error, or returns nil when the whole batch was persisted
func (r *IngestionResult) Err() error {
	var errs []error
	for _, item := range r.Items {
		if item.Err != nil {
			errs = append(errs, item.Err)
		}
	}
	return errors.Join(errs...)
}
