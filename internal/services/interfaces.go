package services

import (
	"context"
	"io"
	"time"

	"expense-capture/internal/aggregation"
	"expense-capture/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// PipelineLoggerInterface emits the structured events of the capture pipeline
type PipelineLoggerInterface interface {
	LogExpenseIngested(ctx context.Context, expense *models.Expense, extractionSource string)
	LogIngestionItemFailed(ctx context.Context, userID uuid.UUID, index int, err error)
	LogExtractionFallback(ctx context.Context, userID uuid.UUID, reason string)
	LogTranscriptionFailed(ctx context.Context, userID uuid.UUID, audioURL string, err error)
	LogCorrectionApplied(ctx context.Context, correction *models.Correction)
	LogCorrectionAuditMissing(ctx context.Context, expenseID uuid.UUID, correctedCategory string, err error)
	LogCircuitBreakerStateChange(ctx context.Context, service string, from, to models.CircuitBreakerState)
}

// CategoryMatcherInterface maps free-form category labels onto the taxonomy
type CategoryMatcherInterface interface {
	// Match returns the taxonomy member for raw and a confidence score.
	// Unmatched labels return Misc with a zero score.
	Match(raw string) (category string, score float64)
}

// LLMClientInterface sends one system+user exchange to a chat completions API
// and returns the raw assistant content
type LLMClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// ExtractionServiceInterface turns free text into candidate expenses. It never fails:
// any model problem is absorbed by the deterministic fallback.
type ExtractionServiceInterface interface {
	Extract(ctx context.Context, text string, userID uuid.UUID) *models.ExtractionResult
}

type TranscriptionServiceInterface interface {
	Transcribe(ctx context.Context, audioFilePath string) (string, error)
}

type AudioStorageInterface interface {
	Save(ctx context.Context, audio io.Reader, filename string) (*models.StoredAudio, error)
}

type IngestionServiceInterface interface {
	IngestText(ctx context.Context, userID uuid.UUID, text string) (*models.IngestionResult, error)
	IngestAudio(ctx context.Context, userID uuid.UUID, audio io.Reader, filename string) (*models.IngestionResult, error)
}

type CorrectionServiceInterface interface {
	CorrectExpense(ctx context.Context, req models.CorrectionRequest) (*models.Expense, error)
	ExportCorrections(ctx context.Context) ([]models.CorrectionExport, error)
	CorrectionHistory(ctx context.Context, expenseID uuid.UUID) ([]models.Correction, error)
}

type ExpenseQueryServiceInterface interface {
	ListExpenses(ctx context.Context, filters models.ExpenseFilters) ([]*models.Expense, decimal.Decimal, error)
	MonthlySummary(ctx context.Context, userID uuid.UUID) ([]aggregation.MonthSummary, error)
}
