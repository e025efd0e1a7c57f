package services

import (
	"context"
	"log/slog"
	"time"

	"expense-capture/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request trace id into service logs
const CorrelationIDKey contextKey = "correlation_id"

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

type PipelineLogger struct {
	logger *slog.Logger
}

func NewPipelineLogger(logger *slog.Logger) PipelineLoggerInterface {
	return &PipelineLogger{
		logger: logger,
	}
}

func (pl *PipelineLogger) LogExpenseIngested(ctx context.Context, expense *models.Expense, extractionSource string) {
	pl.logger.InfoContext(ctx, "expense ingested",
		slog.String("event_type", "expense_ingested"),
		slog.String("expense_id", expense.ID.String()),
		slog.String("user_id", expense.UserID.String()),
		slog.String("amount", expense.Amount.StringFixed(2)),
		slog.String("currency", expense.Currency),
		slog.String("category", expense.Category),
		slog.String("source", expense.Source),
		slog.String("extraction_source", extractionSource),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogIngestionItemFailed(ctx context.Context, userID uuid.UUID, index int, err error) {
	pl.logger.ErrorContext(ctx, "expense insert failed",
		slog.String("event_type", "ingestion_item_failed"),
		slog.String("user_id", userID.String()),
		slog.Int("index", index),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogExtractionFallback(ctx context.Context, userID uuid.UUID, reason string) {
	pl.logger.WarnContext(ctx, "extraction fell back to regex",
		slog.String("event_type", "extraction_fallback"),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogTranscriptionFailed(ctx context.Context, userID uuid.UUID, audioURL string, err error) {
	pl.logger.WarnContext(ctx, "transcription failed",
		slog.String("event_type", "transcription_failed"),
		slog.String("user_id", userID.String()),
		slog.String("audio_url", audioURL),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogCorrectionApplied doubles as the training data record for the classifier
func (pl *PipelineLogger) LogCorrectionApplied(ctx context.Context, correction *models.Correction) {
	attrs := []any{
		slog.String("event_type", "correction_applied"),
		slog.String("correction_id", correction.ID.String()),
		slog.String("user_id", correction.UserID.String()),
		slog.String("corrected_category", correction.CorrectedCategory),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}
	if correction.ExpenseID != nil {
		attrs = append(attrs, slog.String("expense_id", correction.ExpenseID.String()))
	}
	if correction.PredictedCategory != nil {
		attrs = append(attrs, slog.String("predicted_category", *correction.PredictedCategory))
	}
	if correction.OriginalText != nil {
		attrs = append(attrs, slog.String("original_text", *correction.OriginalText))
	}

	pl.logger.InfoContext(ctx, "correction applied", attrs...)
}

func (pl *PipelineLogger) LogCorrectionAuditMissing(ctx context.Context, expenseID uuid.UUID, correctedCategory string, err error) {
	pl.logger.ErrorContext(ctx, "category updated, audit record missing",
		slog.String("event_type", "correction_audit_missing"),
		slog.String("expense_id", expenseID.String()),
		slog.String("corrected_category", correctedCategory),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, from, to models.CircuitBreakerState) {
	pl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", from.String()),
		slog.String("new_state", to.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
