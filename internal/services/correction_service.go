package services

import (
	"context"
	"errors"
	"fmt"

	"expense-capture/internal/models"
	"expense-capture/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidCategory = errors.New("invalid category")
)

type CorrectionService struct {
	expenseRepo    repositories.ExpenseRepositoryInterface
	correctionRepo repositories.CorrectionRepositoryInterface
	metrics        MetricsRecorderInterface
	pipelineLogger PipelineLoggerInterface
}

func NewCorrectionService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	correctionRepo repositories.CorrectionRepositoryInterface,
	metrics MetricsRecorderInterface,
	pipelineLogger PipelineLoggerInterface,
) CorrectionServiceInterface {
	return &CorrectionService{
		expenseRepo:    expenseRepo,
		correctionRepo: correctionRepo,
		metrics:        metrics,
		pipelineLogger: pipelineLogger,
	}
}

// CorrectExpense re-labels an expense and appends the training record.
// The category update happens first; if the append then fails the update stays and
// the error is returned to the caller.
func (s *CorrectionService) CorrectExpense(ctx context.Context, req models.CorrectionRequest) (*models.Expense, error) {
	if req.ExpenseID == uuid.Nil {
		return nil, fmt.Errorf("%w: expense id is required", ErrInvalidInput)
	}
	if !models.IsValidCategory(req.CorrectedCategory) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.CorrectedCategory)
	}

	expense, err := s.expenseRepo.GetByID(ctx, req.ExpenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	if err := s.expenseRepo.UpdateCategory(ctx, expense.ID, req.CorrectedCategory); err != nil {
		s.recordOutcome("failed", req.CorrectedCategory)
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense category: %w", err)
	}
	expense.Category = req.CorrectedCategory

	correction := &models.Correction{
		UserID:            expense.UserID,
		ExpenseID:         &expense.ID,
		OriginalText:      nonEmpty(req.OriginalText),
		PredictedCategory: nonEmpty(req.PredictedCategory),
		CorrectedCategory: req.CorrectedCategory,
	}

	if err := s.correctionRepo.Create(ctx, correction); err != nil {
		s.pipelineLogger.LogCorrectionAuditMissing(ctx, expense.ID, req.CorrectedCategory, err)
		s.recordOutcome("audit_missing", req.CorrectedCategory)
		return expense, fmt.Errorf("failed to record correction: %w", err)
	}

	s.pipelineLogger.LogCorrectionApplied(ctx, correction)
	s.recordOutcome("success", req.CorrectedCategory)

	return expense, nil
}

// ExportCorrections returns the usable training examples, newest first
func (s *CorrectionService) ExportCorrections(ctx context.Context) ([]models.CorrectionExport, error) {
	rows, err := s.correctionRepo.ListForExport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export corrections: %w", err)
	}

	usable := make([]models.CorrectionExport, 0, len(rows))
	for _, row := range rows {
		if row.InputText() == "" || row.CorrectedCategory == "" {
			continue
		}
		usable = append(usable, row)
	}

	return usable, nil
}

// CorrectionHistory returns the corrections applied to one expense, oldest first
func (s *CorrectionService) CorrectionHistory(ctx context.Context, expenseID uuid.UUID) ([]models.Correction, error) {
	if expenseID == uuid.Nil {
		return nil, fmt.Errorf("%w: expense id is required", ErrInvalidInput)
	}

	if _, err := s.expenseRepo.GetByID(ctx, expenseID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	history, err := s.correctionRepo.ListByExpenseID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load correction history: %w", err)
	}
	return history, nil
}

func (s *CorrectionService) recordOutcome(status, category string) {
	s.metrics.IncrementCounter(MetricCorrectionApplied, map[string]string{
		"status":   status,
		"category": category,
	})
}

func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
