package repositories

import (
	"context"

	"expense-capture/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense persistence
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, category string) error
	ListByUser(ctx context.Context, filters models.ExpenseFilters) ([]*models.Expense, error)
}

// CorrectionRepositoryInterface is append-only: corrections are never updated
type CorrectionRepositoryInterface interface {
	Create(ctx context.Context, correction *models.Correction) error
	ListByExpenseID(ctx context.Context, expenseID uuid.UUID) ([]models.Correction, error)
	ListForExport(ctx context.Context) ([]models.CorrectionExport, error)
}
