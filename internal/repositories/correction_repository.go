package repositories

import (
	"context"
	"fmt"

	"expense-capture/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type correctionRepository struct {
	db *gorm.DB
}

func NewCorrectionRepository(db *gorm.DB) CorrectionRepositoryInterface {
	return &correctionRepository{
		db: db,
	}
}

func (r *correctionRepository) Create(ctx context.Context, correction *models.Correction) error {
	if err := r.db.WithContext(ctx).Omit("Expense").Create(correction).Error; err != nil {
		return fmt.Errorf("failed to create correction: %w", err)
	}
	return nil
}

// ListByExpenseID returns the corrections of one expense in the order they were made
func (r *correctionRepository) ListByExpenseID(ctx context.Context, expenseID uuid.UUID) ([]models.Correction, error) {
	var corrections []models.Correction
	if err := r.db.WithContext(ctx).
		Where("expense_id = ?", expenseID).
		Order("created_at ASC").
		Find(&corrections).Error; err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	return corrections, nil
}

// ListForExport joins every correction with the description of its expense, newest first.
// Corrections whose expense was deleted are kept with a null description.
func (r *correctionRepository) ListForExport(ctx context.Context) ([]models.CorrectionExport, error) {
	var rows []models.CorrectionExport

	err := r.db.WithContext(ctx).
		Table("user_corrections AS uc").
		Select(`uc.id AS id,
			uc.original_text AS original_text,
			e.description AS expense_description,
			uc.predicted_category AS predicted_category,
			uc.corrected_category AS corrected_category,
			uc.created_at AS created_at`).
		Joins("LEFT JOIN expenses e ON e.id = uc.expense_id").
		Order("uc.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections for export: %w", err)
	}

	return rows, nil
}
