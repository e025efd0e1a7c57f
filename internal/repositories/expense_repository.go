package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-capture/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts a single expense. Batches are persisted one call at a time by the caller.
func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	expense := &models.Expense{}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// UpdateCategory changes only the category column. Amount and occurred_at are left alone.
func (r *expenseRepository) UpdateCategory(ctx context.Context, id uuid.UUID, category string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"category":   category,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update expense category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// ListByUser returns the user's expenses newest first, optionally restricted to one category
func (r *expenseRepository) ListByUser(ctx context.Context, filters models.ExpenseFilters) ([]*models.Expense, error) {
	var expenses []*models.Expense

	query := r.db.WithContext(ctx).Where("user_id = ?", filters.UserID)
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if err := query.Order("occurred_at DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}
