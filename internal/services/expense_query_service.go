package services

import (
	"context"
	"fmt"
	"time"

	"expense-capture/internal/aggregation"
	"expense-capture/internal/models"
	"expense-capture/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseQueryService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	location    *time.Location
}

// NewExpenseQueryService buckets monthly summaries in loc
func NewExpenseQueryService(expenseRepo repositories.ExpenseRepositoryInterface, loc *time.Location) ExpenseQueryServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &ExpenseQueryService{
		expenseRepo: expenseRepo,
		location:    loc,
	}
}

// ListExpenses returns the user's expenses newest first together with their sum
func (s *ExpenseQueryService) ListExpenses(ctx context.Context, filters models.ExpenseFilters) ([]*models.Expense, decimal.Decimal, error) {
	if filters.UserID == uuid.Nil {
		return nil, decimal.Zero, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if filters.Category != "" && !models.IsValidCategory(filters.Category) {
		return nil, decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCategory, filters.Category)
	}

	expenses, err := s.expenseRepo.ListByUser(ctx, filters)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return expenses, total, nil
}

// MonthlySummary rebuilds the month -> category rollups from every stored expense
func (s *ExpenseQueryService) MonthlySummary(ctx context.Context, userID uuid.UUID) ([]aggregation.MonthSummary, error) {
	expenses, _, err := s.ListExpenses(ctx, models.ExpenseFilters{UserID: userID})
	if err != nil {
		return nil, err
	}

	store := aggregation.NewStore(aggregation.WithLocation(s.location))
	store.Recompute(expenses)

	return store.Summaries(), nil
}
