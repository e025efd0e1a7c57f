package repositories

import (
	"context"
	"testing"
	"time"

	"expense-capture/internal/database"
	"expense-capture/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseRepository(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

type ExpenseRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   ExpenseRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExpenseRepositorySuite) newExpense(category string, occurredAt time.Time) *models.Expense {
	return &models.Expense{
		UserID:      s.userID,
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 200)).Round(2),
		Category:    category,
		Description: gofakeit.ProductName(),
		OccurredAt:  occurredAt,
	}
}

func (s *ExpenseRepositorySuite) TestCreate_AssignsDefaults() {
	expense := s.newExpense(models.CategoryFood, time.Time{})

	err := s.repo.Create(s.ctx, expense)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, expense.ID)
	s.Equal(models.DefaultCurrency, expense.Currency)
	s.Equal(models.ExpenseSourceText, expense.Source)
	s.False(expense.OccurredAt.IsZero())
}

func (s *ExpenseRepositorySuite) TestCreate_RejectsInvalidCategory() {
	expense := s.newExpense("Groceries", time.Now())

	err := s.repo.Create(s.ctx, expense)

	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidExpenseCategory)
}

func (s *ExpenseRepositorySuite) TestCreate_RejectsNegativeAmount() {
	expense := s.newExpense(models.CategoryFood, time.Now())
	expense.Amount = decimal.NewFromInt(-5)

	err := s.repo.Create(s.ctx, expense)

	s.ErrorIs(err, models.ErrNegativeAmount)
}

func (s *ExpenseRepositorySuite) TestGetByID() {
	created := database.CreateTestExpense(s.T(), s.db, s.userID, 20, models.CategoryFood, time.Now().UTC())

	found, err := s.repo.GetByID(s.ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal(s.userID, found.UserID)
	s.True(decimal.NewFromInt(20).Equal(found.Amount))
}

func (s *ExpenseRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())

	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestUpdateCategory_OnlyTouchesCategory() {
	occurredAt := time.Date(2026, time.January, 12, 9, 30, 0, 0, time.UTC)
	created := database.CreateTestExpense(s.T(), s.db, s.userID, 12.5, models.CategoryFood, occurredAt)

	err := s.repo.UpdateCategory(s.ctx, created.ID, models.CategoryTransport)
	s.Require().NoError(err)

	found, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(models.CategoryTransport, found.Category)
	s.True(created.Amount.Equal(found.Amount))
	s.True(occurredAt.Equal(found.OccurredAt))
	s.Equal(created.Description, found.Description)
}

func (s *ExpenseRepositorySuite) TestUpdateCategory_NotFound() {
	err := s.repo.UpdateCategory(s.ctx, uuid.New(), models.CategoryFood)

	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestListByUser_NewestFirst() {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	oldest := database.CreateTestExpense(s.T(), s.db, s.userID, 5, models.CategoryFood, base)
	newest := database.CreateTestExpense(s.T(), s.db, s.userID, 7, models.CategoryBills, base.Add(48*time.Hour))
	middle := database.CreateTestExpense(s.T(), s.db, s.userID, 9, models.CategoryFood, base.Add(24*time.Hour))
	database.CreateTestExpense(s.T(), s.db, uuid.New(), 100, models.CategoryFood, base)

	expenses, err := s.repo.ListByUser(s.ctx, models.ExpenseFilters{UserID: s.userID})

	s.Require().NoError(err)
	s.Require().Len(expenses, 3)
	s.Equal(newest.ID, expenses[0].ID)
	s.Equal(middle.ID, expenses[1].ID)
	s.Equal(oldest.ID, expenses[2].ID)
}

func (s *ExpenseRepositorySuite) TestListByUser_FilterByCategory() {
	now := time.Now().UTC()
	database.CreateTestExpense(s.T(), s.db, s.userID, 5, models.CategoryFood, now)
	database.CreateTestExpense(s.T(), s.db, s.userID, 7, models.CategoryBills, now)

	expenses, err := s.repo.ListByUser(s.ctx, models.ExpenseFilters{UserID: s.userID, Category: models.CategoryBills})

	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal(models.CategoryBills, expenses[0].Category)
}

func (s *ExpenseRepositorySuite) TestListByUser_Empty() {
	expenses, err := s.repo.ListByUser(s.ctx, models.ExpenseFilters{UserID: s.userID})

	s.NoError(err)
	s.Empty(expenses)
}
