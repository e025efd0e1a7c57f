package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ExpenseModelTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *ExpenseModelTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.AutoMigrate(&Expense{}, &Correction{}))

	s.db = db
}

func (s *ExpenseModelTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestExpenseModelTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseModelTestSuite))
}

func (s *ExpenseModelTestSuite) TestBeforeCreate_FillsDefaults() {
	expense := &Expense{
		UserID:      uuid.New(),
		Amount:      decimal.NewFromFloat(12.5),
		Category:    CategoryFood,
		Description: gofakeit.Sentence(3),
	}

	s.Require().NoError(s.db.Create(expense).Error)

	s.NotEqual(uuid.Nil, expense.ID)
	s.Equal(DefaultCurrency, expense.Currency)
	s.Equal(ExpenseSourceText, expense.Source)
	s.False(expense.OccurredAt.IsZero())
	s.False(expense.CreatedAt.IsZero())
	s.Empty(expense.AudioURL())
}

func (s *ExpenseModelTestSuite) TestBeforeCreate_KeepsProvidedValues() {
	id := uuid.New()
	occurredAt := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC)
	audio := "/audio/audio-1700000000000-7.m4a"
	expense := &Expense{
		ID:          id,
		UserID:      uuid.New(),
		Amount:      decimal.NewFromInt(8),
		Currency:    "EUR",
		Category:    CategoryTransport,
		Description: "metro",
		Source:      ExpenseSourceVoice,
		AudioPath:   &audio,
		OccurredAt:  occurredAt,
	}

	s.Require().NoError(s.db.Create(expense).Error)

	var stored Expense
	s.Require().NoError(s.db.First(&stored, "id = ?", id).Error)
	s.Equal("EUR", stored.Currency)
	s.Equal(ExpenseSourceVoice, stored.Source)
	s.Equal(audio, stored.AudioURL())
	s.True(occurredAt.Equal(stored.OccurredAt))
}

func (s *ExpenseModelTestSuite) TestBeforeCreate_RejectsInvalid() {
	testCases := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr error
	}{
		{name: "missing user", mutate: func(e *Expense) { e.UserID = uuid.Nil }, wantErr: ErrExpenseUserRequired},
		{name: "negative amount", mutate: func(e *Expense) { e.Amount = decimal.NewFromInt(-1) }, wantErr: ErrNegativeAmount},
		{name: "unknown category", mutate: func(e *Expense) { e.Category = "Groceries" }, wantErr: ErrInvalidExpenseCategory},
		{name: "empty description", mutate: func(e *Expense) { e.Description = "" }, wantErr: ErrDescriptionRequired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			expense := &Expense{
				UserID:      uuid.New(),
				Amount:      decimal.NewFromInt(3),
				Category:    CategoryMisc,
				Description: "coffee",
			}
			tc.mutate(expense)

			err := s.db.Create(expense).Error
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *ExpenseModelTestSuite) TestZeroAmountIsAllowed() {
	expense := &Expense{
		UserID:      uuid.New(),
		Amount:      decimal.Zero,
		Category:    CategoryMisc,
		Description: UnknownExpenseTitle,
	}

	s.NoError(s.db.Create(expense).Error)
}

func (s *ExpenseModelTestSuite) TestCorrection_BeforeCreate() {
	expenseID := uuid.New()
	correction := &Correction{
		UserID:            uuid.New(),
		ExpenseID:         &expenseID,
		CorrectedCategory: CategoryFood,
	}

	s.Require().NoError(s.db.Create(correction).Error)

	s.NotEqual(uuid.Nil, correction.ID)
	s.False(correction.CreatedAt.IsZero())
	s.Equal("user_corrections", correction.TableName())
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, IsValidCategory(category), category)
	}

	for _, category := range []string{"", "food", "FOOD", "Groceries", "Misc "} {
		assert.False(t, IsValidCategory(category), category)
	}

	assert.Len(t, AllCategories(), 9)
	assert.Equal(t, CategoryMisc, AllCategories()[len(AllCategories())-1])
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitBreakerState(0).String())
	assert.Equal(t, "open", CircuitBreakerState(1).String())
	assert.Equal(t, "half_open", CircuitBreakerState(2).String())
	assert.Equal(t, "unknown", CircuitBreakerState(7).String())
}

func TestCorrectionExport_InputText(t *testing.T) {
	original := "uber 18"
	empty := ""
	description := "Ride home"

	assert.Equal(t, original, CorrectionExport{OriginalText: &original, ExpenseDescription: &description}.InputText())
	assert.Equal(t, description, CorrectionExport{OriginalText: &empty, ExpenseDescription: &description}.InputText())
	assert.Equal(t, "", CorrectionExport{}.InputText())
}

func TestIngestionResult_Partition(t *testing.T) {
	saved := &Expense{ID: uuid.New()}
	result := &IngestionResult{Items: []ItemResult{
		{Index: 0, Expense: saved},
		{Index: 1, Err: assert.AnError},
		{Index: 2, Expense: &Expense{ID: uuid.New()}},
	}}

	require.Len(t, result.Succeeded(), 2)
	assert.Equal(t, saved, result.Succeeded()[0])
	require.Len(t, result.Failed(), 1)
	assert.Equal(t, 1, result.Failed()[0].Index)
	assert.ErrorIs(t, result.Err(), assert.AnError)

	assert.NoError(t, (&IngestionResult{Items: []ItemResult{{Expense: saved}}}).Err())
}
