package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExpenseSourceText  = "text"
	ExpenseSourceVoice = "voice"

	DefaultCurrency = "USD"
)

var (
	ErrExpenseUserRequired    = errors.New("expense user ID is required")
	ErrNegativeAmount         = errors.New("expense amount must not be negative")
	ErrInvalidExpenseCategory = errors.New("expense category is not part of the taxonomy")
	ErrDescriptionRequired    = errors.New("expense description is required")
)

// Expense is a single spending event captured from text or voice
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"expense_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Description string          `gorm:"type:text" json:"title"`
	Source      string          `gorm:"type:varchar(10);not null;default:'text'" json:"source"`
	AudioPath   *string         `gorm:"type:text" json:"audio_path,omitempty"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *Expense) TableName() string {
	return "expenses"
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	if e.Source == "" {
		e.Source = ExpenseSourceText
	}

	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrExpenseUserRequired
	}

	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !IsValidCategory(e.Category) {
		return ErrInvalidExpenseCategory
	}

	if e.Description == "" {
		return ErrDescriptionRequired
	}

	return nil
}

// AudioURL returns the public audio reference or an empty string for text expenses
func (e *Expense) AudioURL() string {
	if e.AudioPath == nil {
		return ""
	}
	return *e.AudioPath
}

// ExpenseFilters contains filtering options for expense queries
type ExpenseFilters struct {
	UserID   uuid.UUID
	Category string
}
