package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Correction is an immutable record of a user overriding a predicted category.
// Rows are training data and are never updated or deleted.
type Correction struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpenseID         *uuid.UUID `gorm:"type:uuid;index" json:"expense_id,omitempty"`
	OriginalText      *string    `gorm:"type:text" json:"original_text,omitempty"`
	PredictedCategory *string    `gorm:"type:varchar(100)" json:"predicted_category,omitempty"`
	CorrectedCategory string     `gorm:"type:varchar(100);not null" json:"corrected_category"`
	CreatedAt         time.Time  `gorm:"not null;index" json:"created_at"`

	Expense *Expense `gorm:"foreignKey:ExpenseID;constraint:OnDelete:SET NULL" json:"-"`
}

func (c *Correction) TableName() string {
	return "user_corrections"
}

func (c *Correction) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return nil
}

// CorrectionExport is a correction joined with the description of the expense it refers to
type CorrectionExport struct {
	ID                 uuid.UUID
	OriginalText       *string
	ExpenseDescription *string
	PredictedCategory  *string
	CorrectedCategory  string
	CreatedAt          time.Time
}

// InputText returns the text the prediction was based on, falling back to the expense description
func (c CorrectionExport) InputText() string {
	if c.OriginalText != nil && *c.OriginalText != "" {
		return *c.OriginalText
	}
	if c.ExpenseDescription != nil {
		return *c.ExpenseDescription
	}
	return ""
}

// CorrectionRequest is a user's request to re-label one expense
type CorrectionRequest struct {
	ExpenseID         uuid.UUID
	CorrectedCategory string
	OriginalText      *string
	PredictedCategory *string
}
