package dto

import (
	"time"

	"expense-capture/internal/models"

	"github.com/google/uuid"
)

// CorrectExpenseRequest is the body of POST /correct-expense
type CorrectExpenseRequest struct {
	ExpenseID         string  `json:"expense_id" validate:"required,uuid"`
	CorrectedCategory string  `json:"corrected_category" validate:"required,expense_category"`
	OriginalText      *string `json:"original_text,omitempty"`
	PredictedCategory *string `json:"predicted_category,omitempty"`
}

type CorrectExpenseResponse struct {
	Success bool `json:"success"`
}

// CorrectionExportItem is one training example
type CorrectionExportItem struct {
	ID                uuid.UUID `json:"id"`
	InputText         string    `json:"input_text"`
	PredictedCategory *string   `json:"predicted_category"`
	CorrectCategory   string    `json:"correct_category"`
	Timestamp         time.Time `json:"timestamp"`
}

type CorrectionsResponse struct {
	Total       int                    `json:"total"`
	Corrections []CorrectionExportItem `json:"corrections"`
}

// CorrectionHistoryItem is one correction of a single expense
type CorrectionHistoryItem struct {
	ID                uuid.UUID `json:"id"`
	OriginalText      *string   `json:"original_text"`
	PredictedCategory *string   `json:"predicted_category"`
	CorrectedCategory string    `json:"corrected_category"`
	Timestamp         time.Time `json:"timestamp"`
}

type CorrectionHistoryResponse struct {
	ExpenseID   uuid.UUID               `json:"expense_id"`
	Total       int                     `json:"total"`
	Corrections []CorrectionHistoryItem `json:"corrections"`
}

func NewCorrectionHistoryResponse(expenseID uuid.UUID, history []models.Correction) CorrectionHistoryResponse {
	items := make([]CorrectionHistoryItem, 0, len(history))
	for _, c := range history {
		items = append(items, CorrectionHistoryItem{
			ID:                c.ID,
			OriginalText:      c.OriginalText,
			PredictedCategory: c.PredictedCategory,
			CorrectedCategory: c.CorrectedCategory,
			Timestamp:         c.CreatedAt,
		})
	}

	return CorrectionHistoryResponse{
		ExpenseID:   expenseID,
		Total:       len(items),
		Corrections: items,
	}
}

func NewCorrectionsResponse(rows []models.CorrectionExport) CorrectionsResponse {
	items := make([]CorrectionExportItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CorrectionExportItem{
			ID:                row.ID,
			InputText:         row.InputText(),
			PredictedCategory: row.PredictedCategory,
			CorrectCategory:   row.CorrectedCategory,
			Timestamp:         row.CreatedAt,
		})
	}

	return CorrectionsResponse{
		Total:       len(items),
		Corrections: items,
	}
}
