package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"expense-capture/internal/dto"
	"expense-capture/internal/errors"
	"expense-capture/internal/models"
	"expense-capture/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CorrectionHandler struct {
	corrections services.CorrectionServiceInterface
}

func NewCorrectionHandler(corrections services.CorrectionServiceInterface) *CorrectionHandler {
	return &CorrectionHandler{corrections: corrections}
}

// CorrectExpense handles POST /correct-expense
func (h *CorrectionHandler) CorrectExpense(c echo.Context) error {
	var req dto.CorrectExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	expenseID, err := uuid.Parse(req.ExpenseID)
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	_, err = h.corrections.CorrectExpense(requestContext(c), models.CorrectionRequest{
		ExpenseID:         expenseID,
		CorrectedCategory: req.CorrectedCategory,
		OriginalText:      req.OriginalText,
		PredictedCategory: req.PredictedCategory,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrExpenseNotFound):
			return SendError(c, errors.ExpenseNotFound)
		case stderrors.Is(err, services.ErrInvalidCategory):
			return SendError(c, errors.ValidationInvalidCategory, errors.WithDetails(req.CorrectedCategory))
		case stderrors.Is(err, services.ErrInvalidInput):
			return SendError(c, errors.ExpenseInvalidID)
		default:
			slog.ErrorContext(c.Request().Context(), "failed to correct expense",
				slog.String("expense_id", expenseID.String()),
				slog.String("error", err.Error()),
			)
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.CorrectExpenseResponse{Success: true})
}

// ListCorrections handles GET /corrections, the training data export
func (h *CorrectionHandler) ListCorrections(c echo.Context) error {
	rows, err := h.corrections.ExportCorrections(requestContext(c))
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to export corrections",
			slog.String("error", err.Error()),
		)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCorrectionsResponse(rows))
}

// CorrectionHistory handles GET /expenses/:id/corrections
func (h *CorrectionHandler) CorrectionHistory(c echo.Context) error {
	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil || expenseID == uuid.Nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	history, err := h.corrections.CorrectionHistory(requestContext(c), expenseID)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrExpenseNotFound):
			return SendError(c, errors.ExpenseNotFound)
		case stderrors.Is(err, services.ErrInvalidInput):
			return SendError(c, errors.ExpenseInvalidID)
		default:
			slog.ErrorContext(c.Request().Context(), "failed to load correction history",
				slog.String("expense_id", expenseID.String()),
				slog.String("error", err.Error()),
			)
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewCorrectionHistoryResponse(expenseID, history))
}
