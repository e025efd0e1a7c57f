package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"expense-capture/internal/dto"
	"expense-capture/internal/errors"
	"expense-capture/internal/models"
	"expense-capture/internal/services"

	"github.com/labstack/echo/v4"
)

const allExpensesLabel = "All Expenses"

// ExpenseHandler serves the capture endpoints and the expense read side
type ExpenseHandler struct {
	ingestion services.IngestionServiceInterface
	queries   services.ExpenseQueryServiceInterface
}

func NewExpenseHandler(
	ingestion services.IngestionServiceInterface,
	queries services.ExpenseQueryServiceInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		ingestion: ingestion,
		queries:   queries,
	}
}

// ParseExpense handles POST /parse-expense
func (h *ExpenseHandler) ParseExpense(c echo.Context) error {
	var req dto.ParseExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	userID, ok := parseUserID(req.UserID)
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("userId: must be a valid UUID"))
	}

	result, err := h.ingestion.IngestText(requestContext(c), userID, req.Text)
	if err != nil {
		return h.sendIngestionError(c, err)
	}

	return h.respondIngestion(c, result)
}

// ParseAudio handles POST /parse-audio with a multipart "audio" file and "userId" field
func (h *ExpenseHandler) ParseAudio(c echo.Context) error {
	userID, ok := parseUserID(c.FormValue("userId"))
	if !ok {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("userId: must be a valid UUID"))
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("audio: is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("audio: could not be read"))
	}
	defer file.Close()

	result, err := h.ingestion.IngestAudio(requestContext(c), userID, file, fileHeader.Filename)
	if err != nil {
		return h.sendIngestionError(c, err)
	}

	return h.respondIngestion(c, result)
}

// ListExpenses handles GET /expenses?user_id=&category=
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	var req dto.ListExpensesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	userID, ok := parseUserID(req.UserID)
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("user_id: must be a valid UUID"))
	}

	expenses, total, err := h.queries.ListExpenses(requestContext(c), models.ExpenseFilters{
		UserID:   userID,
		Category: req.Category,
	})
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to list expenses",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return SendSystemError(c, err)
	}

	label := req.Category
	if label == "" {
		label = allExpensesLabel
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Category: label,
		Total:    total,
		Expenses: dto.NewExpenseResponses(expenses),
	})
}

// Summary handles GET /expenses/summary?user_id=
func (h *ExpenseHandler) Summary(c echo.Context) error {
	var req dto.SummaryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	userID, ok := parseUserID(req.UserID)
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("user_id: must be a valid UUID"))
	}

	summaries, err := h.queries.MonthlySummary(requestContext(c), userID)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to build monthly summary",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return SendSystemError(c, err)
	}

	months := make([]dto.MonthSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		months = append(months, dto.MonthSummaryResponse{
			Month:      summary.Key.String(),
			Total:      summary.Data.Total,
			Categories: summary.Data.Categories,
		})
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{Months: months})
}

// respondIngestion picks the status from the per-item outcome: 200 when every item was
// saved, 207 when some were, INGESTION_002 when none were.
func (h *ExpenseHandler) respondIngestion(c echo.Context, result *models.IngestionResult) error {
	response := dto.NewParseExpenseResponse(result)
	failed := result.Failed()

	switch {
	case len(failed) == 0:
		return c.JSON(http.StatusOK, response)
	case len(response.Expenses) > 0:
		return c.JSON(errors.GetHTTPStatus(errors.IngestionPartialFailure), response)
	default:
		slog.ErrorContext(c.Request().Context(), "no expense could be saved",
			slog.Int("failed", len(failed)),
			slog.String("error", result.Err().Error()),
			slog.String("client_ip", getClientIP(c)),
		)
		return SendError(c, errors.IngestionFailed)
	}
}

func (h *ExpenseHandler) sendIngestionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidInput):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrAudioTooLarge):
		return SendError(c, errors.ValidationPayloadTooLarge)
	case stderrors.Is(err, services.ErrTranscriptionFailed):
		return SendError(c, errors.TranscriptionFailed)
	default:
		slog.ErrorContext(c.Request().Context(), "ingestion failed",
			slog.String("error", err.Error()),
			slog.String("client_ip", getClientIP(c)),
		)
		return SendSystemError(c, err)
	}
}
