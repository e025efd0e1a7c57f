package handlers

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-capture/internal/dto"
	"expense-capture/internal/models"
	"expense-capture/internal/services"
	"expense-capture/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CorrectionHandlerTestSuite struct {
	suite.Suite
	echo           *echo.Echo
	ctrl           *gomock.Controller
	mockCorrection *service_mocks.MockCorrectionServiceInterface
	handler        *CorrectionHandler
}

func TestCorrectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CorrectionHandlerTestSuite))
}

func (s *CorrectionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockCorrection = service_mocks.NewMockCorrectionServiceInterface(s.ctrl)
	s.handler = NewCorrectionHandler(s.mockCorrection)
}

func (s *CorrectionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CorrectionHandlerTestSuite) post(body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/correct-expense", bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *CorrectionHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *CorrectionHandlerTestSuite) TestCorrectExpense_Success() {
	expenseID := uuid.New()
	originalText := "20 dollars for lunch"
	predicted := models.CategoryMisc

	s.mockCorrection.EXPECT().
		CorrectExpense(gomock.Any(), models.CorrectionRequest{
			ExpenseID:         expenseID,
			CorrectedCategory: models.CategoryFood,
			OriginalText:      &originalText,
			PredictedCategory: &predicted,
		}).
		Return(&models.Expense{ID: expenseID, Category: models.CategoryFood}, nil)

	c, rec := s.post(dto.CorrectExpenseRequest{
		ExpenseID:         expenseID.String(),
		CorrectedCategory: models.CategoryFood,
		OriginalText:      &originalText,
		PredictedCategory: &predicted,
	})

	s.Require().NoError(s.handler.CorrectExpense(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true}`, rec.Body.String())
}

func (s *CorrectionHandlerTestSuite) TestCorrectExpense_NotFound() {
	s.mockCorrection.EXPECT().
		CorrectExpense(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrExpenseNotFound)

	c, rec := s.post(map[string]string{
		"expense_id":         uuid.NewString(),
		"corrected_category": models.CategoryTravel,
	})

	s.Require().NoError(s.handler.CorrectExpense(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("EXPENSE_001", s.errorCode(rec))
}

func (s *CorrectionHandlerTestSuite) TestCorrectExpense_InvalidRequests() {
	testCases := []struct {
		name string
		body map[string]string
	}{
		{name: "missing id", body: map[string]string{"corrected_category": models.CategoryFood}},
		{name: "malformed id", body: map[string]string{"expense_id": "42", "corrected_category": models.CategoryFood}},
		{name: "missing category", body: map[string]string{"expense_id": uuid.NewString()}},
		{name: "lowercase category", body: map[string]string{"expense_id": uuid.NewString(), "corrected_category": "food"}},
		{name: "alias category", body: map[string]string{"expense_id": uuid.NewString(), "corrected_category": "Groceries"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.post(tc.body)

			s.Require().NoError(s.handler.CorrectExpense(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", s.errorCode(rec))
		})
	}
}

func (s *CorrectionHandlerTestSuite) TestCorrectExpense_AuditFailureIsServerError() {
	expenseID := uuid.New()
	s.mockCorrection.EXPECT().
		CorrectExpense(gomock.Any(), gomock.Any()).
		Return(&models.Expense{ID: expenseID}, stderrors.New("failed to record correction: disk full"))

	c, rec := s.post(map[string]string{
		"expense_id":         expenseID.String(),
		"corrected_category": models.CategoryHealth,
	})

	s.Require().NoError(s.handler.CorrectExpense(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
	s.NotContains(rec.Body.String(), "disk full")
}

func (s *CorrectionHandlerTestSuite) TestListCorrections() {
	original := "uber home 18"
	predicted := models.CategoryMisc
	createdAt := time.Date(2024, time.May, 2, 9, 30, 0, 0, time.UTC)
	rows := []models.CorrectionExport{
		{
			ID:                uuid.New(),
			OriginalText:      &original,
			PredictedCategory: &predicted,
			CorrectedCategory: models.CategoryTransport,
			CreatedAt:         createdAt,
		},
	}
	s.mockCorrection.EXPECT().ExportCorrections(gomock.Any()).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/corrections", nil)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.handler.ListCorrections(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CorrectionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
	s.Equal(original, resp.Corrections[0].InputText)
	s.Equal(models.CategoryTransport, resp.Corrections[0].CorrectCategory)
	s.Require().NotNil(resp.Corrections[0].PredictedCategory)
	s.Equal(models.CategoryMisc, *resp.Corrections[0].PredictedCategory)
	s.True(createdAt.Equal(resp.Corrections[0].Timestamp))
}

func (s *CorrectionHandlerTestSuite) TestListCorrections_Error() {
	s.mockCorrection.EXPECT().ExportCorrections(gomock.Any()).Return(nil, stderrors.New("timeout"))

	req := httptest.NewRequest(http.MethodGet, "/corrections", nil)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.handler.ListCorrections(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *CorrectionHandlerTestSuite) history(id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/expenses/"+id+"/corrections", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/expenses/:id/corrections")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *CorrectionHandlerTestSuite) TestCorrectionHistory_Success() {
	expenseID := uuid.New()
	original := "uber 18"
	createdAt := time.Date(2024, time.May, 3, 10, 0, 0, 0, time.UTC)
	s.mockCorrection.EXPECT().CorrectionHistory(gomock.Any(), expenseID).Return([]models.Correction{
		{ID: uuid.New(), ExpenseID: &expenseID, OriginalText: &original, CorrectedCategory: models.CategoryTransport, CreatedAt: createdAt},
	}, nil)

	c, rec := s.history(expenseID.String())
	s.Require().NoError(s.handler.CorrectionHistory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CorrectionHistoryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(expenseID, resp.ExpenseID)
	s.Equal(1, resp.Total)
	s.Nil(resp.Corrections[0].PredictedCategory)
	s.Equal(models.CategoryTransport, resp.Corrections[0].CorrectedCategory)
	s.True(createdAt.Equal(resp.Corrections[0].Timestamp))
}

func (s *CorrectionHandlerTestSuite) TestCorrectionHistory_Errors() {
	expenseID := uuid.New()

	c, rec := s.history("not-a-uuid")
	s.Require().NoError(s.handler.CorrectionHistory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("EXPENSE_002", s.errorCode(rec))

	s.mockCorrection.EXPECT().CorrectionHistory(gomock.Any(), expenseID).Return(nil, services.ErrExpenseNotFound)
	c, rec = s.history(expenseID.String())
	s.Require().NoError(s.handler.CorrectionHistory(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("EXPENSE_001", s.errorCode(rec))

	s.mockCorrection.EXPECT().CorrectionHistory(gomock.Any(), expenseID).Return(nil, stderrors.New("timeout"))
	c, rec = s.history(expenseID.String())
	s.Require().NoError(s.handler.CorrectionHistory(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
