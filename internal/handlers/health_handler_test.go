package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-capture/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Healthy(t *testing.T) {
	db := database.SetupTestDB(t)
	handler := NewHealthCheckHandler(db.DB)
	handler.now = func() time.Time { return time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC) }

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2024-06-01T08:00:00Z", body["time"])
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := database.SetupTestDB(t)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-health")

	require.NoError(t, NewHealthCheckHandler(db.DB).HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SYSTEM_003", resp.Error.Code)
	assert.Equal(t, "trace-health", resp.Error.TraceID)
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e, NewExpenseHandler(nil, nil), NewCorrectionHandler(nil), NewHealthCheckHandler(nil))

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /parse-expense",
		"POST /parse-audio",
		"GET /expenses",
		"GET /expenses/summary",
		"POST /correct-expense",
		"GET /corrections",
		"GET /expenses/:id/corrections",
	} {
		assert.True(t, registered[want], want)
	}
}
