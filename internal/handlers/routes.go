package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the API on e. Static audio and /metrics are mounted by the server.
func RegisterRoutes(e *echo.Echo, expenses *ExpenseHandler, corrections *CorrectionHandler, health *HealthCheckHandler) {
	e.GET("/health", health.HealthCheck)

	e.POST("/parse-expense", expenses.ParseExpense)
	e.POST("/parse-audio", expenses.ParseAudio)
	e.GET("/expenses", expenses.ListExpenses)
	e.GET("/expenses/summary", expenses.Summary)

	e.POST("/correct-expense", corrections.CorrectExpense)
	e.GET("/corrections", corrections.ListCorrections)
	e.GET("/expenses/:id/corrections", corrections.CorrectionHistory)
}
