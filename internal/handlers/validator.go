package handlers

import (
	"expense-capture/internal/validation"

	"github.com/labstack/echo/v4"
)

// NewValidator returns the shared request validator, which knows the expense_category tag
func NewValidator() echo.Validator {
	return validation.GetValidator()
}
