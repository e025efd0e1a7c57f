package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"expense-capture/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the expense rules and json field names
type Validator struct {
	validate *validator.Validate
}

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FormatErrors turns validator errors into "field: message" details.
// It returns nil when err is not a validation error.
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "expense_category":
		return fmt.Sprintf("must be one of %s", strings.Join(models.AllCategories(), ", "))
	case "currency_code":
		return "must be a three letter ISO currency code"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validateExpenseCategory accepts exact taxonomy members only. Aliases are resolved by
// the category matcher during extraction, never at the API boundary.
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}
