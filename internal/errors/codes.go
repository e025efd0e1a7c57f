package errors

// ErrorCode identifies an API failure independently of its message
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationInvalidCategory ErrorCode = "VALIDATION_004"
	ValidationPayloadTooLarge ErrorCode = "VALIDATION_005"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound  ErrorCode = "EXPENSE_001"
	ExpenseInvalidID ErrorCode = "EXPENSE_002"
)

const (
	TranscriptionFailed ErrorCode = "TRANSCRIPTION_001"
)

const (
	IngestionPartialFailure ErrorCode = "INGESTION_001"
	IngestionFailed         ErrorCode = "INGESTION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationInvalidCategory: "Category is not part of the expense taxonomy",
	ValidationPayloadTooLarge: "Uploaded audio exceeds the allowed size",

	ExpenseNotFound:  "Expense not found",
	ExpenseInvalidID: "Invalid expense ID format",

	TranscriptionFailed: "Audio could not be transcribed",

	IngestionPartialFailure: "Some expenses could not be saved",
	IngestionFailed:         "No expenses could be saved",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
