package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationInvalidCategory,
		ValidationPayloadTooLarge,
		ExpenseNotFound,
		ExpenseInvalidID,
		TranscriptionFailed,
		IngestionPartialFailure,
		IngestionFailed,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "Invalid Category", code: ValidationInvalidCategory, expected: "Category is not part of the expense taxonomy"},
		{name: "Expense Not Found", code: ExpenseNotFound, expected: "Expense not found"},
		{name: "Transcription Failed", code: TranscriptionFailed, expected: "Audio could not be transcribed"},
		{name: "Partial Ingestion", code: IngestionPartialFailure, expected: "Some expenses could not be saved"},
		{name: "System Internal Error", code: SystemInternalError, expected: "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	for _, code := range []ErrorCode{"INVALID_001", "UNKNOWN_CODE", "", "EXPENSE_999"} {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
	s.Len(seen, len(errorMessages))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"VALIDATION_", "EXPENSE_", "TRANSCRIPTION_", "INGESTION_", "SYSTEM_"}

	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "Code %s has no known prefix", code)
	}
}
