package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var codesByPrefix = map[string][]ErrorCode{
	"AUTH_": {
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		AuthInsufficientPermission,
	},
	"VALIDATION_": {
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationPayloadSize,
	},
	"PROFILE_": {
		ProfileNotFound,
		ProfileInvalidID,
		ProfileInvalidData,
		ProfileIncomeNeeded,
	},
	"ANALYSIS_": {
		AnalysisNoValidTransactions,
		AnalysisNotFound,
		AnalysisTimeout,
	},
	"BUDGET_": {
		BudgetGenerationFailed,
		BudgetNotFound,
		BudgetEmptyMessage,
	},
	"LLM_": {
		LLMUnavailable,
		LLMCircuitOpen,
	},
	"SYSTEM_": {
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	},
}

func allCodes() []ErrorCode {
	var codes []ErrorCode
	for _, group := range codesByPrefix {
		codes = append(codes, group...)
	}
	return codes
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Auth Missing Token", AuthMissingToken, "Authorization token is required"},
		{"Validation General", ValidationGeneral, "Validation failed"},
		{"Profile Not Found", ProfileNotFound, "Profile not found"},
		{"No Valid Transactions", AnalysisNoValidTransactions, "No valid transactions found in the statement"},
		{"Budget Not Found", BudgetNotFound, "No budget exists for this profile"},
		{"System Internal Error", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
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

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	for _, code := range []ErrorCode{"INVALID_001", "UNKNOWN_CODE", "", "AUTH_999", "PAYMENT_001"} {
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
	s.Len(seen, len(errorMessages), "every registered code should be listed in the test")
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	for prefix, codes := range codesByPrefix {
		s.Run(prefix, func() {
			for _, code := range codes {
				s.True(strings.HasPrefix(string(code), prefix), "Error code %s should start with %s", code, prefix)
			}
		})
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code))
			message := GetErrorMessage(code)
			s.NotEmpty(message)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}
