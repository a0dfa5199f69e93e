package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationPayloadSize   ErrorCode = "VALIDATION_005"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound     ErrorCode = "PROFILE_001"
	ProfileInvalidID    ErrorCode = "PROFILE_002"
	ProfileInvalidData  ErrorCode = "PROFILE_003"
	ProfileIncomeNeeded ErrorCode = "PROFILE_004"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisNoValidTransactions ErrorCode = "ANALYSIS_001"
	AnalysisNotFound            ErrorCode = "ANALYSIS_002"
	AnalysisTimeout             ErrorCode = "ANALYSIS_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetGenerationFailed ErrorCode = "BUDGET_001"
	BudgetNotFound         ErrorCode = "BUDGET_002"
	BudgetEmptyMessage     ErrorCode = "BUDGET_003"
)

// LLM error codes (LLM_*)
const (
	LLMUnavailable ErrorCode = "LLM_001"
	LLMCircuitOpen ErrorCode = "LLM_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Token does not grant access to this profile",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationPayloadSize:   "Uploaded statement is too large",

	ProfileNotFound:     "Profile not found",
	ProfileInvalidID:    "Invalid profile ID format",
	ProfileInvalidData:  "Profile data is invalid",
	ProfileIncomeNeeded: "Monthly income is unknown; add it to the profile or upload a statement first",

	AnalysisNoValidTransactions: "No valid transactions found in the statement",
	AnalysisNotFound:            "No expense analysis exists for this profile",
	AnalysisTimeout:             "Expense analysis timed out",

	BudgetGenerationFailed: "Budget could not be generated",
	BudgetNotFound:         "No budget exists for this profile",
	BudgetEmptyMessage:     "Chat message is required",

	LLMUnavailable: "Language model is unavailable",
	LLMCircuitOpen: "Language model calls are paused after repeated failures",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
