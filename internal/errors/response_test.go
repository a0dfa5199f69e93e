package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_DefaultsFromCode() {
	response := NewErrorResponse(BudgetNotFound, s.traceID)

	s.Equal("BUDGET_002", response.Error.Code)
	s.Equal(GetErrorMessage(BudgetNotFound), response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.NotNil(response.Error.Details)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_OptionsApplyInOrder() {
	response := NewErrorResponse(
		LLMUnavailable,
		s.traceID,
		WithMessage("model quota exhausted"),
		WithDetails("retry in 30s", "template budget still available"),
		WithDetails("retry in 60s"),
		WithMessage("model offline"),
	)

	s.Equal("model offline", response.Error.Message)
	s.Equal([]string{"retry in 60s"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortsByField() {
	response := NewValidationError(map[string]string{
		"monthly_income": "must be a non-negative amount with at most 2 decimal places",
		"goals[0]":       "must be a non-empty goal of at most 200 characters",
		"age":            "must be at least 18",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{
		"age: must be at least 18",
		"goals[0]: must be a non-empty goal of at most 200 characters",
		"monthly_income: must be a non-negative amount with at most 2 decimal places",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_NoFields() {
	response := NewValidationError(nil, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := errors.New(`pq: relation "budgets" does not exist`)

	response, returned := WrapSystemError(cause, s.traceID)

	s.Same(cause, returned)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "budgets")
	s.Empty(response.Error.Details)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	cases := map[ErrorCode]int{
		ValidationRequiredField:     http.StatusBadRequest,
		BudgetEmptyMessage:          http.StatusBadRequest,
		AuthExpiredToken:            http.StatusUnauthorized,
		AuthInsufficientPermission:  http.StatusForbidden,
		AnalysisNotFound:            http.StatusNotFound,
		SystemRouteNotFound:         http.StatusNotFound,
		ValidationPayloadSize:       http.StatusRequestEntityTooLarge,
		AnalysisNoValidTransactions: http.StatusUnprocessableEntity,
		ProfileIncomeNeeded:         http.StatusUnprocessableEntity,
		SystemRateLimitExceeded:     http.StatusTooManyRequests,
		LLMCircuitOpen:              http.StatusServiceUnavailable,
		AnalysisTimeout:             http.StatusGatewayTimeout,
		SystemDatabaseError:         http.StatusInternalServerError,
		"NOT_A_CODE":                http.StatusInternalServerError,
	}

	for code, status := range cases {
		s.Run(string(code), func() {
			s.Equal(status, GetHTTPStatus(code))
		})
	}
}

func (s *ResponseTestSuite) TestEveryRegisteredCodeHasAStatus() {
	for code := range errorMessages {
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, "code %s", code)
		s.Less(status, 600, "code %s", code)
	}
}

func (s *ResponseTestSuite) TestIsServerError() {
	s.True(NewErrorResponse(SystemConfigurationError, s.traceID).IsServerError())
	s.True(NewErrorResponse(LLMUnavailable, s.traceID).IsServerError())
	s.False(NewErrorResponse(ProfileNotFound, s.traceID).IsServerError())
	s.False(NewErrorResponse(SystemRateLimitExceeded, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestString() {
	str := NewErrorResponse(ProfileNotFound, s.traceID).String()

	s.Equal("[PROFILE_001] Profile not found (trace: "+s.traceID+")", str)
}

func (s *ResponseTestSuite) TestErrorResponseStructure_MatchesAPIContract() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails("goals: too many entries"))

	raw, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded struct {
		Error map[string]json.RawMessage `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.ElementsMatch([]string{"code", "message", "details", "trace_id"}, keys(decoded.Error))
	s.JSONEq(`["goals: too many entries"]`, string(decoded.Error["details"]))
}

func (s *ResponseTestSuite) TestEmptyDetailsAreOmitted() {
	raw, err := json.Marshal(NewErrorResponse(SystemRouteNotFound, ""))
	s.Require().NoError(err)

	s.JSONEq(`{"error":{"code":"SYSTEM_007","message":"Resource not found","trace_id":""}}`, string(raw))
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
