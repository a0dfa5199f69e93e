package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	finnerrors "finn-budget/internal/errors"
	"finn-budget/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, finnerrors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/abc/chat", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/profiles/:id/chat")
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)

	var body finnerrors.ErrorResponse
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoErrorKeepsStatusAndMessage() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "no such page"), "trace-1")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal("no such page", body.Error.Message)
	s.Equal("trace-1", body.Error.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestWrappedEchoErrorIsRecognised() {
	err := fmt.Errorf("binding statement: %w", echo.NewHTTPError(http.StatusRequestEntityTooLarge))

	rec, body := s.handle(err, "trace-2")

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal("VALIDATION_005", body.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestStatusToCodeMapping() {
	cases := map[int]string{
		http.StatusBadRequest:          "VALIDATION_001",
		http.StatusUnauthorized:        "AUTH_001",
		http.StatusForbidden:           "AUTH_004",
		http.StatusMethodNotAllowed:    "VALIDATION_001",
		http.StatusTooManyRequests:     "SYSTEM_006",
		http.StatusInternalServerError: "SYSTEM_001",
		http.StatusServiceUnavailable:  "SYSTEM_003",
		http.StatusTeapot:              "SYSTEM_005",
	}

	for status, code := range cases {
		s.Run(http.StatusText(status), func() {
			rec, body := s.handle(echo.NewHTTPError(status), "trace-3")
			s.Equal(status, rec.Code)
			s.Equal(code, body.Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestPlainErrorBecomesSystemError() {
	rec, body := s.handle(fmt.Errorf("failed to save budget: connection reset"), "trace-4")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.NotContains(body.Error.Message, "connection reset")
	s.Equal("trace-4", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestMissingTraceIDIsEmpty() {
	_, body := s.handle(fmt.Errorf("boom"), "")

	s.Equal("", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(fmt.Errorf("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCountsErrorsByCodeAndRoute() {
	counter := apiErrorsTotal.WithLabelValues("SYSTEM_006", "/api/v1/profiles/:id/chat", "429")
	before := testutil.ToFloat64(counter)

	s.handle(echo.NewHTTPError(http.StatusTooManyRequests), "trace-5")

	s.Equal(before+1, testutil.ToFloat64(counter))
}

type chatInput struct {
	Category string   `json:"category" validate:"required,finn_category"`
	Amount   float64  `json:"amount" validate:"currency_amount"`
	Risk     string   `json:"risk_tolerance" validate:"risk_tolerance"`
	Message  string   `json:"message" validate:"min=2,max=5"`
	Goals    []string `json:"goals" validate:"max=1"`
	Tone     string   `json:"tone" validate:"oneof=warm blunt"`
	Months   int      `json:"months" validate:"gte=1"`
}

func (s *ErrorHandlerTestSuite) TestValidationErrorsListEveryField() {
	err := validation.NewValidator().GetValidate().Struct(chatInput{
		Category: "Yachts",
		Amount:   -1.005,
		Risk:     "reckless",
		Message:  "way too long",
		Goals:    []string{"house", "boat"},
		Tone:     "sarcastic",
		Months:   0,
	})
	s.Require().Error(err)

	rec, body := s.handle(err, "trace-6")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal([]string{
		"amount: must be a non-negative amount with at most 2 decimal places",
		"category: must be a known spending category",
		"goals: must be at most 1 items",
		"message: must be at most 5 characters long",
		"months: must be greater than or equal to 1",
		"risk_tolerance: must be one of: conservative, moderate, aggressive",
		"tone: must be one of: warm, blunt",
	}, body.Error.Details)
}
