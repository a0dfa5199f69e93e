package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finn-budget/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

type observed struct {
	contextID     string
	correlationID string
	header        string
}

func (s *RequestIDTestSuite) run(incoming string) observed {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var got observed
	err := RequestID()(func(c echo.Context) error {
		got.contextID = GetTraceID(c)
		got.correlationID, _ = c.Request().Context().Value(services.CorrelationIDKey).(string)
		return c.NoContent(http.StatusNoContent)
	})(c)
	s.Require().NoError(err)

	got.header = rec.Header().Get(TraceIDHeader)
	return got
}

func (s *RequestIDTestSuite) TestMintsUUIDWhenAbsent() {
	got := s.run("")

	_, err := uuid.Parse(got.contextID)
	s.NoError(err)
	s.Equal(got.contextID, got.header)
	s.Equal(got.contextID, got.correlationID)
}

func (s *RequestIDTestSuite) TestReusesWellFormedID() {
	got := s.run("checkout-7f3a.retry_2")

	s.Equal("checkout-7f3a.retry_2", got.contextID)
	s.Equal("checkout-7f3a.retry_2", got.header)
	s.Equal("checkout-7f3a.retry_2", got.correlationID)
}

func (s *RequestIDTestSuite) TestReplacesUnsafeIDs() {
	for name, incoming := range map[string]string{
		"spaces":   "hello world",
		"quote":    `id"injected`,
		"too long": strings.Repeat("a", maxTraceIDLength+1),
		"unicode":  "trace-ü",
	} {
		s.Run(name, func() {
			got := s.run(incoming)
			s.NotEqual(incoming, got.contextID)
			_, err := uuid.Parse(got.contextID)
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestIDsAreUniquePerRequest() {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.run("").contextID
		s.False(seen[id], "duplicate trace id %s", id)
		seen[id] = true
	}
}

func (s *RequestIDTestSuite) TestGetTraceID_Unset() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))

	c.Set(TraceIDContextKey, 42)
	s.Empty(GetTraceID(c))
}
