package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finn-budget/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *PanicRecoveryTestSuite) serve(handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/abc/budget", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/profiles/:id/budget")
	c.Set(TraceIDContextKey, "trace-123")

	s.NotPanics(func() {
		s.NoError(PanicRecovery()(handler)(c))
	})
	return rec
}

func (s *PanicRecoveryTestSuite) TestRecoversWithTraceID() {
	rec := s.serve(func(c echo.Context) error {
		panic("allocation table is nil")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.Equal("trace-123", response.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestCountsRecoveredPanicsByRoute() {
	counter := panicsRecoveredTotal.WithLabelValues("/api/v1/profiles/:id/budget")
	before := testutil.ToFloat64(counter)

	s.serve(func(c echo.Context) error {
		panic(42)
	})

	s.Equal(before+1, testutil.ToFloat64(counter))
}

func (s *PanicRecoveryTestSuite) TestPanicValueTypes() {
	for name, value := range map[string]interface{}{
		"string":  "boom",
		"pointer": errors.NewErrorResponse(errors.SystemInternalError, ""),
		"struct":  struct{ reason string }{"bad"},
		"nil":     nil,
	} {
		s.Run(name, func() {
			rec := s.serve(func(c echo.Context) error {
				panic(value)
			})
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := s.serve(func(c echo.Context) error {
		if err := c.String(http.StatusAccepted, "partial"); err != nil {
			return err
		}
		panic("after write")
	})

	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestAbortHandlerIsRepanicked() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.PanicsWithValue(http.ErrAbortHandler, func() {
		_ = handler(c)
	})
}

func (s *PanicRecoveryTestSuite) TestNormalFlow() {
	rec := s.serve(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Equal(http.StatusOK, rec.Code)
}
