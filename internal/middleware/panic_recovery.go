package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finn-budget/internal/errors"
	"finn-budget/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_recovered_total",
		Help: "Handler panics converted into SYSTEM_001 responses, by route",
	},
	[]string{"route"},
)

// PanicRecovery converts a handler panic into a SYSTEM_001 response that
// carries the request's trace id. http.ErrAbortHandler is re-raised so the
// server can drop the connection.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				req := c.Request()
				slog.ErrorContext(req.Context(), "handler panicked",
					"trace_id", GetTraceID(c),
					"route", c.Path(),
					"method", req.Method,
					"panic", fmt.Sprint(recovered),
					"stack", string(debug.Stack()),
				)
				panicsRecoveredTotal.WithLabelValues(c.Path()).Inc()

				if c.Response().Committed {
					err = nil
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
