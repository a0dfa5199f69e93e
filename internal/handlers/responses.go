package handlers

import (
	"log/slog"

	"finn-budget/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (known codes) or
// SendSystemError (anything whose cause must stay server-side). Neither
// returns echo.HTTPError.

// TraceIDContextKey mirrors the key the request id middleware sets.
const TraceIDContextKey = "trace_id"

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers with SYSTEM_001.
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	response, cause := errors.WrapSystemError(err, traceID)

	req := c.Request()
	slog.ErrorContext(req.Context(), "request failed with system error",
		"trace_id", traceID,
		"method", req.Method,
		"path", req.URL.Path,
		"error", cause,
	)
	return c.JSON(response.GetHTTPStatus(), response)
}
