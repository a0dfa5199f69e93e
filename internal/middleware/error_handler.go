package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"finn-budget/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Error responses by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

var codeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationPayloadSize,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders whatever a handler returned as the standard
// error envelope. Echo errors keep their status, validator failures become
// VALIDATION_001 with one detail per field, anything else is SYSTEM_001.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	response, status := toErrorResponse(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	slog.Log(req.Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"path", req.URL.Path,
		"method", req.Method,
		"error", err,
	)
	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := codeByStatus[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(httpErr.Message))), httpErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = describeFieldError(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

var tagMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email address",
	"uuid":            "must be a valid UUID",
	"uuid4":           "must be a valid UUID v4",
	"numeric":         "must be a valid number",
	"alphanum":        "must contain only alphanumeric characters",
	"dive":            "contains an invalid entry",
	"currency_amount": "must be a non-negative amount with at most 2 decimal places",
	"life_goal":       "must be a non-empty goal of at most 200 characters",
	"risk_tolerance":  "must be one of: conservative, moderate, aggressive",
	"finn_category":   "must be a known spending category",
}

var comparisonMessages = map[string]string{
	"gt":  "must be greater than %s",
	"gte": "must be greater than or equal to %s",
	"lt":  "must be less than %s",
	"lte": "must be less than or equal to %s",
}

func describeFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}
	if format, ok := comparisonMessages[tag]; ok {
		return fmt.Sprintf(format, fe.Param())
	}

	switch tag {
	case "min":
		return "must be at least " + sized(fe)
	case "max":
		return "must be at most " + sized(fe)
	case "len":
		return "must be exactly " + sized(fe)
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	}
	return fmt.Sprintf("failed validation for '%s'", tag)
}

// sized phrases a min/max/len bound for the field's kind.
func sized(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return fe.Param() + " characters long"
	case reflect.Slice, reflect.Array, reflect.Map:
		return fe.Param() + " items"
	default:
		return fe.Param()
	}
}
