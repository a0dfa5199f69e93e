package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"finn-budget/internal/errors"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	HealthCheck() error
}

type HealthStatus struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	Storage     string `json:"storage"`
	LLM         string `json:"llm"`
	Environment string `json:"environment"`
}

type HealthCheckHandler struct {
	db          Pinger
	llmEnabled  bool
	environment string
	now         func() time.Time
}

// NewHealthCheckHandler builds the /health handler. db is nil when profiles
// are kept in memory.
func NewHealthCheckHandler(db Pinger, llmEnabled bool, environment string) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, llmEnabled: llmEnabled, environment: environment, now: time.Now}
}

func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	status := HealthStatus{
		Status:      "healthy",
		Time:        h.now().UTC().Format(time.RFC3339),
		Storage:     "memory",
		LLM:         "disabled",
		Environment: h.environment,
	}
	if h.llmEnabled {
		status.LLM = "gemini"
	}

	if h.db != nil {
		status.Storage = "postgres"
		if err := h.db.HealthCheck(); err != nil {
			slog.WarnContext(c.Request().Context(), "health check: database unreachable", "error", err)
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
	}

	return c.JSON(http.StatusOK, status)
}
