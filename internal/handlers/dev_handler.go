package handlers

import (
	"net/http"
	"strconv"
	"time"

	"finn-budget/internal/dto"
	"finn-budget/internal/errors"
	"finn-budget/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSampleMonths = 3

// GeneratorFactory builds a statement generator for a seed
type GeneratorFactory func(seed uint64) services.StatementGeneratorInterface

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	newGenerator GeneratorFactory
	now          func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(newGenerator GeneratorFactory) *DevHandler {
	if newGenerator == nil {
		newGenerator = services.NewStatementGenerator
	}
	return &DevHandler{
		newGenerator: newGenerator,
		now:          time.Now,
	}
}

// SampleStatement returns a generated CSV statement for trying the analysis
// endpoint without real bank data.
//
// Method: GET /api/v1/dev/sample-statement
// Authentication: none
// Environment: Development only
//
// Query parameters:
//   - months: months of history ending with the current month (default: 3, max: 24)
//   - seed: non-zero seed for a reproducible statement (default: random)
func (h *DevHandler) SampleStatement(c echo.Context) error {
	months := getIntParam(c, "months", defaultSampleMonths)
	if months < 1 || months > services.MaxSampleMonths {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails("months must be between 1 and "+strconv.Itoa(services.MaxSampleMonths)))
	}

	var seed uint64
	if raw := c.QueryParam("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("seed must be a non-negative integer"))
		}
		seed = parsed
	}
	if seed == 0 {
		seed = uint64(h.now().UnixNano())
	}

	now := h.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	generator := h.newGenerator(seed)
	lines := generator.Generate(start, months)

	return c.JSON(http.StatusOK, dto.SampleStatementResponse{
		Months:  months,
		Seed:    seed,
		Lines:   len(lines),
		Content: generator.Render(lines),
	})
}
