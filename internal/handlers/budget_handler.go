package handlers

import (
	stderrors "errors"
	"net/http"

	"finn-budget/internal/dto"
	"finn-budget/internal/errors"
	"finn-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget generation and the budgeting chat
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GenerateBudget builds a new monthly budget from the profile and its latest
// analysis.
//
// Method: POST /api/v1/profiles/:id/budget
// Authentication: session token for :id
//
// Error Responses:
//   - 404: PROFILE_001
//   - 422: PROFILE_004 when no income is known
func (h *BudgetHandler) GenerateBudget(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budget, err := h.budgetService.GenerateBudget(c.Request().Context(), profileID)
	if err != nil {
		return h.sendBudgetError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// GetBudget returns the most recent budget.
//
// Method: GET /api/v1/profiles/:id/budget
// Authentication: session token for :id
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budget, err := h.budgetService.GetLatestBudget(profileID)
	if err != nil {
		return h.sendBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// Chat answers a budgeting question using the profile and analysis as context.
//
// Method: POST /api/v1/profiles/:id/chat
// Authentication: session token for :id
func (h *BudgetHandler) Chat(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	response, err := h.budgetService.Chat(c.Request().Context(), profileID, req.Message)
	if err != nil {
		return h.sendBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *BudgetHandler) sendBudgetError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrProfileNotFound):
		return SendError(c, errors.ProfileNotFound)
	case stderrors.Is(err, services.ErrBudgetNotFound):
		return SendError(c, errors.BudgetNotFound)
	case stderrors.Is(err, services.ErrBudgetIncomeUnknown):
		return SendError(c, errors.ProfileIncomeNeeded)
	case stderrors.Is(err, services.ErrEmptyChatMessage):
		return SendError(c, errors.BudgetEmptyMessage)
	}
	return SendSystemError(c, err)
}
