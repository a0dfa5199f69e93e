package handlers

import (
	stderrors "errors"
	"net/http"

	"finn-budget/internal/dto"
	"finn-budget/internal/errors"
	"finn-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles onboarding profile requests
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
	logger         services.ProfileLoggerInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService services.ProfileServiceInterface, logger services.ProfileLoggerInterface) *ProfileHandler {
	if logger == nil {
		logger = services.NewProfileLogger(nil)
	}
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// CreateProfile stores the onboarding answers and returns a session token
// bound to the new profile.
//
// Method: POST /api/v1/profiles
// Authentication: none
//
// Success Response: 201 Created with dto.CreateProfileResponse
//
// Error Responses:
//   - 400: VALIDATION_001 or PROFILE_003
//   - 500: SYSTEM_001
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "create_profile", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "create_profile", err.Error())
		return err
	}

	response, err := h.profileService.CreateProfile(ctx, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidProfileData) {
			return SendError(c, errors.ProfileInvalidData, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, response)
}

// GetProfile returns the caller's profile.
//
// Method: GET /api/v1/profiles/:id
// Authentication: session token for :id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.profileService.GetProfile(profileID)
	if err != nil {
		if stderrors.Is(err, services.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the caller's profile.
//
// Method: PUT /api/v1/profiles/:id
// Authentication: session token for :id
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "update_profile", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "update_profile", err.Error())
		return err
	}

	profile, err := h.profileService.UpdateProfile(ctx, profileID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.ProfileNotFound)
		case stderrors.Is(err, services.ErrInvalidProfileData):
			return SendError(c, errors.ProfileInvalidData, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes the caller's profile with its analysis and budgets.
//
// Method: DELETE /api/v1/profiles/:id
// Authentication: session token for :id
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.profileService.DeleteProfile(c.Request().Context(), profileID, getClientIP(c), c.Request().UserAgent()); err != nil {
		if stderrors.Is(err, services.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetActivity lists the caller's audit trail, newest first.
//
// Method: GET /api/v1/profiles/:id/activity
// Authentication: session token for :id
//
// Query Parameters:
//   - offset: entries to skip (default: 0)
//   - limit: page size (default: 20, max: 100)
func (h *ProfileHandler) GetActivity(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	page, err := h.profileService.GetActivity(profileID, getIntParam(c, "offset", 0), getIntParam(c, "limit", 0))
	if err != nil {
		if stderrors.Is(err, services.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}
