package middleware

import (
	"errors"

	apierrors "finn-budget/internal/errors"
	"finn-budget/internal/handlers"
	"finn-budget/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ProfileIDContextKey holds the profile id taken from the session token
	ProfileIDContextKey = "profile_id"
	// TokenJTIContextKey holds the token id, used for audit correlation
	TokenJTIContextKey = "token_jti"
)

// RequireSessionToken validates the bearer session token and stores the
// profile id it was issued for in the context
func RequireSessionToken(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			profileID, err := uuid.Parse(claims.ProfileID)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Invalid profile ID in token"))
			}

			c.Set(ProfileIDContextKey, profileID)
			c.Set(TokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}

// RequireProfileOwner rejects requests whose :id path parameter is not the
// profile the session token was issued for. It must run after
// RequireSessionToken.
func RequireProfileOwner(profileLogger services.ProfileLoggerInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenProfileID, ok := c.Get(ProfileIDContextKey).(uuid.UUID)
			if !ok {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			pathProfileID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return handlers.SendError(c, apierrors.ProfileInvalidID)
			}

			if pathProfileID != tokenProfileID {
				if profileLogger != nil {
					profileLogger.LogAuthorizationFailure(c.Request().Context(), c.Request().Method+" "+c.Path(), pathProfileID, tokenProfileID)
				}
				return handlers.SendError(c, apierrors.AuthInsufficientPermission)
			}

			return next(c)
		}
	}
}

// RequireProfileToken combines RequireSessionToken and RequireProfileOwner
func RequireProfileToken(tokenService services.TokenServiceInterface, profileLogger services.ProfileLoggerInterface) echo.MiddlewareFunc {
	session := RequireSessionToken(tokenService)
	owner := RequireProfileOwner(profileLogger)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return session(owner(next))
	}
}
