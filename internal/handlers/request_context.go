package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var ErrUnauthorized = errors.New("unauthorized")

// set by middleware.RequireProfileToken
const profileIDContextKey = "profile_id"

// getProfileIDFromContext returns the profile the session token was issued for.
func getProfileIDFromContext(c echo.Context) (uuid.UUID, error) {
	profileID, ok := c.Get(profileIDContextKey).(uuid.UUID)
	if !ok || profileID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return profileID, nil
}

// getIntParam reads an integer query parameter, falling back when it is
// absent or malformed.
func getIntParam(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return fallback
	}
	return value
}

// getClientIP is the address recorded in audit entries.
func getClientIP(c echo.Context) string {
	req := c.Request()
	if first, _, _ := strings.Cut(req.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if realIP := req.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.RealIP()
}
