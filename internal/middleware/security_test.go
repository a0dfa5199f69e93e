package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithSecurityHeaders(t *testing.T, route, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET(route, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec
}

func TestSecurityHeaders_APIRoute(t *testing.T) {
	headers := serveWithSecurityHeaders(t, "/api/v1/profiles/:id", "/api/v1/profiles/123").Header()

	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "same-origin", headers.Get("Cross-Origin-Opener-Policy"))
	assert.Contains(t, headers.Get("Permissions-Policy"), "payment=()")
	assert.Equal(t, apiContentSecurityPolicy, headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
}

func TestSecurityHeaders_DocsRoutes(t *testing.T) {
	for _, route := range []string{"/docs", "/docs/openapi.json"} {
		t.Run(route, func(t *testing.T) {
			headers := serveWithSecurityHeaders(t, route, route).Header()

			assert.Equal(t, docsContentSecurityPolicy, headers.Get("Content-Security-Policy"))
			assert.Contains(t, headers.Get("Content-Security-Policy"), "https://cdn.jsdelivr.net")
			assert.Empty(t, headers.Get("Cache-Control"))
			assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
		})
	}
}

func TestSecurityHeaders_DocsPrefixIsExact(t *testing.T) {
	headers := serveWithSecurityHeaders(t, "/docsearch", "/docsearch").Header()

	assert.Equal(t, apiContentSecurityPolicy, headers.Get("Content-Security-Policy"))
}

func TestSecurityHeaders_HandlerMayOverrideCacheControl(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET("/health", func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "max-age=5")
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "max-age=5", rec.Header().Get("Cache-Control"))
}
