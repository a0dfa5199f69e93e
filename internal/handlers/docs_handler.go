package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"
)

// staticDoc is one embedded documentation asset with its validator.
type staticDoc struct {
	body         []byte
	contentType  string
	cacheControl string
	etag         string
}

func newStaticDoc(body []byte, contentType, cacheControl string) staticDoc {
	return staticDoc{body: body, contentType: contentType, cacheControl: cacheControl, etag: etagFor(body)}
}

// DocsHandler serves the Scalar reference page and the OpenAPI document.
type DocsHandler struct {
	page    staticDoc
	openAPI staticDoc
}

func NewDocsHandler(scalarHTML, openAPI []byte) *DocsHandler {
	return &DocsHandler{
		page:    newStaticDoc(scalarHTML, echo.MIMETextHTMLCharsetUTF8, "no-cache"),
		openAPI: newStaticDoc(openAPI, echo.MIMEApplicationJSONCharsetUTF8, "public, max-age=300"),
	}
}

// ServeScalarUI serves GET /docs
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	return h.serve(c, h.page)
}

// ServeOpenAPI serves GET /docs/openapi.json, readable from any origin.
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
	return h.serve(c, h.openAPI)
}

func (h *DocsHandler) serve(c echo.Context, doc staticDoc) error {
	if len(doc.body) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "API documentation is not available")
	}

	header := c.Response().Header()
	header.Set("Cache-Control", doc.cacheControl)
	header.Set("ETag", doc.etag)
	if c.Request().Header.Get("If-None-Match") == doc.etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, doc.contentType, doc.body)
}

func etagFor(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
