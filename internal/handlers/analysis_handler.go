package handlers

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"finn-budget/internal/dto"
	"finn-budget/internal/errors"
	"finn-budget/internal/models"
	"finn-budget/internal/services"

	"github.com/labstack/echo/v4"
)

const statementFormField = "file"

var errStatementTooLarge = stderrors.New("statement exceeds upload limit")

// AnalysisHandler handles statement analysis requests
type AnalysisHandler struct {
	analysisService services.ExpenseAnalysisServiceInterface
	maxUploadBytes  int64
}

// NewAnalysisHandler creates a new analysis handler. maxUploadBytes <= 0
// disables the size check.
func NewAnalysisHandler(analysisService services.ExpenseAnalysisServiceInterface, maxUploadBytes int64) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// AnalyzeStatement runs the expense pipeline over a bank statement and stores
// the result as the profile's latest analysis.
//
// Method: POST /api/v1/profiles/:id/analysis
// Authentication: session token for :id
//
// The statement is either a multipart upload in the "file" field or a JSON
// body {"content": "...", "file_name": "..."}.
//
// Error Responses:
//   - 400: VALIDATION_001 bad body
//   - 404: PROFILE_001
//   - 413: VALIDATION_005
//   - 422: ANALYSIS_001 no parseable transactions, blank uploads included
//   - 504: ANALYSIS_004
func (h *AnalysisHandler) AnalyzeStatement(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	upload, err := h.readStatement(c)
	if err != nil {
		if stderrors.Is(err, errStatementTooLarge) {
			return SendError(c, errors.ValidationPayloadSize)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	analysis, err := h.analysisService.Analyze(c.Request().Context(), profileID, upload)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.ProfileNotFound)
		case stderrors.Is(err, services.ErrNoValidTransactions):
			return SendError(c, errors.AnalysisNoValidTransactions)
		case stderrors.Is(err, context.DeadlineExceeded):
			return SendError(c, errors.AnalysisTimeout)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAnalysisResponse(analysis))
}

// GetAnalysis returns the profile's latest analysis.
//
// Method: GET /api/v1/profiles/:id/analysis
// Authentication: session token for :id
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	profileID, err := getProfileIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	analysis, err := h.analysisService.GetLatest(profileID)
	if err != nil {
		if stderrors.Is(err, services.ErrAnalysisNotFound) {
			return SendError(c, errors.AnalysisNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAnalysisResponse(analysis))
}

func (h *AnalysisHandler) readStatement(c echo.Context) (services.StatementUpload, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.readMultipart(c)
	}

	var req dto.AnalyzeStatementRequest
	if err := c.Bind(&req); err != nil {
		return services.StatementUpload{}, stderrors.New("invalid request body")
	}
	if h.maxUploadBytes > 0 && int64(len(req.Content)) > h.maxUploadBytes {
		return services.StatementUpload{}, errStatementTooLarge
	}

	return services.StatementUpload{
		Content:  []byte(req.Content),
		FileName: req.FileName,
		Source:   models.AnalysisSourceInline,
	}, nil
}

func (h *AnalysisHandler) readMultipart(c echo.Context) (services.StatementUpload, error) {
	fileHeader, err := c.FormFile(statementFormField)
	if err != nil {
		return services.StatementUpload{}, stderrors.New("statement file is required in the \"file\" field")
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return services.StatementUpload{}, errStatementTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return services.StatementUpload{}, stderrors.New("statement file could not be read")
	}
	defer file.Close()

	var reader io.Reader = file
	if h.maxUploadBytes > 0 {
		reader = io.LimitReader(file, h.maxUploadBytes+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return services.StatementUpload{}, stderrors.New("statement file could not be read")
	}
	if h.maxUploadBytes > 0 && int64(len(content)) > h.maxUploadBytes {
		return services.StatementUpload{}, errStatementTooLarge
	}

	return services.StatementUpload{
		Content:  content,
		FileName: fileHeader.Filename,
		Source:   models.AnalysisSourceUpload,
	}, nil
}
