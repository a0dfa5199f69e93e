package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finn-budget/internal/dto"
	"finn-budget/internal/models"
	"finn-budget/internal/services"
	"finn-budget/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const sampleStatement = "Date,Description,Amount\n2024-03-01,Starbucks,-8.25\n2024-03-02,Rent,-1800.00\n"

type AnalysisHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockAnalysisService *service_mocks.MockExpenseAnalysisServiceInterface
	handler             *AnalysisHandler
	e                   *echo.Echo
	profileID           uuid.UUID
}

func (s *AnalysisHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAnalysisService = service_mocks.NewMockExpenseAnalysisServiceInterface(s.ctrl)
	s.handler = NewAnalysisHandler(s.mockAnalysisService, 1024)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.profileID = uuid.New()
}

func (s *AnalysisHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAnalysisHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalysisHandlerTestSuite))
}

func (s *AnalysisHandlerTestSuite) jsonContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("profile_id", s.profileID)
	return c, rec
}

func (s *AnalysisHandlerTestSuite) multipartContext(field, fileName string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, fileName)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("profile_id", s.profileID)
	return c, rec
}

func (s *AnalysisHandlerTestSuite) storedAnalysis(source string) *models.ExpenseAnalysis {
	return &models.ExpenseAnalysis{
		ID:                   uuid.New(),
		ProfileID:            s.profileID,
		Source:               source,
		FileName:             "march.csv",
		CategorizationSource: models.CategorizationSourceHeuristic,
		TransactionCount:     2,
		AnalyzedAt:           time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *AnalysisHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AnalysisHandlerTestSuite) TestAnalyzeStatement_Multipart() {
	c, rec := s.multipartContext("file", "march.csv", []byte(sampleStatement))

	s.mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), s.profileID, services.StatementUpload{
			Content:  []byte(sampleStatement),
			FileName: "march.csv",
			Source:   models.AnalysisSourceUpload,
		}).
		Return(s.storedAnalysis(models.AnalysisSourceUpload), nil)

	s.NoError(s.handler.AnalyzeStatement(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.AnalysisResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(s.profileID, response.ProfileID)
	s.Equal(models.AnalysisSourceUpload, response.Source)
	s.NotNil(response.Metadata)
}

func (s *AnalysisHandlerTestSuite) TestAnalyzeStatement_InlineJSON() {
	body, err := json.Marshal(dto.AnalyzeStatementRequest{Content: sampleStatement, FileName: "pasted.csv"})
	s.Require().NoError(err)
	c, rec := s.jsonContext(string(body))

	s.mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), s.profileID, services.StatementUpload{
			Content:  []byte(sampleStatement),
			FileName: "pasted.csv",
			Source:   models.AnalysisSourceInline,
		}).
		Return(s.storedAnalysis(models.AnalysisSourceInline), nil)

	s.NoError(s.handler.AnalyzeStatement(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *AnalysisHandlerTestSuite) TestAnalyzeStatement_MissingFileField() {
	c, rec := s.multipartContext("statement", "march.csv", []byte(sampleStatement))

	s.NoError(s.handler.AnalyzeStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *AnalysisHandlerTestSuite) TestAnalyzeStatement_TooLarge() {
	c, rec := s.multipartContext("file", "huge.csv", bytes.Repeat([]byte("x"), 2048))

	s.NoError(s.handler.AnalyzeStatement(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal("VALIDATION_005", s.errorCode(rec))
}

func (s *AnalysisHandlerTestSuite) TestAnalyzeStatement_InlineTooLarge() {
	body := fmt.Sprintf(`{"content":%q}`, strings.Repeat("y", 2048))
	c, rec := s.jsonContext(body)

	s.NoError(s.handler.AnalyzeStatement(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
}

func (s *AnalysisHandlerTestSuite) TestAnalyzeStatement_ServiceErrors() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"profile missing", services.ErrProfileNotFound, http.StatusNotFound, "PROFILE_001"},
		{"no transactions", fmt.Errorf("parse: %w", services.ErrNoValidTransactions), http.StatusUnprocessableEntity, "ANALYSIS_001"},
		{"timeout", fmt.Errorf("failed to analyze statement: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "ANALYSIS_004"},
		{"storage", errors.New("disk full"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.jsonContext(`{"content":"anything"}`)
			s.mockAnalysisService.EXPECT().Analyze(gomock.Any(), s.profileID, gomock.Any()).Return(nil, tc.err)

			s.NoError(s.handler.AnalyzeStatement(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, s.errorCode(rec))
		})
	}
}

func (s *AnalysisHandlerTestSuite) TestGetAnalysis_Success() {
	c, rec := s.jsonContext("")
	s.mockAnalysisService.EXPECT().GetLatest(s.profileID).Return(s.storedAnalysis(models.AnalysisSourceUpload), nil)

	s.NoError(s.handler.GetAnalysis(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AnalysisHandlerTestSuite) TestGetAnalysis_NotFound() {
	c, rec := s.jsonContext("")
	s.mockAnalysisService.EXPECT().GetLatest(s.profileID).Return(nil, services.ErrAnalysisNotFound)

	s.NoError(s.handler.GetAnalysis(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ANALYSIS_002", s.errorCode(rec))
}
