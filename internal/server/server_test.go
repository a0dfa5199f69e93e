package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finn-budget/internal/config"
	"finn-budget/internal/dto"
	"finn-budget/internal/models"
	"finn-budget/internal/repositories"
	"finn-budget/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const statementCSV = `Date,Description,Amount
2024-01-01,Rent Payment,2000.00
2024-01-03,Starbucks Coffee,5.75
2024-01-05,Netflix Subscription,15.49
2024-02-01,Rent Payment,2000.00
2024-02-05,Netflix Subscription,15.49
2024-02-14,Amazon Marketplace,89.99
2024-03-01,Rent Payment,2000.00
2024-03-05,Netflix Subscription,15.49
2024-03-11,CVS Pharmacy,31.00
`

type ServerSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:      "development",
			CORSAllowOrigins: []string{"*"},
			MaxUploadBytes:   1 << 20,
		},
		JWT: config.JWTConfig{
			PrivateKey:           privateKey,
			PublicKey:            publicKey,
			Issuer:               "finn-test",
			SessionTokenDuration: time.Hour,
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 1000, RateLimitBurst: 1000},
	}

	profiles := repositories.NewMemoryProfileStore()
	analyses := repositories.NewMemoryExpenseAnalysisRepository()
	budgets := repositories.NewMemoryBudgetRepository()
	auditService := services.NewAuditService(repositories.NewMemoryAuditLogRepository())
	tokenService := services.NewTokenService(&cfg.JWT)
	metrics := services.NewNoopMetrics()

	s.e = New(Dependencies{
		Config:       cfg,
		TokenService: tokenService,
		ProfileService: services.NewProfileService(
			profiles, analyses, budgets, tokenService, auditService, nil, metrics,
		),
		AnalysisService: services.NewExpenseAnalysisService(services.ExpenseAnalysisDeps{
			Profiles:     profiles,
			Analyses:     analyses,
			AuditService: auditService,
			Metrics:      metrics,
		}),
		BudgetService: services.NewBudgetService(services.BudgetServiceDeps{
			Profiles:     profiles,
			Analyses:     analyses,
			Budgets:      budgets,
			AuditService: auditService,
			Metrics:      metrics,
		}),
	})
}

func (s *ServerSuite) do(method, path, token string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) createProfile(name string) dto.CreateProfileResponse {
	body := []byte(`{"name":"` + name + `","monthly_income":"6000","dependents":0,"goals":["build an emergency fund"]}`)
	rec := s.do(http.MethodPost, "/api/v1/profiles", "", body, echo.MIMEApplicationJSON)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.CreateProfileResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.SessionToken)
	return resp
}

func (s *ServerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"storage":"memory"`)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *ServerSuite) TestDocsRoutes() {
	rec := s.do(http.MethodGet, "/docs/openapi.json", "", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/profiles/{id}/analysis")

	rec = s.do(http.MethodGet, "/docs", "", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nowhere", "", nil, "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", s.errorCode(rec))
}

func (s *ServerSuite) TestProfileRoutesRequireToken() {
	created := s.createProfile("Ada")

	rec := s.do(http.MethodGet, "/api/v1/profiles/"+created.Profile.ID.String(), "", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *ServerSuite) TestTokenIsBoundToItsProfile() {
	ada := s.createProfile("Ada")
	grace := s.createProfile("Grace")

	rec := s.do(http.MethodGet, "/api/v1/profiles/"+grace.Profile.ID.String(), ada.SessionToken, nil, "")
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *ServerSuite) TestAnalysisThenBudgetThenChat() {
	created := s.createProfile("Ada")
	base := "/api/v1/profiles/" + created.Profile.ID.String()
	token := created.SessionToken

	rec := s.do(http.MethodGet, base+"/analysis", token, nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ANALYSIS_002", s.errorCode(rec))

	body, err := json.Marshal(dto.AnalyzeStatementRequest{Content: statementCSV})
	s.Require().NoError(err)
	rec = s.do(http.MethodPost, base+"/analysis", token, body, echo.MIMEApplicationJSON)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var analysis dto.AnalysisResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &analysis))
	s.Equal(created.Profile.ID, analysis.ProfileID)
	s.Equal(9, analysis.Metadata.TransactionCount)
	s.Equal(models.CategorizationSourceHeuristic, analysis.CategorizationSource)

	rec = s.do(http.MethodGet, base+"/analysis", token, nil, "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, base+"/budget", token, nil, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var budget models.Budget
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &budget))
	s.Equal(models.BudgetSourceTemplate, budget.Source)
	s.NotEmpty(budget.Allocations)

	rec = s.do(http.MethodPost, base+"/chat", token, []byte(`{"message":"How do I save more?"}`), echo.MIMEApplicationJSON)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var chat dto.ChatResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &chat))
	s.NotEmpty(chat.Reply)

	rec = s.do(http.MethodGet, base+"/activity?limit=2", token, nil, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var activity dto.ActivityPage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &activity))
	s.Equal(int64(4), activity.Total)
	s.Equal(2, activity.Limit)
	s.Require().Len(activity.Entries, 2)
	s.Equal(models.AuditActionChatReply, activity.Entries[0].Action)
	s.Equal(models.AuditActionBudgetGenerated, activity.Entries[1].Action)
}

func (s *ServerSuite) TestAnalysisUpload() {
	created := s.createProfile("Ada")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "statement.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte(statementCSV))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	rec := s.do(http.MethodPost, "/api/v1/profiles/"+created.Profile.ID.String()+"/analysis",
		created.SessionToken, buf.Bytes(), writer.FormDataContentType())
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var analysis dto.AnalysisResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &analysis))
	s.Equal(models.AnalysisSourceUpload, analysis.Source)
	s.Equal("statement.csv", analysis.FileName)
}

func (s *ServerSuite) TestDeleteProfileRevokesAccess() {
	created := s.createProfile("Ada")
	path := "/api/v1/profiles/" + created.Profile.ID.String()

	rec := s.do(http.MethodDelete, path, created.SessionToken, nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, path, created.SessionToken, nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("PROFILE_001", s.errorCode(rec))
}

func (s *ServerSuite) TestSampleStatementOnlyInDevelopment() {
	rec := s.do(http.MethodGet, "/api/v1/dev/sample-statement?months=2&seed=7", "", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var sample dto.SampleStatementResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &sample))
	s.Equal(2, sample.Months)
	s.Equal(uint64(7), sample.Seed)

	prod := echo.New()
	cfg := &config.Config{
		Server:   config.ServerConfig{Environment: "production"},
		Security: config.SecurityConfig{RateLimitPerSecond: 1000, RateLimitBurst: 1000},
	}
	RegisterRoutes(prod, Dependencies{Config: cfg})
	for _, route := range prod.Routes() {
		s.NotEqual("/api/v1/dev/sample-statement", route.Path)
	}
}
