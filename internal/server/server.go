package server

import (
	"fmt"
	"net/http"

	"finn-budget/docs"
	"finn-budget/internal/config"
	"finn-budget/internal/handlers"
	"finn-budget/internal/middleware"
	"finn-budget/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// multipart framing on top of the statement itself
const bodyLimitSlack = 64 << 10

// Dependencies are the wired services the HTTP API serves
type Dependencies struct {
	Config          *config.Config
	DB              handlers.Pinger
	LLMEnabled      bool
	TokenService    services.TokenServiceInterface
	ProfileService  services.ProfileServiceInterface
	AnalysisService services.ExpenseAnalysisServiceInterface
	BudgetService   services.BudgetServiceInterface
	ProfileLogger   services.ProfileLoggerInterface
	Generator       handlers.GeneratorFactory
	MetricsHandler  http.Handler
	// RateLimiter guards /api/v1; when nil one is built from Config.Security
	RateLimiter *middleware.IPRateLimiter
}

// New builds the echo instance with middleware and every route registered
func New(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	if cfg.Server.MaxUploadBytes > 0 {
		e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dB", cfg.Server.MaxUploadBytes+bodyLimitSlack)))
	}

	RegisterRoutes(e, deps)
	return e
}

// RegisterRoutes mounts the health, docs, metrics and API routes
func RegisterRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config

	healthHandler := handlers.NewHealthCheckHandler(deps.DB, deps.LLMEnabled, cfg.Server.Environment)
	docsHandler := handlers.NewDocsHandler(docs.ScalarHTML, docs.OpenAPI)
	profileHandler := handlers.NewProfileHandler(deps.ProfileService, deps.ProfileLogger)
	analysisHandler := handlers.NewAnalysisHandler(deps.AnalysisService, cfg.Server.MaxUploadBytes)
	budgetHandler := handlers.NewBudgetHandler(deps.BudgetService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/openapi.json", docsHandler.ServeOpenAPI)
	if deps.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(deps.MetricsHandler))
	}

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	}

	api := e.Group("/api/v1")
	api.Use(limiter.Middleware())

	api.POST("/profiles", profileHandler.CreateProfile)

	profiles := api.Group("/profiles/:id", middleware.RequireProfileToken(deps.TokenService, deps.ProfileLogger))
	profiles.GET("", profileHandler.GetProfile)
	profiles.PUT("", profileHandler.UpdateProfile)
	profiles.DELETE("", profileHandler.DeleteProfile)
	profiles.GET("/activity", profileHandler.GetActivity)
	profiles.POST("/analysis", analysisHandler.AnalyzeStatement)
	profiles.GET("/analysis", analysisHandler.GetAnalysis)
	profiles.POST("/budget", budgetHandler.GenerateBudget)
	profiles.GET("/budget", budgetHandler.GetBudget)
	profiles.POST("/chat", budgetHandler.Chat)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(deps.Generator)
		api.GET("/dev/sample-statement", devHandler.SampleStatement)
	}
}
