package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finn-budget/internal/config"
	"finn-budget/internal/database"
	"finn-budget/internal/handlers"
	"finn-budget/internal/llm"
	"finn-budget/internal/middleware"
	"finn-budget/internal/models"
	"finn-budget/internal/repositories"
	"finn-budget/internal/server"
	"finn-budget/internal/services"
	"finn-budget/internal/storage"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout    = 15 * time.Second
	auditPurgeInterval = 6 * time.Hour
)

type stores struct {
	profiles repositories.ProfileStore
	analyses repositories.ExpenseAnalysisRepositoryInterface
	budgets  repositories.BudgetRepositoryInterface
	audit    repositories.AuditLogRepositoryInterface
}

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()

	// Storage: postgres when enabled, otherwise everything lives in memory
	var (
		repos  stores
		pinger handlers.Pinger
	)
	if cfg.Database.Enabled {
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pinger = db
		repos = stores{
			profiles: repositories.NewProfileRepository(db.DB),
			analyses: repositories.NewExpenseAnalysisRepository(db.DB),
			budgets:  repositories.NewBudgetRepository(db.DB),
			audit:    repositories.NewAuditLogRepository(db.DB),
		}
	} else {
		logger.Warn("database disabled, profiles are kept in memory only")
		repos = stores{
			profiles: repositories.NewMemoryProfileStore(),
			analyses: repositories.NewMemoryExpenseAnalysisRepository(),
			budgets:  repositories.NewMemoryBudgetRepository(),
			audit:    repositories.NewMemoryAuditLogRepository(),
		}
	}

	var completer llm.Completer = llm.DisabledCompleter{}
	if cfg.Gemini.Enabled() {
		retry := llm.DefaultRetryConfig
		retry.MaxRetries = cfg.Gemini.MaxRetries
		retry.InitialDelay = cfg.Gemini.InitialBackoff

		client, err := llm.NewGeminiClient(ctx, llm.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
			Retry:   retry,
		})
		if err != nil {
			logger.Error("failed to create gemini client, using heuristics", "error", err)
		} else {
			completer = client
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, categorization and budgets use heuristics")
	}

	var archive storage.Archive = storage.NoopArchive{}
	if cfg.Storage.Enabled() {
		gcs, err := storage.NewGCSArchive(ctx, cfg.Storage.Bucket)
		if err != nil {
			logger.Error("failed to create statement archive", "bucket", cfg.Storage.Bucket, "error", err)
			os.Exit(1)
		}
		defer gcs.Close()
		archive = gcs
	}

	metrics := services.NewPrometheusMetrics()
	analysisLogger := services.NewAnalysisLogger(logger)
	profileLogger := services.NewProfileLogger(logger)
	auditService := services.NewAuditService(repos.audit)
	tokenService := services.NewTokenService(&cfg.JWT)

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = func(name string, from, to models.CircuitBreakerState) {
		analysisLogger.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
		metrics.RecordGauge(services.MetricCircuitBreaker, float64(to), map[string]string{"service": name})
	}
	breaker := services.NewCircuitBreaker(breakerConfig)

	analysisService := services.NewExpenseAnalysisService(services.ExpenseAnalysisDeps{
		Completer:      completer,
		CircuitBreaker: breaker,
		Profiles:       repos.profiles,
		Analyses:       repos.analyses,
		Archive:        archive,
		AuditService:   auditService,
		AnalysisLogger: analysisLogger,
		Metrics:        metrics,
		Options: services.ExpenseAnalysisOptions{
			LLMCategorization:     cfg.Analysis.LLMCategorization,
			MaxTransactionsForLLM: cfg.Analysis.MaxTransactionsForLLM,
			Timeout:               cfg.Analysis.Timeout,
			ArchivePrefix:         cfg.Storage.Prefix,
		},
	})
	budgetService := services.NewBudgetService(services.BudgetServiceDeps{
		Profiles:       repos.profiles,
		Analyses:       repos.analyses,
		Budgets:        repos.budgets,
		Completer:      completer,
		CircuitBreaker: breaker,
		AuditService:   auditService,
		AnalysisLogger: analysisLogger,
		Metrics:        metrics,
	})
	profileService := services.NewProfileService(
		repos.profiles, repos.analyses, repos.budgets,
		tokenService, auditService, profileLogger, metrics,
	)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(sweepCtx, time.Minute)
	if cfg.Security.AuditRetention > 0 {
		go purgeAuditLogs(sweepCtx, auditService, cfg.Security.AuditRetention, logger)
	}

	e := server.New(server.Dependencies{
		Config:          cfg,
		DB:              pinger,
		LLMEnabled:      llm.Enabled(completer),
		TokenService:    tokenService,
		ProfileService:  profileService,
		AnalysisService: analysisService,
		BudgetService:   budgetService,
		ProfileLogger:   profileLogger,
		MetricsHandler:  promhttp.Handler(),
		RateLimiter:     limiter,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting finn server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server stopped")
}

// purgeAuditLogs trims the audit trail to the retention window once at
// startup and then every auditPurgeInterval.
func purgeAuditLogs(ctx context.Context, audit services.AuditServiceInterface, retention time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(auditPurgeInterval)
	defer ticker.Stop()

	for {
		deleted, err := audit.PurgeBefore(time.Now().Add(-retention))
		if err != nil {
			logger.Warn("audit purge failed", "error", err)
		} else if deleted > 0 {
			logger.Info("purged audit logs", "deleted", deleted, "retention", retention.String())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
