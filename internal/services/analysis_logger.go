package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request trace id into service calls
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying id for structured logs
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// AnalysisLogger writes structured events for the analysis pipeline and the
// LLM boundary
type AnalysisLogger struct {
	logger *slog.Logger
}

func NewAnalysisLogger(logger *slog.Logger) AnalysisLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisLogger{
		logger: logger,
	}
}

func (al *AnalysisLogger) LogAnalysisStarted(ctx context.Context, profileID uuid.UUID, source string, sizeBytes int) {
	al.logger.InfoContext(ctx, "expense analysis started",
		slog.String("event_type", "analysis_started"),
		slog.String("profile_id", profileID.String()),
		slog.String("source", source),
		slog.Int("size_bytes", sizeBytes),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogAnalysisCompleted(ctx context.Context, profileID uuid.UUID, transactionCount int, categorizationSource string, durationMs int64) {
	al.logger.InfoContext(ctx, "expense analysis completed",
		slog.String("event_type", "analysis_completed"),
		slog.String("profile_id", profileID.String()),
		slog.Int("transaction_count", transactionCount),
		slog.String("categorization_source", categorizationSource),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogAnalysisFailed(ctx context.Context, profileID uuid.UUID, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "expense analysis failed",
		slog.String("event_type", "analysis_failed"),
		slog.String("profile_id", profileID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogCategorizationFallback(ctx context.Context, reason string, transactionCount int) {
	al.logger.WarnContext(ctx, "llm categorization unavailable, using keyword classifier",
		slog.String("event_type", "categorization_fallback"),
		slog.String("reason", reason),
		slog.Int("transaction_count", transactionCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogLLMCall(ctx context.Context, operation, status string, durationMs int64) {
	al.logger.InfoContext(ctx, "llm call",
		slog.String("event_type", "llm_call"),
		slog.String("operation", operation),
		slog.String("status", status),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogStatementArchived(ctx context.Context, profileID uuid.UUID, uri string) {
	al.logger.InfoContext(ctx, "statement archived",
		slog.String("event_type", "statement_archived"),
		slog.String("profile_id", profileID.String()),
		slog.String("uri", uri),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AnalysisLogger) LogBudgetGenerated(ctx context.Context, profileID uuid.UUID, source string, allocationCount int) {
	al.logger.InfoContext(ctx, "budget generated",
		slog.String("event_type", "budget_generated"),
		slog.String("profile_id", profileID.String()),
		slog.String("source", source),
		slog.Int("allocation_count", allocationCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
