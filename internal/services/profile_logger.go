package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	// RedactedValue masks personal details in logs
	RedactedValue = "***REDACTED***"
)

// ProfileLogger provides structured logging for profile operations
type ProfileLogger struct {
	logger *slog.Logger
}

// NewProfileLogger creates a new profile logger
func NewProfileLogger(logger *slog.Logger) ProfileLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileLogger{
		logger: logger,
	}
}

// LogProfileCreated logs profile creation. The name is never logged.
func (pl *ProfileLogger) LogProfileCreated(ctx context.Context, profileID uuid.UUID, hasIncome bool) {
	pl.logger.InfoContext(ctx, "profile created",
		slog.String("event_type", "profile_created"),
		slog.String("profile_id", profileID.String()),
		slog.String("name", RedactedValue),
		slog.Bool("has_income", hasIncome),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogProfileUpdated logs the names of the changed fields, not their values
func (pl *ProfileLogger) LogProfileUpdated(ctx context.Context, profileID uuid.UUID, updatedFields []string) {
	pl.logger.InfoContext(ctx, "profile updated",
		slog.String("event_type", "profile_updated"),
		slog.String("profile_id", profileID.String()),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *ProfileLogger) LogProfileDeleted(ctx context.Context, profileID uuid.UUID) {
	pl.logger.InfoContext(ctx, "profile deleted",
		slog.String("event_type", "profile_deleted"),
		slog.String("profile_id", profileID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *ProfileLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	pl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogAuthorizationFailure logs a session token used against another profile
func (pl *ProfileLogger) LogAuthorizationFailure(ctx context.Context, operation string, profileID, tokenProfileID uuid.UUID) {
	pl.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("profile_id", profileID.String()),
		slog.String("token_profile_id", tokenProfileID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}
