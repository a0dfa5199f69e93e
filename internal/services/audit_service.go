package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"finn-budget/internal/models"
	"finn-budget/internal/repositories"

	"github.com/google/uuid"
)

// AuditService records profile activity in the audit log
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidProfileID = errors.New("invalid profile ID")
	ErrInvalidAuditLog  = errors.New("invalid audit log")
)

var validAuditActions = map[string]bool{
	models.AuditActionProfileCreated:    true,
	models.AuditActionProfileUpdated:    true,
	models.AuditActionProfileDeleted:    true,
	models.AuditActionAnalysisCompleted: true,
	models.AuditActionAnalysisFailed:    true,
	models.AuditActionBudgetGenerated:   true,
	models.AuditActionChatReply:         true,
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetProfileActivity returns a page of activity for a profile, newest first
func (s *AuditService) GetProfileActivity(profileID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if profileID == uuid.Nil {
		return nil, 0, ErrInvalidProfileID
	}
	return s.repo.GetByProfileID(profileID, offset, limit)
}

// PurgeBefore drops entries older than cutoff and returns how many went.
func (s *AuditService) PurgeBefore(cutoff time.Time) (int64, error) {
	deleted, err := s.repo.DeleteBefore(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}
	return deleted, nil
}

// LogProfileCreated logs a profile creation event
func (s *AuditService) LogProfileCreated(profileID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionProfileCreated,
		Resource:  "profile",
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
}

// LogProfileUpdated records the names of the changed fields
func (s *AuditService) LogProfileUpdated(profileID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error {
	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	log := &models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionProfileUpdated,
		Resource:  "profile",
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	return s.CreateAuditLog(log.With("fields", fields))
}

// LogProfileDeleted logs a profile deletion event
func (s *AuditService) LogProfileDeleted(profileID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionProfileDeleted,
		Resource:  "profile",
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
}

// LogAnalysisCompleted logs a successful analysis with its headline numbers
func (s *AuditService) LogAnalysisCompleted(profileID, analysisID uuid.UUID, transactionCount int, categorizationSource string) error {
	return s.CreateAuditLog(&models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionAnalysisCompleted,
		Resource:  "analysis",
		Metadata: models.Details{
			"analysis_id":           analysisID.String(),
			"transaction_count":     transactionCount,
			"categorization_source": categorizationSource,
		},
	})
}

// LogAnalysisFailed logs a rejected or failed analysis
func (s *AuditService) LogAnalysisFailed(profileID uuid.UUID, reason string) error {
	return s.CreateAuditLog(&models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionAnalysisFailed,
		Resource:  "analysis",
		Metadata: models.Details{
			"reason": reason,
		},
	})
}

// LogBudgetGenerated logs a generated budget and where it came from
func (s *AuditService) LogBudgetGenerated(profileID, budgetID uuid.UUID, source string) error {
	return s.CreateAuditLog(&models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionBudgetGenerated,
		Resource:  "budget",
		Metadata: models.Details{
			"budget_id": budgetID.String(),
			"source":    source,
		},
	})
}

// LogChatReply logs that a chat reply was produced. Message text is not stored.
func (s *AuditService) LogChatReply(profileID uuid.UUID, source string) error {
	return s.CreateAuditLog(&models.AuditLog{
		ProfileID: &profileID,
		Action:    models.AuditActionChatReply,
		Resource:  "chat",
		Metadata: models.Details{
			"source": source,
		},
	})
}
