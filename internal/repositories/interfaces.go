package repositories

import (
	"time"

	"finn-budget/internal/models"

	"github.com/google/uuid"
)

// ProfileStore is the keyed profile store. Get returns ErrProfileNotFound for
// unknown or deleted ids.
type ProfileStore interface {
	Get(id uuid.UUID) (*models.Profile, error)
	Put(id uuid.UUID, profile *models.Profile) error
	Delete(id uuid.UUID) error
}

// ExpenseAnalysisRepositoryInterface keeps the latest analysis per profile
type ExpenseAnalysisRepositoryInterface interface {
	// Save stores the analysis, replacing any previous analysis for the same profile
	Save(analysis *models.ExpenseAnalysis) error
	GetLatestByProfileID(profileID uuid.UUID) (*models.ExpenseAnalysis, error)
	DeleteByProfileID(profileID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetLatestByProfileID(profileID uuid.UUID) (*models.Budget, error)
	ListByProfileID(profileID uuid.UUID, limit int) ([]*models.Budget, error)
	DeleteByProfileID(profileID uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByProfileID(profileID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}
