package repositories

import (
	"errors"
	"fmt"
	"time"

	"finn-budget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 100
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// GetByProfileID pages through a profile's entries, newest first, and
// reports the total count.
func (r *AuditLogRepository) GetByProfileID(profileID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if profileID == uuid.Nil {
		return nil, 0, errors.New("invalid profile ID")
	}
	offset, limit = NormalizeAuditPage(offset, limit)

	query := r.db.Model(&models.AuditLog{}).Where("profile_id = ?", profileID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count profile activity: %w", err)
	}

	var logs []*models.AuditLog
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profile activity: %w", err)
	}
	return logs, total, nil
}

// DeleteBefore removes entries created before cutoff.
func (r *AuditLogRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// NormalizeAuditPage clamps a requested page to what the repositories serve.
func NormalizeAuditPage(offset, limit int) (int, int) {
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	limit = min(limit, maxAuditPageSize)
	return max(offset, 0), limit
}
