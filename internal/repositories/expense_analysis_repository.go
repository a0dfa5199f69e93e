package repositories

import (
	"errors"
	"fmt"

	"finn-budget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAnalysisNotFound = errors.New("expense analysis not found")
)

// ExpenseAnalysisRepository handles database operations for expense analyses
type ExpenseAnalysisRepository struct {
	db *gorm.DB
}

// NewExpenseAnalysisRepository creates a new expense analysis repository
func NewExpenseAnalysisRepository(db *gorm.DB) ExpenseAnalysisRepositoryInterface {
	return &ExpenseAnalysisRepository{
		db: db,
	}
}

// Save replaces the stored analysis for the profile inside one transaction
func (r *ExpenseAnalysisRepository) Save(analysis *models.ExpenseAnalysis) error {
	if analysis == nil {
		return errors.New("expense analysis cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", analysis.ProfileID).Delete(&models.ExpenseAnalysis{}).Error; err != nil {
			return fmt.Errorf("failed to replace expense analysis: %w", err)
		}

		if err := tx.Create(analysis).Error; err != nil {
			return fmt.Errorf("failed to create expense analysis: %w", err)
		}

		return nil
	})
}

// GetLatestByProfileID retrieves the current analysis for a profile
func (r *ExpenseAnalysisRepository) GetLatestByProfileID(profileID uuid.UUID) (*models.ExpenseAnalysis, error) {
	analysis := &models.ExpenseAnalysis{}
	err := r.db.Where("profile_id = ?", profileID).
		Order("analyzed_at DESC").
		First(analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get expense analysis: %w", err)
	}

	return analysis, nil
}

// DeleteByProfileID removes the analysis of a profile
func (r *ExpenseAnalysisRepository) DeleteByProfileID(profileID uuid.UUID) error {
	if err := r.db.Where("profile_id = ?", profileID).Delete(&models.ExpenseAnalysis{}).Error; err != nil {
		return fmt.Errorf("failed to delete expense analysis: %w", err)
	}
	return nil
}
