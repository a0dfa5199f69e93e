package repositories

import (
	"errors"
	"fmt"

	"finn-budget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

const defaultBudgetListLimit = 10

// BudgetRepository handles database operations for budgets
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{
		db: db,
	}
}

// Create stores a generated budget
func (r *BudgetRepository) Create(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// GetLatestByProfileID retrieves the most recent budget for a profile
func (r *BudgetRepository) GetLatestByProfileID(profileID uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{}
	err := r.db.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		First(budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return budget, nil
}

// ListByProfileID returns budgets newest first
func (r *BudgetRepository) ListByProfileID(profileID uuid.UUID, limit int) ([]*models.Budget, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultBudgetListLimit
	}

	var budgets []*models.Budget
	if err := r.db.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Limit(limit).
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

// DeleteByProfileID removes every budget of a profile
func (r *BudgetRepository) DeleteByProfileID(profileID uuid.UUID) error {
	if err := r.db.Where("profile_id = ?", profileID).Delete(&models.Budget{}).Error; err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}
	return nil
}
