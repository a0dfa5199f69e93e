package repositories

import (
	"errors"
	"fmt"

	"finn-budget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileIDMismatch = errors.New("profile id does not match key")
)

// ProfileRepository is the database-backed ProfileStore
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileStore {
	return &ProfileRepository{
		db: db,
	}
}

// Get retrieves a profile by its ID
func (r *ProfileRepository) Get(id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	if err := r.db.Where("id = ?", id).First(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}

	return profile, nil
}

// Put inserts the profile under id or overwrites the stored one
func (r *ProfileRepository) Put(id uuid.UUID, profile *models.Profile) error {
	if profile == nil {
		return errors.New("profile cannot be nil")
	}
	if profile.ID == uuid.Nil {
		profile.ID = id
	}
	if profile.ID != id {
		return ErrProfileIDMismatch
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check profile: %w", err)
		}

		if count == 0 {
			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			return nil
		}

		if err := tx.Save(profile).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		return nil
	})
}

// Delete soft deletes a profile
func (r *ProfileRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Profile{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
