package repositories

import (
	"errors"
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// Create creates a new profile in the database.
func (r *GORMProfileRepository) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a single profile by its ID from the database.
func (r *GORMProfileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by ID %s: %w", id, err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by its email from the database.
func (r *GORMProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by email %s: %w", email, err)
	}
	return &profile, nil
}

// UpdateFields updates the given columns of a profile.
func (r *GORMProfileRepository) UpdateFields(id string, fields map[string]interface{}) error {
	res := r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update profile %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListSellers retrieves profiles with the seller flag set, ordered and
// limited as requested.
func (r *GORMProfileRepository) ListSellers(orderBy string, limit int) ([]models.Profile, error) {
	sellers := make([]models.Profile, 0)
	query := r.db.Where("is_seller = ?", true)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	return sellers, nil
}
