package repositories

import "lumeno/internal/models"

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	UpdateFields(id string, fields map[string]interface{}) error
	ListSellers(orderBy string, limit int) ([]models.Profile, error)
}
