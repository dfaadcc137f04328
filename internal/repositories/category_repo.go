package repositories

import "lumeno/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(categoryType string) ([]models.Category, error)
	Create(category *models.Category) error
}
