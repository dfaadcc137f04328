package repositories

import "lumeno/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListBySeller(sellerID string) ([]models.ReviewWithAuthor, error)
}
