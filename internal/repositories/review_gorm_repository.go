package repositories

import (
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListBySeller retrieves a seller's reviews together with the author's
// display fields, newest first, resolved in a single joined query.
func (r *GORMReviewRepository) ListBySeller(sellerID string) ([]models.ReviewWithAuthor, error) {
	rows := make([]models.ReviewWithAuthor, 0)
	err := r.db.Model(&models.Review{}).
		Select("reviews.*, profiles.full_name AS author_name, profiles.avatar_url AS author_avatar").
		Joins("LEFT JOIN profiles ON profiles.id = reviews.user_id").
		Where("reviews.seller_id = ?", sellerID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for seller %s: %w", sellerID, err)
	}
	return rows, nil
}
