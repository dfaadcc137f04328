package repositories

import (
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFollowRepository is a GORM implementation of FollowRepository.
type GORMFollowRepository struct {
	db *gorm.DB
}

// NewGORMFollowRepository creates a new instance of GORMFollowRepository.
func NewGORMFollowRepository(db *gorm.DB) *GORMFollowRepository {
	return &GORMFollowRepository{
		db: db,
	}
}

// CreateEdge inserts a follower -> seller edge. The unique pair index
// rejects duplicates from concurrent callers.
func (r *GORMFollowRepository) CreateEdge(followerID, sellerID string) error {
	edge := models.SellerFollow{
		ID:         uuid.New().String(),
		FollowerID: followerID,
		SellerID:   sellerID,
	}
	if err := r.db.Create(&edge).Error; err != nil {
		return fmt.Errorf("failed to follow seller %s: %w", sellerID, err)
	}
	return nil
}

// DeleteEdge removes the edge keyed by the pair and reports whether a row
// was deleted.
func (r *GORMFollowRepository) DeleteEdge(followerID, sellerID string) (bool, error) {
	res := r.db.Where("follower_id = ? AND seller_id = ?", followerID, sellerID).
		Delete(&models.SellerFollow{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to unfollow seller %s: %w", sellerID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether the follower currently follows the seller.
func (r *GORMFollowRepository) Exists(followerID, sellerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SellerFollow{}).
		Where("follower_id = ? AND seller_id = ?", followerID, sellerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow state for seller %s: %w", sellerID, err)
	}
	return count > 0, nil
}
