package services

import (
	"fmt"

	"lumeno/internal/models"
	"lumeno/internal/repositories"
)

// SocialService handles business logic for seller follows and reviews.
type SocialService struct {
	followRepo repositories.FollowRepository
	reviewRepo repositories.ReviewRepository
}

// NewSocialService creates a new SocialService.
func NewSocialService(followRepo repositories.FollowRepository, reviewRepo repositories.ReviewRepository) *SocialService {
	return &SocialService{
		followRepo: followRepo,
		reviewRepo: reviewRepo,
	}
}

// ToggleFollow flips the follower -> seller edge and returns the new
// following state. The delete is conditional on its own row count, so two
// concurrent toggles cannot leave duplicate edges.
func (s *SocialService) ToggleFollow(followerID, sellerID string) (bool, error) {
	if followerID == "" {
		return false, ErrUnauthenticated
	}

	deleted, err := s.followRepo.DeleteEdge(followerID, sellerID)
	if err != nil {
		return false, err
	}
	if deleted {
		return false, nil
	}

	if err := s.followRepo.CreateEdge(followerID, sellerID); err != nil {
		return false, err
	}
	return true, nil
}

// IsFollowing reports whether the follower currently follows the seller.
// An anonymous visitor follows nobody.
func (s *SocialService) IsFollowing(followerID, sellerID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}
	return s.followRepo.Exists(followerID, sellerID)
}

// ListReviews retrieves a seller's reviews newest-first with author
// display fields.
func (s *SocialService) ListReviews(sellerID string) ([]models.ReviewWithAuthor, error) {
	return s.reviewRepo.ListBySeller(sellerID)
}

// CreateReview records feedback about a seller. The rating must fall in the
// 1..5 range.
func (s *SocialService) CreateReview(userID string, review *models.Review) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", review.Rating)
	}
	review.UserID = userID
	if err := s.reviewRepo.Create(review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}
