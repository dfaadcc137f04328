package services_test

import (
	"testing"

	"lumeno/internal/models"
	"lumeno/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFollowRepository is a mock implementation of repositories.FollowRepository.
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) CreateEdge(followerID, sellerID string) error {
	args := m.Called(followerID, sellerID)
	return args.Error(0)
}

func (m *MockFollowRepository) DeleteEdge(followerID, sellerID string) (bool, error) {
	args := m.Called(followerID, sellerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Exists(followerID, sellerID string) (bool, error) {
	args := m.Called(followerID, sellerID)
	return args.Bool(0), args.Error(1)
}

// MockReviewRepository is a mock implementation of repositories.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListBySeller(sellerID string) ([]models.ReviewWithAuthor, error) {
	args := m.Called(sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewWithAuthor), args.Error(1)
}

func TestSocialService_ToggleFollow_StartsFollowing(t *testing.T) {
	followRepo := new(MockFollowRepository)
	service := services.NewSocialService(followRepo, new(MockReviewRepository))

	// No edge existed, so the toggle creates one.
	followRepo.On("DeleteEdge", "user-1", "seller-1").Return(false, nil)
	followRepo.On("CreateEdge", "user-1", "seller-1").Return(nil)

	following, err := service.ToggleFollow("user-1", "seller-1")

	assert.NoError(t, err)
	assert.True(t, following)
	followRepo.AssertExpectations(t)
}

func TestSocialService_ToggleFollow_StopsFollowing(t *testing.T) {
	followRepo := new(MockFollowRepository)
	service := services.NewSocialService(followRepo, new(MockReviewRepository))

	// The delete removed the edge, so no insert happens.
	followRepo.On("DeleteEdge", "user-1", "seller-1").Return(true, nil)

	following, err := service.ToggleFollow("user-1", "seller-1")

	assert.NoError(t, err)
	assert.False(t, following)
	followRepo.AssertNotCalled(t, "CreateEdge", mock.Anything, mock.Anything)
}

func TestSocialService_ToggleFollow_RoundTrip(t *testing.T) {
	followRepo := new(MockFollowRepository)
	service := services.NewSocialService(followRepo, new(MockReviewRepository))

	followRepo.On("DeleteEdge", "user-1", "seller-1").Return(false, nil).Once()
	followRepo.On("CreateEdge", "user-1", "seller-1").Return(nil).Once()
	followRepo.On("DeleteEdge", "user-1", "seller-1").Return(true, nil).Once()

	following, err := service.ToggleFollow("user-1", "seller-1")
	assert.NoError(t, err)
	assert.True(t, following)

	following, err = service.ToggleFollow("user-1", "seller-1")
	assert.NoError(t, err)
	assert.False(t, following)
	followRepo.AssertExpectations(t)
}

func TestSocialService_ToggleFollow_Unauthenticated(t *testing.T) {
	followRepo := new(MockFollowRepository)
	service := services.NewSocialService(followRepo, new(MockReviewRepository))

	following, err := service.ToggleFollow("", "seller-1")

	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	assert.False(t, following)
	followRepo.AssertNotCalled(t, "DeleteEdge", mock.Anything, mock.Anything)
}

func TestSocialService_IsFollowing_Anonymous(t *testing.T) {
	followRepo := new(MockFollowRepository)
	service := services.NewSocialService(followRepo, new(MockReviewRepository))

	following, err := service.IsFollowing("", "seller-1")

	assert.NoError(t, err)
	assert.False(t, following)
	followRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestSocialService_CreateReview_Success(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	service := services.NewSocialService(new(MockFollowRepository), reviewRepo)

	review := &models.Review{SellerID: "seller-1", Rating: 5, Comment: "Great produce"}
	reviewRepo.On("Create", review).Return(nil)

	err := service.CreateReview("user-1", review)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", review.UserID)
	reviewRepo.AssertExpectations(t)
}

func TestSocialService_CreateReview_RatingOutOfRange(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	service := services.NewSocialService(new(MockFollowRepository), reviewRepo)

	for _, rating := range []int{0, -1, 6} {
		err := service.CreateReview("user-1", &models.Review{SellerID: "seller-1", Rating: rating})
		assert.Error(t, err, "rating %d must be rejected", rating)
	}
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSocialService_CreateReview_Unauthenticated(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	service := services.NewSocialService(new(MockFollowRepository), reviewRepo)

	err := service.CreateReview("", &models.Review{SellerID: "seller-1", Rating: 4})

	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything)
}
