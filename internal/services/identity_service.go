package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"lumeno/internal/models"
	"lumeno/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// IdentityService handles authentication, session tokens, and profile
// lifecycle. It is the only component that owns the session boundary; all
// other services receive the resolved user ID from their callers.
type IdentityService struct {
	profileRepo repositories.ProfileRepository
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(profileRepo repositories.ProfileRepository, jwtSecret string) *IdentityService {
	return &IdentityService{
		profileRepo: profileRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour, // Token valid for 24 hours
	}
}

// StoreSettings carries the seller-facing store fields a profile owner can
// edit from the dashboard.
type StoreSettings struct {
	StoreName        string `json:"store_name"`
	StoreDescription string `json:"store_description"`
	BannerURL        string `json:"banner_url"`
	ThemeColor       string `json:"theme_color"`
}

// Register creates a profile for a new user, hashing the password before it
// is stored.
func (s *IdentityService) Register(profile *models.Profile, password string) error {
	if existing, err := s.profileRepo.GetByEmail(profile.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", profile.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	profile.Password = string(hashedPassword)

	if err := s.profileRepo.Create(profile); err != nil {
		return fmt.Errorf("failed to register profile: %w", err)
	}
	return nil
}

// Login authenticates a profile by email and returns a JWT token.
func (s *IdentityService) Login(email, password string) (string, error) {
	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   profile.ID,
		"full_name": profile.FullName,
		"exp":       time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":       time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *IdentityService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GetProfile retrieves a profile by its ID.
func (s *IdentityService) GetProfile(id string) (*models.Profile, error) {
	return s.profileRepo.GetByID(id)
}

// EnsureSellerFlag marks the profile as a seller. Idempotent: the write is
// skipped when the flag is already set.
func (s *IdentityService) EnsureSellerFlag(profileID string) error {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return err
	}
	if profile.IsSeller {
		return nil
	}
	if err := s.profileRepo.UpdateFields(profileID, map[string]interface{}{"is_seller": true}); err != nil {
		return fmt.Errorf("failed to set seller flag for profile %s: %w", profileID, err)
	}
	return nil
}

// UpdateStoreSettings updates the store fields of a seller profile.
func (s *IdentityService) UpdateStoreSettings(profileID string, settings StoreSettings) error {
	if profileID == "" {
		return ErrUnauthenticated
	}
	err := s.profileRepo.UpdateFields(profileID, map[string]interface{}{
		"store_name":        settings.StoreName,
		"store_description": settings.StoreDescription,
		"banner_url":        settings.BannerURL,
		"theme_color":       settings.ThemeColor,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update store settings: %w", err)
	}
	return nil
}

// TopSellers retrieves the highest-rated seller profiles for discovery.
func (s *IdentityService) TopSellers(limit int) ([]models.Profile, error) {
	return s.profileRepo.ListSellers("seller_rating DESC", limit)
}

// NearbySellers retrieves seller profiles for the near-me view. Geolocation
// happens on the client; the coordinates only scope future distance ranking
// and are not used for filtering here.
func (s *IdentityService) NearbySellers(limit int) ([]models.Profile, error) {
	return s.profileRepo.ListSellers("created_at DESC", limit)
}
