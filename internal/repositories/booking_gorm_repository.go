package repositories

import (
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create creates a new booking in the database.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = "pending"
	}
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListByProvider retrieves a provider's bookings together with the client
// name and service title, newest first, resolved in a single joined query.
func (r *GORMBookingRepository) ListByProvider(providerID string) ([]models.BookingWithDetails, error) {
	rows := make([]models.BookingWithDetails, 0)
	err := r.db.Model(&models.Booking{}).
		Select("bookings.*, profiles.full_name AS client_name, services.title AS service_title").
		Joins("LEFT JOIN profiles ON profiles.id = bookings.user_id").
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Where("bookings.provider_id = ?", providerID).
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for provider %s: %w", providerID, err)
	}
	return rows, nil
}
