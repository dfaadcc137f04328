package repositories

import "lumeno/internal/models"

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	ListByProvider(providerID string) ([]models.BookingWithDetails, error)
}
