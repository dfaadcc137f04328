package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking schedules a service between a client profile and its provider.
type Booking struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProviderID    string    `json:"provider_id" gorm:"index;type:varchar(36)"`
	ServiceID     string    `json:"service_id" gorm:"type:varchar(36)" validate:"required"`
	BookingDate   time.Time `json:"booking_date" validate:"required"`
	DurationHours float64   `json:"duration_hours" validate:"gte=0"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status" gorm:"type:varchar(20);default:pending"`
	Notes         string    `json:"notes"`
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// BookingWithDetails is the read model for provider-facing booking lists,
// carrying the client name and service title resolved in one joined query.
type BookingWithDetails struct {
	Booking
	ClientName   string `json:"client_name"`
	ServiceTitle string `json:"service_title"`
}
