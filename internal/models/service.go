package models

import (
	"strconv"

	"gorm.io/gorm"
)

// Pricing variants for a service listing. Only the numeric field matching
// PricingType carries meaning; the others are ignored.
const (
	PricingHourly     = "hourly"
	PricingFixed      = "fixed"
	PricingNegotiable = "negotiable"
)

// ServiceStatusAvailable marks a service as bookable.
const ServiceStatusAvailable = "available"

// Service is a bookable skill offering owned by a provider profile.
type Service struct {
	ID              string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProviderID      string   `json:"provider_id" gorm:"index;type:varchar(36)"`
	CategoryID      string   `json:"category_id,omitempty" gorm:"type:varchar(36)"`
	Title           string   `json:"title" validate:"required,min=3,max=100"`
	Description     string   `json:"description" validate:"omitempty,max=1000"`
	PricingType     string   `json:"pricing_type" gorm:"type:varchar(20);default:hourly" validate:"omitempty,oneof=hourly fixed negotiable"`
	PricePerHour    float64  `json:"price_per_hour" validate:"gte=0"`
	FixedPrice      float64  `json:"fixed_price" validate:"gte=0"`
	Skills          []string `json:"skills" gorm:"serializer:json"`
	PortfolioImages []string `json:"portfolio_images" gorm:"serializer:json"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating"`
	TotalOrders     int      `json:"total_orders"`
	Status          string   `json:"status" gorm:"type:varchar(20);default:available"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ServiceWithProvider is the read model for listings that show the
// provider's display name next to the service.
type ServiceWithProvider struct {
	Service
	ProviderName string `json:"provider_name"`
}

// DisplayPrice resolves the price label for the listing's pricing variant:
// "25/hr" for hourly, "40" for fixed, "Negotiable" otherwise.
func (s *Service) DisplayPrice() string {
	switch s.PricingType {
	case PricingHourly:
		return strconv.FormatFloat(s.PricePerHour, 'f', -1, 64) + "/hr"
	case PricingFixed:
		return strconv.FormatFloat(s.FixedPrice, 'f', -1, 64)
	default:
		return "Negotiable"
	}
}
