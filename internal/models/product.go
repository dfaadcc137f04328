package models

import "gorm.io/gorm"

// ProductStatusActive marks a product as visible in browse and discover
// listings. Any other status retires the listing.
const ProductStatusActive = "active"

// Product is a physical good listed by exactly one seller profile.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SellerID    string  `json:"seller_id" gorm:"index;type:varchar(36)"`
	CategoryID  string  `json:"category_id,omitempty" gorm:"type:varchar(36)"`
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Location    string  `json:"location"`
	IsOrganic   bool    `json:"is_organic"`
	Status      string  `json:"status" gorm:"type:varchar(20);default:active"`
	Views       int64   `json:"views"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductWithSeller is the read model for listings that show the seller's
// display name next to the product.
type ProductWithSeller struct {
	Product
	SellerName string `json:"seller_name"`
}
