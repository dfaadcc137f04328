package models

import "gorm.io/gorm"

// Review is feedback authored by a profile about a seller, optionally tied
// to a specific product, service, or order.
type Review struct {
	ID        string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string   `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	SellerID  string   `json:"seller_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID string   `json:"product_id,omitempty" gorm:"type:varchar(36)"`
	ServiceID string   `json:"service_id,omitempty" gorm:"type:varchar(36)"`
	OrderID   string   `json:"order_id,omitempty" gorm:"type:varchar(36)"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment" validate:"omitempty,max=2000"`
	Images    []string `json:"images" gorm:"serializer:json"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ReviewWithAuthor is the read model for review lists, carrying the
// author's display fields resolved in one joined query.
type ReviewWithAuthor struct {
	Review
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
}
