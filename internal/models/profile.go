package models

import "gorm.io/gorm"

// Profile represents a person or business account. A profile can act as a
// buyer, a seller, or a service provider; IsSeller flips to true the first
// time the owner opens the seller dashboard.
type Profile struct {
	ID               string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FullName         string  `json:"full_name" validate:"required,min=2,max=100"`
	Email            string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password         string  `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Bio              string  `json:"bio"`
	AvatarURL        string  `json:"avatar_url"`
	Phone            string  `json:"phone"`
	UserType         string  `json:"user_type"`
	IsSeller         bool    `json:"is_seller"`
	IsVerified       bool    `json:"is_verified"`
	StoreName        string  `json:"store_name"`
	StoreDescription string  `json:"store_description"`
	BannerURL        string  `json:"banner_url"`
	ThemeColor       string  `json:"theme_color"`
	SellerRating     float64 `json:"seller_rating"`
	TotalReviews     int     `json:"total_reviews"`
	Location         string  `json:"location"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Country          string  `json:"country"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
