package models

import "time"

// CartItem holds a quantity of a product in a profile's cart. The unique
// (user, product) index keeps one row per pair; repeated adds accumulate
// the quantity instead of inserting duplicates.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItemWithProduct is the read model for the cart view, carrying product
// display fields resolved in one joined query.
type CartItemWithProduct struct {
	CartItem
	ProductTitle string  `json:"product_title"`
	ProductPrice float64 `json:"product_price"`
}
