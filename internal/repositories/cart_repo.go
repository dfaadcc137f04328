package repositories

import "lumeno/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	AddOrIncrement(item *models.CartItem) error
	ListByUser(userID string) ([]models.CartItemWithProduct, error)
}
