package repositories

import "lumeno/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	ListBySeller(sellerID string) ([]models.OrderWithBuyer, error)
	UpdateStatus(id string, status models.OrderStatus) error
}
