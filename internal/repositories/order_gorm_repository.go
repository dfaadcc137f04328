package repositories

import (
	"errors"
	"fmt"
	"time"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create creates a new order in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order by its ID from the database.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// ListBySeller retrieves a seller's orders together with the buyer's
// display name, newest first, resolved in a single joined query.
func (r *GORMOrderRepository) ListBySeller(sellerID string) ([]models.OrderWithBuyer, error) {
	rows := make([]models.OrderWithBuyer, 0)
	err := r.db.Model(&models.Order{}).
		Select("orders.*, profiles.full_name AS buyer_name").
		Joins("LEFT JOIN profiles ON profiles.id = orders.buyer_id").
		Where("orders.seller_id = ?", sellerID).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for seller %s: %w", sellerID, err)
	}
	return rows, nil
}

// UpdateStatus overwrites an order's status and mirrors it into the
// tracking status; delivery is stamped when the order reaches delivered.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	fields := map[string]interface{}{
		"status":          status,
		"tracking_status": string(status),
	}
	if status == models.OrderDelivered {
		fields["delivered_at"] = time.Now()
	}
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
