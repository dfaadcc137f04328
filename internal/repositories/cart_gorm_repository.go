package repositories

import (
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// AddOrIncrement inserts a cart row, or accumulates the quantity onto the
// existing (user, product) row in a single atomic upsert.
func (r *GORMCartRepository) AddOrIncrement(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to add product %s to cart: %w", item.ProductID, err)
	}
	return nil
}

// ListByUser retrieves a user's cart together with product display fields,
// resolved in a single joined query.
func (r *GORMCartRepository) ListByUser(userID string) ([]models.CartItemWithProduct, error) {
	rows := make([]models.CartItemWithProduct, 0)
	err := r.db.Model(&models.CartItem{}).
		Select("cart_items.*, products.title AS product_title, products.price AS product_price").
		Joins("LEFT JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart for user %s: %w", userID, err)
	}
	return rows, nil
}
