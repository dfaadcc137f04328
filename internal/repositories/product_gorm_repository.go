package repositories

import (
	"errors"
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) applyFilter(filter ProductFilter) *gorm.DB {
	query := r.db.Model(&models.Product{})
	if filter.Status != "" {
		query = query.Where("products.status = ?", filter.Status)
	}
	if filter.OrganicOnly {
		query = query.Where("products.is_organic = ?", true)
	}
	if filter.SellerID != "" {
		query = query.Where("products.seller_id = ?", filter.SellerID)
	}
	return query
}

// List retrieves products matching the filter. An empty result is a valid
// success value, never an error.
func (r *GORMProductRepository) List(filter ProductFilter, orderBy string, limit int) ([]models.Product, error) {
	products := make([]models.Product, 0)
	query := r.applyFilter(filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListWithSeller retrieves products matching the filter together with the
// seller's display name, resolved in a single joined query.
func (r *GORMProductRepository) ListWithSeller(filter ProductFilter, orderBy string, limit int) ([]models.ProductWithSeller, error) {
	rows := make([]models.ProductWithSeller, 0)
	query := r.applyFilter(filter).
		Select("products.*, profiles.full_name AS seller_name").
		Joins("LEFT JOIN profiles ON profiles.id = products.seller_id")
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products with seller: %w", err)
	}
	return rows, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// IncrementViews bumps the product's view counter in place.
func (r *GORMProductRepository) IncrementViews(id string) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment views for product %s: %w", id, res.Error)
	}
	return nil
}
