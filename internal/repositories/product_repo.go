package repositories

import "lumeno/internal/models"

// ProductFilter narrows a product listing query. Zero values mean "no
// constraint".
type ProductFilter struct {
	Status      string
	OrganicOnly bool
	SellerID    string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter, orderBy string, limit int) ([]models.Product, error)
	ListWithSeller(filter ProductFilter, orderBy string, limit int) ([]models.ProductWithSeller, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	IncrementViews(id string) error
}
