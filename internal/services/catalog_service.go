package services

import (
	"log"

	"lumeno/internal/models"
	"lumeno/internal/repositories"
)

// CatalogService handles business logic for product, service, and category
// listings.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	serviceRepo  repositories.ServiceRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, serviceRepo repositories.ServiceRepository, categoryRepo repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

// BrowseProducts retrieves active products newest-first, optionally limited
// to organic produce or to a single seller's storefront.
func (s *CatalogService) BrowseProducts(organicOnly bool, sellerID string) ([]models.ProductWithSeller, error) {
	filter := repositories.ProductFilter{
		Status:      models.ProductStatusActive,
		OrganicOnly: organicOnly,
		SellerID:    sellerID,
	}
	return s.productRepo.ListWithSeller(filter, "products.created_at DESC", 0)
}

// TrendingProducts retrieves the most-viewed active products for discovery.
func (s *CatalogService) TrendingProducts(limit int) ([]models.ProductWithSeller, error) {
	filter := repositories.ProductFilter{Status: models.ProductStatusActive}
	return s.productRepo.ListWithSeller(filter, "products.views DESC", limit)
}

// ListProductsBySeller retrieves all of a seller's products regardless of
// status, for the dashboard.
func (s *CatalogService) ListProductsBySeller(sellerID string) ([]models.Product, error) {
	filter := repositories.ProductFilter{SellerID: sellerID}
	return s.productRepo.List(filter, "products.created_at DESC", 0)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct creates a new product listing owned by the seller.
func (s *CatalogService) CreateProduct(sellerID string, product *models.Product) error {
	if sellerID == "" {
		return ErrUnauthenticated
	}
	product.SellerID = sellerID
	return s.productRepo.Create(product)
}

// IncrementProductView bumps a product's view counter. Best-effort: a
// failure is logged and swallowed so it never blocks a page render.
func (s *CatalogService) IncrementProductView(productID string) {
	if err := s.productRepo.IncrementViews(productID); err != nil {
		log.Printf("Warning: failed to count view for product %s: %v", productID, err)
	}
}

// BrowseServices retrieves available services newest-first, optionally
// limited to a single provider's storefront.
func (s *CatalogService) BrowseServices(providerID string) ([]models.ServiceWithProvider, error) {
	filter := repositories.ServiceFilter{
		Status:     models.ServiceStatusAvailable,
		ProviderID: providerID,
	}
	return s.serviceRepo.ListWithProvider(filter, "services.created_at DESC", 0)
}

// PopularServices retrieves the highest-rated available services for
// discovery.
func (s *CatalogService) PopularServices(limit int) ([]models.ServiceWithProvider, error) {
	filter := repositories.ServiceFilter{Status: models.ServiceStatusAvailable}
	return s.serviceRepo.ListWithProvider(filter, "services.rating DESC", limit)
}

// ListServicesByProvider retrieves all of a provider's services regardless
// of status, for the dashboard.
func (s *CatalogService) ListServicesByProvider(providerID string) ([]models.Service, error) {
	filter := repositories.ServiceFilter{ProviderID: providerID}
	return s.serviceRepo.List(filter, "services.created_at DESC", 0)
}

// CreateService creates a new service listing owned by the provider.
func (s *CatalogService) CreateService(providerID string, service *models.Service) error {
	if providerID == "" {
		return ErrUnauthenticated
	}
	service.ProviderID = providerID
	return s.serviceRepo.Create(service)
}

// ListCategories retrieves browsing categories, optionally by type.
func (s *CatalogService) ListCategories(categoryType string) ([]models.Category, error) {
	return s.categoryRepo.List(categoryType)
}
