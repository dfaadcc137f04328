package repositories

import "lumeno/internal/models"

// ServiceFilter narrows a service listing query. Zero values mean "no
// constraint".
type ServiceFilter struct {
	Status     string
	ProviderID string
}

// ServiceRepository defines the interface for service data access.
type ServiceRepository interface {
	List(filter ServiceFilter, orderBy string, limit int) ([]models.Service, error)
	ListWithProvider(filter ServiceFilter, orderBy string, limit int) ([]models.ServiceWithProvider, error)
	GetByID(id string) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
}
