package repositories

import (
	"errors"
	"fmt"

	"lumeno/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMServiceRepository is a GORM implementation of ServiceRepository.
type GORMServiceRepository struct {
	db *gorm.DB
}

// NewGORMServiceRepository creates a new instance of GORMServiceRepository.
func NewGORMServiceRepository(db *gorm.DB) *GORMServiceRepository {
	return &GORMServiceRepository{
		db: db,
	}
}

func (r *GORMServiceRepository) applyFilter(filter ServiceFilter) *gorm.DB {
	query := r.db.Model(&models.Service{})
	if filter.Status != "" {
		query = query.Where("services.status = ?", filter.Status)
	}
	if filter.ProviderID != "" {
		query = query.Where("services.provider_id = ?", filter.ProviderID)
	}
	return query
}

// List retrieves services matching the filter. An empty result is a valid
// success value, never an error.
func (r *GORMServiceRepository) List(filter ServiceFilter, orderBy string, limit int) ([]models.Service, error) {
	services := make([]models.Service, 0)
	query := r.applyFilter(filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// ListWithProvider retrieves services matching the filter together with the
// provider's display name, resolved in a single joined query.
func (r *GORMServiceRepository) ListWithProvider(filter ServiceFilter, orderBy string, limit int) ([]models.ServiceWithProvider, error) {
	rows := make([]models.ServiceWithProvider, 0)
	query := r.applyFilter(filter).
		Select("services.*, profiles.full_name AS provider_name").
		Joins("LEFT JOIN profiles ON profiles.id = services.provider_id")
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list services with provider: %w", err)
	}
	return rows, nil
}

// GetByID retrieves a single service by its ID from the database.
func (r *GORMServiceRepository) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service by ID %s: %w", id, err)
	}
	return &service, nil
}

// Create creates a new service in the database.
func (r *GORMServiceRepository) Create(service *models.Service) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	if service.Status == "" {
		service.Status = models.ServiceStatusAvailable
	}
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update updates an existing service in the database.
func (r *GORMServiceRepository) Update(service *models.Service) error {
	res := r.db.Save(service)
	if res.Error != nil {
		return fmt.Errorf("failed to update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service with ID %s: %w", service.ID, ErrNotFound)
	}
	return nil
}
