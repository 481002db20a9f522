package repositories

import (
	"salon/internal/models"
)

// ServiceRepository defines the interface for service data access.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	// GetByIDs returns the services that exist among ids. Missing ids are skipped.
	GetByIDs(ids []string) ([]models.Service, error)
	Create(service *models.Service) error
	// Update writes only the non-zero fields of service and fills it with the stored result.
	Update(service *models.Service) error
	Delete(id string) error
}
