package repositories

import (
	"errors"
	"fmt"
	"time"

	"salon/internal/models"

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

// GetAll retrieves all services in creation order.
func (r *GORMServiceRepository) GetAll() ([]models.Service, error) {
	services := make([]models.Service, 0)
	if err := r.db.Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}
	return services, nil
}

// GetByID retrieves a single service by its ID.
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

// GetByIDs retrieves every existing service whose ID is in ids.
func (r *GORMServiceRepository) GetByIDs(ids []string) ([]models.Service, error) {
	services := make([]models.Service, 0, len(ids))
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get services by IDs: %w", err)
	}
	return services, nil
}

// Create inserts a new service. The ID and timestamps are always generated here.
func (r *GORMServiceRepository) Create(service *models.Service) error {
	service.ID = uuid.New().String()
	service.CreatedAt = time.Time{}
	service.UpdatedAt = time.Time{}
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update writes the non-zero fields of service to the stored record with the
// same ID, then reloads service with the stored result.
func (r *GORMServiceRepository) Update(service *models.Service) error {
	res := r.db.Model(&models.Service{}).Where("id = ?", service.ID).Updates(models.Service{
		Name:        service.Name,
		Price:       service.Price,
		Duration:    service.Duration,
		Description: service.Description,
		UpdatedAt:   time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service with ID %s: %w", service.ID, ErrNotFound)
	}
	stored, err := r.GetByID(service.ID)
	if err != nil {
		return err
	}
	*service = *stored
	return nil
}

// Delete removes a service by its ID. Bookings referencing it are left untouched.
func (r *GORMServiceRepository) Delete(id string) error {
	res := r.db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
