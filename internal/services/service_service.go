package services

import (
	"fmt"

	"salon/internal/models"
	"salon/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ServiceInput is the body accepted when creating a service.
// Numbers are pointers so that an explicit 0 counts as supplied.
type ServiceInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Duration    *int     `json:"duration" validate:"required"`
	Description string   `json:"description" validate:"required"`
}

// ServiceUpdate is the body accepted when updating a service.
// Zero values mean "not supplied", so 0 and "" never overwrite stored values.
type ServiceUpdate struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}

// ServiceService handles business logic related to salon services.
type ServiceService struct {
	repo     repositories.ServiceRepository
	events   EventPublisher
	validate *validator.Validate
	log      zerolog.Logger
}

// NewServiceService creates a new ServiceService. events may be nil.
func NewServiceService(repo repositories.ServiceRepository, events EventPublisher, log zerolog.Logger) *ServiceService {
	return &ServiceService{
		repo:     repo,
		events:   events,
		validate: newValidator(),
		log:      log,
	}
}

// GetAllServices retrieves all services.
func (s *ServiceService) GetAllServices() ([]models.Service, error) {
	return s.repo.GetAll()
}

// GetServiceByID retrieves a single service by its ID.
func (s *ServiceService) GetServiceByID(id string) (*models.Service, error) {
	return s.repo.GetByID(id)
}

// CreateService validates input and stores a new service.
func (s *ServiceService) CreateService(input ServiceInput) (*models.Service, error) {
	if err := validateInput(s.validate, "Service", input); err != nil {
		return nil, err
	}

	service := &models.Service{
		Name:        input.Name,
		Price:       *input.Price,
		Duration:    *input.Duration,
		Description: input.Description,
	}
	if err := s.repo.Create(service); err != nil {
		return nil, err
	}

	notify(s.events, s.log, "service", "created", EventServiceCreated, service)
	return service, nil
}

// UpdateService writes the non-zero fields of update to an existing service
// and returns the stored result.
func (s *ServiceService) UpdateService(id string, update ServiceUpdate) (*models.Service, error) {
	service := &models.Service{
		ID:          id,
		Name:        update.Name,
		Price:       update.Price,
		Duration:    update.Duration,
		Description: update.Description,
	}
	if err := s.repo.Update(service); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}

	notify(s.events, s.log, "service", "updated", EventServiceUpdated, service)
	return service, nil
}

// DeleteService deletes a service by its ID. Bookings that reference it are kept.
func (s *ServiceService) DeleteService(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	notify(s.events, s.log, "service", "deleted", EventServiceDeleted, map[string]string{"_id": id})
	return nil
}
