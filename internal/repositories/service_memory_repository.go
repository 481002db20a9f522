package repositories

import (
	"fmt"
	"sync"
	"time"

	"salon/internal/models"

	"github.com/google/uuid"
)

// MemoryServiceRepository is an in-memory implementation of ServiceRepository.
type MemoryServiceRepository struct {
	services map[string]models.Service
	order    []string
	mu       sync.RWMutex
}

// NewMemoryServiceRepository creates a new instance of MemoryServiceRepository.
func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{
		services: make(map[string]models.Service),
	}
}

// GetAll returns all services in insertion order.
func (r *MemoryServiceRepository) GetAll() ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serviceList := make([]models.Service, 0, len(r.order))
	for _, id := range r.order {
		serviceList = append(serviceList, r.services[id])
	}
	return serviceList, nil
}

// GetByID returns a service by its ID.
func (r *MemoryServiceRepository) GetByID(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service with ID %s: %w", id, ErrNotFound)
	}
	return &service, nil
}

// GetByIDs returns the services that exist among ids.
func (r *MemoryServiceRepository) GetByIDs(ids []string) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serviceList := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if service, ok := r.services[id]; ok {
			serviceList = append(serviceList, service)
		}
	}
	return serviceList, nil
}

// Create adds a new service.
func (r *MemoryServiceRepository) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	service.ID = uuid.New().String()
	service.CreatedAt = now
	service.UpdatedAt = now
	r.services[service.ID] = *service
	r.order = append(r.order, service.ID)
	return nil
}

// Update merges the non-zero fields of service into the stored record and
// fills service with the result.
func (r *MemoryServiceRepository) Update(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.services[service.ID]
	if !ok {
		return fmt.Errorf("service with ID %s: %w", service.ID, ErrNotFound)
	}
	if service.Name != "" {
		stored.Name = service.Name
	}
	if service.Price != 0 {
		stored.Price = service.Price
	}
	if service.Duration != 0 {
		stored.Duration = service.Duration
	}
	if service.Description != "" {
		stored.Description = service.Description
	}
	stored.UpdatedAt = time.Now()
	r.services[service.ID] = stored
	*service = stored
	return nil
}

// Delete removes a service by its ID.
func (r *MemoryServiceRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return fmt.Errorf("service with ID %s: %w", id, ErrNotFound)
	}
	delete(r.services, id)
	r.order = removeID(r.order, id)
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
