package services_test

import (
	"salon/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockServiceRepository is a mock implementation of repositories.ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetAll() ([]models.Service, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(id string) (*models.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByIDs(ids []string) ([]models.Service, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(service *models.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(service *models.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBookingRepository is a mock implementation of repositories.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetAll() ([]models.Booking, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(eventType string, payload interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}
