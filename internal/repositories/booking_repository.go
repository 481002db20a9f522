package repositories

import (
	"salon/internal/models"
)

// BookingRepository defines the interface for booking data access.
// Implementations persist only the service reference, never the embedded service.
type BookingRepository interface {
	GetAll() ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	Create(booking *models.Booking) error
	// Update writes only the non-zero fields of booking and fills it with the stored result.
	Update(booking *models.Booking) error
	Delete(id string) error
}
