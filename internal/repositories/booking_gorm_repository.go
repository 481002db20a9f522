package repositories

import (
	"errors"
	"fmt"
	"time"

	"salon/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// GetAll retrieves all bookings in creation order.
func (r *GORMBookingRepository) GetAll() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := r.db.Order("created_at ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to get all bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a single booking by its ID.
func (r *GORMBookingRepository) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking by ID %s: %w", id, err)
	}
	return &booking, nil
}

// Create inserts a new booking.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Time{}
	booking.UpdatedAt = time.Time{}
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update writes the non-zero fields of booking to the stored record with the
// same ID, then reloads booking with the stored result.
func (r *GORMBookingRepository) Update(booking *models.Booking) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(models.Booking{
		CustomerName: booking.CustomerName,
		Phone:        booking.Phone,
		ServiceID:    booking.ServiceID,
		Date:         booking.Date,
		UpdatedAt:    time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %s: %w", booking.ID, ErrNotFound)
	}
	stored, err := r.GetByID(booking.ID)
	if err != nil {
		return err
	}
	*booking = *stored
	return nil
}

// Delete removes a booking by its ID.
func (r *GORMBookingRepository) Delete(id string) error {
	res := r.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
