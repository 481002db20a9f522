package repositories

import (
	"fmt"
	"sync"
	"time"

	"salon/internal/models"

	"github.com/google/uuid"
)

// MemoryBookingRepository is an in-memory implementation of BookingRepository.
type MemoryBookingRepository struct {
	bookings map[string]models.Booking
	order    []string
	mu       sync.RWMutex
}

// NewMemoryBookingRepository creates a new instance of MemoryBookingRepository.
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[string]models.Booking),
	}
}

// GetAll returns all bookings in insertion order.
func (r *MemoryBookingRepository) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookingList := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		bookingList = append(bookingList, r.bookings[id])
	}
	return bookingList, nil
}

// GetByID returns a booking by its ID.
func (r *MemoryBookingRepository) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with ID %s: %w", id, ErrNotFound)
	}
	return &booking, nil
}

// Create adds a new booking.
func (r *MemoryBookingRepository) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	booking.ID = uuid.New().String()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = stripService(*booking)
	r.order = append(r.order, booking.ID)
	return nil
}

// Update merges the non-zero fields of booking into the stored record and
// fills booking with the result.
func (r *MemoryBookingRepository) Update(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[booking.ID]
	if !ok {
		return fmt.Errorf("booking with ID %s: %w", booking.ID, ErrNotFound)
	}
	if booking.CustomerName != "" {
		stored.CustomerName = booking.CustomerName
	}
	if booking.Phone != "" {
		stored.Phone = booking.Phone
	}
	if booking.ServiceID != "" {
		stored.ServiceID = booking.ServiceID
	}
	if !booking.Date.IsZero() {
		stored.Date = booking.Date
	}
	stored.UpdatedAt = time.Now()
	r.bookings[booking.ID] = stored
	*booking = stored
	return nil
}

// Delete removes a booking by its ID.
func (r *MemoryBookingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking with ID %s: %w", id, ErrNotFound)
	}
	delete(r.bookings, id)
	r.order = removeID(r.order, id)
	return nil
}

// stripService drops the resolved service so only the reference is stored.
func stripService(b models.Booking) models.Booking {
	b.Service = nil
	return b
}
