package services

import (
	"fmt"

	"salon/internal/models"
	"salon/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// BookingInput is the body accepted when creating a booking.
type BookingInput struct {
	CustomerName    string `json:"customerName" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	SelectedService string `json:"selectedService" validate:"required,uuid"`
	Date            string `json:"date" validate:"required"`
}

// BookingUpdate is the body accepted when updating a booking.
// Empty fields mean "not supplied".
type BookingUpdate struct {
	CustomerName    string `json:"customerName"`
	Phone           string `json:"phone"`
	SelectedService string `json:"selectedService" validate:"omitempty,uuid"`
	Date            string `json:"date"`
}

// BookingService handles business logic related to bookings.
// It reads services only to embed them in responses.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	events      EventPublisher
	validate    *validator.Validate
	log         zerolog.Logger
}

// NewBookingService creates a new BookingService. events may be nil.
func NewBookingService(bookingRepo repositories.BookingRepository, serviceRepo repositories.ServiceRepository, events EventPublisher, log zerolog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		events:      events,
		validate:    newValidator(),
		log:         log,
	}
}

// GetAllBookings retrieves all bookings with their services resolved.
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if err := s.resolveServices(bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBookingByID retrieves a single booking with its service resolved.
func (s *BookingService) GetBookingByID(id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveService(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CreateBooking validates input and stores a new booking.
// The referenced service is not required to exist.
func (s *BookingService) CreateBooking(input BookingInput) (*models.Booking, error) {
	if err := validateInput(s.validate, "Booking", input); err != nil {
		return nil, err
	}
	date, err := ParseBookingDate(input.Date)
	if err != nil {
		return nil, &ValidationError{Resource: "Booking", Fields: map[string]string{"date": err.Error()}}
	}

	booking := &models.Booking{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		ServiceID:    input.SelectedService,
		Date:         date,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}
	if err := s.resolveService(booking); err != nil {
		return nil, err
	}

	notify(s.events, s.log, "booking", "created", EventBookingCreated, bookingEvent(booking))
	return booking, nil
}

// UpdateBooking writes the non-empty fields of update to an existing booking
// and returns the stored result with its service resolved.
func (s *BookingService) UpdateBooking(id string, update BookingUpdate) (*models.Booking, error) {
	if _, err := s.bookingRepo.GetByID(id); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, "Booking", update); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:           id,
		CustomerName: update.CustomerName,
		Phone:        update.Phone,
		ServiceID:    update.SelectedService,
	}
	if update.Date != "" {
		date, err := ParseBookingDate(update.Date)
		if err != nil {
			return nil, &ValidationError{Resource: "Booking", Fields: map[string]string{"date": err.Error()}}
		}
		booking.Date = date
	}

	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if err := s.resolveService(booking); err != nil {
		return nil, err
	}

	notify(s.events, s.log, "booking", "updated", EventBookingUpdated, bookingEvent(booking))
	return booking, nil
}

// DeleteBooking deletes a booking by its ID.
func (s *BookingService) DeleteBooking(id string) error {
	if err := s.bookingRepo.Delete(id); err != nil {
		return err
	}
	notify(s.events, s.log, "booking", "deleted", EventBookingDeleted, map[string]string{"_id": id})
	return nil
}

// resolveService embeds the referenced service, leaving it nil when it no longer exists.
func (s *BookingService) resolveService(booking *models.Booking) error {
	bookings := []models.Booking{*booking}
	if err := s.resolveServices(bookings); err != nil {
		return err
	}
	booking.Service = bookings[0].Service
	return nil
}

// resolveServices embeds services for a batch of bookings with a single lookup.
func (s *BookingService) resolveServices(bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.ServiceID]; ok {
			continue
		}
		seen[b.ServiceID] = struct{}{}
		ids = append(ids, b.ServiceID)
	}

	found, err := s.serviceRepo.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to resolve booking services: %w", err)
	}
	byID := make(map[string]models.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	for i := range bookings {
		bookings[i].Service = nil
		if svc, ok := byID[bookings[i].ServiceID]; ok {
			svc := svc
			bookings[i].Service = &svc
		}
	}
	return nil
}

// bookingEvent is the event payload: the stored reference plus the resolved service name.
func bookingEvent(b *models.Booking) map[string]interface{} {
	payload := map[string]interface{}{
		"_id":             b.ID,
		"customerName":    b.CustomerName,
		"phone":           b.Phone,
		"selectedService": b.ServiceID,
		"date":            b.Date,
	}
	if b.Service != nil {
		payload["serviceName"] = b.Service.Name
	}
	return payload
}
