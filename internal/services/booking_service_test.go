package services_test

import (
	"errors"
	"testing"
	"time"

	"salon/internal/models"
	"salon/internal/repositories"
	"salon/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	haircutID = "0b8f5a3e-7c43-4c59-9a55-0f1c2d3e4f50"
	colorID   = "6f1e2d3c-4b5a-4978-8695-a4b3c2d1e0f9"
)

var haircut = models.Service{ID: haircutID, Name: "Haircut", Price: 25, Duration: 30, Description: "Basic cut"}

func newBookingService() (*services.BookingService, *MockBookingRepository, *MockServiceRepository) {
	bookingRepo := new(MockBookingRepository)
	serviceRepo := new(MockServiceRepository)
	return services.NewBookingService(bookingRepo, serviceRepo, nil, zerolog.Nop()), bookingRepo, serviceRepo
}

func TestBookingService_GetAllBookingsResolvesServices(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()

	bookingRepo.On("GetAll").Return([]models.Booking{
		{ID: "b1", CustomerName: "Jane", ServiceID: haircutID},
		{ID: "b2", CustomerName: "John", ServiceID: colorID},
		{ID: "b3", CustomerName: "Ann", ServiceID: haircutID},
	}, nil).Once()
	// One batched lookup with unique IDs; colorID is dangling.
	serviceRepo.On("GetByIDs", []string{haircutID, colorID}).Return([]models.Service{haircut}, nil).Once()

	bookings, err := service.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	require.NotNil(t, bookings[0].Service)
	assert.Equal(t, "Haircut", bookings[0].Service.Name)
	assert.Nil(t, bookings[1].Service)
	require.NotNil(t, bookings[2].Service)
	assert.Equal(t, haircutID, bookings[2].Service.ID)
	bookingRepo.AssertExpectations(t)
	serviceRepo.AssertExpectations(t)
}

func TestBookingService_GetAllBookingsEmpty(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()
	bookingRepo.On("GetAll").Return([]models.Booking{}, nil).Once()

	bookings, err := service.GetAllBookings()
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	serviceRepo.AssertNotCalled(t, "GetByIDs", mock.Anything)
}

func TestBookingService_GetAllBookingsStoreError(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()
	bookingRepo.On("GetAll").Return([]models.Booking{{ID: "b1", ServiceID: haircutID}}, nil).Once()
	serviceRepo.On("GetByIDs", []string{haircutID}).Return(nil, errors.New("connection reset")).Once()

	_, err := service.GetAllBookings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBookingService_GetBookingByID(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()

	bookingRepo.On("GetByID", "b1").Return(&models.Booking{ID: "b1", ServiceID: haircutID}, nil).Once()
	serviceRepo.On("GetByIDs", []string{haircutID}).Return([]models.Service{haircut}, nil).Once()

	booking, err := service.GetBookingByID("b1")
	require.NoError(t, err)
	require.NotNil(t, booking.Service)
	assert.Equal(t, haircut, *booking.Service)

	bookingRepo.On("GetByID", "missing").Return(nil, notFound("booking", "missing")).Once()
	_, err = service.GetBookingByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestBookingService_CreateBooking(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	serviceRepo := new(MockServiceRepository)
	publisher := new(MockPublisher)
	service := services.NewBookingService(bookingRepo, serviceRepo, publisher, zerolog.Nop())

	bookingRepo.On("Create", mock.MatchedBy(func(b *models.Booking) bool {
		return b.ServiceID == haircutID && b.Date.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	})).Run(func(args mock.Arguments) { args.Get(0).(*models.Booking).ID = "b1" }).Return(nil).Once()
	serviceRepo.On("GetByIDs", []string{haircutID}).Return([]models.Service{haircut}, nil).Once()
	publisher.On("PublishEvent", services.EventBookingCreated, mock.Anything).Return(nil).Once()

	created, err := service.CreateBooking(services.BookingInput{
		CustomerName:    "Jane",
		Phone:           "555-1000",
		SelectedService: haircutID,
		Date:            "2025-06-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	require.NotNil(t, created.Service)
	assert.Equal(t, "Haircut", created.Service.Name)
	bookingRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestBookingService_CreateBookingWithUnknownService(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()
	bookingRepo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil).Once()
	serviceRepo.On("GetByIDs", []string{colorID}).Return([]models.Service{}, nil).Once()

	created, err := service.CreateBooking(services.BookingInput{
		CustomerName:    "Jane",
		Phone:           "555-1000",
		SelectedService: colorID,
		Date:            "2025-06-01",
	})
	require.NoError(t, err)
	assert.Nil(t, created.Service)
}

func TestBookingService_CreateBookingValidation(t *testing.T) {
	tests := []struct {
		name  string
		input services.BookingInput
		field string
	}{
		{"missing phone", services.BookingInput{CustomerName: "Jane", SelectedService: haircutID, Date: "2025-06-01"}, "phone"},
		{"missing name", services.BookingInput{Phone: "555", SelectedService: haircutID, Date: "2025-06-01"}, "customerName"},
		{"malformed service", services.BookingInput{CustomerName: "Jane", Phone: "555", SelectedService: "nope", Date: "2025-06-01"}, "selectedService"},
		{"missing date", services.BookingInput{CustomerName: "Jane", Phone: "555", SelectedService: haircutID}, "date"},
		{"bad date", services.BookingInput{CustomerName: "Jane", Phone: "555", SelectedService: haircutID, Date: "next tuesday"}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, _ := newBookingService()
			_, err := service.CreateBooking(tt.input)

			var validationErr *services.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Fields, tt.field)
			bookingRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

// storeBookingUpdate makes the mock repository behave like a real store:
// non-zero fields of the argument are merged into stored and the result written back.
func storeBookingUpdate(stored models.Booking) func(mock.Arguments) {
	return func(args mock.Arguments) {
		b := args.Get(0).(*models.Booking)
		result := stored
		if b.CustomerName != "" {
			result.CustomerName = b.CustomerName
		}
		if b.Phone != "" {
			result.Phone = b.Phone
		}
		if b.ServiceID != "" {
			result.ServiceID = b.ServiceID
		}
		if !b.Date.IsZero() {
			result.Date = b.Date
		}
		*b = result
	}
}

func TestBookingService_UpdateBookingPartial(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()

	date := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	stored := models.Booking{ID: "b1", CustomerName: "Jane", Phone: "555-1000", ServiceID: haircutID, Date: date}
	bookingRepo.On("GetByID", "b1").Return(&stored, nil).Once()
	onlyPhone := mock.MatchedBy(func(b *models.Booking) bool {
		return b.ID == "b1" && b.Phone == "555-2000" && b.CustomerName == "" && b.ServiceID == "" && b.Date.IsZero()
	})
	bookingRepo.On("Update", onlyPhone).Run(storeBookingUpdate(stored)).Return(nil).Once()
	serviceRepo.On("GetByIDs", []string{haircutID}).Return([]models.Service{haircut}, nil).Once()

	updated, err := service.UpdateBooking("b1", services.BookingUpdate{Phone: "555-2000", CustomerName: ""})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.CustomerName)
	assert.Equal(t, "555-2000", updated.Phone)
	assert.Equal(t, haircutID, updated.ServiceID)
	assert.True(t, date.Equal(updated.Date))
	require.NotNil(t, updated.Service)
	bookingRepo.AssertExpectations(t)
}

func TestBookingService_UpdateBookingChangesServiceAndDate(t *testing.T) {
	service, bookingRepo, serviceRepo := newBookingService()

	stored := models.Booking{ID: "b1", ServiceID: haircutID}
	bookingRepo.On("GetByID", "b1").Return(&stored, nil).Once()
	bookingRepo.On("Update", mock.AnythingOfType("*models.Booking")).Run(storeBookingUpdate(stored)).Return(nil).Once()
	serviceRepo.On("GetByIDs", []string{colorID}).Return([]models.Service{}, nil).Once()

	updated, err := service.UpdateBooking("b1", services.BookingUpdate{SelectedService: colorID, Date: "2025-07-15T09:30"})
	require.NoError(t, err)
	assert.Equal(t, colorID, updated.ServiceID)
	assert.Equal(t, time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC), updated.Date)
	assert.Nil(t, updated.Service)
}

func TestBookingService_UpdateBookingErrors(t *testing.T) {
	service, bookingRepo, _ := newBookingService()

	bookingRepo.On("GetByID", "missing").Return(nil, notFound("booking", "missing")).Once()
	_, err := service.UpdateBooking("missing", services.BookingUpdate{Phone: "1"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	bookingRepo.On("GetByID", "b1").Return(&models.Booking{ID: "b1", ServiceID: haircutID}, nil)
	_, err = service.UpdateBooking("b1", services.BookingUpdate{SelectedService: "not-an-id"})
	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	_, err = service.UpdateBooking("b1", services.BookingUpdate{Date: "soon"})
	assert.True(t, errors.As(err, &validationErr))
	bookingRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	service, bookingRepo, _ := newBookingService()

	bookingRepo.On("Delete", "b1").Return(nil).Once()
	assert.NoError(t, service.DeleteBooking("b1"))

	bookingRepo.On("Delete", "b1").Return(notFound("booking", "b1")).Once()
	assert.ErrorIs(t, service.DeleteBooking("b1"), repositories.ErrNotFound)
	bookingRepo.AssertExpectations(t)
}
