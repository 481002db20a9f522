package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon/internal/repositories"
	"salon/internal/server"
	"salon/internal/services"
	"salon/pkg/client"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient serves the real API over in-memory repositories.
func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	serviceRepo := repositories.NewMemoryServiceRepository()
	bookingRepo := repositories.NewMemoryBookingRepository()
	app := server.New(server.Options{
		Services: services.NewServiceService(serviceRepo, nil, zerolog.Nop()),
		Bookings: services.NewBookingService(bookingRepo, serviceRepo, nil, zerolog.Nop()),
		Logger:   zerolog.Nop(),
	})

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return client.NewWithHTTPClient(srv.URL+"/", srv.Client())
}

func TestClient_ServiceOperations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	list, err := c.ListServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := c.CreateService(ctx, client.ServiceForm{Name: "Haircut", Price: 25, Duration: 30, Description: "Basic cut"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Haircut", created.Name)

	fetched, err := c.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	updated, err := c.UpdateService(ctx, created.ID, client.ServiceForm{Price: 35})
	require.NoError(t, err)
	assert.Equal(t, 35.0, updated.Price)
	assert.Equal(t, "Haircut", updated.Name)

	msg, err := c.DeleteService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Service deleted successfully", msg)

	_, err = c.GetService(ctx, created.ID)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Service not found", apiErr.Message)
}

func TestClient_BookingOperations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	svc, err := c.CreateService(ctx, client.ServiceForm{Name: "Haircut", Price: 25, Duration: 30, Description: "Basic cut"})
	require.NoError(t, err)

	booking, err := c.CreateBooking(ctx, client.BookingForm{
		CustomerName:    "Jane",
		Phone:           "555-1000",
		SelectedService: svc.ID,
		Date:            "2025-06-01T10:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, booking.SelectedService)
	assert.Equal(t, "Haircut", booking.SelectedService.Name)

	updated, err := c.UpdateBooking(ctx, booking.ID, client.BookingForm{Phone: "555-2000"})
	require.NoError(t, err)
	assert.Equal(t, "555-2000", updated.Phone)
	assert.Equal(t, "Jane", updated.CustomerName)

	_, err = c.DeleteService(ctx, svc.ID)
	require.NoError(t, err)

	fetched, err := c.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.SelectedService)

	list, err := c.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	msg, err := c.DeleteBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Booking deleted successfully", msg)

	_, err = c.DeleteBooking(ctx, booking.ID)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_ValidationErrorKeepsServerMessage(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CreateBooking(context.Background(), client.BookingForm{CustomerName: "Jane"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "phone")
}

func TestClient_NoRetryOnServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"connection refused"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.ListServices(context.Background())
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "connection refused", apiErr.Message)
	assert.Equal(t, 1, calls)
}

func TestClient_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).ListBookings(context.Background())
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_TruncatedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"mes`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).ListServices(context.Background())
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "failed to read error response")
}
