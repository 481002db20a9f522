package handlers

import (
	"salon/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service *services.BookingService
	log     zerolog.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the booking routes on router.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Get("/", h.HandleGetBookings)
	bookingRoutes.Get("/:id", h.HandleGetBookingByID)
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Put("/:id", h.HandleUpdateBooking)
	bookingRoutes.Delete("/:id", h.HandleDeleteBooking)
}

// HandleGetBookings lists every booking with its service embedded.
func (h *BookingHandler) HandleGetBookings(c *fiber.Ctx) error {
	bookings, err := h.service.GetAllBookings()
	if err != nil {
		h.log.Error().Err(err).Msg("list bookings")
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(bookings)
}

// HandleGetBookingByID returns one booking with its service embedded.
func (h *BookingHandler) HandleGetBookingByID(c *fiber.Ctx) error {
	id := c.Params("id")
	booking, err := h.service.GetBookingByID(id)
	if err != nil {
		status := statusFor(err, fiber.StatusInternalServerError)
		if status == fiber.StatusNotFound {
			return respondError(c, status, "Booking not found")
		}
		h.log.Error().Err(err).Str("id", id).Msg("get booking")
		return respondError(c, status, err.Error())
	}
	return c.JSON(booking)
}

// HandleCreateBooking creates a booking. selectedService carries the service ID.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var input services.BookingInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	created, err := h.service.CreateBooking(input)
	if err != nil {
		h.log.Warn().Err(err).Msg("create booking")
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateBooking applies a partial update.
func (h *BookingHandler) HandleUpdateBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var update services.BookingUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	updated, err := h.service.UpdateBooking(id, update)
	if err != nil {
		status := statusFor(err, fiber.StatusBadRequest)
		if status == fiber.StatusNotFound {
			return respondError(c, status, "Booking not found")
		}
		h.log.Warn().Err(err).Str("id", id).Msg("update booking")
		return respondError(c, status, err.Error())
	}
	return c.JSON(updated)
}

// HandleDeleteBooking removes a booking.
func (h *BookingHandler) HandleDeleteBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteBooking(id); err != nil {
		status := statusFor(err, fiber.StatusInternalServerError)
		if status == fiber.StatusNotFound {
			return respondError(c, status, "Booking not found")
		}
		h.log.Error().Err(err).Str("id", id).Msg("delete booking")
		return respondError(c, status, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Booking deleted successfully",
	})
}
