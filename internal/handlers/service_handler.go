package handlers

import (
	"salon/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ServiceHandler handles HTTP requests for salon services.
type ServiceHandler struct {
	service *services.ServiceService
	log     zerolog.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(service *services.ServiceService, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the service routes on router.
func (h *ServiceHandler) RegisterRoutes(router fiber.Router) {
	serviceRoutes := router.Group("/services")
	serviceRoutes.Get("/", h.HandleGetServices)
	serviceRoutes.Get("/:id", h.HandleGetServiceByID)
	serviceRoutes.Post("/", h.HandleCreateService)
	serviceRoutes.Put("/:id", h.HandleUpdateService)
	serviceRoutes.Delete("/:id", h.HandleDeleteService)
}

// HandleGetServices lists every service.
func (h *ServiceHandler) HandleGetServices(c *fiber.Ctx) error {
	list, err := h.service.GetAllServices()
	if err != nil {
		h.log.Error().Err(err).Msg("list services")
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

// HandleGetServiceByID returns one service.
func (h *ServiceHandler) HandleGetServiceByID(c *fiber.Ctx) error {
	id := c.Params("id")
	svc, err := h.service.GetServiceByID(id)
	if err != nil {
		status := statusFor(err, fiber.StatusInternalServerError)
		if status == fiber.StatusNotFound {
			return respondError(c, status, "Service not found")
		}
		h.log.Error().Err(err).Str("id", id).Msg("get service")
		return respondError(c, status, err.Error())
	}
	return c.JSON(svc)
}

// HandleCreateService creates a service from the JSON body.
func (h *ServiceHandler) HandleCreateService(c *fiber.Ctx) error {
	var input services.ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	created, err := h.service.CreateService(input)
	if err != nil {
		h.log.Warn().Err(err).Msg("create service")
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateService applies a partial update.
func (h *ServiceHandler) HandleUpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var update services.ServiceUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	updated, err := h.service.UpdateService(id, update)
	if err != nil {
		status := statusFor(err, fiber.StatusBadRequest)
		if status == fiber.StatusNotFound {
			return respondError(c, status, "Service not found")
		}
		h.log.Warn().Err(err).Str("id", id).Msg("update service")
		return respondError(c, status, err.Error())
	}
	return c.JSON(updated)
}

// HandleDeleteService removes a service. Bookings referencing it are not touched.
func (h *ServiceHandler) HandleDeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteService(id); err != nil {
		status := statusFor(err, fiber.StatusInternalServerError)
		if status == fiber.StatusNotFound {
			return respondError(c, status, "Service not found")
		}
		h.log.Error().Err(err).Str("id", id).Msg("delete service")
		return respondError(c, status, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Service deleted successfully",
	})
}
