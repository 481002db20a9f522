package server

import (
	"errors"
	"time"

	"salon/internal/handlers"
	"salon/internal/metrics"
	"salon/internal/middleware"
	"salon/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// LivenessText is returned by GET /.
const LivenessText = "Saloon Service Management API is running"

// Options carries everything the HTTP layer needs.
type Options struct {
	Services *services.ServiceService
	Bookings *services.BookingService
	Logger   zerolog.Logger

	CORSAllowOrigins string
	RateLimitRPS     float64
	RateLimitBurst   int
}

// New builds the Fiber app with middleware and all routes registered.
func New(opts Options) *fiber.App {
	metrics.Register()

	app := fiber.New(fiber.Config{
		AppName:      "salon-api",
		ErrorHandler: errorHandler,
	})

	allowOrigins := opts.CORSAllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(opts.Logger))
	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{AllowOrigins: allowOrigins}))
	app.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	api := app.Group("/api")
	handlers.NewServiceHandler(opts.Services, opts.Logger).RegisterRoutes(api)
	handlers.NewBookingHandler(opts.Bookings, opts.Logger).RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(LivenessText)
	})

	return app
}

// errorHandler keeps framework errors in the same {"message": ...} shape as handler errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
	})
}
