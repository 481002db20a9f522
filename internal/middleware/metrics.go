package middleware

import (
	"time"

	"salon/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency labelled by the matched route pattern.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
