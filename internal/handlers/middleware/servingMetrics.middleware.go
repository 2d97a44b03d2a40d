package middleware

import (
	"cinelog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TrackServing records every completed request on the serving-metrics
// counters, after the handler has produced its response.
func (m *Middleware) TrackServing(metrics *services.ServingMetricsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.Record(c.Response().StatusCode(), c.Response().Body())
		return err
	}
}
