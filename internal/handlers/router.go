package handlers

import (
	"cinelog/internal/app"
	"cinelog/internal/handlers/middleware"
	"cinelog/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	NewRecommendHandler(*app, router).Register()

	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewTelemetryHandler(*app, api).Register()
	NewPerformanceHandler(*app, api).Register()

	return nil
}
