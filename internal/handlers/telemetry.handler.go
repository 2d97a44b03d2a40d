package handlers

import (
	"cinelog/internal/app"
	telemetryController "cinelog/internal/controllers/telemetry"
	"cinelog/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type TelemetryHandler struct {
	Handler
	telemetryController telemetryController.TelemetryControllerInterface
}

func NewTelemetryHandler(app app.App, router fiber.Router) *TelemetryHandler {
	log := logger.New("telemetryHandler")
	return &TelemetryHandler{
		telemetryController: app.Controllers.Telemetry,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TelemetryHandler) Register() {
	telemetry := h.router.Group("/telemetry")
	telemetry.Post("/", h.ingest)
}

// ingest accepts a newline-separated batch of raw access-log lines.
func (h *TelemetryHandler) ingest(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "empty telemetry body",
		})
	}

	result, err := h.telemetryController.IngestLines(c.UserContext(), c.Body())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "telemetry ingest failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
