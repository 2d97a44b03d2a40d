package handlers

import (
	"cinelog/internal/app"
	performanceController "cinelog/internal/controllers/performance"
	"cinelog/internal/logger"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type PerformanceHandler struct {
	Handler
	performanceController performanceController.PerformanceControllerInterface
}

func NewPerformanceHandler(app app.App, router fiber.Router) *PerformanceHandler {
	log := logger.New("performanceHandler")
	return &PerformanceHandler{
		performanceController: app.Controllers.Performance,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PerformanceHandler) Register() {
	performance := h.router.Group("/performance")
	performance.Get("/daily", h.dailyScore)
	performance.Get("/period", h.periodScores)
}

func (h *PerformanceHandler) dailyScore(c *fiber.Ctx) error {
	response, err := h.performanceController.DailyScore(
		c.UserContext(),
		c.Query("date"),
	)
	if err != nil {
		if errors.Is(err, performanceController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "date must be YYYY-MM-DD",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to calculate daily score",
		})
	}

	return c.JSON(response)
}

func (h *PerformanceHandler) periodScores(c *fiber.Ctx) error {
	report, err := h.performanceController.PeriodScores(
		c.UserContext(),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		if errors.Is(err, performanceController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end must be YYYY-MM-DD with start <= end",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to calculate period scores",
		})
	}

	if report == nil {
		return c.JSON(fiber.Map{"message": "no data for period"})
	}

	return c.JSON(report)
}
