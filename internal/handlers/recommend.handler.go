package handlers

import (
	"cinelog/internal/app"
	recommendController "cinelog/internal/controllers/recommend"
	"cinelog/internal/logger"
	"cinelog/internal/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type RecommendHandler struct {
	Handler
	recommendController recommendController.RecommendControllerInterface
	servingMetrics      *services.ServingMetricsService
}

func NewRecommendHandler(app app.App, router fiber.Router) *RecommendHandler {
	log := logger.New("recommendHandler")
	return &RecommendHandler{
		recommendController: app.Controllers.Recommend,
		servingMetrics:      app.Services.ServingMetrics,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecommendHandler) Register() {
	h.router.Get(
		"/recommend/:userId",
		h.middleware.TrackServing(h.servingMetrics),
		h.recommendForUser,
	)
}

// recommendForUser serves the top-20 list as a plain comma-joined body, the
// wire contract the telemetry stream records back.
func (h *RecommendHandler) recommendForUser(c *fiber.Ctx) error {
	response, err := h.recommendController.RecommendForUser(
		c.UserContext(),
		c.Params("userId"),
	)
	if err != nil {
		if errors.Is(err, recommendController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).SendString("invalid user id")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("recommendation failed")
	}

	return c.SendString(response)
}
