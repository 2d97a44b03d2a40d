package performanceController_test

import (
	"context"
	"testing"

	performanceController "cinelog/internal/controllers/performance"
	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceController_Validation(t *testing.T) {
	controller := performanceController.New(services.Service{})
	ctx := context.Background()

	t.Run("empty date", func(t *testing.T) {
		_, err := controller.DailyScore(ctx, "")
		assert.ErrorIs(t, err, performanceController.ErrValidation)
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, err := controller.DailyScore(ctx, "20-08-2026")
		assert.ErrorIs(t, err, performanceController.ErrValidation)
	})

	t.Run("date with time component", func(t *testing.T) {
		_, err := controller.DailyScore(ctx, "2026-08-20T10:00:00")
		assert.ErrorIs(t, err, performanceController.ErrValidation)
	})

	t.Run("inverted period", func(t *testing.T) {
		_, err := controller.PeriodScores(ctx, "2026-08-20", "2026-08-19")
		assert.ErrorIs(t, err, performanceController.ErrValidation)
	})

	t.Run("bad period bound", func(t *testing.T) {
		_, err := controller.PeriodScores(ctx, "2026-08-20", "next friday")
		assert.ErrorIs(t, err, performanceController.ErrValidation)
	})
}
