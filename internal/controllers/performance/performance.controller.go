package performanceController

import (
	"cinelog/internal/logger"
	"cinelog/internal/services"
	"context"
	"errors"
	"time"
)

const dayLayout = "2006-01-02"

var ErrValidation = errors.New("validation error")

type DailyScoreResponse struct {
	Date  string   `json:"date"`
	Score *float64 `json:"score"`
}

type PerformanceControllerInterface interface {
	DailyScore(ctx context.Context, dateParam string) (*DailyScoreResponse, error)
	PeriodScores(ctx context.Context, startParam, endParam string) (*services.PeriodReport, error)
}

type PerformanceController struct {
	performanceService *services.PerformanceService
	log                logger.Logger
}

func New(services services.Service) PerformanceControllerInterface {
	return &PerformanceController{
		performanceService: services.Performance,
		log:                logger.New("performanceController"),
	}
}

// DailyScore returns the WAR metric for one UTC calendar day. A day with no
// scorable recommendations reports a null score, not an error.
func (c *PerformanceController) DailyScore(
	ctx context.Context,
	dateParam string,
) (*DailyScoreResponse, error) {
	log := c.log.Function("DailyScore")

	date, err := parseDay(dateParam)
	if err != nil {
		return nil, err
	}

	score, err := c.performanceService.CalculateMetricForDayCached(ctx, date)
	if err != nil {
		return nil, log.Err("failed to calculate daily score", err, "date", dateParam)
	}

	return &DailyScoreResponse{Date: date.Format(dayLayout), Score: score}, nil
}

// PeriodScores returns the per-day scores and min/max/mean over an inclusive
// date range. An inverted range fails validation; a valid but empty report
// (nil) means no data.
func (c *PerformanceController) PeriodScores(
	ctx context.Context,
	startParam, endParam string,
) (*services.PeriodReport, error) {
	log := c.log.Function("PeriodScores")

	start, err := parseDay(startParam)
	if err != nil {
		return nil, err
	}

	end, err := parseDay(endParam)
	if err != nil {
		return nil, err
	}

	if end.Before(start) {
		return nil, ErrValidation
	}

	report, err := c.performanceService.WarOverPeriod(ctx, start, end)
	if err != nil {
		return nil, log.Err(
			"failed to calculate period scores",
			err,
			"start", startParam,
			"end", endParam,
		)
	}

	return report, nil
}

func parseDay(param string) (time.Time, error) {
	if param == "" {
		return time.Time{}, ErrValidation
	}

	date, err := time.ParseInLocation(dayLayout, param, time.UTC)
	if err != nil {
		return time.Time{}, ErrValidation
	}

	return date, nil
}
