package jobs

import (
	"cinelog/internal/logger"
	"cinelog/internal/services"
	"context"
	"time"
)

// DailyPerformanceJob computes and caches yesterday's WAR score once the day
// has closed.
type DailyPerformanceJob struct {
	performanceService *services.PerformanceService
	log                logger.Logger
	schedule           services.Schedule
}

func NewDailyPerformanceJob(
	performanceService *services.PerformanceService,
	schedule services.Schedule,
) *DailyPerformanceJob {
	log := logger.New("dailyPerformanceJob")
	log.Info("Creating new daily performance job", "schedule", schedule)

	return &DailyPerformanceJob{
		performanceService: performanceService,
		log:                log,
		schedule:           schedule,
	}
}

func (j *DailyPerformanceJob) Name() string {
	return "DailyPerformanceCalculation"
}

func (j *DailyPerformanceJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	log.Info("Starting daily performance calculation", "date", yesterday.Format("2006-01-02"))

	score, err := j.performanceService.CalculateMetricForDayCached(ctx, yesterday)
	if err != nil {
		return log.Err("daily performance calculation failed", err)
	}

	if score == nil {
		log.Info("No scorable recommendations for day", "date", yesterday.Format("2006-01-02"))
		return nil
	}

	log.Info(
		"Daily performance calculation completed",
		"date", yesterday.Format("2006-01-02"),
		"score", *score,
	)
	return nil
}

func (j *DailyPerformanceJob) Schedule() services.Schedule {
	return j.schedule
}
