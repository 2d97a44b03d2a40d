package jobs

import (
	"cinelog/config"
	"cinelog/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// Import schedule constants
const (
	Daily  = services.Daily
	Hourly = services.Hourly
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")
	log.Info("Registering jobs")

	dailyPerformanceJob := NewDailyPerformanceJob(
		services.Performance,
		Daily,
	)
	if err := schedulerService.AddJob(dailyPerformanceJob); err != nil {
		return log.Err("failed to register daily performance job", err)
	}
	log.Info("Registered daily performance job", "schedule", "daily")

	return nil
}
