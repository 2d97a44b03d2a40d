package services

import (
	"cinelog/config"
	"cinelog/internal/database"
	"cinelog/internal/repositories"
)

type Service struct {
	Telemetry      *TelemetryService
	Performance    *PerformanceService
	Recommender    *RecommenderService
	Scheduler      *SchedulerService
	ServingMetrics *ServingMetricsService
}

func New(db database.DB, config config.Config) (Service, error) {
	repos := repositories.New()

	telemetryService := NewTelemetryService(repos, db)
	performanceService := NewPerformanceService(repos, db, db.Cache.Scores)
	schedulerService := NewSchedulerService()
	servingMetricsService := NewServingMetricsService(config)

	recommenderService, err := NewRecommenderService(config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		Telemetry:      telemetryService,
		Performance:    performanceService,
		Recommender:    recommenderService,
		Scheduler:      schedulerService,
		ServingMetrics: servingMetricsService,
	}, nil
}
