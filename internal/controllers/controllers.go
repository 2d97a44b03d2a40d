package controllers

import (
	"cinelog/internal/database"
	"cinelog/internal/services"

	performanceController "cinelog/internal/controllers/performance"
	recommendController "cinelog/internal/controllers/recommend"
	telemetryController "cinelog/internal/controllers/telemetry"
)

type Controllers struct {
	Recommend   recommendController.RecommendControllerInterface
	Telemetry   telemetryController.TelemetryControllerInterface
	Performance performanceController.PerformanceControllerInterface
}

func New(services services.Service, db database.DB) Controllers {
	return Controllers{
		Recommend:   recommendController.New(services, db),
		Telemetry:   telemetryController.New(services),
		Performance: performanceController.New(services),
	}
}
