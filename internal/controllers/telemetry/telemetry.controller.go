package telemetryController

import (
	"bytes"
	"cinelog/internal/logger"
	"cinelog/internal/services"
	"context"
)

type TelemetryControllerInterface interface {
	IngestLines(ctx context.Context, body []byte) (services.IngestResult, error)
}

type TelemetryController struct {
	telemetryService *services.TelemetryService
	log              logger.Logger
}

func New(services services.Service) TelemetryControllerInterface {
	return &TelemetryController{
		telemetryService: services.Telemetry,
		log:              logger.New("telemetryController"),
	}
}

// IngestLines feeds a newline-separated batch of raw log lines through the
// classification pipeline. Per-line failures are dropped inside the service;
// only a store failure propagates.
func (c *TelemetryController) IngestLines(
	ctx context.Context,
	body []byte,
) (services.IngestResult, error) {
	log := c.log.Function("IngestLines")

	result, err := c.telemetryService.IngestBatch(ctx, bytes.NewReader(body))
	if err != nil {
		return result, log.Err("failed to ingest telemetry batch", err)
	}

	return result, nil
}
