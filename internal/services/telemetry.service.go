package services

import (
	"bufio"
	"cinelog/internal/database"
	"cinelog/internal/logger"
	"cinelog/internal/repositories"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TelemetryService turns raw access-log lines into typed event records and
// appends them to the event store.
type TelemetryService struct {
	repos repositories.Repository
	db    database.DB
	log   logger.Logger
}

func NewTelemetryService(repos repositories.Repository, db database.DB) *TelemetryService {
	return &TelemetryService{
		repos: repos,
		db:    db,
		log:   logger.New("telemetryService"),
	}
}

type IngestResult struct {
	Watches         int `json:"watches"`
	Ratings         int `json:"ratings"`
	Recommendations int `json:"recommendations"`
	Dropped         int `json:"dropped"`
}

func (r IngestResult) Total() int {
	return r.Watches + r.Ratings + r.Recommendations
}

// IngestLine classifies, normalizes, and persists one raw log line. A parse
// failure is local to the line and reported to the caller; a store failure is
// wrapped in ErrStoreUnavailable.
func (s *TelemetryService) IngestLine(ctx context.Context, line string) (EventKind, error) {
	log := s.log.Function("IngestLine")

	fields := splitFields(line)
	kind := Classify(fields)

	switch kind {
	case EventWatch:
		event, err := ParseWatchEvent(fields)
		if err != nil {
			return EventInvalid, err
		}
		if err := s.repos.WatchEvent.Insert(ctx, s.db.SQL, event); err != nil {
			return EventInvalid, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	case EventRate:
		event, err := ParseRatingEvent(fields)
		if err != nil {
			return EventInvalid, err
		}
		if err := s.repos.RatingEvent.Insert(ctx, s.db.SQL, event); err != nil {
			return EventInvalid, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	case EventRecommendation:
		event, err := ParseRecommendationEvent(fields)
		if err != nil {
			return EventInvalid, err
		}
		if err := s.repos.RecommendationEvent.Insert(ctx, s.db.SQL, event); err != nil {
			return EventInvalid, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	default:
		log.Debug("dropping unclassifiable line", "fieldCount", len(fields))
		return EventInvalid, ErrInvalidClassification
	}

	return kind, nil
}

// IngestBatch processes newline-separated raw lines. Bad lines are dropped
// and counted, never aborting the batch; a store failure aborts immediately.
func (s *TelemetryService) IngestBatch(ctx context.Context, r io.Reader) (IngestResult, error) {
	log := s.log.Function("IngestBatch")

	var result IngestResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		kind, err := s.IngestLine(ctx, line)
		if err != nil {
			if errors.Is(err, ErrStoreUnavailable) {
				return result, log.Err("aborting ingest batch, store unavailable", err)
			}
			log.Warn("dropped telemetry line", "error", err)
			result.Dropped++
			continue
		}

		switch kind {
		case EventWatch:
			result.Watches++
		case EventRate:
			result.Ratings++
		case EventRecommendation:
			result.Recommendations++
		}
	}

	if err := scanner.Err(); err != nil {
		return result, log.Err("failed to read telemetry stream", err)
	}

	log.Info(
		"ingest batch complete",
		"watches", result.Watches,
		"ratings", result.Ratings,
		"recommendations", result.Recommendations,
		"dropped", result.Dropped,
	)
	return result, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}
