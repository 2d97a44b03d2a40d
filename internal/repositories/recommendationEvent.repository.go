package repositories

import (
	"cinelog/internal/logger"
	. "cinelog/internal/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type RecommendationEventRepository interface {
	Insert(ctx context.Context, tx *gorm.DB, event *RecommendationEvent) error
	FindInTimeRange(
		ctx context.Context,
		tx *gorm.DB,
		startInclusive time.Time,
		endExclusive time.Time,
	) ([]*RecommendationEvent, error)
}

type recommendationEventRepository struct {
	log logger.Logger
}

func NewRecommendationEventRepository() RecommendationEventRepository {
	return &recommendationEventRepository{
		log: logger.New("recommendationEventRepository"),
	}
}

func (r *recommendationEventRepository) Insert(
	ctx context.Context,
	tx *gorm.DB,
	event *RecommendationEvent,
) error {
	log := r.log.Function("Insert")

	err := gorm.G[RecommendationEvent](tx).Create(ctx, event)
	if err != nil {
		return log.Err(
			"failed to insert recommendation event",
			err,
			"userID", event.UserID,
		)
	}

	return nil
}

// FindInTimeRange returns every recommendation served in the half-open
// interval [startInclusive, endExclusive), oldest first.
func (r *recommendationEventRepository) FindInTimeRange(
	ctx context.Context,
	tx *gorm.DB,
	startInclusive time.Time,
	endExclusive time.Time,
) ([]*RecommendationEvent, error) {
	log := r.log.Function("FindInTimeRange")

	events, err := gorm.G[*RecommendationEvent](tx).
		Where("timestamp >= ? AND timestamp < ?", startInclusive, endExclusive).
		Order("timestamp ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err(
			"failed to find recommendation events in range",
			err,
			"start", startInclusive,
			"end", endExclusive,
		)
	}

	return events, nil
}
