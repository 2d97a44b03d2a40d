package repositories

import (
	"cinelog/internal/logger"
	. "cinelog/internal/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RatingEventRepository interface {
	Insert(ctx context.Context, tx *gorm.DB, event *RatingEvent) error
	FindFirstAfter(
		ctx context.Context,
		tx *gorm.DB,
		userID string,
		movieID string,
		after time.Time,
	) (*RatingEvent, error)
}

type ratingEventRepository struct {
	log logger.Logger
}

func NewRatingEventRepository() RatingEventRepository {
	return &ratingEventRepository{
		log: logger.New("ratingEventRepository"),
	}
}

func (r *ratingEventRepository) Insert(
	ctx context.Context,
	tx *gorm.DB,
	event *RatingEvent,
) error {
	log := r.log.Function("Insert")

	err := gorm.G[RatingEvent](tx).Create(ctx, event)
	if err != nil {
		return log.Err(
			"failed to insert rating event",
			err,
			"userID", event.UserID,
			"movieID", event.MovieID,
		)
	}

	return nil
}

// FindFirstAfter returns the earliest rating by userID for movieID strictly
// after the given instant, or nil when the movie was never rated past it.
func (r *ratingEventRepository) FindFirstAfter(
	ctx context.Context,
	tx *gorm.DB,
	userID string,
	movieID string,
	after time.Time,
) (*RatingEvent, error) {
	log := r.log.Function("FindFirstAfter")

	event, err := gorm.G[*RatingEvent](tx).
		Where("user_id = ? AND movie_id = ? AND timestamp > ?", userID, movieID, after).
		Order("timestamp ASC").
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err(
			"failed to find next rating event",
			err,
			"userID", userID,
			"movieID", movieID,
		)
	}

	return event, nil
}
