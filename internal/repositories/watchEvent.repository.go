package repositories

import (
	"cinelog/internal/logger"
	. "cinelog/internal/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type WatchEventRepository interface {
	Insert(ctx context.Context, tx *gorm.DB, event *WatchEvent) error
	FindFirstAfter(
		ctx context.Context,
		tx *gorm.DB,
		userID string,
		after time.Time,
	) (*WatchEvent, error)
}

type watchEventRepository struct {
	log logger.Logger
}

func NewWatchEventRepository() WatchEventRepository {
	return &watchEventRepository{
		log: logger.New("watchEventRepository"),
	}
}

func (r *watchEventRepository) Insert(
	ctx context.Context,
	tx *gorm.DB,
	event *WatchEvent,
) error {
	log := r.log.Function("Insert")

	err := gorm.G[WatchEvent](tx).Create(ctx, event)
	if err != nil {
		return log.Err(
			"failed to insert watch event",
			err,
			"userID", event.UserID,
			"movieID", event.MovieID,
		)
	}

	return nil
}

// FindFirstAfter returns the earliest watch event for userID with a timestamp
// strictly greater than after, or nil when the user never watched anything
// past that instant.
func (r *watchEventRepository) FindFirstAfter(
	ctx context.Context,
	tx *gorm.DB,
	userID string,
	after time.Time,
) (*WatchEvent, error) {
	log := r.log.Function("FindFirstAfter")

	event, err := gorm.G[*WatchEvent](tx).
		Where("user_id = ? AND timestamp > ?", userID, after).
		Order("timestamp ASC").
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to find next watch event", err, "userID", userID)
	}

	return event, nil
}
