package models

import (
	"time"
)

// RatingEvent is one rating action. A user may rate the same movie more than
// once; each action is its own row. The modeled range is 1-5 but the value is
// stored as received, upstream is trusted.
type RatingEvent struct {
	BaseUUIDModel
	UserID    string    `gorm:"type:varchar(64);not null;index:idx_rating_user_movie_time,composite:0"  json:"userId"`
	MovieID   string    `gorm:"type:varchar(255);not null;index:idx_rating_user_movie_time,composite:1" json:"movieId"`
	Timestamp time.Time `gorm:"not null;index:idx_rating_user_movie_time,composite:2"                   json:"timestamp"`
	Rating    int       `gorm:"not null"                                                                json:"rating"`
}
