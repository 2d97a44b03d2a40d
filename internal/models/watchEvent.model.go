package models

import (
	"time"
)

// WatchEvent is one playback-progress checkpoint. A user watching a movie
// emits one event per minute watched; the first event for a different movie
// marks the switch.
type WatchEvent struct {
	BaseUUIDModel
	UserID    string    `gorm:"type:varchar(64);not null;index:idx_watch_user_time,composite:0"  json:"userId"`
	MovieID   string    `gorm:"type:varchar(255);not null"                                       json:"movieId"`
	Timestamp time.Time `gorm:"not null;index:idx_watch_user_time,composite:1"                   json:"timestamp"`
	Minute    int       `gorm:"not null"                                                         json:"minute"`
}
