package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecommendationEvent records one served top-20 list. RecommendedMovies keeps
// rank order as delivered; scoring only ever checks membership.
type RecommendationEvent struct {
	BaseUUIDModel
	UserID            string                      `gorm:"type:varchar(64);not null;index" json:"userId"`
	RecommendedMovies datatypes.JSONSlice[string] `gorm:"not null"                        json:"recommendedMovies"`
	Timestamp         time.Time                   `gorm:"not null;index"                  json:"timestamp"`
}

// Recommends reports whether movieID is in the served list.
func (r *RecommendationEvent) Recommends(movieID string) bool {
	for _, id := range r.RecommendedMovies {
		if id == movieID {
			return true
		}
	}
	return false
}
