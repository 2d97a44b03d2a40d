package database

import (
	"cinelog/internal/logger"
	"cinelog/internal/models"
)

// MigrateModels runs GORM AutoMigrate for all event models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.WatchEvent{},
		&models.RatingEvent{},
		&models.RecommendationEvent{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("Failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}
