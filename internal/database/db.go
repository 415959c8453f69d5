package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/devjobs/internal/models"
)

// Connect opens the Postgres database and brings the jobs table up to date.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	log.Info("database connection established")

	log.Info("running migrations")
	if err := db.AutoMigrate(&models.Job{}); err != nil {
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return db, nil
}
