package db

import (
	"fmt"
	"time"

	"v2link/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(&model.Conversion{})
}

func Close(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
}

// RecordConversion inserts one usage row. Callers treat failures as
// non-fatal; a conversion is never rejected because bookkeeping failed.
func RecordConversion(database *gorm.DB, userID int64, protocol, source string) error {
	return database.Create(&model.Conversion{
		UserID:    userID,
		Protocol:  protocol,
		Source:    source,
		CreatedAt: time.Now(),
	}).Error
}

// ProtocolCount is one row of the stats dashboard.
type ProtocolCount struct {
	Protocol string
	Count    int64
}

// CountByProtocol aggregates conversions per protocol, most used first.
func CountByProtocol(database *gorm.DB) ([]ProtocolCount, error) {
	var rows []ProtocolCount
	err := database.Model(&model.Conversion{}).
		Select("protocol, count(*) as count").
		Group("protocol").
		Order("count desc").
		Scan(&rows).Error
	return rows, err
}

// CountUsers returns the number of distinct users seen.
func CountUsers(database *gorm.DB) (int64, error) {
	var n int64
	err := database.Model(&model.Conversion{}).
		Distinct("user_id").
		Count(&n).Error
	return n, err
}
