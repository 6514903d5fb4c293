package database

import (
	"fmt"

	"health-appointment-service/config"
	"health-appointment-service/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDirectoryConnection opens the embedded doctor directory / appointment
// ledger file and ensures both tables exist.
func NewDirectoryConnection(cfg config.DirectoryConfig) (*gorm.DB, error) {
	db, err := open(cfg.Path)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&entity.Doctor{}, &entity.Appointment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate directory schema: %w", err)
	}

	logrus.Infof("Directory database ready at %s", cfg.Path)
	return db, nil
}

// NewUserConnection opens the credential/profile file. It is a separate
// storage file from the directory and is never touched by the booking core.
func NewUserConnection(cfg config.UserDBConfig) (*gorm.DB, error) {
	db, err := open(cfg.Path)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&entity.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate user schema: %w", err)
	}

	logrus.Infof("User profile database ready at %s", cfg.Path)
	return db, nil
}

func open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Single-process embedded store; one writer at a time is plenty here
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
