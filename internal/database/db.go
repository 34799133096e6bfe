package database

import (
	"fmt"
	"log"
	"time"

	"staff-portal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// Open подключается к БД (с повторами — postgres в docker поднимается не сразу)
// и накатывает схему.
func Open(driver, dsn string) (*gorm.DB, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		if driver == "sqlite" {
			// файл либо открывается сразу, либо никогда
			break
		}
		time.Sleep(retryBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db after %d attempts: %w", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// миграции
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Entry{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
