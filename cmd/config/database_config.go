package config

import (
	"Recipe-Share-API/internal/utils"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxConnectAttempts = 5
	maxConnectBackoff  = 30 * time.Second
)

// ConnectDB opens the database connection. Connectivity is retried a bounded
// number of times with capped exponential backoff; this is the only retry in
// the whole application. The caller decides whether a failure is fatal.
func ConnectDB() (*gorm.DB, error) {
	if utils.GetConfig("DB_HOST") == "" || utils.GetConfig("DB_NAME") == "" {
		return nil, fmt.Errorf("database configuration missing: DB_HOST and DB_NAME are required")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	backoff := time.Second
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		log.Printf("Database connection attempt %d/%d failed: %v", attempt, maxConnectAttempts, err)
		if attempt < maxConnectAttempts {
			time.Sleep(backoff)
			backoff *= 2
			if backoff > maxConnectBackoff {
				backoff = maxConnectBackoff
			}
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxConnectAttempts, err)
}
