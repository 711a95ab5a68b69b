package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pulseprimer/ecg_api/model"
)

// ContentStoreService owns the lesson persistence layer. It opens
// Postgres when DATABASE_URL is set and falls back to a local SQLite
// file otherwise, so a single binary serves both deployments.
type ContentStoreService struct {
	context.DefaultService
	db *gorm.DB

	databaseURL string
	sqlitePath  string
}

const STORE_SVC = "store_svc"

// Id returns Service ID
func (ds ContentStoreService) Id() string {
	return STORE_SVC
}

// Db Access to raw store db
func (ds ContentStoreService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *ContentStoreService) Configure(ctx *context.Context) error {
	ds.databaseURL = os.Getenv("DATABASE_URL")

	ds.sqlitePath = os.Getenv("CONTENT_DB")
	if ds.sqlitePath == "" {
		ds.sqlitePath = "content.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *ContentStoreService) Start() (err error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if ds.databaseURL != "" {
		ds.db, err = gorm.Open(postgres.Open(ds.databaseURL), cfg)
	} else {
		ds.db, err = gorm.Open(sqlite.Open(ds.sqlitePath), cfg)
	}
	if err != nil {
		return err
	}

	err = ds.db.AutoMigrate(&model.LessonRecord{})
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Content store connected and migrated successfully")
	return nil
}

func (ds *ContentStoreService) Shutdown() {
}

func (ds *ContentStoreService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound // 404
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict // 409
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError // 500
		errorType = "TRANSACTION_ERROR"
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key value") {
			statusCode = http.StatusConflict // 409
			errorType = "UNIQUE_CONSTRAINT"
		} else if strings.Contains(err.Error(), "no such table") {
			statusCode = http.StatusInternalServerError // 500
			errorType = "SCHEMA_ERROR"
		} else {
			statusCode = http.StatusInternalServerError // 500
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}
