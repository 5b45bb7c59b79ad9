package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the database and migrates the schema.
//
// If dsn is empty, the connection is configured from the environment:
// postgresql when DB_HOST is set, a sqlite file in the data directory
// otherwise. Tests pass the path to a temporary sqlite file.
func Connect(dsn string) error {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	if dsn == "" {
		// Check which database driver to use. If DB_HOST is set, assume postgresql
		if _, ok := os.LookupEnv("DB_HOST"); ok {
			log.Debug().Msg("DB_HOST is set, using postgresql")
			pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

			db, err = gorm.Open(postgres.Open(pgDSN), config)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			return migrate(db)
		}

		log.Debug().Msg("DB_HOST is not set, using sqlite database")

		dataDir := filepath.Join(".", "data")
		err = os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not create data directory: %w", err)
		}

		dsn = filepath.Join(dataDir, "gorm.db")
	}

	// The snack and family references on selections need to be enforced
	// by the database, see the schema definition on Selection
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)

	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	// If you have ideas how to improve this, you are very welcome to open an issue or a PR. Thank you!
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return migrate(db)
}

// migrate migrates all models and sets the exported DB variable.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Category{}, Family{}, Snack{}, Selection{})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = db
	return nil
}
