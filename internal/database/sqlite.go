package database

import (
	"fmt"

	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/elections"
	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenSQLite establishes a SQLite connection and performs schema migrations.
func OpenSQLite(path string, logger *zap.Logger) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db, logger); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("database initialized", zap.String("path", path))
	}

	return db, nil
}

// Migrate applies the schema and the named data migrations. Exposed
// separately so tests can run it against in-memory databases.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&candidates.Candidate{},
		&candidates.Education{},
		&candidates.Experience{},
		&candidates.Endorsement{},
		&candidates.Policy{},
		&candidates.SocialMedia{},
		&candidates.RecentPost{},
		&elections.Election{},
		&elections.Zipcode{},
		&elections.ElectionCandidate{},
		&migrationRecord{},
	)
	if err != nil {
		return err
	}

	return applyMigrations(db, logger)
}
