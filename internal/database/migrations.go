package database

import (
	"errors"
	"strings"
	"time"

	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/elections"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	migrationNormalizeElectionKeys   = "2025-06-20_normalize_election_natural_keys"
	migrationBackfillRecentPostDates = "2025-06-20_backfill_recent_post_dates"
)

const postDateLayout = "January 2, 2006"

type migrationRecord struct {
	Name             string `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAtSeconds int64  `gorm:"column:applied_at_s;not null"`
}

func (migrationRecord) TableName() string {
	return "db_migrations"
}

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

func applyMigrations(db *gorm.DB, logger *zap.Logger) error {
	migrations := []migrationDefinition{
		{name: migrationNormalizeElectionKeys, apply: normalizeElectionNaturalKeys},
		{name: migrationBackfillRecentPostDates, apply: backfillRecentPostDates},
	}

	for _, migration := range migrations {
		var record migrationRecord
		err := db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := migration.apply(db); err != nil {
			return err
		}
		appliedAt := time.Now().UTC().Unix()
		if err := db.Create(&migrationRecord{Name: migration.name, AppliedAtSeconds: appliedAt}).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("database migration applied", zap.String("migration", migration.name))
		}
	}
	return nil
}

// normalizeElectionNaturalKeys backfills the normalized natural-key columns
// for election rows written before the key columns existed.
func normalizeElectionNaturalKeys(db *gorm.DB) error {
	var rows []elections.Election
	if err := db.Where("district_key = '' OR office_key = ''").Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		updates := map[string]interface{}{
			"district":     strings.TrimSpace(row.District),
			"office":       strings.TrimSpace(row.Office),
			"district_key": elections.NormalizeKey(row.District),
			"office_key":   elections.NormalizeKey(row.Office),
		}
		if err := db.Model(&elections.Election{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

// backfillRecentPostDates derives the parsed unix date column for post rows
// that predate structured date ordering.
func backfillRecentPostDates(db *gorm.DB) error {
	var rows []candidates.RecentPost
	if err := db.Where("date_s = 0 AND date <> ''").Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		parsed, err := time.Parse(postDateLayout, row.Date)
		if err != nil {
			continue
		}
		err = db.Model(&candidates.RecentPost{}).
			Where("id = ?", row.ID).
			Update("date_s", parsed.UTC().Unix()).Error
		if err != nil {
			return err
		}
	}
	return nil
}
