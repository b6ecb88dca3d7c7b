// Package seed loads the bundled candidate dataset through the same services
// the API uses, so election assignment follows the production path.
package seed

import (
	"context"
	"fmt"

	"github.com/betterballot/ballot-api/internal/candidates"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CandidateCreator is the slice of the candidate service the seeder needs.
type CandidateCreator interface {
	Create(ctx context.Context, input candidates.ProfileInput) (int64, error)
}

// Run inserts the bundled dataset. Candidates already present by name are
// skipped, so repeated runs are no-ops.
func Run(ctx context.Context, db *gorm.DB, creator CandidateCreator, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	inserted := 0
	for _, input := range Candidates {
		var count int64
		if err := db.WithContext(ctx).Model(&candidates.Candidate{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("seed: existence check for %q: %w", input.Name, err)
		}
		if count > 0 {
			logger.Debug("seed candidate already present", zap.String("name", input.Name))
			continue
		}

		candidateID, err := creator.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("seed: insert %q: %w", input.Name, err)
		}
		inserted++
		logger.Info("seeded candidate", zap.String("name", input.Name), zap.Int64("candidate_id", candidateID))
	}

	logger.Info("database seeding completed", zap.Int("inserted", inserted), zap.Int("total", len(Candidates)))
	return nil
}
