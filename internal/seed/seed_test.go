package seed

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/elections"
	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func newSeedStack(t *testing.T) (*gorm.DB, *candidates.Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:ballot_seed_test_%d_%d?mode=memory&cache=shared",
		time.Now().UnixNano(), atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&candidates.Candidate{}, &candidates.Education{}, &candidates.Experience{},
		&candidates.Endorsement{}, &candidates.Policy{}, &candidates.SocialMedia{},
		&candidates.RecentPost{},
		&elections.Election{}, &elections.Zipcode{}, &elections.ElectionCandidate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	electionService, err := elections.NewService(elections.ServiceConfig{Database: db})
	if err != nil {
		t.Fatalf("failed to build election service: %v", err)
	}
	candidateService, err := candidates.NewService(candidates.ServiceConfig{Database: db, Assigner: electionService})
	if err != nil {
		t.Fatalf("failed to build candidate service: %v", err)
	}
	return db, candidateService
}

func TestRunLoadsBundledDataset(t *testing.T) {
	db, service := newSeedStack(t)

	if err := Run(context.Background(), db, service, nil); err != nil {
		t.Fatalf("unexpected seed error: %v", err)
	}

	var candidateCount int64
	if err := db.Model(&candidates.Candidate{}).Count(&candidateCount).Error; err != nil {
		t.Fatalf("unexpected count error: %v", err)
	}
	if candidateCount != int64(len(Candidates)) {
		t.Fatalf("expected %d candidates, got %d", len(Candidates), candidateCount)
	}

	var electionCount int64
	if err := db.Model(&elections.Election{}).Count(&electionCount).Error; err != nil {
		t.Fatalf("unexpected count error: %v", err)
	}
	if electionCount == 0 {
		t.Fatalf("expected seeded elections")
	}

	var links int64
	if err := db.Model(&elections.ElectionCandidate{}).Count(&links).Error; err != nil {
		t.Fatalf("unexpected count error: %v", err)
	}
	if links != candidateCount {
		t.Fatalf("expected every candidate linked to a contest, got %d links for %d candidates", links, candidateCount)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db, service := newSeedStack(t)

	if err := Run(context.Background(), db, service, nil); err != nil {
		t.Fatalf("unexpected seed error: %v", err)
	}
	if err := Run(context.Background(), db, service, nil); err != nil {
		t.Fatalf("unexpected repeat seed error: %v", err)
	}

	var candidateCount int64
	if err := db.Model(&candidates.Candidate{}).Count(&candidateCount).Error; err != nil {
		t.Fatalf("unexpected count error: %v", err)
	}
	if candidateCount != int64(len(Candidates)) {
		t.Fatalf("expected repeat run to skip existing candidates, got %d rows", candidateCount)
	}
}
