package candidates

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/betterballot/ballot-api/internal/elections"
	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ballot_candidates_test_%d_%d?mode=memory&cache=shared",
		time.Now().UnixNano(), atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&Candidate{}, &Education{}, &Experience{}, &Endorsement{},
		&Policy{}, &SocialMedia{}, &RecentPost{},
		&elections.Election{}, &elections.Zipcode{}, &elections.ElectionCandidate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service, *elections.Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	electionService, err := elections.NewService(elections.ServiceConfig{Database: db})
	if err != nil {
		t.Fatalf("failed to build election service: %v", err)
	}
	candidateService, err := NewService(ServiceConfig{Database: db, Assigner: electionService})
	if err != nil {
		t.Fatalf("failed to build candidate service: %v", err)
	}
	return candidateService, electionService, db
}

func intPointer(value int) *int {
	return &value
}

func fullProfileInput() ProfileInput {
	return ProfileInput{
		Name:      "Kate Harrison",
		Position:  "Mayor",
		Party:     "Democrat",
		Biography: "Longtime councilmember.",
		Education: []string{
			"UC Berkeley, Master of Public Policy",
			"Yale University, BA in Political Science",
		},
		Experience:   []string{"Berkeley City Council, District 4 (2017-Present)"},
		Endorsements: []string{"Sierra Club", "Berkeley Tenants Union"},
		Policies: []PolicyInput{
			{Title: "Affordable Housing", Description: "Expand affordable housing.", Priority: intPointer(90)},
			{Title: "Climate Action", Description: "Carbon neutrality by 2030."},
		},
		SocialMedia: &SocialMediaInput{
			Website: "https://www.kateharrison.info",
			Email:   "kate@kateharrison.info",
			Twitter: "https://twitter.com/KateHarrisonD4",
		},
		RecentPosts: []RecentPostInput{
			{Date: "October 8, 2024", Platform: "Facebook", Content: "Housing proposal passed.", Link: "https://facebook.com/posts/2345"},
			{Date: "October 12, 2024", Platform: "Twitter", Content: "Campaign kickoff Saturday.", Link: "https://twitter.com/status/1447"},
		},
		ElectionInfo: &ElectionInfo{
			District: "Citywide",
			Office:   "Mayor",
			Zipcodes: []string{"94704", "94707"},
		},
	}
}
