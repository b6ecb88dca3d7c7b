package elections

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// testCandidate mirrors the columns of the candidates table that election
// summaries project, so the package tests stay free of a candidates import.
type testCandidate struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string  `gorm:"column:name;size:190;not null"`
	Position string  `gorm:"column:position;size:190;not null"`
	Party    string  `gorm:"column:party;size:190"`
	PhotoURL *string `gorm:"column:photo_url;size:512"`
}

func (testCandidate) TableName() string {
	return "candidates"
}

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ballot_elections_test_%d_%d?mode=memory&cache=shared",
		time.Now().UnixNano(), atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&Election{}, &Zipcode{}, &ElectionCandidate{}, &testCandidate{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	service, err := NewService(ServiceConfig{Database: db})
	if err != nil {
		t.Fatalf("failed to build election service: %v", err)
	}
	return service, db
}

func insertTestCandidate(t *testing.T, db *gorm.DB, name, position, party string, photoURL *string) int64 {
	t.Helper()
	row := testCandidate{Name: name, Position: position, Party: party, PhotoURL: photoURL}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to insert candidate row: %v", err)
	}
	return row.ID
}

func stringPointer(value string) *string {
	return &value
}
