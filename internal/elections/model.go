package elections

import (
	"strings"
	"time"
)

// Election models a contest for an office within a district. The pair
// (district, office) is the natural key; district_key and office_key hold the
// normalized forms backing the uniqueness constraint, while district and
// office keep the trimmed submitted casing for display.
type Election struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Office       string    `gorm:"column:office;size:190;not null"`
	Description  string    `gorm:"column:description;type:text"`
	District     string    `gorm:"column:district;size:190;not null"`
	OfficeKey    string    `gorm:"column:office_key;size:190;not null;uniqueIndex:idx_elections_natural_key,priority:2"`
	DistrictKey  string    `gorm:"column:district_key;size:190;not null;uniqueIndex:idx_elections_natural_key,priority:1"`
	ElectionDate *string   `gorm:"column:election_date;size:64"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName provides the explicit table binding for GORM.
func (Election) TableName() string {
	return "elections"
}

// Zipcode is a membership row tying a ZIP to an election.
type Zipcode struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ElectionID int64  `gorm:"column:election_id;not null;index"`
	Zipcode    string `gorm:"column:zipcode;size:16;not null"`
}

// TableName provides the explicit table binding for GORM.
func (Zipcode) TableName() string {
	return "zipcodes"
}

// ElectionCandidate links a candidate to the ballot of an election. The
// composite primary key backs insert-or-ignore link creation.
type ElectionCandidate struct {
	ElectionID  int64 `gorm:"column:election_id;primaryKey;autoIncrement:false"`
	CandidateID int64 `gorm:"column:candidate_id;primaryKey;autoIncrement:false"`
}

// TableName provides the explicit table binding for GORM.
func (ElectionCandidate) TableName() string {
	return "election_candidates"
}

// NormalizeKey folds a district or office value for natural-key comparison.
func NormalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
