package candidates

import (
	"strings"
	"time"
)

const (
	// DefaultPolicyPriority applies when a submitted policy omits its priority.
	DefaultPolicyPriority = 50
	minPolicyPriority     = 0
	maxPolicyPriority     = 100
)

// postDateLayout is the display format the campaign data uses for post dates.
const postDateLayout = "January 2, 2006"

// Candidate models the persisted candidate base row.
type Candidate struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:190;not null"`
	Position  string    `gorm:"column:position;size:190;not null"`
	Party     string    `gorm:"column:party;size:190"`
	PhotoURL  *string   `gorm:"column:photo_url;size:512"`
	Biography string    `gorm:"column:biography;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Education    []Education   `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Experience   []Experience  `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Endorsements []Endorsement `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Policies     []Policy      `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	SocialMedia  *SocialMedia  `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	RecentPosts  []RecentPost  `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

// TableName provides the explicit table binding for GORM.
func (Candidate) TableName() string {
	return "candidates"
}

// Education is an owned child row; the admin form submits free-form strings
// which land in the institution column.
type Education struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CandidateID int64  `gorm:"column:candidate_id;not null;index"`
	Degree      string `gorm:"column:degree;size:190"`
	Institution string `gorm:"column:institution;size:190;not null"`
	Year        string `gorm:"column:year;size:16"`
}

// TableName provides the explicit table binding for GORM.
func (Education) TableName() string {
	return "education"
}

// Formatted renders the row the way clients consume it: degree, institution
// and year concatenated and trimmed.
func (e Education) Formatted() string {
	return strings.TrimSpace(strings.Join([]string{e.Degree, e.Institution, e.Year}, " "))
}

// Experience is an owned child row holding a single position title.
type Experience struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CandidateID int64  `gorm:"column:candidate_id;not null;index"`
	Title       string `gorm:"column:title;size:255;not null"`
}

// TableName provides the explicit table binding for GORM.
func (Experience) TableName() string {
	return "experience"
}

// Endorsement is an owned child row holding an endorsing organization name.
type Endorsement struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CandidateID  int64  `gorm:"column:candidate_id;not null;index"`
	Organization string `gorm:"column:organization;size:255;not null"`
}

// TableName provides the explicit table binding for GORM.
func (Endorsement) TableName() string {
	return "endorsements"
}

// Policy is an owned child row with a priority in [0,100].
type Policy struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CandidateID int64  `gorm:"column:candidate_id;not null;index"`
	Title       string `gorm:"column:title;size:190;not null"`
	Description string `gorm:"column:description;type:text"`
	Priority    int    `gorm:"column:priority;not null;default:50"`
}

// TableName provides the explicit table binding for GORM.
func (Policy) TableName() string {
	return "policies"
}

// SocialMedia is the at-most-one-per-candidate contact record.
type SocialMedia struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CandidateID int64  `gorm:"column:candidate_id;not null;uniqueIndex"`
	Website     string `gorm:"column:website;size:512"`
	Email       string `gorm:"column:email;size:320"`
	Twitter     string `gorm:"column:twitter;size:512"`
	Facebook    string `gorm:"column:facebook;size:512"`
	Instagram   string `gorm:"column:instagram;size:512"`
}

// TableName provides the explicit table binding for GORM.
func (SocialMedia) TableName() string {
	return "social_media"
}

// RecentPost is an owned child row. The display date string is kept verbatim
// alongside its parsed unix form so descending ordering stays well defined.
type RecentPost struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CandidateID int64  `gorm:"column:candidate_id;not null;index"`
	Date        string `gorm:"column:date;size:64;not null"`
	DateSeconds int64  `gorm:"column:date_s;not null;default:0"`
	Platform    string `gorm:"column:platform;size:64"`
	Content     string `gorm:"column:content;type:text"`
	Link        string `gorm:"column:link;size:512"`
}

// TableName provides the explicit table binding for GORM.
func (RecentPost) TableName() string {
	return "recent_posts"
}

// clampPriority applies the default when priority is omitted and clamps the
// rest into the supported range.
func clampPriority(priority *int) int {
	if priority == nil {
		return DefaultPolicyPriority
	}
	if *priority < minPolicyPriority {
		return minPolicyPriority
	}
	if *priority > maxPolicyPriority {
		return maxPolicyPriority
	}
	return *priority
}
