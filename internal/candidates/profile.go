package candidates

import (
	"strconv"
	"time"
)

// Profile is the aggregated client-facing candidate representation.
type Profile struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Position     string           `json:"position"`
	Party        string           `json:"party"`
	PhotoURL     *string          `json:"photoUrl"`
	Biography    string           `json:"biography"`
	Education    []string         `json:"education"`
	Experience   []string         `json:"experience"`
	Endorsements []string         `json:"endorsements"`
	Policies     []PolicyView     `json:"policies"`
	SocialMedia  SocialMediaView  `json:"socialMedia"`
	RecentPosts  []RecentPostView `json:"recentPosts"`
}

// PolicyView is the policy shape exposed to clients.
type PolicyView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// SocialMediaView marshals as an empty object when no record exists.
type SocialMediaView struct {
	Website   string `json:"website,omitempty"`
	Email     string `json:"email,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// RecentPostView is the recent-post shape exposed to clients.
type RecentPostView struct {
	Date     string `json:"date"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Link     string `json:"link"`
}

// PolicyInput carries a submitted policy; a nil priority takes the default.
type PolicyInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    *int   `json:"priority"`
}

// SocialMediaInput carries the submitted contact record.
type SocialMediaInput struct {
	Website   string `json:"website"`
	Email     string `json:"email"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// RecentPostInput carries a submitted post.
type RecentPostInput struct {
	Date     string `json:"date"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Link     string `json:"link"`
}

// ElectionInfo declares the contest a candidate is standing in. Assignment is
// skipped unless district, office and at least one zipcode are all present.
type ElectionInfo struct {
	District string   `json:"district"`
	Office   string   `json:"office"`
	Zipcodes []string `json:"zipcodes"`
}

// Complete reports whether the declaration carries everything assignment needs.
func (info *ElectionInfo) Complete() bool {
	return info != nil && info.District != "" && info.Office != "" && len(info.Zipcodes) > 0
}

// ProfileInput is the write payload for candidate create and update.
type ProfileInput struct {
	Name         string            `json:"name"`
	Position     string            `json:"position"`
	Party        string            `json:"party"`
	PhotoURL     *string           `json:"photoUrl"`
	Biography    string            `json:"biography"`
	Education    []string          `json:"education"`
	Experience   []string          `json:"experience"`
	Endorsements []string          `json:"endorsements"`
	Policies     []PolicyInput     `json:"policies"`
	SocialMedia  *SocialMediaInput `json:"socialMedia"`
	RecentPosts  []RecentPostInput `json:"recentPosts"`
	ElectionInfo *ElectionInfo     `json:"electionInfo"`
}

func buildProfile(candidate Candidate, education []Education, experience []Experience, endorsements []Endorsement, policies []Policy, social *SocialMedia, posts []RecentPost) Profile {
	profile := Profile{
		ID:           strconv.FormatInt(candidate.ID, 10),
		Name:         candidate.Name,
		Position:     candidate.Position,
		Party:        candidate.Party,
		PhotoURL:     candidate.PhotoURL,
		Biography:    candidate.Biography,
		Education:    make([]string, 0, len(education)),
		Experience:   make([]string, 0, len(experience)),
		Endorsements: make([]string, 0, len(endorsements)),
		Policies:     make([]PolicyView, 0, len(policies)),
		RecentPosts:  make([]RecentPostView, 0, len(posts)),
	}

	for _, entry := range education {
		profile.Education = append(profile.Education, entry.Formatted())
	}
	for _, entry := range experience {
		profile.Experience = append(profile.Experience, entry.Title)
	}
	for _, entry := range endorsements {
		profile.Endorsements = append(profile.Endorsements, entry.Organization)
	}
	for _, entry := range policies {
		profile.Policies = append(profile.Policies, PolicyView{
			Title:       entry.Title,
			Description: entry.Description,
			Priority:    entry.Priority,
		})
	}
	if social != nil {
		profile.SocialMedia = SocialMediaView{
			Website:   social.Website,
			Email:     social.Email,
			Twitter:   social.Twitter,
			Facebook:  social.Facebook,
			Instagram: social.Instagram,
		}
	}
	for _, post := range posts {
		profile.RecentPosts = append(profile.RecentPosts, RecentPostView{
			Date:     post.Date,
			Platform: post.Platform,
			Content:  post.Content,
			Link:     post.Link,
		})
	}

	return profile
}

// parsePostDate resolves the display date string into unix seconds. Strings
// outside the expected layout yield zero and fall back to lexical ordering.
func parsePostDate(value string) int64 {
	parsed, err := time.Parse(postDateLayout, value)
	if err != nil {
		return 0
	}
	return parsed.UTC().Unix()
}
