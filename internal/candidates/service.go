package candidates

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errMissingDatabase = errors.New("database handle is required")
	errMissingAssigner = errors.New("election assigner is required")
	noOpLogger         = zap.NewNop()

	// ErrNotFound indicates the requested candidate does not exist.
	ErrNotFound = errors.New("candidates: not found")
)

// ServiceError carries a dotted operation code alongside the underlying cause.
type ServiceError struct {
	code string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

func (e *ServiceError) Code() string {
	return e.code
}

const (
	opServiceNew = "candidates.service.new"
	opList       = "candidates.list"
	opGet        = "candidates.get"
	opCreate     = "candidates.create"
	opUpdate     = "candidates.update"
	opDelete     = "candidates.delete"
)

func newServiceError(operation, reason string, cause error) error {
	code := fmt.Sprintf("%s.%s", operation, reason)
	return &ServiceError{code: code, err: cause}
}

// ElectionAssigner reconciles a candidate's declared contest against the
// election store. Implementations run inside the caller's transaction.
type ElectionAssigner interface {
	AssignWithinTx(tx *gorm.DB, candidateID int64, district, office string, zipcodes []string) error
	UnlinkWithinTx(tx *gorm.DB, candidateID int64) error
}

// ServiceConfig describes the dependencies for the candidate service.
type ServiceConfig struct {
	Database *gorm.DB
	Assigner ElectionAssigner
	Logger   *zap.Logger
}

// Service owns candidate aggregation and the create/update/delete flows.
type Service struct {
	db       *gorm.DB
	assigner ElectionAssigner
	logger   *zap.Logger
}

// NewService constructs the candidate service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, newServiceError(opServiceNew, "missing_database", errMissingDatabase)
	}
	if cfg.Assigner == nil {
		return nil, newServiceError(opServiceNew, "missing_assigner", errMissingAssigner)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{db: cfg.Database, assigner: cfg.Assigner, logger: logger}, nil
}

// List returns every candidate in name order, fully aggregated.
func (s *Service) List(ctx context.Context) ([]Profile, error) {
	var rows []Candidate
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		s.logError(opList, "query_failed", err)
		return nil, newServiceError(opList, "query_failed", err)
	}

	profiles := make([]Profile, 0, len(rows))
	for _, candidate := range rows {
		profile, err := s.aggregate(ctx, candidate)
		if err != nil {
			s.logError(opList, "aggregate_failed", err, zap.Int64("candidate_id", candidate.ID))
			return nil, newServiceError(opList, "aggregate_failed", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// Get returns the aggregated profile for one candidate or ErrNotFound.
func (s *Service) Get(ctx context.Context, candidateID int64) (Profile, error) {
	var candidate Candidate
	err := s.db.WithContext(ctx).Where("id = ?", candidateID).Take(&candidate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		s.logError(opGet, "query_failed", err, zap.Int64("candidate_id", candidateID))
		return Profile{}, newServiceError(opGet, "query_failed", err)
	}

	profile, err := s.aggregate(ctx, candidate)
	if err != nil {
		s.logError(opGet, "aggregate_failed", err, zap.Int64("candidate_id", candidateID))
		return Profile{}, newServiceError(opGet, "aggregate_failed", err)
	}
	return profile, nil
}

// Create inserts the candidate with all child rows and, when the payload
// declares a complete contest, links it to the resolved election. The whole
// flow runs in one transaction.
func (s *Service) Create(ctx context.Context, input ProfileInput) (int64, error) {
	var candidateID int64
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := Candidate{
			Name:      input.Name,
			Position:  input.Position,
			Party:     input.Party,
			PhotoURL:  input.PhotoURL,
			Biography: input.Biography,
		}
		if err := tx.Create(&candidate).Error; err != nil {
			return newServiceError(opCreate, "candidate_insert_failed", err)
		}
		candidateID = candidate.ID

		if err := s.insertChildren(tx, candidate.ID, input); err != nil {
			return newServiceError(opCreate, "child_insert_failed", err)
		}
		if input.SocialMedia != nil {
			social := socialMediaFrom(candidate.ID, *input.SocialMedia)
			if err := tx.Create(&social).Error; err != nil {
				return newServiceError(opCreate, "social_media_insert_failed", err)
			}
		}

		if input.ElectionInfo.Complete() {
			err := s.assigner.AssignWithinTx(tx, candidate.ID, input.ElectionInfo.District, input.ElectionInfo.Office, input.ElectionInfo.Zipcodes)
			if err != nil {
				return newServiceError(opCreate, "election_assignment_failed", err)
			}
		}
		return nil
	})
	if txErr != nil {
		s.logError(opCreate, "transaction_failed", txErr, zap.String("name", input.Name))
		return 0, txErr
	}
	return candidateID, nil
}

// Update rewrites the base row in place and replaces every child collection
// with the submitted payload. The social media record is the one child that
// is mutated in place rather than replaced.
func (s *Service) Update(ctx context.Context, candidateID int64, input ProfileInput) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Candidate
		err := tx.Where("id = ?", candidateID).Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return newServiceError(opUpdate, "candidate_select_failed", err)
		}

		updates := map[string]interface{}{
			"name":      input.Name,
			"position":  input.Position,
			"party":     input.Party,
			"photo_url": input.PhotoURL,
			"biography": input.Biography,
		}
		if err := tx.Model(&Candidate{}).Where("id = ?", candidateID).Updates(updates).Error; err != nil {
			return newServiceError(opUpdate, "candidate_update_failed", err)
		}

		if err := deleteChildren(tx, candidateID); err != nil {
			return newServiceError(opUpdate, "child_delete_failed", err)
		}
		if err := s.insertChildren(tx, candidateID, input); err != nil {
			return newServiceError(opUpdate, "child_insert_failed", err)
		}
		if input.SocialMedia != nil {
			if err := upsertSocialMedia(tx, candidateID, *input.SocialMedia); err != nil {
				return newServiceError(opUpdate, "social_media_upsert_failed", err)
			}
		}

		if input.ElectionInfo.Complete() {
			if err := s.assigner.UnlinkWithinTx(tx, candidateID); err != nil {
				return newServiceError(opUpdate, "election_unlink_failed", err)
			}
			err := s.assigner.AssignWithinTx(tx, candidateID, input.ElectionInfo.District, input.ElectionInfo.Office, input.ElectionInfo.Zipcodes)
			if err != nil {
				return newServiceError(opUpdate, "election_assignment_failed", err)
			}
		}
		return nil
	})
	if txErr != nil && !errors.Is(txErr, ErrNotFound) {
		s.logError(opUpdate, "transaction_failed", txErr, zap.Int64("candidate_id", candidateID))
	}
	return txErr
}

// Delete removes the candidate together with its child rows and election
// links. Deleting an absent candidate is a no-op, matching the idempotent
// admin-panel behavior.
func (s *Service) Delete(ctx context.Context, candidateID int64) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, candidateID); err != nil {
			return newServiceError(opDelete, "child_delete_failed", err)
		}
		if err := tx.Where("candidate_id = ?", candidateID).Delete(&SocialMedia{}).Error; err != nil {
			return newServiceError(opDelete, "social_media_delete_failed", err)
		}
		if err := s.assigner.UnlinkWithinTx(tx, candidateID); err != nil {
			return newServiceError(opDelete, "election_unlink_failed", err)
		}
		if err := tx.Where("id = ?", candidateID).Delete(&Candidate{}).Error; err != nil {
			return newServiceError(opDelete, "candidate_delete_failed", err)
		}
		return nil
	})
	if txErr != nil {
		s.logError(opDelete, "transaction_failed", txErr, zap.Int64("candidate_id", candidateID))
	}
	return txErr
}

func (s *Service) aggregate(ctx context.Context, candidate Candidate) (Profile, error) {
	db := s.db.WithContext(ctx)

	var education []Education
	if err := db.Where("candidate_id = ?", candidate.ID).Order("id").Find(&education).Error; err != nil {
		return Profile{}, err
	}
	var experience []Experience
	if err := db.Where("candidate_id = ?", candidate.ID).Order("id").Find(&experience).Error; err != nil {
		return Profile{}, err
	}
	var endorsements []Endorsement
	if err := db.Where("candidate_id = ?", candidate.ID).Order("id").Find(&endorsements).Error; err != nil {
		return Profile{}, err
	}
	var policies []Policy
	if err := db.Where("candidate_id = ?", candidate.ID).Order("id").Find(&policies).Error; err != nil {
		return Profile{}, err
	}
	var social SocialMedia
	socialPtr := &social
	err := db.Where("candidate_id = ?", candidate.ID).Take(&social).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		socialPtr = nil
	} else if err != nil {
		return Profile{}, err
	}
	var posts []RecentPost
	if err := db.Where("candidate_id = ?", candidate.ID).Order("date_s DESC, date DESC").Find(&posts).Error; err != nil {
		return Profile{}, err
	}

	return buildProfile(candidate, education, experience, endorsements, policies, socialPtr, posts), nil
}

func (s *Service) insertChildren(tx *gorm.DB, candidateID int64, input ProfileInput) error {
	for _, entry := range input.Education {
		row := Education{CandidateID: candidateID, Institution: entry}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, entry := range input.Experience {
		row := Experience{CandidateID: candidateID, Title: entry}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, entry := range input.Endorsements {
		row := Endorsement{CandidateID: candidateID, Organization: entry}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, entry := range input.Policies {
		row := Policy{
			CandidateID: candidateID,
			Title:       entry.Title,
			Description: entry.Description,
			Priority:    clampPriority(entry.Priority),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, entry := range input.RecentPosts {
		row := RecentPost{
			CandidateID: candidateID,
			Date:        entry.Date,
			DateSeconds: parsePostDate(entry.Date),
			Platform:    entry.Platform,
			Content:     entry.Content,
			Link:        entry.Link,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteChildren clears the five replace-on-update collections. Social media
// is intentionally excluded; it is upserted in place.
func deleteChildren(tx *gorm.DB, candidateID int64) error {
	if err := tx.Where("candidate_id = ?", candidateID).Delete(&Education{}).Error; err != nil {
		return err
	}
	if err := tx.Where("candidate_id = ?", candidateID).Delete(&Experience{}).Error; err != nil {
		return err
	}
	if err := tx.Where("candidate_id = ?", candidateID).Delete(&Endorsement{}).Error; err != nil {
		return err
	}
	if err := tx.Where("candidate_id = ?", candidateID).Delete(&Policy{}).Error; err != nil {
		return err
	}
	return tx.Where("candidate_id = ?", candidateID).Delete(&RecentPost{}).Error
}

func upsertSocialMedia(tx *gorm.DB, candidateID int64, input SocialMediaInput) error {
	var existing SocialMedia
	err := tx.Where("candidate_id = ?", candidateID).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		social := socialMediaFrom(candidateID, input)
		return tx.Create(&social).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&SocialMedia{}).Where("candidate_id = ?", candidateID).Updates(map[string]interface{}{
		"website":   input.Website,
		"email":     input.Email,
		"twitter":   input.Twitter,
		"facebook":  input.Facebook,
		"instagram": input.Instagram,
	}).Error
}

func socialMediaFrom(candidateID int64, input SocialMediaInput) SocialMedia {
	return SocialMedia{
		CandidateID: candidateID,
		Website:     input.Website,
		Email:       input.Email,
		Twitter:     input.Twitter,
		Facebook:    input.Facebook,
		Instagram:   input.Instagram,
	}
}

func (s *Service) loggerOrDefault() *zap.Logger {
	if s == nil || s.logger == nil {
		return noOpLogger
	}
	return s.logger
}

func (s *Service) logError(operation, reason string, err error, fields ...zap.Field) {
	attrs := []zap.Field{
		zap.String("operation", operation),
		zap.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, zap.Error(err))
	}
	attrs = append(attrs, fields...)
	s.loggerOrDefault().Error("candidate service error", attrs...)
}
