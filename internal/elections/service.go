package elections

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound indicates the requested election does not exist.
	ErrNotFound = errors.New("elections: not found")

	noOpLogger = zap.NewNop()
)

// Summary is the client-facing election shape. The zipcode set is only
// populated by the full listing, not the by-zipcode lookup.
type Summary struct {
	ID           int64             `json:"id"`
	Office       string            `json:"office"`
	Description  string            `json:"description"`
	District     string            `json:"district"`
	ElectionDate *string           `json:"electionDate"`
	Zipcodes     []string          `json:"zipcodes,omitempty"`
	Candidates   []LinkedCandidate `json:"candidates"`
}

// LinkedCandidate is the slim candidate projection embedded in summaries.
type LinkedCandidate struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Party    string  `json:"party"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// Input is the write payload for direct election CRUD.
type Input struct {
	Office       string   `json:"office"`
	Description  string   `json:"description"`
	District     string   `json:"district"`
	ElectionDate *string  `json:"electionDate"`
	Zipcodes     []string `json:"zipcodes"`
	CandidateIDs []int64  `json:"candidateIds"`
}

// ServiceConfig describes the dependencies for the election service.
type ServiceConfig struct {
	Database *gorm.DB
	Logger   *zap.Logger
}

// Service owns election assignment, listing and direct CRUD.
type Service struct {
	db        *gorm.DB
	logger    *zap.Logger
	assignMus sync.Map
}

// NewService constructs the election service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, fmt.Errorf("elections: database handle is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{db: cfg.Database, logger: logger}, nil
}

// AssignWithinTx resolves the election identified by the normalized
// (district, office) pair, creating it when absent, reconciles its zipcode
// set to exactly the submitted one, and links the candidate to it. The
// zipcode set is replaced, never unioned, so the last submission wins even
// across candidates sharing the contest. Find-or-create is serialized per
// natural key so concurrent assignment calls cannot race a duplicate
// election into existence.
func (s *Service) AssignWithinTx(tx *gorm.DB, candidateID int64, district, office string, zipcodes []string) error {
	districtKey := NormalizeKey(district)
	officeKey := NormalizeKey(office)
	if districtKey == "" || officeKey == "" || len(zipcodes) == 0 {
		return nil
	}

	unlock := s.lockNaturalKey(districtKey + "\x00" + officeKey)
	defer unlock()

	var election Election
	err := tx.Where("district_key = ? AND office_key = ?", districtKey, officeKey).Take(&election).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		election = Election{
			Office:      strings.TrimSpace(office),
			District:    strings.TrimSpace(district),
			Description: fmt.Sprintf("Election for %s", strings.TrimSpace(office)),
			OfficeKey:   officeKey,
			DistrictKey: districtKey,
		}
		if err := tx.Create(&election).Error; err != nil {
			return fmt.Errorf("elections: create for assignment: %w", err)
		}
		if err := insertZipcodes(tx, election.ID, zipcodes); err != nil {
			return fmt.Errorf("elections: seed zipcodes: %w", err)
		}
	case err != nil:
		return fmt.Errorf("elections: lookup natural key: %w", err)
	default:
		if err := tx.Where("election_id = ?", election.ID).Delete(&Zipcode{}).Error; err != nil {
			return fmt.Errorf("elections: clear zipcodes: %w", err)
		}
		if err := insertZipcodes(tx, election.ID, zipcodes); err != nil {
			return fmt.Errorf("elections: replace zipcodes: %w", err)
		}
	}

	link := ElectionCandidate{ElectionID: election.ID, CandidateID: candidateID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("elections: link candidate: %w", err)
	}
	return nil
}

// UnlinkWithinTx removes every ballot link held by the candidate.
func (s *Service) UnlinkWithinTx(tx *gorm.DB, candidateID int64) error {
	if err := tx.Where("candidate_id = ?", candidateID).Delete(&ElectionCandidate{}).Error; err != nil {
		return fmt.Errorf("elections: unlink candidate: %w", err)
	}
	return nil
}

// List returns every election ordered by district then office, enriched with
// its zipcode set and linked candidates.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	var rows []Election
	if err := s.db.WithContext(ctx).Order("district, office").Find(&rows).Error; err != nil {
		s.logError("list", err)
		return nil, fmt.Errorf("elections: list: %w", err)
	}

	summaries := make([]Summary, 0, len(rows))
	for _, election := range rows {
		zipcodes, err := s.zipcodesFor(ctx, election.ID)
		if err != nil {
			s.logError("list", err, zap.Int64("election_id", election.ID))
			return nil, err
		}
		candidates, err := s.candidatesFor(ctx, election.ID, false)
		if err != nil {
			s.logError("list", err, zap.Int64("election_id", election.ID))
			return nil, err
		}
		summaries = append(summaries, Summary{
			ID:           election.ID,
			Office:       election.Office,
			Description:  election.Description,
			District:     election.District,
			ElectionDate: election.ElectionDate,
			Zipcodes:     zipcodes,
			Candidates:   candidates,
		})
	}
	return summaries, nil
}

// ListByZipcode returns the elections whose zipcode set contains the given
// ZIP, each enriched with linked candidates only.
func (s *Service) ListByZipcode(ctx context.Context, zipcode string) ([]Summary, error) {
	var rows []Election
	err := s.db.WithContext(ctx).
		Distinct("elections.*").
		Joins("INNER JOIN zipcodes ON elections.id = zipcodes.election_id").
		Where("zipcodes.zipcode = ?", zipcode).
		Order("elections.district, elections.office").
		Find(&rows).Error
	if err != nil {
		s.logError("list_by_zipcode", err, zap.String("zipcode", zipcode))
		return nil, fmt.Errorf("elections: list by zipcode: %w", err)
	}

	summaries := make([]Summary, 0, len(rows))
	for _, election := range rows {
		candidates, err := s.candidatesFor(ctx, election.ID, true)
		if err != nil {
			s.logError("list_by_zipcode", err, zap.Int64("election_id", election.ID))
			return nil, err
		}
		summaries = append(summaries, Summary{
			ID:           election.ID,
			Office:       election.Office,
			Description:  election.Description,
			District:     election.District,
			ElectionDate: election.ElectionDate,
			Candidates:   candidates,
		})
	}
	return summaries, nil
}

// Create inserts an election with its zipcode set and candidate links.
func (s *Service) Create(ctx context.Context, input Input) (int64, error) {
	var electionID int64
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		election := Election{
			Office:       strings.TrimSpace(input.Office),
			Description:  input.Description,
			District:     strings.TrimSpace(input.District),
			OfficeKey:    NormalizeKey(input.Office),
			DistrictKey:  NormalizeKey(input.District),
			ElectionDate: input.ElectionDate,
		}
		if err := tx.Create(&election).Error; err != nil {
			return fmt.Errorf("elections: create: %w", err)
		}
		electionID = election.ID
		if err := insertZipcodes(tx, election.ID, input.Zipcodes); err != nil {
			return fmt.Errorf("elections: create zipcodes: %w", err)
		}
		return linkCandidates(tx, election.ID, input.CandidateIDs)
	})
	if txErr != nil {
		s.logError("create", txErr, zap.String("office", input.Office))
		return 0, txErr
	}
	return electionID, nil
}

// Update rewrites the election row and replaces both its zipcode set and its
// candidate links with the submitted payload.
func (s *Service) Update(ctx context.Context, electionID int64, input Input) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Election
		err := tx.Where("id = ?", electionID).Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("elections: update select: %w", err)
		}

		updates := map[string]interface{}{
			"office":        strings.TrimSpace(input.Office),
			"description":   input.Description,
			"district":      strings.TrimSpace(input.District),
			"office_key":    NormalizeKey(input.Office),
			"district_key":  NormalizeKey(input.District),
			"election_date": input.ElectionDate,
		}
		if err := tx.Model(&Election{}).Where("id = ?", electionID).Updates(updates).Error; err != nil {
			return fmt.Errorf("elections: update: %w", err)
		}

		if err := tx.Where("election_id = ?", electionID).Delete(&Zipcode{}).Error; err != nil {
			return fmt.Errorf("elections: update clear zipcodes: %w", err)
		}
		if err := tx.Where("election_id = ?", electionID).Delete(&ElectionCandidate{}).Error; err != nil {
			return fmt.Errorf("elections: update clear links: %w", err)
		}
		if err := insertZipcodes(tx, electionID, input.Zipcodes); err != nil {
			return fmt.Errorf("elections: update zipcodes: %w", err)
		}
		return linkCandidates(tx, electionID, input.CandidateIDs)
	})
	if txErr != nil && !errors.Is(txErr, ErrNotFound) {
		s.logError("update", txErr, zap.Int64("election_id", electionID))
	}
	return txErr
}

// Delete removes the election together with its zipcodes and candidate links.
// Deleting an absent election is a no-op.
func (s *Service) Delete(ctx context.Context, electionID int64) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("election_id = ?", electionID).Delete(&Zipcode{}).Error; err != nil {
			return fmt.Errorf("elections: delete zipcodes: %w", err)
		}
		if err := tx.Where("election_id = ?", electionID).Delete(&ElectionCandidate{}).Error; err != nil {
			return fmt.Errorf("elections: delete links: %w", err)
		}
		if err := tx.Where("id = ?", electionID).Delete(&Election{}).Error; err != nil {
			return fmt.Errorf("elections: delete: %w", err)
		}
		return nil
	})
	if txErr != nil {
		s.logError("delete", txErr, zap.Int64("election_id", electionID))
	}
	return txErr
}

func (s *Service) zipcodesFor(ctx context.Context, electionID int64) ([]string, error) {
	var rows []Zipcode
	if err := s.db.WithContext(ctx).Where("election_id = ?", electionID).Order("zipcode").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("elections: zipcodes: %w", err)
	}
	zipcodes := make([]string, 0, len(rows))
	for _, row := range rows {
		zipcodes = append(zipcodes, row.Zipcode)
	}
	return zipcodes, nil
}

func (s *Service) candidatesFor(ctx context.Context, electionID int64, includePhoto bool) ([]LinkedCandidate, error) {
	columns := "candidates.id, candidates.name, candidates.position, candidates.party"
	if includePhoto {
		columns += ", candidates.photo_url"
	}

	var rows []LinkedCandidate
	err := s.db.WithContext(ctx).
		Table("candidates").
		Select(columns).
		Joins("INNER JOIN election_candidates ON candidates.id = election_candidates.candidate_id").
		Where("election_candidates.election_id = ?", electionID).
		Order("candidates.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("elections: linked candidates: %w", err)
	}
	if rows == nil {
		rows = make([]LinkedCandidate, 0)
	}
	return rows, nil
}

func insertZipcodes(tx *gorm.DB, electionID int64, zipcodes []string) error {
	for _, zipcode := range zipcodes {
		row := Zipcode{ElectionID: electionID, Zipcode: zipcode}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func linkCandidates(tx *gorm.DB, electionID int64, candidateIDs []int64) error {
	for _, candidateID := range candidateIDs {
		link := ElectionCandidate{ElectionID: electionID, CandidateID: candidateID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return fmt.Errorf("elections: link candidate %d: %w", candidateID, err)
		}
	}
	return nil
}

func (s *Service) lockNaturalKey(key string) func() {
	value, _ := s.assignMus.LoadOrStore(key, &sync.Mutex{})
	mutex := value.(*sync.Mutex)
	mutex.Lock()
	return mutex.Unlock
}

func (s *Service) logError(operation string, err error, fields ...zap.Field) {
	attrs := []zap.Field{zap.String("operation", "elections."+operation), zap.Error(err)}
	attrs = append(attrs, fields...)
	if s.logger != nil {
		s.logger.Error("election service error", attrs...)
	}
}
