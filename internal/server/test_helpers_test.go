package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/betterballot/ballot-api/internal/auth"
	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/elections"
	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testDBCounter int64

type testStack struct {
	handler http.Handler
	issuer  *auth.TokenIssuer
	db      *gorm.DB
}

func newTestStack(t *testing.T, autocomplete AutocompleteClient) testStack {
	t.Helper()

	dsn := fmt.Sprintf("file:ballot_server_test_%d_%d?mode=memory&cache=shared",
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

	issuer := auth.NewTokenIssuer(auth.TokenIssuerConfig{
		SigningSecret: []byte("test-signing-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
		TokenTTL:      time.Hour,
	})
	verifier, err := auth.NewCredentialVerifier("admin", "test-password")
	if err != nil {
		t.Fatalf("failed to build credential verifier: %v", err)
	}

	handler, err := NewHTTPHandler(Dependencies{
		Candidates:   candidateService,
		Elections:    electionService,
		TokenManager: issuer,
		Credentials:  verifier,
		Autocomplete: autocomplete,
		Logger:       zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("failed to build http handler: %v", err)
	}

	return testStack{handler: handler, issuer: issuer, db: db}
}

func (s testStack) adminToken(t *testing.T) string {
	t.Helper()
	token, err := s.issuer.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return token
}

func (s testStack) do(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
}

type stubTokenManager struct {
	issueToken  string
	issueErr    error
	claims      auth.AdminClaims
	validateErr error
}

func (s stubTokenManager) IssueAdminToken(string) (string, error) {
	return s.issueToken, s.issueErr
}

func (s stubTokenManager) ValidateToken(string) (auth.AdminClaims, error) {
	return s.claims, s.validateErr
}
