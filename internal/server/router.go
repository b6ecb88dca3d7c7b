package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/betterballot/ballot-api/internal/auth"
	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/elections"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const adminClaimsContextKey = "ballot_admin_claims"

var (
	errMissingCandidateService = errors.New("candidate service dependency required")
	errMissingElectionService  = errors.New("election service dependency required")
	errMissingTokenManager     = errors.New("token manager dependency required")
	errMissingCredentials      = errors.New("credential verifier dependency required")
	errInvalidAuthorization    = errors.New("authorization header missing or invalid")
)

// CandidateService is the candidate surface the router depends on.
type CandidateService interface {
	List(ctx context.Context) ([]candidates.Profile, error)
	Get(ctx context.Context, candidateID int64) (candidates.Profile, error)
	Create(ctx context.Context, input candidates.ProfileInput) (int64, error)
	Update(ctx context.Context, candidateID int64, input candidates.ProfileInput) error
	Delete(ctx context.Context, candidateID int64) error
}

// ElectionService is the election surface the router depends on.
type ElectionService interface {
	List(ctx context.Context) ([]elections.Summary, error)
	ListByZipcode(ctx context.Context, zipcode string) ([]elections.Summary, error)
	Create(ctx context.Context, input elections.Input) (int64, error)
	Update(ctx context.Context, electionID int64, input elections.Input) error
	Delete(ctx context.Context, electionID int64) error
}

// TokenManager issues and validates admin bearer tokens.
type TokenManager interface {
	IssueAdminToken(username string) (string, error)
	ValidateToken(token string) (auth.AdminClaims, error)
}

// CredentialVerifier checks a submitted admin credential pair.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// AutocompleteClient forwards address queries to the mapping service.
type AutocompleteClient interface {
	Autocomplete(ctx context.Context, input string) ([]byte, error)
}

// Dependencies bundles everything the HTTP handler needs.
type Dependencies struct {
	Candidates   CandidateService
	Elections    ElectionService
	TokenManager TokenManager
	Credentials  CredentialVerifier
	Autocomplete AutocompleteClient
	Logger       *zap.Logger
}

// NewHTTPHandler wires the gin router for the full API surface.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.Candidates == nil {
		return nil, errMissingCandidateService
	}
	if deps.Elections == nil {
		return nil, errMissingElectionService
	}
	if deps.TokenManager == nil {
		return nil, errMissingTokenManager
	}
	if deps.Credentials == nil {
		return nil, errMissingCredentials
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		candidates:   deps.Candidates,
		elections:    deps.Elections,
		tokens:       deps.TokenManager,
		credentials:  deps.Credentials,
		autocomplete: deps.Autocomplete,
		logger:       logger,
	}

	router.GET("/", handler.handleRoot)
	router.GET("/autocomplete", handler.handleAutocomplete)

	api := router.Group("/api")
	api.POST("/auth/login", handler.handleLogin)
	api.GET("/auth/verify", handler.handleVerify)
	api.POST("/auth/logout", handler.handleLogout)

	api.GET("/candidates", handler.handleListCandidates)
	api.GET("/candidates/:id", handler.handleGetCandidate)

	api.GET("/elections", handler.handleListElections)
	api.GET("/elections/zipcode/:zipcode", handler.handleElectionsByZipcode)
	api.POST("/elections", handler.handleCreateElection)
	api.PUT("/elections/:id", handler.handleUpdateElection)
	api.DELETE("/elections/:id", handler.handleDeleteElection)

	api.GET("/districts", handler.handleListDistricts)
	api.GET("/districts/zipcode/:zipcode", handler.handleDistrictsByZipcode)

	protected := api.Group("/")
	protected.Use(handler.authorizeRequest)
	protected.POST("/candidates", handler.handleCreateCandidate)
	protected.PUT("/candidates/:id", handler.handleUpdateCandidate)
	protected.DELETE("/candidates/:id", handler.handleDeleteCandidate)

	return router, nil
}

type httpHandler struct {
	candidates   CandidateService
	elections    ElectionService
	tokens       TokenManager
	credentials  CredentialVerifier
	autocomplete AutocompleteClient
	logger       *zap.Logger
}

func (h *httpHandler) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "Better Ballot backend is running. Use the /autocomplete endpoint for address suggestions.")
}

func (h *httpHandler) authorizeRequest(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errInvalidAuthorization.Error()})
		return
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errInvalidAuthorization.Error()})
		return
	}
	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			h.logger.Info("token validation failed", zap.Error(err))
		} else {
			h.logger.Warn("token validation failed", zap.Error(err))
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(adminClaimsContextKey, claims)
	c.Next()
}
