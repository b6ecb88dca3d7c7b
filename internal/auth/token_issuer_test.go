package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuerIssuesAdminTokens(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("super-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
		TokenTTL:      30 * time.Minute,
	})

	tokenString, err := issuer.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("expected successful issuance: %v", err)
	}

	parser := jwt.Parser{}
	claims := &AdminClaims{}

	_, err = parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("super-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse generated token: %v", err)
	}

	if claims.Username != "admin" {
		t.Fatalf("unexpected username %s", claims.Username)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("unexpected role %s", claims.Role)
	}
	if claims.Subject != "admin" {
		t.Fatalf("unexpected subject %s", claims.Subject)
	}
	if claims.Issuer != "ballot-auth" {
		t.Fatalf("unexpected issuer %s", claims.Issuer)
	}
	if len(claims.Audience) == 0 || claims.Audience[0] != "ballot-api" {
		t.Fatalf("unexpected audience %#v", claims.Audience)
	}
	if claims.ID == "" {
		t.Fatalf("expected a token id")
	}
}

func TestTokenIssuerAssignsUniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("super-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
	})

	first, err := issuer.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("unexpected error issuing first token: %v", err)
	}
	second, err := issuer.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("unexpected error issuing second token: %v", err)
	}

	firstClaims, err := issuer.ValidateToken(first)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	secondClaims, err := issuer.ValidateToken(second)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if firstClaims.ID == secondClaims.ID {
		t.Fatalf("expected distinct token ids, both were %s", firstClaims.ID)
	}
}

func TestTokenIssuerRejectsMissingSecret(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		Issuer:   "ballot-auth",
		Audience: "ballot-api",
	})

	if _, err := issuer.IssueAdminToken("admin"); err == nil {
		t.Fatalf("expected issuance error for missing secret")
	}
}

func TestTokenIssuerRejectsMissingUsername(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("super-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
	})

	if _, err := issuer.IssueAdminToken(""); err == nil {
		t.Fatalf("expected issuance error for missing username")
	}
}

func TestTokenIssuerValidatesIssuedTokens(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("another-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
		TokenTTL:      15 * time.Minute,
	})

	tokenString, err := issuer.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	claims, err := issuer.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("unexpected username %s", claims.Username)
	}
}

func TestTokenIssuerRejectsExpiredTokens(t *testing.T) {
	issued := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("another-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
		TokenTTL:      time.Minute,
		Clock:         func() time.Time { return issued },
	})

	tokenString, err := issuer.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	late := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("another-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
		Clock:         func() time.Time { return issued.Add(2 * time.Minute) },
	})

	_, err = late.ValidateToken(tokenString)
	if err == nil {
		t.Fatalf("expected expiry error")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestTokenIssuerRejectsForeignAudience(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("another-secret"),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
	})
	other := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("another-secret"),
		Issuer:        "ballot-auth",
		Audience:      "other-api",
	})

	tokenString, err := other.IssueAdminToken("admin")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	if _, err := issuer.ValidateToken(tokenString); err == nil {
		t.Fatalf("expected audience mismatch error")
	}
}
