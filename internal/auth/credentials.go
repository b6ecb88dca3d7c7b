package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials indicates the submitted username/password pair does
// not match the configured admin credential.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// CredentialVerifier checks submitted credentials against the single admin
// account supplied through configuration. The configured password is hashed
// once at construction so the plaintext is not retained.
type CredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewCredentialVerifier hashes the configured admin password and returns the
// verifier.
func NewCredentialVerifier(username, password string) (*CredentialVerifier, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("auth: admin username required")
	}
	if password == "" {
		return nil, errors.New("auth: admin password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &CredentialVerifier{username: username, passwordHash: hash}, nil
}

// Verify returns nil when the pair matches the configured admin credential
// and ErrInvalidCredentials otherwise.
func (v *CredentialVerifier) Verify(username, password string) error {
	if strings.TrimSpace(username) != v.username {
		_ = bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
