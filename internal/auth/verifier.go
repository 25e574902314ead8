package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit; longer inputs would be
// truncated and could collide with the configured password.
const maxPasswordBytes = 72

// Verifier checks a credential pair against an authentication backend.
type Verifier interface {
	// Verify returns the matching user and true, or nil and false.
	Verify(ctx context.Context, email, password string) (*domain.User, bool)
}

// MockVerifier accepts exactly one email/password pair. It stands in for a
// real credential service and keeps only a bcrypt hash of the password.
type MockVerifier struct {
	user domain.User
	hash []byte
}

// NewMockVerifier hashes the configured password and returns a verifier
// for the single account described by cfg.
func NewMockVerifier(cfg Config) (*MockVerifier, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("mock credentials require an email and a password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing mock password: %w", err)
	}
	return &MockVerifier{
		user: domain.User{ID: cfg.UserID, Name: cfg.UserName, Email: cfg.Email},
		hash: hash,
	}, nil
}

func (v *MockVerifier) Verify(_ context.Context, email, password string) (*domain.User, bool) {
	if email != v.user.Email || len(password) > maxPasswordBytes {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return nil, false
	}
	u := v.user
	return &u, true
}
