package mocks

import (
	"fmt"
	"time"

	"github.com/ashutosh-sx/Emergo/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, email, name string) (string, error)
	ValidateFunc func(token string) (*domain.SessionClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate produces a session token
func (m *MockTokenService) Generate(userID uint, email, name string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, name)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("token_%d", userID), nil
}

// Validate checks a session token
func (m *MockTokenService) Validate(token string) (*domain.SessionClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: valid claims for user 1
	now := time.Now()
	return &domain.SessionClaims{
		UserID:    1,
		Email:     "user@example.com",
		Name:      "User",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(7 * 24 * time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
