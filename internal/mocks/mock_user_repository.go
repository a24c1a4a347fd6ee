package mocks

import (
	"context"
	"time"

	"github.com/ashutosh-sx/Emergo/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc          func(ctx context.Context, id uint) (*domain.User, error)
	SetResetTokenFunc     func(ctx context.Context, userID uint, token string, expiry time.Time) error
	ConsumeResetTokenFunc func(ctx context.Context, token, passwordHash string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// SetResetToken stores a reset token on the user row
func (m *MockUserRepository) SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, userID, token, expiry)
	}
	// Default behavior: success
	return nil
}

// ConsumeResetToken redeems a reset token
func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string) (*domain.User, error) {
	if m.ConsumeResetTokenFunc != nil {
		return m.ConsumeResetTokenFunc(ctx, token, passwordHash)
	}
	// Default behavior: invalid token
	return nil, domain.ErrResetTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
