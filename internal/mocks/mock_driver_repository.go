package mocks

import (
	"context"

	"github.com/ashutosh-sx/Emergo/domain"
)

// MockDriverRepository implements domain.DriverRepository interface for testing
type MockDriverRepository struct {
	CreateFunc         func(ctx context.Context, driver *domain.Driver) error
	FindByIdentityFunc func(ctx context.Context, phone, licenseNumber, vehicleRegNumber string) (*domain.Driver, error)
}

// NewMockDriverRepository creates a new MockDriverRepository with default behaviors
func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{}
}

// Create creates a new driver application
func (m *MockDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, driver)
	}
	// Default behavior: success, assign an id
	driver.ID = 1
	return nil
}

// FindByIdentity probes for an existing application by identity fields
func (m *MockDriverRepository) FindByIdentity(ctx context.Context, phone, licenseNumber, vehicleRegNumber string) (*domain.Driver, error) {
	if m.FindByIdentityFunc != nil {
		return m.FindByIdentityFunc(ctx, phone, licenseNumber, vehicleRegNumber)
	}
	// Default behavior: no match
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.DriverRepository = (*MockDriverRepository)(nil)
