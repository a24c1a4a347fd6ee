package mocks

import (
	"context"

	"github.com/ashutosh-sx/Emergo/domain"
)

// MockBookingRepository implements domain.BookingRepository interface for testing
type MockBookingRepository struct {
	CreateFunc   func(ctx context.Context, booking *domain.Booking) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Booking, error)
}

// NewMockBookingRepository creates a new MockBookingRepository with default behaviors
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// Create creates a new booking
func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	// Default behavior: success, assign an id
	booking.ID = 1
	return nil
}

// FindByID finds a booking by ID
func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrBookingNotFound
}

// Compile-time interface compliance verification
var _ domain.BookingRepository = (*MockBookingRepository)(nil)
