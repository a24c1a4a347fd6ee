package mocks

import (
	"context"

	"github.com/ashutosh-sx/Emergo/domain"
)

// MockAuthService implements domain.AuthService interface for handler tests
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, name, email, password, phone string) (*domain.User, string, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.User, string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, newPassword string) error
	ProfileFunc        func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password, phone string) (*domain.User, string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password, phone)
	}
	user := &domain.User{ID: 1, Name: name, Email: email, Phone: phone}
	return user, "token_1", nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", domain.ErrInvalidCredentials
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return domain.ErrResetTokenInvalid
}

func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// MockBookingService implements domain.BookingService interface for handler tests
type MockBookingService struct {
	CreateFunc func(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error)
	GetFunc    func(ctx context.Context, id uint) (*domain.Booking, error)
}

// NewMockBookingService creates a new MockBookingService with default behaviors
func NewMockBookingService() *MockBookingService {
	return &MockBookingService{}
}

func (m *MockBookingService) Create(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &domain.Booking{ID: 1, Status: domain.BookingStatusConfirmed}, nil
}

func (m *MockBookingService) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrBookingNotFound
}

// MockDriverService implements domain.DriverService interface for handler tests
type MockDriverService struct {
	RegisterFunc func(ctx context.Context, driver *domain.Driver) (uint, error)
}

// NewMockDriverService creates a new MockDriverService with default behaviors
func NewMockDriverService() *MockDriverService {
	return &MockDriverService{}
}

func (m *MockDriverService) Register(ctx context.Context, driver *domain.Driver) (uint, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, driver)
	}
	return 1, nil
}

// MockChatService implements domain.ChatService interface for handler tests
type MockChatService struct {
	AskFunc func(ctx context.Context, message string) (string, error)
}

// NewMockChatService creates a new MockChatService with default behaviors
func NewMockChatService() *MockChatService {
	return &MockChatService{}
}

func (m *MockChatService) Ask(ctx context.Context, message string) (string, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, message)
	}
	return "Please consult a doctor.", nil
}

// Compile-time interface compliance verification
var (
	_ domain.AuthService    = (*MockAuthService)(nil)
	_ domain.BookingService = (*MockBookingService)(nil)
	_ domain.DriverService  = (*MockDriverService)(nil)
	_ domain.ChatService    = (*MockChatService)(nil)
)
