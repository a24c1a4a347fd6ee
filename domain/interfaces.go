package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error
	// ConsumeResetToken replaces the password and clears both reset fields in
	// a single conditional update. Returns ErrResetTokenInvalid when no row
	// carries the token with a future expiry, so a token can never be
	// redeemed twice.
	ConsumeResetToken(ctx context.Context, token, passwordHash string) (*User, error)
}

// BookingRepository defines booking data access operations
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
}

// DriverRepository defines driver application data access operations
type DriverRepository interface {
	Create(ctx context.Context, driver *Driver) error
	// FindByIdentity probes for an application matching any one of phone,
	// license number or vehicle registration number. Returns (nil, nil)
	// when no application matches.
	FindByIdentity(ctx context.Context, phone, licenseNumber, vehicleRegNumber string) (*Driver, error)
}

// AuthService defines the account lifecycle business logic
type AuthService interface {
	Signup(ctx context.Context, name, email, password, phone string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, userID uint) (*User, error)
}

// BookingService defines booking business logic
type BookingService interface {
	Create(ctx context.Context, req *BookingRequest) (*Booking, error)
	Get(ctx context.Context, id uint) (*Booking, error)
}

// BookingRequest carries validated booking input into the service
type BookingRequest struct {
	Name        string
	Phone       string
	AltPhone    string
	Pickup      string
	Destination string
	Type        string
	Date        string
	Condition   string
	UserID      *uint
}

// DriverService defines driver registration business logic
type DriverService interface {
	Register(ctx context.Context, driver *Driver) (uint, error)
}

// ChatService defines the symptom-triage chat business logic
type ChatService interface {
	Ask(ctx context.Context, message string) (string, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, email, name string) (string, error)
	Validate(token string) (*SessionClaims, error)
}

// NotificationService delivers messages across the process trust boundary.
// The reset link travels through SendEmail; booking confirmations through
// SendSMS.
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// ChatProvider is the narrow seam over the generative-language upstream
type ChatProvider interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// DirectionsProvider is the narrow seam over the maps upstream
type DirectionsProvider interface {
	GetDirections(ctx context.Context, origin, destination string) (*Route, error)
}
