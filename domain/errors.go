package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Password reset errors
var (
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
	ErrResetThrottled    = errors.New("reset link recently sent")
)

// Session token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Booking errors
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDate     = errors.New("date is not a valid ISO-8601 instant")
	ErrInvalidType     = errors.New("ambulance type must be Basic or ICU")
)

// Driver registration errors
var ErrDriverAlreadyRegistered = errors.New("driver or vehicle already registered")

// Upstream collaborator errors
var (
	ErrUpstream        = errors.New("upstream provider failure")
	ErrMapsUnavailable = errors.New("maps provider not configured")
	ErrChatUnavailable = errors.New("chat provider not configured")
)
