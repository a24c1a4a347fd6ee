package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// AuthConfig carries the reset-flow knobs for the auth service
type AuthConfig struct {
	BaseURL           string
	ResetTokenTTL     time.Duration
	ResetResendWindow time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	newResetToken   func() (string, error)
	config          AuthConfig
	log             zerolog.Logger
}

// NewAuthService creates a new auth service. newResetToken is the generator
// for opaque reset tokens, injected so tests can make it deterministic.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
	redisClient *redis.Client,
	newResetToken func() (string, error),
	config AuthConfig,
	log zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		newResetToken:   newResetToken,
		config:          config,
		log:             log.With().Str("component", "auth").Logger(),
	}
}

// Signup implements domain.AuthService
func (s *AuthServiceImpl) Signup(ctx context.Context, name, email, password, phone string) (*domain.User, string, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, "", domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two signups racing past the probe resolve at the unique index.
		if isUniqueViolation(err) {
			return nil, "", domain.ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

// Login implements domain.AuthService. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

// ForgotPassword implements domain.AuthService. An unknown email returns nil
// with no side effects so the endpoint cannot be used to enumerate accounts.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	// One request per address per window, claimed before the lookup.
	// Unknown and registered addresses must take the same externally
	// observable path, throttling included.
	resendKey := fmt.Sprintf("pwdreset:res:%s", strings.ToLower(email))
	ok, err := s.redisClient.SetNX(ctx, resendKey, 1, s.config.ResetResendWindow).Result()
	if err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}
	if !ok {
		return domain.ErrResetThrottled
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("reset requested for unknown email")
			return nil
		}
		s.releaseResendThrottle(ctx, resendKey)
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.newResetToken()
	if err != nil {
		s.releaseResendThrottle(ctx, resendKey)
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(s.config.ResetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		s.releaseResendThrottle(ctx, resendKey)
		return fmt.Errorf("failed to persist reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, token)
	if err := s.notificationSvc.SendEmail(user.Email, "Reset your Emergo password", resetLink); err != nil {
		s.releaseResendThrottle(ctx, resendKey)
		return fmt.Errorf("failed to deliver reset link: %w", err)
	}

	return nil
}

// releaseResendThrottle frees the resend window when no link went out, so a
// transient failure does not lock the address out of retrying.
func (s *AuthServiceImpl) releaseResendThrottle(ctx context.Context, key string) {
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to release resend throttle")
	}
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.ConsumeResetToken(ctx, token, hashedPassword)
	if err != nil {
		return err
	}

	s.log.Info().Uint("user_id", user.ID).Msg("password reset")
	return nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
