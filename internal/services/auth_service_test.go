package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
	"github.com/ashutosh-sx/Emergo/internal/mocks"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func newTestAuthService(
	t *testing.T,
	userRepo *mocks.MockUserRepository,
	passwordSvc *mocks.MockPasswordService,
	tokenSvc *mocks.MockTokenService,
	notificationSvc *mocks.MockNotificationService,
) domain.AuthService {
	t.Helper()
	return NewAuthService(
		userRepo,
		passwordSvc,
		tokenSvc,
		notificationSvc,
		newTestRedis(t),
		func() (string, error) { return "fixed-reset-token", nil },
		AuthConfig{
			BaseURL:           "http://localhost:3000",
			ResetTokenTTL:     time.Hour,
			ResetResendWindow: time.Minute,
		},
		zerolog.Nop(),
	)
}

func createValidUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           1,
		Name:         "Ann",
		Email:        "ann@x.com",
		Phone:        "9876543210",
		PasswordHash: "hashed_pw123456",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestAuthServiceImpl_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
		validate      func(t *testing.T, user *domain.User, token string)
	}{
		{
			name:     "successful signup",
			email:    "ann@x.com",
			password: "pw123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 1
					return nil
				}
			},
			expectedError: nil,
			validate: func(t *testing.T, user *domain.User, token string) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Email != "ann@x.com" {
					t.Errorf("expected email ann@x.com, got %s", user.Email)
				}
				if user.PasswordHash != "hashed_pw123456" {
					t.Errorf("expected hashed password stored, got %s", user.PasswordHash)
				}
				if token == "" {
					t.Error("expected session token to be issued")
				}
			},
		},
		{
			name:     "email already registered",
			email:    "existing@x.com",
			password: "pw123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					t.Error("create must not be called when the email exists")
					return nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
			validate: func(t *testing.T, user *domain.User, token string) {
				if user != nil {
					t.Error("expected user to be nil")
				}
			},
		},
		{
			name:     "race resolves at unique index",
			email:    "ann@x.com",
			password: "pw123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
			validate:      func(t *testing.T, user *domain.User, token string) {},
		},
		{
			name:     "password hashing fails",
			email:    "ann@x.com",
			password: "pw123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password: hashing failed"),
			validate:      func(t *testing.T, user *domain.User, token string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := newTestAuthService(t, userRepo, passwordSvc, mocks.NewMockTokenService(), mocks.NewMockNotificationService())
			user, token, err := svc.Signup(context.Background(), "Ann", tt.email, tt.password, "9876543210")

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !errors.Is(err, tt.expectedError) && err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.validate(t, user, token)
		})
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ann@x.com",
			password: "pw123456",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "unknown email",
			email:         "nobody@x.com",
			password:      "pw123456",
			setupMocks:    func(userRepo *mocks.MockUserRepository) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ann@x.com",
			password: "wrong-password",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil || token == "" {
				t.Fatal("expected user and token on success")
			}
		})
	}
}

func TestAuthServiceImpl_LoginFailuresIndistinguishable(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "ann@x.com" {
			return createValidUser(t), nil
		}
		return nil, domain.ErrUserNotFound
	}

	svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())

	_, _, unknownEmailErr := svc.Login(context.Background(), "nobody@x.com", "pw123456")
	_, _, wrongPasswordErr := svc.Login(context.Background(), "ann@x.com", "wrong")

	if unknownEmailErr == nil || wrongPasswordErr == nil {
		t.Fatal("both logins should fail")
	}
	if unknownEmailErr.Error() != wrongPasswordErr.Error() {
		t.Errorf("failure messages must be indistinguishable: %q vs %q", unknownEmailErr, wrongPasswordErr)
	}
}

func TestAuthServiceImpl_ForgotPassword(t *testing.T) {
	t.Run("known email stores token and delivers link", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}

		var storedToken string
		var storedExpiry time.Time
		userRepo.SetResetTokenFunc = func(ctx context.Context, userID uint, token string, expiry time.Time) error {
			storedToken = token
			storedExpiry = expiry
			return nil
		}

		notificationSvc := mocks.NewMockNotificationService()
		svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), notificationSvc)

		if err := svc.ForgotPassword(context.Background(), "ann@x.com"); err != nil {
			t.Fatalf("ForgotPassword: %v", err)
		}

		if storedToken != "fixed-reset-token" {
			t.Errorf("stored token = %q", storedToken)
		}
		wantExpiry := time.Now().Add(time.Hour)
		if storedExpiry.Before(wantExpiry.Add(-10*time.Second)) || storedExpiry.After(wantExpiry.Add(10*time.Second)) {
			t.Errorf("expiry = %v, want now+1h", storedExpiry)
		}

		if len(notificationSvc.Emails) != 1 {
			t.Fatalf("expected one delivery, got %d", len(notificationSvc.Emails))
		}
		link := notificationSvc.Emails[0].Body
		if !strings.Contains(link, "/reset-password?token=fixed-reset-token") {
			t.Errorf("reset link = %q", link)
		}
	})

	t.Run("unknown email succeeds without side effects", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.SetResetTokenFunc = func(ctx context.Context, userID uint, token string, expiry time.Time) error {
			t.Error("no token must be stored for an unknown email")
			return nil
		}

		notificationSvc := mocks.NewMockNotificationService()
		svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), notificationSvc)

		if err := svc.ForgotPassword(context.Background(), "nobody@x.com"); err != nil {
			t.Fatalf("unknown email must not surface an error: %v", err)
		}
		if len(notificationSvc.Emails) != 0 {
			t.Error("no delivery expected for unknown email")
		}
	})

	t.Run("second request within window is throttled", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}

		svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		ctx := context.Background()

		if err := svc.ForgotPassword(ctx, "ann@x.com"); err != nil {
			t.Fatalf("first request: %v", err)
		}
		if err := svc.ForgotPassword(ctx, "ann@x.com"); !errors.Is(err, domain.ErrResetThrottled) {
			t.Fatalf("expected ErrResetThrottled, got %v", err)
		}
	})

	t.Run("throttling cannot distinguish known from unknown addresses", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			if email == "ann@x.com" {
				return createValidUser(t), nil
			}
			return nil, domain.ErrUserNotFound
		}

		svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		ctx := context.Background()

		sequence := func(email string) []error {
			return []error{
				svc.ForgotPassword(ctx, email),
				svc.ForgotPassword(ctx, email),
			}
		}

		known := sequence("ann@x.com")
		unknown := sequence("nobody@x.com")

		for i := range known {
			if !errors.Is(unknown[i], known[i]) && !(known[i] == nil && unknown[i] == nil) {
				t.Errorf("request %d: known=%v unknown=%v — responses must match", i+1, known[i], unknown[i])
			}
		}
		if !errors.Is(known[1], domain.ErrResetThrottled) || !errors.Is(unknown[1], domain.ErrResetThrottled) {
			t.Errorf("second request must throttle for both: known=%v unknown=%v", known[1], unknown[1])
		}
	})

	t.Run("failed persist releases the window for a retry", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}
		failing := true
		userRepo.SetResetTokenFunc = func(ctx context.Context, userID uint, token string, expiry time.Time) error {
			if failing {
				return errors.New("connection reset")
			}
			return nil
		}

		svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		ctx := context.Background()

		if err := svc.ForgotPassword(ctx, "ann@x.com"); err == nil {
			t.Fatal("expected the persist failure to surface")
		}

		failing = false
		if err := svc.ForgotPassword(ctx, "ann@x.com"); err != nil {
			t.Fatalf("retry after a transient failure must not be throttled: %v", err)
		}
	})
}

func TestAuthServiceImpl_ResetPassword(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		var consumedToken, consumedHash string
		userRepo.ConsumeResetTokenFunc = func(ctx context.Context, token, passwordHash string) (*domain.User, error) {
			consumedToken = token
			consumedHash = passwordHash
			return createValidUser(t), nil
		}

		svc := newTestAuthService(t, userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		if err := svc.ResetPassword(context.Background(), "tok-abc", "newpw1"); err != nil {
			t.Fatalf("ResetPassword: %v", err)
		}

		if consumedToken != "tok-abc" {
			t.Errorf("consumed token = %q", consumedToken)
		}
		if consumedHash != "hashed_newpw1" {
			t.Errorf("stored hash = %q, want the hash not the plaintext", consumedHash)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		svc := newTestAuthService(t, mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		err := svc.ResetPassword(context.Background(), "bad-token", "newpw1")
		if !errors.Is(err, domain.ErrResetTokenInvalid) {
			t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
		}
	})
}
