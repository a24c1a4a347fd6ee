package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ashutosh-sx/Emergo/domain"
	"github.com/ashutosh-sx/Emergo/internal/config"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/auth"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/database"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/notifications"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/repositories"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/upstream"
	"github.com/ashutosh-sx/Emergo/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Log    zerolog.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo    domain.UserRepository
	BookingRepo domain.BookingRepository
	DriverRepo  domain.DriverRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AuthSvc         domain.AuthService
	BookingSvc      domain.BookingService
	DriverSvc       domain.DriverService
	ChatSvc         domain.ChatService
	Directions      domain.DirectionsProvider
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}

	c.initRepositories()

	if err := c.initServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.BookingRepo = repositories.NewBookingRepository(c.DB)
	c.DriverRepo = repositories.NewDriverRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		c.Log,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotificationSvc,
		c.RedisClient,
		auth.GenerateResetToken,
		services.AuthConfig{
			BaseURL:           c.Config.BaseURL,
			ResetTokenTTL:     c.Config.ResetTokenTTL,
			ResetResendWindow: c.Config.ResetResendWindow,
		},
		c.Log,
	)
	c.BookingSvc = services.NewBookingService(c.BookingRepo, c.NotificationSvc, c.Log)
	c.DriverSvc = services.NewDriverService(c.DriverRepo, c.Log)
	c.ChatSvc = services.NewChatService(upstream.NewGeminiProvider(c.Config.GeminiAPIKey), c.Log)

	directions, err := upstream.NewGoogleDirectionsProvider(c.Config.MapsAPIKey)
	if err != nil {
		return err
	}
	c.Directions = directions

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
