package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type ResetConfig struct {
	TTL          string `yaml:"ttl"`
	ResendWindow string `yaml:"resend_window"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type UpstreamConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
	MapsAPIKey   string `yaml:"maps_api_key"`
}

type ChatConfig struct {
	RateRPS   float64 `yaml:"rate_rps"`
	RateBurst int     `yaml:"rate_burst"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Reset    ResetConfig    `yaml:"reset"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Chat     ChatConfig     `yaml:"chat"`
}

type Config struct {
	Port              string
	GinMode           string
	BaseURL           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTIssuer         string
	SessionTTL        time.Duration
	ResetTokenTTL     time.Duration
	ResetResendWindow time.Duration
	TwilioSID         string
	TwilioToken       string
	TwilioFrom        string
	GeminiAPIKey      string
	MapsAPIKey        string
	ChatRateRPS       float64
	ChatRateBurst     int
}

// ErrMissingJWTSecret is returned when no signing secret is configured.
// There is deliberately no built-in default: a process without an explicit
// secret must refuse to start.
var ErrMissingJWTSecret = errors.New("jwt secret is required: set jwt.secret or JWT_SECRET")

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(orDefault(configFile.JWT.TTL, "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	resetTTL, err := time.ParseDuration(orDefault(configFile.Reset.TTL, "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid reset token ttl: %w", err)
	}

	resendWindow, err := time.ParseDuration(orDefault(configFile.Reset.ResendWindow, "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid reset resend window: %w", err)
	}

	cfg := &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           env("GIN_MODE", configFile.App.GinMode),
		BaseURL:           env("PUBLIC_BASE_URL", orDefault(configFile.App.BaseURL, "http://localhost:3000")),
		DSN:               env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:         env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:     env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:           configFile.Redis.DB,
		JWTSecret:         env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:         orDefault(configFile.JWT.Issuer, "emergo"),
		SessionTTL:        sessionTTL,
		ResetTokenTTL:     resetTTL,
		ResetResendWindow: resendWindow,
		TwilioSID:         env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:       env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:        env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		GeminiAPIKey:      env("GEMINI_API_KEY", configFile.Upstream.GeminiAPIKey),
		MapsAPIKey:        env("GOOGLE_MAPS_API_KEY", configFile.Upstream.MapsAPIKey),
		ChatRateRPS:       configFile.Chat.RateRPS,
		ChatRateBurst:     configFile.Chat.RateBurst,
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	if cfg.Port == "0" {
		cfg.Port = "8080"
	}
	if cfg.ChatRateRPS == 0 {
		cfg.ChatRateRPS = 1
	}
	if cfg.ChatRateBurst == 0 {
		cfg.ChatRateBurst = 5
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
