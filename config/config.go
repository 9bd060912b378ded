package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration. It is built once
// at startup and treated as read-only for the process lifetime; business
// logic never reads the environment directly.
type Config struct {
	Server        ServerConfig
	Mail          MailConfig
	Challenge     ChallengeConfig
	Mirror        MirrorConfig
	Ledger        LedgerConfig
	Observability ObservabilityConfig
	Environment   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// MailConfig holds mail relay configuration. Operator is the fixed address
// that receives every submission notification.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Operator string
	Timeout  time.Duration
}

// ChallengeConfig holds the bot-challenge service key pair. SiteKey is
// public and rendered into the contact page; SecretKey never leaves the
// server.
type ChallengeConfig struct {
	SiteKey   string
	SecretKey string
	VerifyURL string
	Timeout   time.Duration
}

// MirrorConfig holds the remote-store OAuth credentials and the fixed file
// identifier of the ledger mirror.
type MirrorConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	FileID       string
}

// LedgerConfig holds the local append-only ledger location
type LedgerConfig struct {
	Path string
}

// ObservabilityConfig holds logging configuration
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string // json or console
}

// New creates a new Config instance by loading environment variables
func New() (*Config, error) {
	// Load .env if it exists
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getPort(),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 465),
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			Operator: getEnv("OPERATOR_EMAIL", getEnv("EMAIL_USER", "")),
			Timeout:  getEnvAsDuration("SMTP_TIMEOUT", 30*time.Second),
		},
		Challenge: ChallengeConfig{
			SiteKey:   getEnv("RECAPTCHA_SITE_KEY", ""),
			SecretKey: getEnv("RECAPTCHA_SECRET_KEY", ""),
			VerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
			Timeout:   getEnvAsDuration("RECAPTCHA_TIMEOUT", 10*time.Second),
		},
		Mirror: MirrorConfig{
			ClientID:     getEnv("GOOGLE_DRIVE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_DRIVE_CLIENT_SECRET", ""),
			RefreshToken: getEnv("GOOGLE_DRIVE_REFRESH_TOKEN", ""),
			FileID:       getEnv("GOOGLE_DRIVE_FILE_ID", ""),
		},
		Ledger: LedgerConfig{
			Path: getEnv("LEDGER_PATH", "contacts.csv"),
		},
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if all required configuration fields are set. A missing
// required value is a startup-time misconfiguration; the pipeline never
// compensates for it.
func (c *Config) Validate() error {
	if c.Mail.Username == "" {
		return fmt.Errorf("mail relay user is required (EMAIL_USER)")
	}
	if c.Mail.Password == "" {
		return fmt.Errorf("mail relay password is required (EMAIL_PASS)")
	}
	if c.Mail.Operator == "" {
		return fmt.Errorf("operator address is required (OPERATOR_EMAIL or EMAIL_USER)")
	}
	if c.Challenge.SiteKey == "" {
		return fmt.Errorf("challenge site key is required (RECAPTCHA_SITE_KEY)")
	}
	if c.Challenge.SecretKey == "" {
		return fmt.Errorf("challenge secret key is required (RECAPTCHA_SECRET_KEY)")
	}
	if c.Mirror.ClientID == "" || c.Mirror.ClientSecret == "" || c.Mirror.RefreshToken == "" {
		return fmt.Errorf("remote store OAuth credentials are required (GOOGLE_DRIVE_CLIENT_ID/CLIENT_SECRET/REFRESH_TOKEN)")
	}
	if c.Mirror.FileID == "" {
		return fmt.Errorf("remote mirror file ID is required (GOOGLE_DRIVE_FILE_ID)")
	}
	if c.Ledger.Path == "" {
		return fmt.Errorf("ledger path is required (LEDGER_PATH)")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("log level is required")
	}
	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// Address returns the HTTP server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Helper functions

// getPort returns the server port from PORT or SERVER_PORT env vars (default: 3030)
func getPort() int {
	if value := os.Getenv("PORT"); value != "" {
		if p, err := strconv.Atoi(value); err == nil {
			return p
		}
	}
	if value := os.Getenv("SERVER_PORT"); value != "" {
		if p, err := strconv.Atoi(value); err == nil {
			return p
		}
	}
	return 3030
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
