package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database Database
	Provider Provider
	Mail     Mail
	Storage  Storage
	Kafka    Kafka
	Worker   Worker
	Server   Server
}

// Database holds database connection settings
type Database struct {
	Host     string
	Username string
	Password string
	Name     string
}

// Provider holds payment-link provider credentials. WebhookSecret signs
// inbound notifications; KeyID/KeySecret authenticate outbound link creation.
type Provider struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
	BaseURL       string
}

// Mail holds email delivery configuration
type Mail struct {
	ResendAPIKey  string
	DefaultSender string
}

// Storage holds object storage settings for product files
type Storage struct {
	Endpoint    string
	AccessKey   string
	SecretKey   string
	Bucket      string
	Secure      bool
	DownloadTTL time.Duration
}

// Kafka holds event streaming configuration
type Kafka struct {
	Brokers string
	Topic   string
}

// Worker holds reconciliation sweep configuration
type Worker struct {
	ReconcileInterval time.Duration
	DeliveryGrace     time.Duration
	PendingTTL        time.Duration
}

// Server holds HTTP server configuration
type Server struct {
	Port      int
	WebAppURI string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Provider.KeyID, err = requireEnv("PROVIDER_KEY_ID"); err != nil {
		return nil, err
	}
	if cfg.Provider.KeySecret, err = requireEnv("PROVIDER_KEY_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Provider.WebhookSecret, err = requireEnv("PROVIDER_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	cfg.Provider.BaseURL = getEnvWithDefault("PROVIDER_BASE_URL", "https://api.razorpay.com")

	if cfg.Mail.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Mail.DefaultSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}

	if cfg.Storage.Endpoint, err = requireEnv("STORAGE_ENDPOINT"); err != nil {
		return nil, err
	}
	if cfg.Storage.AccessKey, err = requireEnv("STORAGE_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if cfg.Storage.SecretKey, err = requireEnv("STORAGE_SECRET_KEY"); err != nil {
		return nil, err
	}
	cfg.Storage.Bucket = getEnvWithDefault("STORAGE_BUCKET", "stagepass-files")
	cfg.Storage.Secure = getEnvWithDefault("STORAGE_SECURE", "true") == "true"
	if cfg.Storage.DownloadTTL, err = durationEnv("STORAGE_DOWNLOAD_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "payment-events")

	if cfg.Worker.ReconcileInterval, err = durationEnv("RECONCILE_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Worker.DeliveryGrace, err = durationEnv("DELIVERY_GRACE", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Worker.PendingTTL, err = durationEnv("PENDING_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *Database) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// durationEnv parses a duration environment variable, falling back to a default
func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
