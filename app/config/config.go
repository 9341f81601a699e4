package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names for each capability. Selection is validated at first
// access of the capability, not at process start, so a process that never
// touches a capability can run without configuring it.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderMock     = "mock"

	StoreProviderMongoDB = "mongodb"
	StoreProviderMock    = "mock"

	BlobProviderGCS  = "gcs"
	BlobProviderS3   = "s3"
	BlobProviderMock = "mock"
)

// Config holds all configuration for the session gateway
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string
	AppEnv   string

	// Identity verification
	IdentityProvider  string
	IdentityIssuerURL string
	IdentityAudience  string

	// Persistent store
	StoreProvider string
	MongoURI      string
	MongoDatabase string

	// Blob storage
	BlobProvider string
	GCSBucket    string
	S3Bucket     string
	AWSRegion    string
	SignedURLTTL time.Duration

	// Session
	SessionSecret string
	SessionTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "8080")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	config.AppEnv = getEnvOrDefault("APP_ENV", "development")

	// Identity verification configuration
	config.IdentityProvider = getEnvOrDefault("IDENTITY_PROVIDER", IdentityProviderFirebase)
	config.IdentityIssuerURL = os.Getenv("IDENTITY_ISSUER_URL")
	config.IdentityAudience = os.Getenv("IDENTITY_AUDIENCE")

	// Persistent store configuration
	config.StoreProvider = getEnvOrDefault("STORE_PROVIDER", StoreProviderMongoDB)
	config.MongoURI = os.Getenv("MONGO_URI")
	config.MongoDatabase = getEnvOrDefault("MONGO_DATABASE", "session_gateway")

	// Blob storage configuration
	config.BlobProvider = getEnvOrDefault("BLOB_PROVIDER", BlobProviderGCS)
	config.GCSBucket = os.Getenv("GCS_BUCKET")
	config.S3Bucket = os.Getenv("S3_BUCKET")
	config.AWSRegion = getEnvOrDefault("AWS_REGION", "us-east-1")

	var err error
	signedURLTTLStr := getEnvOrDefault("SIGNED_URL_TTL", "1h")
	config.SignedURLTTL, err = time.ParseDuration(signedURLTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNED_URL_TTL: %w", err)
	}

	// Session configuration
	config.SessionSecret = os.Getenv("SESSION_SECRET")
	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	sessionTTLStr := getEnvOrDefault("SESSION_TTL", "1h")
	config.SessionTTL, err = time.ParseDuration(sessionTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid. Provider names are
// deliberately not checked here: an unsupported name must fail at first
// access of that capability, not at process start.
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate session secret (minimum 16 for security)
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("session secret must be at least 16 characters, got: %d", len(c.SessionSecret))
	}

	// Validate session TTL (minimum 1 minute)
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}

	// Validate signed URL TTL (minimum 1 minute)
	if c.SignedURLTTL < time.Minute {
		return fmt.Errorf("signed URL TTL must be at least 1 minute, got: %v", c.SignedURLTTL)
	}

	return nil
}

// IsProduction reports whether the gateway runs with production settings,
// which drives the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.AppEnv)
	return env == "production" || env == "prod"
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
