package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Mail   MailConfig
	Upload UploadConfig
	Site   SiteConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// MailConfig holds transactional email provider settings.
type MailConfig struct {
	APIKey     string
	FromEmail  string
	AdminEmail string
}

// UploadConfig constrains the optional complaint image.
type UploadConfig struct {
	MaxBytes          int64
	AllowedExtensions []string
}

// SiteConfig identifies the property on whose behalf complaints are relayed.
type SiteConfig struct {
	Name string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY is required")
	}

	maxBytes, err := getEnvAsInt64("UPLOAD_MAX_BYTES", 100*1024*1024)
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "complaint-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Mail: MailConfig{
			APIKey:     apiKey,
			FromEmail:  getEnv("MAIL_FROM", "complaints@rose-villa.example"),
			AdminEmail: getEnv("MAIL_ADMIN", "admin@rose-villa.example"),
		},
		Upload: UploadConfig{
			MaxBytes:          maxBytes,
			AllowedExtensions: splitCSV(getEnv("UPLOAD_ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif,webp")),
		},
		Site: SiteConfig{
			Name: getEnv("SITE_NAME", "Rose Villa"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	return strconv.ParseInt(val, 10, 64)
}

func splitCSV(val string) []string {
	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
