package config

import (
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollInterval = 600 * time.Second
	DefaultErrorLogFile = "errors.log"

	// ErrorLogDisabled as ERROR_LOG_FILE turns the error file sink off.
	ErrorLogDisabled = "-"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string // Numeric chat id or @channel username
	Endpoint       string
	PollInterval   time.Duration
	LogLevel       string
	Environment    string
	ErrorLogFile   string // Empty when the error file sink is disabled
	DatabaseURL    string // Optional, enables the delivery journal
}

// ConfigError lists required environment variables that are not set.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Missing, ", "))
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	var missing []string
	required := func(name string) string {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			missing = append(missing, name)
		}
		return v
	}
	cfg.PracticumToken = required("PRACTICUM_TOKEN")
	cfg.TelegramToken = required("TELEGRAM_TOKEN")
	cfg.TelegramChatID = required("TELEGRAM_CHAT_ID")
	if len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.PollInterval = DefaultPollInterval
	if raw := os.Getenv("POLL_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
		}
		if interval < time.Second {
			return nil, fmt.Errorf("invalid POLL_INTERVAL: %s is shorter than 1s", interval)
		}
		cfg.PollInterval = interval
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.ErrorLogFile = os.Getenv("ERROR_LOG_FILE")
	switch cfg.ErrorLogFile {
	case "":
		cfg.ErrorLogFile = DefaultErrorLogFile
	case ErrorLogDisabled:
		cfg.ErrorLogFile = ""
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	return cfg, nil
}
