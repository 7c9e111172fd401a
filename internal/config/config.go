package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Database Configuration
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`

	// CAPTCHA Configuration
	CaptchaEnabled   bool          `env:"CAPTCHA_ENABLED" envDefault:"true"`
	CaptchaSecret    string        `env:"CAPTCHA_SECRET"`
	CaptchaVerifyURL string        `env:"CAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	CaptchaMinScore  float64       `env:"CAPTCHA_MIN_SCORE" envDefault:"0"`
	CaptchaTimeout   time.Duration `env:"CAPTCHA_TIMEOUT" envDefault:"5s"`

	// Notification Configuration
	WebhookURL       string        `env:"WEBHOOK_URL"`
	WebhookTimeout   time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	TelegramBotToken string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string        `env:"TELEGRAM_CHAT_ID"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"contactapi"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// godotenv.Load never overrides variables already present in the
	// environment, so the first file that exists wins for each key.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if _, err := os.Stat(loc); err != nil {
			continue
		}
		if err := godotenv.Load(loc); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", loc, err)
		}
	}

	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TelegramEnabled reports whether both Telegram settings are present.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// Validate checks the settings that the server cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.CaptchaEnabled && c.CaptchaSecret == "" {
		errs = append(errs, errors.New("CAPTCHA_SECRET is required when CAPTCHA_ENABLED is true"))
	}
	if c.CaptchaMinScore < 0 || c.CaptchaMinScore > 1 {
		errs = append(errs, fmt.Errorf("CAPTCHA_MIN_SCORE must be between 0 and 1, got %v", c.CaptchaMinScore))
	}
	if c.CaptchaTimeout <= 0 || c.WebhookTimeout <= 0 {
		errs = append(errs, errors.New("CAPTCHA_TIMEOUT and WEBHOOK_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
