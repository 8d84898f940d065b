// Package config loads the relay's configuration from environment
// variables, with a .env file picked up for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the optional settings.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultDailyCron   = "0 9 * * *"
	DefaultDailyTZ     = "Europe/Moscow"
	DefaultPollTimeout = 30
)

// Config is the full runtime configuration.
type Config struct {
	// BotToken authenticates against the Telegram Bot API. Required.
	BotToken string
	// AdminChatID is the chat all user messages are relayed into. Required.
	AdminChatID int64

	LogLevel  string // debug | info | warn | error
	LogFormat string // text | json

	// MetricsAddr enables the /metrics endpoint when non-empty.
	MetricsAddr string

	// DailyCron and DailyTZ schedule the daily announcement. The local
	// time in the named zone is the source of truth; the UTC offset is
	// derived at runtime so DST shifts are handled.
	DailyCron string
	DailyTZ   string

	// PollTimeoutS is the long poll timeout in seconds.
	PollTimeoutS int
}

// Load reads the environment (after loading .env if present) and
// validates the result. Missing required values make Load fail; the
// caller treats that as fatal before any network connection is opened.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		LogLevel:     envOr("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    envOr("LOG_FORMAT", DefaultLogFormat),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		DailyCron:    envOr("DAILY_CRON", DefaultDailyCron),
		DailyTZ:      envOr("DAILY_TZ", DefaultDailyTZ),
		PollTimeoutS: DefaultPollTimeout,
	}

	var errs []string

	if cfg.BotToken == "" {
		errs = append(errs, "BOT_TOKEN is required")
	}

	switch raw := os.Getenv("ADMIN_CHAT_ID"); raw {
	case "":
		errs = append(errs, "ADMIN_CHAT_ID is required")
	default:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("ADMIN_CHAT_ID must be an integer, got %q", raw))
		}
		cfg.AdminChatID = id
	}

	if raw := os.Getenv("POLL_TIMEOUT_S"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Sprintf("POLL_TIMEOUT_S must be a positive integer, got %q", raw))
		} else {
			cfg.PollTimeoutS = n
		}
	}

	if _, err := time.LoadLocation(cfg.DailyTZ); err != nil {
		errs = append(errs, fmt.Sprintf("DAILY_TZ: unknown timezone %q", cfg.DailyTZ))
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// WriteEnvFile writes a .env file with the two required settings. Used
// by the onboard wizard.
func WriteEnvFile(path, botToken string, adminChatID int64) error {
	content := fmt.Sprintf("BOT_TOKEN=%s\nADMIN_CHAT_ID=%d\n", botToken, adminChatID)
	return os.WriteFile(path, []byte(content), 0o600)
}
