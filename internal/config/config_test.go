package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/insighteer/relaybot/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_CHAT_ID", "-1001234")
	// Clear optional overrides an outer environment might set.
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "METRICS_ADDR", "DAILY_CRON", "DAILY_TZ", "POLL_TIMEOUT_S"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BotToken != "123:abc" || cfg.AdminChatID != -1001234 {
		t.Errorf("required fields wrong: %+v", cfg)
	}
	if cfg.DailyCron != config.DefaultDailyCron || cfg.DailyTZ != config.DefaultDailyTZ {
		t.Errorf("schedule defaults wrong: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.PollTimeoutS != 30 {
		t.Errorf("defaults wrong: %+v", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("ADMIN_CHAT_ID", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"BOT_TOKEN", "ADMIN_CHAT_ID"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should name %s: %v", want, err)
		}
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ADMIN_CHAT_ID", "not-a-number"},
		{"DAILY_TZ", "Mars/Olympus"},
		{"LOG_FORMAT", "xml"},
		{"POLL_TIMEOUT_S", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error should name %s: %v", tt.key, err)
			}
		})
	}
}

func TestWriteEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := config.WriteEnvFile(path, "123:abc", -1001234); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "BOT_TOKEN=123:abc") || !strings.Contains(content, "ADMIN_CHAT_ID=-1001234") {
		t.Errorf("unexpected .env content:\n%s", content)
	}
}
