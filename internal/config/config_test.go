package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Limits.MaxRequests != 30 {
		t.Errorf("MaxRequests = %d, want 30", cfg.Limits.MaxRequests)
	}
	if time.Duration(cfg.Limits.Window) != 60*time.Second {
		t.Errorf("Window = %v, want 60s", cfg.Limits.Window)
	}
	if cfg.Limits.MaxUsers != 1000 {
		t.Errorf("MaxUsers = %d, want 1000", cfg.Limits.MaxUsers)
	}
	if cfg.Database.Path != "v2link.db" {
		t.Errorf("Database.Path = %q, want v2link.db", cfg.Database.Path)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
telegram:
  api_id: 12345
  api_hash: "abcdef"
  bot_token: "token-from-file"
limits:
  max_requests: 10
  window: 30s
database:
  path: "/tmp/test.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.APIID != 12345 {
		t.Errorf("APIID = %d, want 12345", cfg.Telegram.APIID)
	}
	if cfg.Limits.MaxRequests != 10 {
		t.Errorf("MaxRequests = %d, want 10", cfg.Limits.MaxRequests)
	}
	if time.Duration(cfg.Limits.Window) != 30*time.Second {
		t.Errorf("Window = %v, want 30s", cfg.Limits.Window)
	}
	if err := cfg.RequireTelegram(); err != nil {
		t.Errorf("RequireTelegram() = %v", err)
	}
}

func TestLoad_EnvOverridesToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("telegram:\n  bot_token: token-from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.BotToken != "token-from-env" {
		t.Errorf("BotToken = %q, want env value", cfg.Telegram.BotToken)
	}
}

func TestRequireTelegram(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireTelegram(); err == nil {
		t.Error("empty config should fail RequireTelegram")
	}
}
