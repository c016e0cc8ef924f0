package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Limits   LimitsConfig   `yaml:"limits"`
	Database DatabaseConfig `yaml:"database"`
	GeoIP    GeoIPConfig    `yaml:"geoip"`
}

type TelegramConfig struct {
	APIID       int    `yaml:"api_id"`
	APIHash     string `yaml:"api_hash"`
	BotToken    string `yaml:"bot_token"`
	SessionFile string `yaml:"session_file"`
}

type LimitsConfig struct {
	MaxRequests int      `yaml:"max_requests"`
	Window      Duration `yaml:"window"`
	IdleTTL     Duration `yaml:"idle_ttl"`
	MaxUsers    int      `yaml:"max_users"`
}

// Duration accepts "60s" / "1h" style values in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type GeoIPConfig struct {
	CountryPath string `yaml:"country_path"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	var cfg Config
	// Defaults
	cfg.Telegram.SessionFile = "v2link.session"
	cfg.Limits.MaxRequests = 30
	cfg.Limits.Window = Duration(60 * time.Second)
	cfg.Limits.IdleTTL = Duration(time.Hour)
	cfg.Limits.MaxUsers = 1000
	cfg.Database.Path = "v2link.db"

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing file is fine for commands that need no Telegram access;
		// defaults plus environment variables still apply.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config yaml: %w", err)
		}
	}

	// Environment overrides the file for the secret
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.BotToken = token
	}

	if cfg.Limits.MaxRequests <= 0 {
		cfg.Limits.MaxRequests = 30
	}
	if cfg.Limits.Window <= 0 {
		cfg.Limits.Window = Duration(60 * time.Second)
	}
	if cfg.Limits.MaxUsers <= 0 {
		cfg.Limits.MaxUsers = 1000
	}

	return &cfg, nil
}

// RequireTelegram validates the fields the bot command cannot run without.
func (c *Config) RequireTelegram() error {
	if c.Telegram.APIID == 0 || c.Telegram.APIHash == "" {
		return fmt.Errorf("telegram.api_id and telegram.api_hash must be set")
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token (or TELEGRAM_BOT_TOKEN) must be set")
	}
	return nil
}
