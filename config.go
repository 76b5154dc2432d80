package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the server settings. The portfolio content itself lives in
// the content file, not here.
type Config struct {
	Addr          string `koanf:"addr"`
	Content       string `koanf:"content"`
	Templates     string `koanf:"templates"`
	Images        string `koanf:"images"`
	Static        string `koanf:"static"`
	Database      string `koanf:"database"`
	TrackVisitors bool   `koanf:"track_visitors"`
	RetentionDays int    `koanf:"retention_days"`
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`
	LogLevel      string `koanf:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:          ":8080",
		Templates:     "templates",
		Images:        "images",
		Static:        "static",
		Database:      "portfolio.db",
		TrackVisitors: true,
		RetentionDays: 365,
		AdminUsername: "admin",
		LogLevel:      "info",
	}
}

// LoadConfig reads the optional YAML file at path, then overlays PORTFOLIO_*
// environment variables (PORTFOLIO_ADMIN_PASSWORD -> admin_password). PORT
// wins over addr when set.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	return cfg, nil
}

var validLogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.Templates == "" {
		return fmt.Errorf("templates is required")
	}
	if c.TrackVisitors && c.Database == "" {
		return fmt.Errorf("database is required when track_visitors is enabled")
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be non-negative")
	}
	if c.AdminEnabled() && strings.TrimSpace(c.AdminUsername) == "" {
		return fmt.Errorf("admin_username is required when admin_password is set")
	}
	if _, ok := validLogLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// AdminEnabled reports whether the admin area should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.TrackVisitors && c.AdminPassword != ""
}

func (c *Config) retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

func setupLogger(level string) *slog.Logger {
	lvl, ok := validLogLevels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	return slog.New(handler)
}
