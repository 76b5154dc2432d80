package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Addr != ":8080" {
		t.Errorf("addr: got %q", cfg.Addr)
	}
	if !cfg.TrackVisitors || cfg.RetentionDays != 365 {
		t.Errorf("tracking defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.AdminEnabled() {
		t.Error("admin should be disabled without a password")
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	err := os.WriteFile(path, []byte("log_level: debug\ntrack_visitors: false\nimages: assets\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_ADDR", ":9999")
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "s3cret")
	t.Setenv("PORTFOLIO_RETENTION_DAYS", "30")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.TrackVisitors || cfg.Images != "assets" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Addr != ":9999" || cfg.AdminPassword != "s3cret" || cfg.RetentionDays != 30 {
		t.Errorf("env values not applied: %+v", cfg)
	}
	if cfg.Templates != "templates" {
		t.Errorf("defaults should survive: templates=%q", cfg.Templates)
	}
	if cfg.AdminEnabled() {
		t.Error("admin needs visitor tracking")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr: got %q", cfg.Addr)
	}
}

func TestLoadConfigPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("addr: got %q, want :3000", cfg.Addr)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }, "addr is required"},
		{"no templates", func(c *Config) { c.Templates = "" }, "templates is required"},
		{"no database", func(c *Config) { c.Database = "" }, "database is required"},
		{"negative retention", func(c *Config) { c.RetentionDays = -1 }, "retention_days"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"admin without username", func(c *Config) {
			c.AdminPassword = "s3cret"
			c.AdminUsername = " "
		}, "admin_username is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.TrackVisitors = false
	cfg.Database = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("database is optional without tracking: %v", err)
	}

	cfg = DefaultConfig()
	cfg.AdminUsername = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("username is not needed while the admin area is off: %v", err)
	}
}
