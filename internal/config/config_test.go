package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/JaimeStill/ern-portal/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_NAME", "ern_portal")
	t.Setenv("DATABASE_USER", "ern")
}

func TestLoadFile_Defaults(t *testing.T) {
	setDatabaseEnv(t)
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q", cfg.API.BasePath)
	}
	if cfg.API.MaxBodySizeBytes() != 64000 {
		t.Errorf("MaxBodySizeBytes() = %d, want 64000", cfg.API.MaxBodySizeBytes())
	}
	if cfg.Site.BaseURL != "/" {
		t.Errorf("Site.BaseURL = %q", cfg.Site.BaseURL)
	}
	if cfg.Locale.Default != "en" {
		t.Errorf("Locale.Default = %q", cfg.Locale.Default)
	}
	if cfg.API.Pagination.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d", cfg.API.Pagination.DefaultPageSize)
	}
}

func TestLoadFile_Overlay(t *testing.T) {
	setDatabaseEnv(t)
	dir := t.TempDir()
	base := writeFile(t, dir, "config.toml", `
shutdown_timeout = "10s"

[server]
port = 9000

[site]
base_url = "portal/"
pages = ["home", "about"]

[api]
max_body_size = "1MB"
`)
	writeFile(t, dir, "config.staging.toml", `
[server]
port = 9100

[site]
pages = ["home", "documents", "members"]
`)

	t.Setenv(config.EnvServiceEnv, "staging")

	cfg, err := config.LoadFile(base)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.ShutdownTimeoutDuration() != 10*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Site.BaseURL != "/portal" {
		t.Errorf("Site.BaseURL = %q, want /portal", cfg.Site.BaseURL)
	}
	if !slices.Equal(cfg.Site.Pages, []string{"home", "documents", "members"}) {
		t.Errorf("Site.Pages = %v", cfg.Site.Pages)
	}
	if cfg.API.MaxBodySizeBytes() != 1000000 {
		t.Errorf("MaxBodySizeBytes() = %d", cfg.API.MaxBodySizeBytes())
	}
	if cfg.Site.Routing().BaseURL != "/portal" {
		t.Errorf("Routing().BaseURL = %q", cfg.Site.Routing().BaseURL)
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv(config.EnvServerPort, "7070")
	t.Setenv(config.EnvSiteBaseURL, "/ern")
	t.Setenv(config.EnvSitePages, "home, privacy ,")
	t.Setenv("API_MAX_BODY_SIZE", "2KB")
	t.Setenv("LOCALE_DEFAULT", "nl")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Site.BaseURL != "/ern" {
		t.Errorf("Site.BaseURL = %q", cfg.Site.BaseURL)
	}
	if !slices.Equal(cfg.Site.Pages, []string{"home", "privacy"}) {
		t.Errorf("Site.Pages = %v", cfg.Site.Pages)
	}
	if cfg.API.MaxBodySizeBytes() != 2000 {
		t.Errorf("MaxBodySizeBytes() = %d", cfg.API.MaxBodySizeBytes())
	}
	if cfg.Locale.Default != "nl" {
		t.Errorf("Locale.Default = %q", cfg.Locale.Default)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q", cfg.Database.Host)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[server\nport = 1"},
		{"bad shutdown timeout", `shutdown_timeout = "soon"`},
		{"bad port", "[server]\nport = 70000"},
		{"bad body size", "[api]\nmax_body_size = \"lots\""},
		{"nested api path", "[api]\nbase_path = \"/v1/api\""},
		{"nested base url", "[site]\nbase_url = \"/a/b\""},
		{"bad locale", "[locale]\ndefault = \"??\""},
	}

	setDatabaseEnv(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			if _, err := config.LoadFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
