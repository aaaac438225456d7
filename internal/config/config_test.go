package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bandland/bandland/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_PORT", "ADMIN_PASSWORD_HASH", "AUTH_SECRET",
		"CONTENT_DIR", "CONTENT_HISTORY_DIR", "LOGIN_RATE_LIMIT",
		"LOGIN_RATE_WINDOW", "SESSION_TTL", "SITE_CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()
	if cfg.Env != "dev" || cfg.Port != "8080" {
		t.Fatalf("unexpected env/port defaults: %+v", cfg)
	}
	if cfg.ContentDir != "content" {
		t.Fatalf("content dir = %q, want content", cfg.ContentDir)
	}
	if cfg.HistoryDir != filepath.Join("content", ".history") {
		t.Fatalf("history dir = %q", cfg.HistoryDir)
	}
	if cfg.LoginLimit != 5 || cfg.LoginWindow != 15*time.Minute {
		t.Fatalf("unexpected rate-limit defaults: %d/%v", cfg.LoginLimit, cfg.LoginWindow)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("session ttl = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.AdminPasswordHash != "" || cfg.AuthSecret != "" {
		t.Fatal("credentials must default to empty, not fail the load")
	}
}

func TestLoadTrimsSecrets(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "  $2a$12$hash  ")
	t.Setenv("AUTH_SECRET", " s3cret\n")

	cfg := config.Load()
	if cfg.AdminPasswordHash != "$2a$12$hash" {
		t.Fatalf("hash not trimmed: %q", cfg.AdminPasswordHash)
	}
	if cfg.AuthSecret != "s3cret" {
		t.Fatalf("secret not trimmed: %q", cfg.AuthSecret)
	}
}

func TestSessionCookieName(t *testing.T) {
	dev := config.Config{Env: "dev"}
	if dev.SessionCookieName() != "bandland-admin" {
		t.Fatalf("dev cookie = %q", dev.SessionCookieName())
	}
	prod := config.Config{Env: "production"}
	if prod.SessionCookieName() != "__Host-bandland-admin" {
		t.Fatalf("prod cookie = %q", prod.SessionCookieName())
	}
	if !prod.IsProduction() || dev.IsProduction() {
		t.Fatal("IsProduction misclassifies environments")
	}
}

func TestLoadSiteMissingFileFallsBack(t *testing.T) {
	site, err := config.LoadSite(filepath.Join(t.TempDir(), "site.yaml"))
	if err != nil {
		t.Fatalf("LoadSite: %v", err)
	}
	if site.Name != "Bandland" {
		t.Fatalf("expected default site, got %+v", site)
	}
}

func TestLoadSiteParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	contents := `name: The Volts
description: Loud.
contact_email: booking@thevolts.example
socials:
  - label: Instagram
    href: https://instagram.com/thevolts
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	site, err := config.LoadSite(path)
	if err != nil {
		t.Fatalf("LoadSite: %v", err)
	}
	if site.Name != "The Volts" || site.ContactEmail != "booking@thevolts.example" {
		t.Fatalf("unexpected site: %+v", site)
	}
	if len(site.Socials) != 1 || site.Socials[0].Label != "Instagram" {
		t.Fatalf("unexpected socials: %+v", site.Socials)
	}
}

func TestLoadSiteRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadSite(path); err == nil {
		t.Fatal("expected parse error")
	}
}
