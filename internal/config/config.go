package config // package config loads application configuration from environment variables

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  AdminPasswordHash and AuthSecret are
// deliberately not required at load time: their absence must surface as
// an auth-flow error at sign-in, not as a crash loop, so the operator
// sees a coded message pointing at the deployment.
type Config struct {
	Env  string // application environment ("dev", "production")
	Port string // HTTP port to listen on

	AdminPasswordHash string // bcrypt hash of the single admin password
	AuthSecret        string // secret used to sign session JWTs

	ContentDir string // root directory of the content JSON files
	HistoryDir string // directory holding timestamped collection backups

	LoginLimit  int           // max sign-in attempts per client per window
	LoginWindow time.Duration // fixed rate-limit window length
	SessionTTL  time.Duration // absolute session lifetime, no refresh

	SiteFile string // path of the YAML site descriptor
}

// Load reads configuration from environment variables, applying the
// defaults a local dev deployment expects.
func Load() Config {
	contentDir := envStr("CONTENT_DIR", "content")
	return Config{
		Env:               envStr("APP_ENV", "dev"),
		Port:              envStr("APP_PORT", "8080"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AuthSecret:        strings.TrimSpace(os.Getenv("AUTH_SECRET")),
		ContentDir:        contentDir,
		HistoryDir:        envStr("CONTENT_HISTORY_DIR", filepath.Join(contentDir, ".history")),
		LoginLimit:        envInt("LOGIN_RATE_LIMIT", 5),
		LoginWindow:       envDur("LOGIN_RATE_WINDOW", 15*time.Minute),
		SessionTTL:        envDur("SESSION_TTL", 24*time.Hour),
		SiteFile:          envStr("SITE_CONFIG", "site.yaml"),
	}
}

// IsProduction reports whether the app runs in production mode, which
// switches the session cookie to its host-locked name and enables the
// Secure flag.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// SessionCookieName returns the session cookie's name.  Production uses
// the __Host- prefix, which browsers only accept for Secure, Path=/
// cookies without a Domain attribute.
func (c Config) SessionCookieName() string {
	if c.IsProduction() {
		return "__Host-bandland-admin"
	}
	return "bandland-admin"
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
