// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// SessionConfig holds session lifecycle policy values.
type SessionConfig struct {
	MaxAge           time.Duration // absolute session lifetime (default 24h)
	WarningWindow    time.Duration // warn this long before expiry (default 5m)
	PollInterval     time.Duration // monitor sweep interval (default 60s)
	ActivityThrottle time.Duration // min gap between activity updates (default 30s)
	RedirectDelay    time.Duration // delay before post-expiry redirect (default 2s)
	CookieName       string        // session cookie name (default "catalyst_session")
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret      string        // HS256 shared secret for API tokens
	TokenTTL       time.Duration // API token lifetime (default 24h)
	DemoPassword   string        // shared password for the demo directory (default "123456")
	IssuerURL      string        // optional OIDC issuer for enterprise SSO bearer tokens
	JWKSURL        string        // override JWKS URL (no .well-known discovery)
	Audience       string        // required JWT audience claim when OIDC is enabled
	AllowedIssuers []string      // accepted issuers (defaults to [IssuerURL])
}

// OIDCEnabled returns true when an external identity provider is configured.
func (a *AuthConfig) OIDCEnabled() bool {
	return a.IssuerURL != "" || a.JWKSURL != ""
}

// Config holds the configuration for the Catalyst HR server.
type Config struct {
	DBPath     string // path to the SQLite database file
	ListenAddr string // HTTP listen address (default ":8080")
	LogLevel   string // log level: debug, info, warn, error (default "info")
	Env        string // environment: "development" (default) or "production"

	// PagePolicyDefault decides what happens for pages with no permission
	// entry: "allow" or "deny". Defaults to allow in development and deny
	// in production.
	PagePolicyDefault string

	// PagePermissionsFile optionally points at a YAML file whose entries
	// override or extend the built-in page permission table.
	PagePermissionsFile string

	// TrackerEndpoint is the optional external gamification endpoint.
	// Empty means local-only engagement logging.
	TrackerEndpoint string
	TrackerTimeout  time.Duration // outbound tracking call timeout (default 3s)

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 100)
	RateLimitBurst int     // burst capacity (default 200)

	// CORS
	CORSAllowedOrigins []string // allowed origins for the JSON API (default: ["*"])

	Session SessionConfig
	Auth    AuthConfig

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DefaultDeny reports whether undeclared pages are denied rather than open.
func (c *Config) DefaultDeny() bool {
	return strings.EqualFold(c.PagePolicyDefault, "deny")
}

const insecureDevSecret = "dev-secret-change-in-production"

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:              os.Getenv("DB_PATH"),
		ListenAddr:          os.Getenv("LISTEN_ADDR"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		Env:                 os.Getenv("ENV"),
		PagePolicyDefault:   os.Getenv("PAGE_POLICY_DEFAULT"),
		PagePermissionsFile: os.Getenv("PAGE_PERMISSIONS_FILE"),
		TrackerEndpoint:     os.Getenv("TRACKER_ENDPOINT"),
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	// Session policy
	cfg.Session = SessionConfig{
		MaxAge:           durationEnv("SESSION_MAX_AGE", 24*time.Hour),
		WarningWindow:    durationEnv("SESSION_WARNING_WINDOW", 5*time.Minute),
		PollInterval:     durationEnv("SESSION_POLL_INTERVAL", 60*time.Second),
		ActivityThrottle: durationEnv("SESSION_ACTIVITY_THROTTLE", 30*time.Second),
		RedirectDelay:    durationEnv("SESSION_REDIRECT_DELAY", 2*time.Second),
		CookieName:       os.Getenv("SESSION_COOKIE_NAME"),
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "catalyst_session"
	}

	// Auth config
	cfg.Auth = AuthConfig{
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     durationEnv("TOKEN_TTL", 24*time.Hour),
		DemoPassword: os.Getenv("DEMO_PASSWORD"),
		IssuerURL:    os.Getenv("AUTH_ISSUER_URL"),
		JWKSURL:      os.Getenv("AUTH_JWKS_URL"),
		Audience:     os.Getenv("AUTH_AUDIENCE"),
	}
	if v := os.Getenv("AUTH_ALLOWED_ISSUERS"); v != "" {
		cfg.Auth.AllowedIssuers = strings.Split(v, ",")
	}
	if cfg.Auth.DemoPassword == "" {
		cfg.Auth.DemoPassword = "123456"
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = insecureDevSecret
		cfg.Warnings = append(cfg.Warnings, "JWT_SECRET not set — using insecure default. Set JWT_SECRET in production!")
	}
	if cfg.Auth.IssuerURL != "" && cfg.Auth.Audience == "" {
		return nil, fmt.Errorf("AUTH_AUDIENCE is required when AUTH_ISSUER_URL is set")
	}
	cfg.TrackerTimeout = durationEnv("TRACKER_TIMEOUT", 3*time.Second)

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "catalyst_hr.sqlite"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 200
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.PagePolicyDefault == "" {
		if cfg.IsProduction() {
			cfg.PagePolicyDefault = "deny"
		} else {
			cfg.PagePolicyDefault = "allow"
			cfg.Warnings = append(cfg.Warnings, "PAGE_POLICY_DEFAULT not set — undeclared pages are open in development")
		}
	}
	switch strings.ToLower(cfg.PagePolicyDefault) {
	case "allow", "deny":
	default:
		return nil, fmt.Errorf("PAGE_POLICY_DEFAULT must be \"allow\" or \"deny\", got %q", cfg.PagePolicyDefault)
	}

	// Production mode: insecure defaults are fatal errors.
	if cfg.IsProduction() {
		if cfg.Auth.JWTSecret == insecureDevSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set in production (ENV=production)")
		}
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
	}

	return cfg, nil
}

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be in KEY=VALUE format. Comments (#) and blank
// lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
