package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

var (
	ErrMissingEndpoint  = errors.New("appwrite endpoint must be set")
	ErrMissingProjectID = errors.New("appwrite project ID must be set")
	ErrMissingAPIKey    = errors.New("appwrite API key must be set")
)

// Options carries inline configuration. Any non-empty field takes precedence
// over its corresponding environment variable.
type Options struct {
	// Appwrite
	Endpoint    string
	ProjectID   string
	DatabaseID  string
	BucketID    string
	AdminTeamID string
	APIKey      string

	// Session cookie naming. The legacy suffix is appended to the primary
	// cookie name when the primary cookie is absent.
	SessionCookiePrefix       string
	SessionCookieLegacySuffix string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Public holds configuration that is safe to expose to untrusted callers.
type Public struct {
	Endpoint    string
	ProjectID   string
	DatabaseID  string
	BucketID    string
	AdminTeamID string

	SessionCookiePrefix       string
	SessionCookieLegacySuffix string
}

// Private holds server-only secrets. Values here must never appear in a
// response body or in the shared settings store.
type Private struct {
	APIKey string
}

type Config struct {
	Public  Public
	Private Private

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load resolves configuration from inline options with environment-variable
// fallbacks. Nothing is validated here: a missing endpoint, project ID or
// API key surfaces as an error when the first component that needs it is
// used.
func Load(opts Options) *Config {
	cfg := &Config{
		Public: Public{
			Endpoint:    resolve(opts.Endpoint, "APPWRITE_ENDPOINT", ""),
			ProjectID:   resolve(opts.ProjectID, "APPWRITE_PROJECT_ID", ""),
			DatabaseID:  resolve(opts.DatabaseID, "APPWRITE_DATABASE_ID", ""),
			BucketID:    resolve(opts.BucketID, "APPWRITE_BUCKET_ID", ""),
			AdminTeamID: resolve(opts.AdminTeamID, "APPWRITE_ADMIN_TEAM_ID", ""),

			SessionCookiePrefix:       resolve(opts.SessionCookiePrefix, "APPWRITE_SESSION_COOKIE_PREFIX", "a_session"),
			SessionCookieLegacySuffix: resolve(opts.SessionCookieLegacySuffix, "APPWRITE_SESSION_COOKIE_LEGACY_SUFFIX", "_legacy"),
		},
		Private: Private{
			APIKey: resolve(opts.APIKey, "APPWRITE_API_KEY", ""),
		},

		Port:        resolve(opts.Port, "PORT", "8080"),
		Environment: resolve(opts.Environment, "ENVIRONMENT", "development"),
		BaseURL:     resolve(opts.BaseURL, "BASE_URL", "http://localhost:8080"),
	}

	mergeSettings(cfg)

	return cfg
}

// mergeSettings publishes the public configuration into the process-wide
// viper store under the "appwrite" namespace. MergeConfigMap deep-merges,
// so keys other consumers already placed under the namespace survive. The
// API key stays out of the shared store.
func mergeSettings(cfg *Config) {
	_ = viper.MergeConfigMap(map[string]any{
		"appwrite": map[string]any{
			"endpoint":      cfg.Public.Endpoint,
			"project_id":    cfg.Public.ProjectID,
			"database_id":   cfg.Public.DatabaseID,
			"bucket_id":     cfg.Public.BucketID,
			"admin_team_id": cfg.Public.AdminTeamID,
		},
	})
}

func resolve(inline, envKey, defaultValue string) string {
	if inline != "" {
		return inline
	}
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return defaultValue
}
