package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// AuthServiceConfig holds the endpoints of the remote auth/session service.
type AuthServiceConfig struct {
	// BackendURL is the base URL of the backend API (logout lives under it).
	BackendURL string
	// APIURL is the base URL of the marketplace API.
	APIURL string
	// AuthURL is the base URL of the auth service (session, sign-in, sign-up).
	AuthURL string
	// CallbackURL is where social providers redirect back to.
	CallbackURL string
	// FrontendURL is the public URL of this app.
	FrontendURL string
}

type SessionConfig struct {
	// CacheTTL bounds how long a resolved session may be reused before a
	// fresh fetch against the auth service.
	CacheTTL time.Duration
	// FetchTimeout bounds a single session fetch round trip.
	FetchTimeout time.Duration
}

type Config struct {
	AuthService AuthServiceConfig
	Session     SessionConfig
	ServerPort  string
}

// Load reads configuration from the environment. All auth service URLs are
// required and must parse as absolute URLs; startup fails otherwise.
func Load() (*Config, error) {
	cfg := &Config{
		AuthService: AuthServiceConfig{
			BackendURL:  os.Getenv("BACKEND_URL"),
			APIURL:      os.Getenv("API_URL"),
			AuthURL:     os.Getenv("AUTH_URL"),
			CallbackURL: os.Getenv("CALLBACK_URL"),
			FrontendURL: os.Getenv("FRONTEND_URL"),
		},
		Session: SessionConfig{
			CacheTTL:     5 * time.Second,
			FetchTimeout: 10 * time.Second,
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
	}

	required := map[string]string{
		"BACKEND_URL":  cfg.AuthService.BackendURL,
		"API_URL":      cfg.AuthService.APIURL,
		"AUTH_URL":     cfg.AuthService.AuthURL,
		"CALLBACK_URL": cfg.AuthService.CallbackURL,
		"FRONTEND_URL": cfg.AuthService.FrontendURL,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
		u, err := url.Parse(value)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("%s must be a well-formed absolute URL, got %q", name, value)
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
