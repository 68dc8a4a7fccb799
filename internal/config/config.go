// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Authentication modes accepted by App.AuthMode.
const (
	// AuthModeToken issues stateless signed JWTs carried in the
	// Authorization header.
	AuthModeToken = "token"

	// AuthModeSession keeps server-side sessions referenced by a cookie.
	AuthModeSession = "session"
)

// StructuredConfig is the top-level configuration container for the
// go-map-places application. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// authentication mode, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the API client (cmd/client).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds the credentials used by the API client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the server-side session store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens and
	// session cookies. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AuthMode selects how callers prove their identity: "token" or "session".
	// Env: APP_AUTH_MODE
	AuthMode string `env:"AUTH_MODE"`

	// SessionDuration is the lifetime of a server-side session.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionCookieSecure sets the Secure attribute on the session cookie.
	// Env: APP_SESSION_COOKIE_SECURE
	SessionCookieSecure bool `env:"SESSION_COOKIE_SECURE"`

	// PasswordCost is the bcrypt cost used for new password digests.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// LoginRateLimit is the number of login attempts allowed per IP per minute.
	// Env: APP_LOGIN_RATE_LIMIT
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT"`

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	// Env: APP_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name (connection string).
	// Required.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions holds settings of the server-side session store.
type Sessions struct {
	// RedisURL points at the Redis instance holding sessions
	// (e.g. "redis://localhost:6379/0"). When empty, sessions are kept in
	// process memory.
	// Env: STORAGE_SESSIONS_REDIS_URL
	RedisURL string `env:"REDIS_URL"`
}

// Adapter holds configuration for the API client.
type Adapter struct {
	// HTTPAddress is the base address of the go-map-places server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCleanupInterval is how often expired in-memory sessions are swept.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// Client holds the credentials the API client logs in with.
type Client struct {
	// Env: CLIENT_EMAIL
	Email string `env:"EMAIL"`
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
