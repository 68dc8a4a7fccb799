package config

import "time"

const (
	defaultHTTPAddress            = ":8080"
	defaultRequestTimeout         = 30 * time.Second
	defaultTokenIssuer            = "go-map-places"
	defaultTokenDuration          = time.Hour
	defaultSessionDuration        = 24 * time.Hour
	defaultPasswordCost           = 10
	defaultLoginRateLimit         = 10
	defaultSessionCleanupInterval = time.Minute
	defaultVersion                = "dev"
)

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     defaultTokenIssuer,
			TokenDuration:   defaultTokenDuration,
			AuthMode:        AuthModeToken,
			SessionDuration: defaultSessionDuration,
			PasswordCost:    defaultPasswordCost,
			LoginRateLimit:  defaultLoginRateLimit,
			Version:         defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: defaultSessionCleanupInterval,
		},
	}
}
