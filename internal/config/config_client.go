package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the server address and request timeout used by the
// API client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientCredentials are the login credentials of the API client.
type ClientCredentials struct {
	Email    string
	Password string
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter     ClientAdapter
	Credentials ClientCredentials
}

// GetClientConfig builds the client configuration from defaults and
// environment variables. The server-only requirements (DSN, sign key) are
// not enforced here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Credentials: ClientCredentials{
			Email:    cfg.Client.Email,
			Password: cfg.Client.Password,
		},
	}

	return clientCfg, clientCfg.validate()
}
