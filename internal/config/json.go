package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted from
// a JSON file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		Mode                string   `json:"mode"`
		SessionDuration     Duration `json:"session_duration"`
		SessionCookieSecure bool     `json:"session_cookie_secure"`
		PasswordCost        int      `json:"password_cost"`
		LoginRateLimit      int      `json:"login_rate_limit"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Sessions struct {
			RedisURL string `json:"redis_url"`
		} `json:"sessions,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`

	Version string `json:"version"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.Auth.TokenSignKey,
			TokenIssuer:         jsonCfg.Auth.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.Auth.TokenDuration),
			AuthMode:            jsonCfg.Auth.Mode,
			SessionDuration:     time.Duration(jsonCfg.Auth.SessionDuration),
			SessionCookieSecure: jsonCfg.Auth.SessionCookieSecure,
			PasswordCost:        jsonCfg.Auth.PasswordCost,
			LoginRateLimit:      jsonCfg.Auth.LoginRateLimit,
			CORSAllowedOrigins:  jsonCfg.Server.CORSAllowedOrigins,
			Version:             jsonCfg.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Sessions: Sessions{
				RedisURL: jsonCfg.Storage.Sessions.RedisURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
