// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. A missing signing key or database
// DSN is fatal: the server must not start with an empty secret.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}

	switch cfg.App.AuthMode {
	case AuthModeToken:
	case AuthModeSession:
		if cfg.App.SessionDuration <= 0 {
			return fmt.Errorf("%w: positive session duration is required", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidAppConfigs, cfg.App.AuthMode)
	}

	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Credentials.Email == "" || cfg.Credentials.Password == "" {
		return fmt.Errorf("%w: client email and password are required", ErrInvalidAppConfigs)
	}

	return nil
}
