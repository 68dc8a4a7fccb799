// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenAuthenticator issues and verifies stateless HS256 JWTs. Nothing is
// stored server-side, so a token stays valid until it expires.
type tokenAuthenticator struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and for the expiry check.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenAuthenticator constructs the token-mode [Authenticator] from the
// signing parameters in cfg.
func NewTokenAuthenticator(cfg config.App, logger *logger.Logger) Authenticator {
	return newTokenAuthenticator(cfg, logger, time.Now)
}

func newTokenAuthenticator(cfg config.App, logger *logger.Logger, now func() time.Time) *tokenAuthenticator {
	return &tokenAuthenticator{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}
}

func (a *tokenAuthenticator) Mode() string {
	return config.AuthModeToken
}

// Issue signs a token for user that expires tokenDuration from now.
func (a *tokenAuthenticator) Issue(ctx context.Context, user models.User) (models.Credential, error) {
	token, err := utils.GenerateJWTTokenAt(a.now(), a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Credential{
		Value:     token.SignedString,
		UserID:    token.UserID,
		ExpiresAt: token.Expiry(),
	}, nil
}

func (a *tokenAuthenticator) Authenticate(ctx context.Context, credential string) (string, error) {
	token, err := a.ParseToken(ctx, credential)
	if err != nil {
		return "", err
	}

	return token.UserID, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Failures are classified so that callers do not need to inspect low-level
// JWT errors:
//   - empty string → [ErrMissingToken]
//   - exp in the past → [ErrExpiredToken]
//   - bad signature, wrong issuer, wrong algorithm or malformed structure →
//     [ErrInvalidToken]
func (a *tokenAuthenticator) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTTokenAt(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrExpiredToken
		}
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenAuthenticator.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}
