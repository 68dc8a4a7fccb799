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
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/models"
)

// sessionAuthenticator keeps the authenticated identity in a server-side
// session store. The client holds "<id>.<hmac>" so a tampered value is
// rejected before the store is queried.
type sessionAuthenticator struct {
	sessions store.SessionStore

	// signKey signs the session id handed to the client.
	signKey string

	sessionDuration time.Duration
	now             func() time.Time

	logger *logger.Logger
}

// NewSessionAuthenticator constructs the session-mode [Authenticator]. The
// returned value also implements [Revoker].
func NewSessionAuthenticator(sessions store.SessionStore, cfg config.App, logger *logger.Logger) Authenticator {
	return newSessionAuthenticator(sessions, cfg, logger, time.Now)
}

func newSessionAuthenticator(sessions store.SessionStore, cfg config.App, logger *logger.Logger, now func() time.Time) *sessionAuthenticator {
	return &sessionAuthenticator{
		sessions:        sessions,
		signKey:         cfg.TokenSignKey,
		sessionDuration: cfg.SessionDuration,
		now:             now,
		logger:          logger,
	}
}

func (a *sessionAuthenticator) Mode() string {
	return config.AuthModeSession
}

// Issue opens a new session for user and returns its signed id.
func (a *sessionAuthenticator) Issue(ctx context.Context, user models.User) (models.Credential, error) {
	id, err := utils.NewSessionID()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	now := a.now()
	session := models.Session{
		ID:        id,
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return models.Credential{
		Value:     utils.SignSessionID(id, a.signKey),
		UserID:    user.UserID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Authenticate resolves the session referenced by credential.
//
// A value with a valid signature whose session is gone was issued by this
// server and has since expired or been logged out, so it is reported as
// [ErrExpiredToken].
func (a *sessionAuthenticator) Authenticate(ctx context.Context, credential string) (string, error) {
	if credential == "" {
		return "", ErrMissingToken
	}

	id, ok := utils.UnsignSessionID(credential, a.signKey)
	if !ok {
		return "", ErrInvalidToken
	}

	session, err := a.sessions.GetSession(ctx, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return "", ErrExpiredToken
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionAuthenticator.Authenticate").Msg("error reading session")
		return "", fmt.Errorf("error reading session: %w", err)
	}

	return session.UserID, nil
}

// Revoke deletes the session referenced by credential.
func (a *sessionAuthenticator) Revoke(ctx context.Context, credential string) error {
	if credential == "" {
		return ErrMissingToken
	}

	id, ok := utils.UnsignSessionID(credential, a.signKey)
	if !ok {
		return ErrInvalidToken
	}

	if err := a.sessions.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// NewAuthenticator picks the implementation configured by cfg.AuthMode.
func NewAuthenticator(cfg config.App, sessions store.SessionStore, logger *logger.Logger) (Authenticator, error) {
	switch cfg.AuthMode {
	case config.AuthModeToken, "":
		return NewTokenAuthenticator(cfg, logger), nil
	case config.AuthModeSession:
		return NewSessionAuthenticator(sessions, cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthMode, cfg.AuthMode)
	}
}
