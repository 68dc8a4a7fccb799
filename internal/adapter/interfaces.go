// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-map-places HTTP API.
//
// The primary abstraction is [ServerAdapter], implemented over REST by
// [NewHTTPServerAdapter]. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-map-places/models"
)

// ServerAdapter defines communication with the go-map-places server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns the id assigned by the server.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates with email and password. In token mode the issued
	// JWT is stored via SetToken; in session mode the session cookie is kept
	// by the client cookie jar.
	Login(ctx context.Context, req models.LoginRequest) error

	// ListPlaces returns the places matching filter.
	ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error)

	// Locations returns the marker feed of every place.
	Locations(ctx context.Context) ([]models.Marker, error)
}
