// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of go-map-places: PostgreSQL
// repositories for users, places, and favorites, and the server-side session
// stores (Redis and in-process memory).
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-map-places/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. PasswordHash is the only credential
// that crosses this boundary.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// PlaceRepository persists places.
type PlaceRepository interface {
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)
	FindPlaceByID(ctx context.Context, placeID string) (models.Place, error)
	ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error)
	UpdatePlace(ctx context.Context, place models.Place) (models.Place, error)
	DeletePlace(ctx context.Context, placeID string) error
}

// FavoriteRepository persists the user/place join records.
type FavoriteRepository interface {
	// AddFavorite stores the pair once. created is false when the pair was
	// already present; the returned favorite is then empty.
	AddFavorite(ctx context.Context, favorite models.Favorite) (saved models.Favorite, created bool, err error)
	ListFavoritePlaces(ctx context.Context, userID string) ([]models.Place, error)
	DeleteFavorite(ctx context.Context, userID, placeID string) error
}

// SessionStore holds server-side sessions keyed by their id.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns ErrSessionNotFound for unknown or expired ids.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ExpiredSessionsPurger is implemented by session stores without native
// expiry. It is driven by the session janitor worker.
type ExpiredSessionsPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
