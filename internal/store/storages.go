package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
)

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository     UserRepository
	PlaceRepository    PlaceRepository
	FavoriteRepository FavoriteRepository
	SessionStore       SessionStore

	closers []func() error
}

// NewStorages wires the repositories on top of an open database and picks
// the session backend: Redis when a URL is configured, memory otherwise.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{
		UserRepository:     NewUserRepository(db, log),
		PlaceRepository:    NewPlaceRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
		closers:            []func() error{db.Close},
	}

	if cfg.Sessions.RedisURL != "" {
		sessions, err := NewRedisSessionStore(ctx, cfg.Sessions.RedisURL, log)
		if err != nil {
			return nil, fmt.Errorf("error creating redis session store: %w", err)
		}
		s.SessionStore = sessions
		s.closers = append(s.closers, sessions.Close)
	} else {
		s.SessionStore = NewMemorySessionStore(log)
	}

	return s, nil
}

// Close releases the database pool and the session backend.
func (s *Storages) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
