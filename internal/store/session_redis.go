package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis under "session:<id>" with a TTL
// equal to the remaining session lifetime, so expiry needs no janitor.
type RedisSessionStore struct {
	client *redis.Client
	now    func() time.Time
	logger *logger.Logger
}

// NewRedisSessionStore connects to redisURL (redis://[:password@]host:port/db)
// and pings the server.
func NewRedisSessionStore(ctx context.Context, redisURL string, logger *logger.Logger) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Err(err).Str("func", "NewRedisSessionStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	logger.Info().Str("func", "NewRedisSessionStore").Msg("connected to redis successfully")

	return newRedisSessionStore(client, logger, time.Now), nil
}

func newRedisSessionStore(client *redis.Client, logger *logger.Logger, now func() time.Time) *RedisSessionStore {
	return &RedisSessionStore{client: client, now: now, logger: logger}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// SaveSession stores session until its ExpiresAt. Already expired sessions
// are not written.
func (s *RedisSessionStore) SaveSession(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	if err = s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionStore.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	return nil
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionStore.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	if session.IsExpired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionStore.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
