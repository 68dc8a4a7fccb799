package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/models"
)

// memorySessionStore keeps sessions in process memory. Expired entries are
// hidden on read and removed by PurgeExpired.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
	logger   *logger.Logger
}

// MemorySessionStore is the in-process [SessionStore] used when no Redis URL
// is configured. It also implements [ExpiredSessionsPurger].
type MemorySessionStore interface {
	SessionStore
	ExpiredSessionsPurger
}

// NewMemorySessionStore constructs an empty in-memory session store.
func NewMemorySessionStore(logger *logger.Logger) MemorySessionStore {
	return newMemorySessionStore(logger, time.Now)
}

// NewMemorySessionStoreWithClock is NewMemorySessionStore with expiry judged
// against now. Callers that issue sessions on their own clock pass it here so
// both sides agree on when a session lapses.
func NewMemorySessionStoreWithClock(logger *logger.Logger, now func() time.Time) MemorySessionStore {
	return newMemorySessionStore(logger, now)
}

func newMemorySessionStore(logger *logger.Logger, now func() time.Time) *memorySessionStore {
	logger.Debug().Msg("creating in-memory session store")
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
		now:      now,
		logger:   logger,
	}
}

func (m *memorySessionStore) SaveSession(ctx context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session
	return nil
}

func (m *memorySessionStore) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok || session.IsExpired(m.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (m *memorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

// PurgeExpired drops every session expired at now and returns how many
// were removed.
func (m *memorySessionStore) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, id)
			removed++
		}
	}

	return removed, nil
}
