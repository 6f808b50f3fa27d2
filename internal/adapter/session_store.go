package adapter

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("scan session not found")

// GlobalStopKey is the stop token that applies to every scan.
const GlobalStopKey = "*"

// SessionStore persists scan sessions and their stop tokens. Each method is a
// single atomic operation at the storage layer.
type SessionStore interface {
	// Put stores the session under its ID, replacing any previous record.
	Put(ctx context.Context, session m.Session) error
	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id string) (m.Session, error)
	// Delete removes the session and its stop token. Missing ids are ignored.
	Delete(ctx context.Context, id string) error
	// Sweep deletes every session created before cutoff and returns their ids.
	Sweep(ctx context.Context, cutoff time.Time) ([]string, error)

	// SetStop raises the stop token for key (a session id or GlobalStopKey).
	SetStop(ctx context.Context, key string) error
	// ClearStop lowers the stop token for key.
	ClearStop(ctx context.Context, key string) error
	// StopRequested reports whether the token for key is raised.
	StopRequested(ctx context.Context, key string) (bool, error)

	Close() error
}

// MemorySessionStore keeps sessions in a map behind a lock. It suits single
// process deployments and tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]m.Session
	stops    map[string]struct{}
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]m.Session),
		stops:    make(map[string]struct{}),
	}
}

// Put implements SessionStore.
func (s *MemorySessionStore) Put(ctx context.Context, session m.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := session
	stored.Files = append([]m.Path(nil), session.Files...)
	stored.Exclusions = append([]string(nil), session.Exclusions...)

	s.mu.Lock()
	s.sessions[session.ID] = stored
	s.mu.Unlock()

	return nil
}

// Get implements SessionStore.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (m.Session, error) {
	if err := ctx.Err(); err != nil {
		return m.Session{}, err
	}

	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return m.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// Delete implements SessionStore.
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	delete(s.stops, id)
	s.mu.Unlock()

	return nil
}

// Sweep implements SessionStore.
func (s *MemorySessionStore) Sweep(ctx context.Context, cutoff time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := []string{}

	for id, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			delete(s.stops, id)

			removed = append(removed, id)
		}
	}

	sort.Strings(removed)

	return removed, nil
}

// SetStop implements SessionStore.
func (s *MemorySessionStore) SetStop(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.stops[key] = struct{}{}
	s.mu.Unlock()

	return nil
}

// ClearStop implements SessionStore.
func (s *MemorySessionStore) ClearStop(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.stops, key)
	s.mu.Unlock()

	return nil
}

// StopRequested implements SessionStore.
func (s *MemorySessionStore) StopRequested(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	_, ok := s.stops[key]
	s.mu.RUnlock()

	return ok, nil
}

// Close implements SessionStore.
func (s *MemorySessionStore) Close() error {
	return nil
}
