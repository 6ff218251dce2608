// Package session implements session persistence and the lifecycle
// monitor that enforces expiry, warnings, and activity tracking.
package session

import (
	"context"
	"sync"

	"catalyst-hr/internal/domain"
)

// Store persists sessions. Implementations must treat malformed stored
// state as absent (returning a NotFoundError) rather than surfacing a
// parse error, and must write all session fields together — a partial
// session is never a valid state.
type Store interface {
	// Load returns the session for the token, or a NotFoundError when
	// the session is absent or the stored state is unusable.
	Load(ctx context.Context, token string) (*domain.Session, error)
	// Save persists the full session in one write.
	Save(ctx context.Context, s *domain.Session) error
	// Clear removes the session. Clearing an absent session is a no-op.
	Clear(ctx context.Context, token string) error
}

// ScanStore extends Store with enumeration, used by the lifecycle
// monitor's expiry sweep.
type ScanStore interface {
	Store
	All(ctx context.Context) ([]domain.Session, error)
}

// MemoryStore is an in-memory ScanStore for tests and demo mode.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

func (m *MemoryStore) Load(_ context.Context, token string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	if !ok || s.Email == "" {
		return nil, domain.ErrNotFound("session not found")
	}
	copied := s
	return &copied, nil
}

func (m *MemoryStore) Save(_ context.Context, s *domain.Session) error {
	if s.Token == "" || s.Email == "" {
		return domain.ErrValidation("session token and email are required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = *s
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *MemoryStore) All(_ context.Context) ([]domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out, nil
}
