package auth

import (
	"context"
	"sync"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

// Registry remembers issued session ids. *store.Store implements it on top of
// the database; MemoryRegistry is used when no database is configured.
// Revoked ids are forgotten immediately; expired ones go on the next
// DeleteExpiredSessions.
type Registry interface {
	SaveSession(ctx context.Context, id string, role models.Role, expiresAt time.Time) error
	IsSessionActive(ctx context.Context, id string) (bool, error)
	RevokeSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// MemoryRegistry is a process-local Registry, safe for concurrent use.
type MemoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]time.Time // id -> expiry
	now      func() time.Time
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: map[string]time.Time{}, now: time.Now}
}

// SaveSession also drops expired entries, so the map stays bounded by the
// number of live sessions even without a periodic sweep.
func (m *MemoryRegistry) SaveSession(_ context.Context, id string, _ models.Role, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteExpiredLocked()
	m.sessions[id] = expiresAt
	return nil
}

func (m *MemoryRegistry) IsSessionActive(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.sessions[id]
	if !ok {
		return false, nil
	}
	if !m.now().Before(exp) {
		delete(m.sessions, id)
		return false, nil
	}
	return true, nil
}

func (m *MemoryRegistry) RevokeSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryRegistry) DeleteExpiredSessions(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteExpiredLocked(), nil
}

func (m *MemoryRegistry) deleteExpiredLocked() int64 {
	now := m.now()
	var n int64
	for id, exp := range m.sessions {
		if !now.Before(exp) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len reports how many sessions are currently remembered.
func (m *MemoryRegistry) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemoryRegistry) Ping(context.Context) error { return nil }
