package wizard

import (
	"context"
	"sync"
	"time"
)

// SessionStorage keeps wizard sessions between requests.
type SessionStorage interface {
	// Save stores or refreshes a session.
	Save(ctx context.Context, s *Session) error

	// Load returns the session or nil when it does not exist.
	Load(ctx context.Context, id string) (*Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Exists checks if a session is stored.
	Exists(ctx context.Context, id string) (bool, error)
}

// MemoryStorage is an in-process SessionStorage that forgets sessions idle
// for longer than ttl.
type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStorage(ttl time.Duration) *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStorage) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.UpdatedAt = m.now()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStorage) Load(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	expired := ok && m.expired(s, m.now())
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !expired {
		return s, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// a Save may have refreshed the session since the read lock was released
	s, ok = m.sessions[id]
	if !ok {
		return nil, nil
	}
	if m.expired(s, m.now()) {
		delete(m.sessions, id)
		return nil, nil
	}
	return s, nil
}

func (m *MemoryStorage) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStorage) Exists(ctx context.Context, id string) (bool, error) {
	s, err := m.Load(ctx, id)
	return s != nil, err
}

// Sweep drops expired sessions and reports how many were removed.
func (m *MemoryStorage) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored sessions, expired ones included.
func (m *MemoryStorage) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStorage) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.UpdatedAt) > m.ttl
}
