package session

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryStore keeps sessions in process memory. Entries expire together
// with the session they hold.
type MemoryStore struct {
	sessions *gocache.Cache // id -> *Session
	tokens   *gocache.Cache // token -> id
	mu       sync.Mutex
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: gocache.New(gocache.NoExpiration, defaultCleanupInterval),
		tokens:   gocache.New(gocache.NoExpiration, defaultCleanupInterval),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.tokens.Get(token)
	if !ok {
		return nil, ErrNotFound
	}
	v, ok := m.sessions.Get(id.(string))
	if !ok {
		return nil, ErrNotFound
	}
	s := v.(*Session)
	if s.IsExpired() {
		return nil, ErrExpired
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Update(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.sessions.Get(s.ID)
	if !ok {
		return ErrNotFound
	}
	if old := v.(*Session); old.Token != s.Token {
		m.tokens.Delete(old.Token)
	}
	m.put(s)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.sessions.Get(id); ok {
		m.tokens.Delete(v.(*Session).Token)
		m.sessions.Delete(id)
	}
	return nil
}

// put stores a copy of s; callers hold m.mu.
func (m *MemoryStore) put(s *Session) {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Millisecond
	}
	m.sessions.Set(s.ID, s.Clone(), ttl)
	m.tokens.Set(s.Token, s.ID, ttl)
}
