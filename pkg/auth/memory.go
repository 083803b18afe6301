package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Authenticator for development and tests.
type Memory struct {
	users map[string]User
	mu    sync.RWMutex
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]User)}
}

// Add registers a user and returns its generated ID.
func (m *Memory) Add(username, password string, active bool) (string, error) {
	username = normalizeUsername(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[username]; ok {
		return "", ErrUserExists
	}
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Active:       active,
	}
	m.users[username] = u
	return u.ID, nil
}

func (m *Memory) Authenticate(_ context.Context, username, password string) (*User, error) {
	m.mu.RLock()
	u, ok := m.users[normalizeUsername(username)]
	m.mu.RUnlock()

	if !ok || !checkPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
