package server

import (
	"sync"

	"github.com/google/uuid"
)

// sessionStore maps opaque bearer tokens to user IDs. Sessions are
// process-local; a restart logs everyone out.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]string),
	}
}

func (s *sessionStore) create(userID string) string {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID

	return token
}

func (s *sessionStore) resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.sessions[token]
	return userID, ok
}

func (s *sessionStore) destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
