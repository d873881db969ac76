package memory

import (
	"sync"

	"organelle-quiz-service/internal/game"
)

// SessionStore is an in-memory implementation of game.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*game.Session),
	}
}

func (s *SessionStore) GetOrCreate(playerID string) *game.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[playerID]; ok {
		return session
	}
	session := game.NewSession(playerID)
	s.sessions[playerID] = session
	return session
}

func (s *SessionStore) Get(playerID string) (*game.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[playerID]
	return session, ok
}

func (s *SessionStore) DeleteIfIdle(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[playerID]
	if !ok {
		return
	}
	if session.IsIdle() {
		session.Shutdown()
		delete(s.sessions, playerID)
	}
}
