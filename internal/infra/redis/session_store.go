package redis

import (
	"context"
	"sync"
	"time"

	"organelle-quiz-service/internal/game"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of game.SessionRepository.
// Sessions themselves stay in-process (they own live timers and broadcast
// channels); Redis only marks session liveness so an operator can see
// which devices are mid-game.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
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
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(playerID), "1", s.ttl).Err()
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
		_ = s.client.Del(context.Background(), s.key(playerID)).Err()
	}
}

func (s *SessionStore) key(playerID string) string {
	return "game:session:" + playerID
}
