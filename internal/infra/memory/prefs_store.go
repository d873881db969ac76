package memory

import (
	"context"
	"sync"

	"organelle-quiz-service/internal/domain"
)

// PrefsStore keeps per-device settings and high scores in memory. Useful
// for tests and single-process runs without Redis.
type PrefsStore struct {
	mu         sync.RWMutex
	settings   map[string]domain.Settings
	highScores map[string]int
}

func NewPrefsStore() *PrefsStore {
	return &PrefsStore{
		settings:   make(map[string]domain.Settings),
		highScores: make(map[string]int),
	}
}

func (s *PrefsStore) LoadSettings(_ context.Context, playerID string) (*domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings, ok := s.settings[playerID]
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

func (s *PrefsStore) SaveSettings(_ context.Context, playerID string, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[playerID] = settings
	return nil
}

func (s *PrefsStore) LoadHighScore(_ context.Context, playerID string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.highScores[playerID]
	return score, ok, nil
}

func (s *PrefsStore) SaveHighScore(_ context.Context, playerID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highScores[playerID] = score
	return nil
}
