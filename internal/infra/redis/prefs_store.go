package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"organelle-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// PrefsStore persists per-device settings and high scores in Redis. Loads
// tolerate missing keys and corrupt payloads by reporting absence; saves
// are best-effort so a flaky store never interrupts play.
type PrefsStore struct {
	client *redis.Client
}

func NewPrefsStore(client *redis.Client) *PrefsStore {
	return &PrefsStore{client: client}
}

func (s *PrefsStore) LoadSettings(ctx context.Context, playerID string) (*domain.Settings, error) {
	raw, err := s.client.Get(ctx, settingsKey(playerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		// Corrupt payload: treat as absent and fall back to defaults.
		return nil, nil
	}
	return &settings, nil
}

func (s *PrefsStore) SaveSettings(ctx context.Context, playerID string, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, settingsKey(playerID), data, 0).Err()
}

func (s *PrefsStore) LoadHighScore(ctx context.Context, playerID string) (int, bool, error) {
	raw, err := s.client.Get(ctx, highScoreKey(playerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		return 0, false, nil
	}
	return score, true, nil
}

func (s *PrefsStore) SaveHighScore(ctx context.Context, playerID string, score int) error {
	return s.client.Set(ctx, highScoreKey(playerID), strconv.Itoa(score), 0).Err()
}

// Key suffixes are versioned so a future settings shape can migrate
// without tripping over stale payloads.
func settingsKey(playerID string) string {
	return "player:" + playerID + ":settings:v2"
}

func highScoreKey(playerID string) string {
	return "player:" + playerID + ":highscore:v1"
}
