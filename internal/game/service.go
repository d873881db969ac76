package game

import (
	"context"

	"organelle-quiz-service/internal/domain"
)

// SessionRepository abstracts how game sessions are stored (in-memory,
// Redis-marked, etc).
type SessionRepository interface {
	GetOrCreate(playerID string) *Session
	Get(playerID string) (*Session, bool)
	DeleteIfIdle(playerID string)
}

// CatalogRepository loads the organelle bank (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) ([]domain.Organelle, error)
}

// PrefsRepository is the persistence collaborator for per-device settings
// and the high score. Loads tolerate absence; saves are best-effort.
type PrefsRepository interface {
	LoadSettings(ctx context.Context, playerID string) (*domain.Settings, error)
	SaveSettings(ctx context.Context, playerID string, settings domain.Settings) error
	LoadHighScore(ctx context.Context, playerID string) (int, bool, error)
	SaveHighScore(ctx context.Context, playerID string, score int) error
}

// GameService contains the quiz use cases, one session per device.
type GameService struct {
	sessions SessionRepository
	catalogs CatalogRepository
	prefs    PrefsRepository
}

func NewGameService(sessions SessionRepository, catalogs CatalogRepository, prefs PrefsRepository) *GameService {
	return &GameService{sessions: sessions, catalogs: catalogs, prefs: prefs}
}

// sessionFor returns the player's session, hydrating persisted settings
// and high score when it is first created. Persistence failures degrade to
// defaults and are never surfaced to the player.
func (g *GameService) sessionFor(ctx context.Context, playerID string) *Session {
	if session, ok := g.sessions.Get(playerID); ok {
		return session
	}
	session := g.sessions.GetOrCreate(playerID)
	settings, err := g.prefs.LoadSettings(ctx, playerID)
	if err != nil {
		settings = nil
	}
	high, ok, err := g.prefs.LoadHighScore(ctx, playerID)
	if err != nil || !ok {
		high = 0
	}
	session.Hydrate(settings, high)
	return session
}

// StartGame begins a fresh game for the player.
func (g *GameService) StartGame(ctx context.Context, playerID string) (domain.Snapshot, error) {
	catalog, err := g.catalogs.GetCatalog(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return g.sessionFor(ctx, playerID).StartGame(catalog)
}

// SetAnswer records the player's held answer (choice or typed text).
func (g *GameService) SetAnswer(ctx context.Context, playerID, text string) error {
	return g.sessionFor(ctx, playerID).SetAnswer(text)
}

// Submit judges the currently held answer.
func (g *GameService) Submit(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return g.sessionFor(ctx, playerID).Submit()
}

// SubmitAnswer records and judges an answer in one step.
func (g *GameService) SubmitAnswer(ctx context.Context, playerID, text string) (domain.Snapshot, error) {
	return g.sessionFor(ctx, playerID).SubmitAnswer(text)
}

// RevealHint uncovers the next clue at a score cost.
func (g *GameService) RevealHint(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return g.sessionFor(ctx, playerID).RevealHint()
}

// RevealAllClues uncovers every clue for the current round.
func (g *GameService) RevealAllClues(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return g.sessionFor(ctx, playerID).RevealAllClues()
}

// AdvanceRound moves past the feedback screen. When the game ends the high
// score is persisted best-effort.
func (g *GameService) AdvanceRound(ctx context.Context, playerID string) (domain.Snapshot, error) {
	snap, finished, err := g.sessionFor(ctx, playerID).AdvanceRound()
	if err != nil {
		return snap, err
	}
	if finished {
		_ = g.prefs.SaveHighScore(ctx, playerID, snap.HighScore)
	}
	return snap, nil
}

// ReturnToMenu leaves the result screen.
func (g *GameService) ReturnToMenu(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return g.sessionFor(ctx, playerID).ReturnToMenu()
}

// UpdateSettings replaces and persists the player's settings. Save
// failures are swallowed; the in-memory settings still apply.
func (g *GameService) UpdateSettings(ctx context.Context, playerID string, settings domain.Settings) (domain.Snapshot, error) {
	snap, err := g.sessionFor(ctx, playerID).UpdateSettings(settings)
	if err != nil {
		return snap, err
	}
	// Persist what was applied, not the raw input.
	_ = g.prefs.SaveSettings(ctx, playerID, snap.Settings)
	return snap, nil
}

// Snapshot returns the player's current session projection.
func (g *GameService) Snapshot(ctx context.Context, playerID string) domain.Snapshot {
	return g.sessionFor(ctx, playerID).Snapshot()
}

// Subscribe returns a channel that receives snapshots for a player's
// session. The caller must invoke the returned cancel function.
func (g *GameService) Subscribe(ctx context.Context, playerID string) (<-chan domain.Snapshot, func(), error) {
	ch, cancel := g.sessionFor(ctx, playerID).Subscribe()
	return ch, cancel, nil
}

// Leave drops the session once nobody is subscribed to it.
func (g *GameService) Leave(_ context.Context, playerID string) {
	session, ok := g.sessions.Get(playerID)
	if !ok {
		return
	}
	if session.IsIdle() {
		g.sessions.DeleteIfIdle(playerID)
	}
}
