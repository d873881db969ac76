package game

import (
	"math/rand"
	"sync"
	"time"

	"organelle-quiz-service/internal/domain"
)

// Session is the per-device quiz state machine: menu → playing → result.
// All mutation goes through its mutex, so timer ticks and user-triggered
// transitions are serialized and never interleave.
type Session struct {
	id   string
	now  func() time.Time
	rng  *rand.Rand
	tick time.Duration

	mu          sync.Mutex
	phase       domain.Phase
	settings    domain.Settings
	highScore   int
	catalog     []domain.Organelle
	pool        []domain.Organelle
	poolBuilt   bool
	poolPlant   bool
	poolAnimal  bool
	roundIndex  int
	score       int
	streak      int
	revealed    int // clues revealed beyond the first
	timeLeft    int
	heldAnswer  string
	choices     []string
	feedback    *domain.Feedback
	history     []domain.HistoryEntry
	summary     *domain.GameSummary
	timerEpoch  int
	subscribers map[chan domain.Snapshot]struct{}
}

// NewSession constructs a session in the menu phase with default settings.
func NewSession(id string) *Session {
	return newSession(id, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())), time.Second)
}

// NewSessionWithClock is test-only: injects a deterministic clock and
// random source and disables the background timer (ticks are driven
// manually).
func NewSessionWithClock(id string, now func() time.Time, rng *rand.Rand) *Session {
	return newSession(id, now, rng, 0)
}

func newSession(id string, now func() time.Time, rng *rand.Rand, tick time.Duration) *Session {
	return &Session{
		id:          id,
		now:         now,
		rng:         rng,
		tick:        tick,
		phase:       domain.PhaseMenu,
		settings:    domain.DefaultSettings(),
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
}

// Settings returns the current settings.
func (s *Session) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Hydrate applies persisted settings and high score. Only effective before
// a game starts; a loaded device state never clobbers a running round.
func (s *Session) Hydrate(settings *domain.Settings, highScore int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseMenu {
		return
	}
	if settings != nil {
		s.settings = settings.Sanitized()
	}
	if highScore > s.highScore {
		s.highScore = highScore
	}
}

// UpdateSettings replaces the settings. Rejected while a game is running
// because the pool, timer, and reveal baselines all derive from them.
// The input is sanitized: it comes straight off the wire, and a zero
// Rounds or TimePerQuestion would poison the progress and score math.
func (s *Session) UpdateSettings(settings domain.Settings) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == domain.PhasePlaying {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	s.settings = settings.Sanitized()
	return s.broadcastLocked(), nil
}

// StartGame begins a fresh game from the menu or result phase. The pool is
// reused across games and rebuilt only when the content flags changed since
// it was last built. An empty filtered pool rejects the start and leaves
// the phase untouched.
func (s *Session) StartGame(catalog []domain.Organelle) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == domain.PhasePlaying {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	s.catalog = catalog
	if !s.poolBuilt || s.poolPlant != s.settings.IncludePlantOnly || s.poolAnimal != s.settings.IncludeAnimalOnly {
		s.pool = BuildPool(catalog, s.settings, s.rng)
		s.poolBuilt = true
		s.poolPlant = s.settings.IncludePlantOnly
		s.poolAnimal = s.settings.IncludeAnimalOnly
	}
	if len(s.pool) == 0 {
		return s.snapshotLocked(), domain.ErrEmptyPool
	}

	s.phase = domain.PhasePlaying
	s.roundIndex = 0
	s.score = 0
	s.streak = 0
	s.history = nil
	s.feedback = nil
	s.summary = nil
	s.beginRoundLocked()
	return s.broadcastLocked(), nil
}

// SetAnswer records the held answer state (a selected choice or typed
// text). The timer submits whatever is held here when it expires.
func (s *Session) SetAnswer(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.feedback != nil {
		return domain.ErrInvalidTransition
	}
	s.heldAnswer = text
	return nil
}

// Submit judges the held answer, applies scoring, and sets feedback, which
// also pauses the timer.
func (s *Session) Submit() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.feedback != nil {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	s.submitLocked(s.heldAnswer)
	return s.broadcastLocked(), nil
}

// SubmitAnswer is SetAnswer followed by Submit in one step.
func (s *Session) SubmitAnswer(text string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.feedback != nil {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	s.heldAnswer = text
	s.submitLocked(text)
	return s.broadcastLocked(), nil
}

func (s *Session) submitLocked(input string) {
	organelle := s.currentLocked()
	correct, expected := Judge(input, organelle)

	s.score += answerDelta(correct, s.streak, s.timeLeft, s.settings.TimePerQuestion)
	if correct {
		s.streak++
	} else {
		s.streak = 0
	}
	s.feedback = &domain.Feedback{Correct: correct, Expected: expected, Function: organelle.Function}
	s.history = append(s.history, domain.HistoryEntry{Name: expected, Correct: correct, Submission: input})
}

// RevealHint uncovers the next clue at a score cost. Only permitted while
// hints are enabled and clues remain hidden; the streak is unaffected.
func (s *Session) RevealHint() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.feedback != nil {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	if !s.settings.HintsAllowed {
		return s.snapshotLocked(), domain.ErrHintsDisabled
	}
	if s.revealed >= len(s.currentLocked().Clues)-1 {
		return s.snapshotLocked(), domain.ErrNothingToReveal
	}
	s.revealed++
	s.score = applyHintCost(s.score)
	return s.broadcastLocked(), nil
}

// RevealAllClues uncovers every clue at once, without a score cost.
func (s *Session) RevealAllClues() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.feedback != nil {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	s.revealed = len(s.currentLocked().Clues) - 1
	return s.broadcastLocked(), nil
}

// AdvanceRound clears feedback and either starts the next round or, after
// the final one, moves to the result phase. The returned flag reports
// whether the game just finished so callers can persist the high score.
func (s *Session) AdvanceRound() (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.feedback == nil {
		return s.snapshotLocked(), false, domain.ErrInvalidTransition
	}
	s.feedback = nil
	if s.roundIndex+1 >= s.settings.Rounds {
		s.timerEpoch++
		newHigh := s.score > s.highScore
		if newHigh {
			s.highScore = s.score
		}
		s.phase = domain.PhaseResult
		s.summary = s.summaryLocked(newHigh)
		return s.broadcastLocked(), true, nil
	}
	s.roundIndex++
	s.beginRoundLocked()
	return s.broadcastLocked(), false, nil
}

// ReturnToMenu leaves the result screen.
func (s *Session) ReturnToMenu() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseResult {
		return s.snapshotLocked(), domain.ErrInvalidTransition
	}
	s.phase = domain.PhaseMenu
	s.summary = nil
	return s.broadcastLocked(), nil
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Shutdown cancels any outstanding timer. The session is unusable for
// play afterwards only in the sense that no ticks will fire; a later
// StartGame spawns a fresh timer.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timerEpoch++
}

// IsIdle reports whether nobody is watching this session.
func (s *Session) IsIdle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers) == 0
}

// beginRoundLocked resets per-round state and arms a new timer epoch.
// Bumping the epoch invalidates any outstanding tick from the previous
// round, so stale timers cannot fire into the new round's state.
func (s *Session) beginRoundLocked() {
	s.timerEpoch++
	organelle := s.currentLocked()
	s.revealed = BaselineClues(s.settings.Difficulty, len(organelle.Clues))
	s.timeLeft = s.settings.TimePerQuestion
	s.heldAnswer = ""
	if s.settings.Mode == domain.ModeMultipleChoice {
		s.choices = BuildChoices(organelle, s.catalog, s.settings.Difficulty, s.rng)
	} else {
		s.choices = nil
	}
	if s.tick > 0 {
		go s.runTimer(s.timerEpoch)
	}
}

func (s *Session) currentLocked() domain.Organelle {
	return s.pool[s.roundIndex%len(s.pool)]
}

func (s *Session) summaryLocked(newHigh bool) *domain.GameSummary {
	correct := 0
	var missed []domain.MissedEntry
	for _, h := range s.history {
		if h.Correct {
			correct++
			continue
		}
		if organelle, ok := s.findLocked(h.Name); ok {
			missed = append(missed, domain.MissedEntry{
				Name:     organelle.Name,
				Emoji:    organelle.Emoji,
				Function: organelle.Function,
				Accepted: organelle.AcceptedAnswers(),
			})
		}
	}
	return &domain.GameSummary{
		FinalScore:   s.score,
		CorrectCount: correct,
		Rounds:       s.settings.Rounds,
		HighScore:    s.highScore,
		NewHighScore: newHigh,
		Missed:       missed,
		History:      append([]domain.HistoryEntry(nil), s.history...),
	}
}

func (s *Session) findLocked(name string) (domain.Organelle, bool) {
	for _, o := range s.catalog {
		if o.Name == name {
			return o, true
		}
	}
	return domain.Organelle{}, false
}

// Subscribe returns a channel receiving snapshots on every state change,
// plus a cancel function the caller must invoke to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.snapshotLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Snapshot returns the current read-only projection.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) broadcastLocked() domain.Snapshot {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stalest update so slow clients never block play.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func (s *Session) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		Phase:     s.phase,
		Settings:  s.settings,
		Score:     s.score,
		Streak:    s.streak,
		HighScore: s.highScore,
		UpdatedAt: s.now(),
	}
	switch s.phase {
	case domain.PhasePlaying:
		organelle := s.currentLocked()
		snap.RoundIndex = s.roundIndex
		snap.TimeRemaining = s.timeLeft
		snap.Category = organelle.Category
		snap.Emoji = organelle.Emoji
		snap.Clues = append([]string(nil), organelle.Clues[:s.revealed+1]...)
		snap.Choices = append([]string(nil), s.choices...)
		snap.Feedback = s.feedback
		snap.Art = s.artHintLocked(organelle)
		done := s.roundIndex
		if s.feedback != nil {
			done++
		}
		snap.Progress = float64(done) / float64(s.settings.Rounds)
	case domain.PhaseResult:
		snap.Progress = 1
		snap.Summary = s.summary
	}
	return snap
}

func (s *Session) artHintLocked(organelle domain.Organelle) *domain.ArtHint {
	hint := &domain.ArtHint{
		Visible: ArtVisible(s.settings.ArtReveal, s.feedback),
		Style:   s.settings.ArtStyle,
		Clarity: Clarity(s.revealed, len(organelle.Clues)),
	}
	if !hint.Visible {
		return hint
	}
	if s.settings.ArtStyle == domain.ArtStyleImage && organelle.ImageURL != "" {
		hint.ImageURL = organelle.ImageURL
	} else {
		hint.Style = domain.ArtStyleGenerated
		hint.VisualKey = organelle.VisualKey
	}
	return hint
}
