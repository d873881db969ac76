package domain

import "time"

// Category says which kind of cell an organelle belongs to. Filtering and
// hard-mode distractor selection key off it.
type Category string

const (
	CategoryPlantOnly  Category = "plant"
	CategoryAnimalOnly Category = "animal"
	CategoryBoth       Category = "both"
)

// Organelle is one entry of the static question bank.
type Organelle struct {
	Name      string   `json:"name"`
	Aliases   []string `json:"aliases,omitempty"`
	Category  Category `json:"category"`
	Function  string   `json:"function"`
	Clues     []string `json:"clues"` // ordered most cryptic → most revealing
	Emoji     string   `json:"emoji,omitempty"`
	VisualKey string   `json:"visualKey"`
	ImageURL  string   `json:"imageUrl,omitempty"` // teacher-supplied diagram, optional
}

// AcceptedAnswers lists the canonical name followed by every alias.
func (o Organelle) AcceptedAnswers() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// Mode selects how answers are entered.
type Mode string

const (
	ModeMultipleChoice Mode = "multiple"
	ModeFreeType       Mode = "type"
)

// Difficulty tunes distractor count and the initial clue baseline.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ArtRevealPolicy governs when the visual hint is shown.
type ArtRevealPolicy string

const (
	ArtRevealAlways  ArtRevealPolicy = "always"
	ArtRevealOnWrong ArtRevealPolicy = "onWrong"
)

// ArtStyle selects between generated vector hints and external images.
type ArtStyle string

const (
	ArtStyleGenerated ArtStyle = "svg"
	ArtStyleImage     ArtStyle = "image"
)

// Settings is the per-device game configuration. It outlives any single
// session and is persisted best-effort between runs.
type Settings struct {
	Mode              Mode            `json:"mode"`
	Difficulty        Difficulty      `json:"difficulty"`
	Rounds            int             `json:"rounds"`
	TimePerQuestion   int             `json:"timePerQuestion"` // seconds
	IncludePlantOnly  bool            `json:"includePlantOnly"`
	IncludeAnimalOnly bool            `json:"includeAnimalOnly"`
	HintsAllowed      bool            `json:"hintsAllowed"`
	ArtReveal         ArtRevealPolicy `json:"artReveal"`
	ArtStyle          ArtStyle        `json:"artStyle"`
}

// DefaultSettings mirrors the defaults a fresh device starts with.
func DefaultSettings() Settings {
	return Settings{
		Mode:              ModeMultipleChoice,
		Difficulty:        DifficultyMedium,
		Rounds:            10,
		TimePerQuestion:   25,
		IncludePlantOnly:  true,
		IncludeAnimalOnly: true,
		HintsAllowed:      true,
		ArtReveal:         ArtRevealAlways,
		ArtStyle:          ArtStyleGenerated,
	}
}

// Bounds enforced by Sanitized. Scoring and progress math divide by
// Rounds and TimePerQuestion, so zero is never a legal stored value.
const (
	minRounds          = 1
	maxRounds          = 50
	minTimePerQuestion = 5
	maxTimePerQuestion = 300
)

// Sanitized returns a copy safe to store: unknown enum values and
// out-of-range numbers fall back to the defaults. Settings arrive over
// the wire and from persistence, neither of which is trusted. Boolean
// flags have no invalid states and pass through.
func (s Settings) Sanitized() Settings {
	def := DefaultSettings()
	if s.Mode != ModeMultipleChoice && s.Mode != ModeFreeType {
		s.Mode = def.Mode
	}
	if s.Difficulty != DifficultyEasy && s.Difficulty != DifficultyMedium && s.Difficulty != DifficultyHard {
		s.Difficulty = def.Difficulty
	}
	if s.ArtReveal != ArtRevealAlways && s.ArtReveal != ArtRevealOnWrong {
		s.ArtReveal = def.ArtReveal
	}
	if s.ArtStyle != ArtStyleGenerated && s.ArtStyle != ArtStyleImage {
		s.ArtStyle = def.ArtStyle
	}
	if s.Rounds < minRounds || s.Rounds > maxRounds {
		s.Rounds = def.Rounds
	}
	if s.TimePerQuestion < minTimePerQuestion || s.TimePerQuestion > maxTimePerQuestion {
		s.TimePerQuestion = def.TimePerQuestion
	}
	return s
}

// Phase is the coarse state of a game session.
type Phase string

const (
	PhaseMenu    Phase = "menu"
	PhasePlaying Phase = "playing"
	PhaseResult  Phase = "result"
)

// Feedback is shown after an answer is judged; its presence pauses the
// round timer and blocks further submissions until the next round.
type Feedback struct {
	Correct  bool   `json:"correct"`
	Expected string `json:"expected"`
	Function string `json:"function"`
}

// HistoryEntry records one completed round.
type HistoryEntry struct {
	Name       string `json:"name"`
	Correct    bool   `json:"correct"`
	Submission string `json:"submission"`
}

// MissedEntry is a review item on the result screen.
type MissedEntry struct {
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji,omitempty"`
	Function string   `json:"function"`
	Accepted []string `json:"accepted"`
}

// GameSummary wraps up a finished game.
type GameSummary struct {
	FinalScore   int            `json:"finalScore"`
	CorrectCount int            `json:"correctCount"`
	Rounds       int            `json:"rounds"`
	HighScore    int            `json:"highScore"`
	NewHighScore bool           `json:"newHighScore"`
	Missed       []MissedEntry  `json:"missed,omitempty"`
	History      []HistoryEntry `json:"history"`
}

// ArtHint carries everything the visual-hint renderer needs. The core never
// draws anything itself; it only decides visibility and clarity.
type ArtHint struct {
	Visible   bool     `json:"visible"`
	Style     ArtStyle `json:"style"`
	VisualKey string   `json:"visualKey,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Clarity   float64  `json:"clarity"` // (0,1], scales blur/detail
}

// Snapshot is the read-only projection of a session pushed to clients.
type Snapshot struct {
	Phase     Phase    `json:"phase"`
	Settings  Settings `json:"settings"`
	Score     int      `json:"score"`
	Streak    int      `json:"streak"`
	HighScore int      `json:"highScore"`

	RoundIndex    int       `json:"roundIndex"`
	TimeRemaining int       `json:"timeRemaining"`
	Category      Category  `json:"category,omitempty"`
	Emoji         string    `json:"emoji,omitempty"`
	Clues         []string  `json:"clues,omitempty"`
	Choices       []string  `json:"choices,omitempty"`
	Art           *ArtHint  `json:"art,omitempty"`
	Feedback      *Feedback `json:"feedback,omitempty"`
	Progress      float64   `json:"progress"`

	Summary *GameSummary `json:"summary,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}
