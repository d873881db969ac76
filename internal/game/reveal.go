package game

import "organelle-quiz-service/internal/domain"

// BaselineClues returns how many extra clues start revealed for a
// difficulty: easy 2, medium 1, hard 0. The baseline is clamped so at
// least one clue always remains hidden when the sequence is short.
func BaselineClues(difficulty domain.Difficulty, clueCount int) int {
	base := 1
	switch difficulty {
	case domain.DifficultyEasy:
		base = 2
	case domain.DifficultyHard:
		base = 0
	}
	if limit := clueCount - 1; base > limit {
		base = limit
	}
	if base < 0 {
		base = 0
	}
	return base
}

// Clarity maps the revealed clue count to a fraction in (0,1] used by the
// renderer to scale blur/detail. It is monotonically non-decreasing within
// a round.
func Clarity(revealed, clueCount int) float64 {
	if clueCount < 1 {
		clueCount = 1
	}
	return float64(revealed+1) / float64(clueCount)
}

// ArtVisible decides whether the visual hint may be shown. Under the
// "always" policy it always is; under "only on wrong" it appears only once
// an incorrect answer is being displayed.
func ArtVisible(policy domain.ArtRevealPolicy, feedback *domain.Feedback) bool {
	if policy == domain.ArtRevealAlways {
		return true
	}
	return feedback != nil && !feedback.Correct
}
