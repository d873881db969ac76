package game

import "math"

// Scoring rules.
const (
	baseCorrect  = 100 // flat credit per correct answer
	streakBonus  = 15  // per streak step held before the answer
	hintCost     = 20  // subtracted when a clue is revealed by the player
	maxTimeBonus = 40  // awarded in full for an instant answer
)

// answerDelta computes the score change for a judged answer. Incorrect
// answers never score. The time bonus scales linearly with the time left
// and rounds up.
func answerDelta(correct bool, streak, timeLeft, timePerQuestion int) int {
	if !correct {
		return 0
	}
	bonus := int(math.Ceil(float64(timeLeft) / float64(timePerQuestion) * maxTimeBonus))
	return baseCorrect + streak*streakBonus + bonus
}

// applyHintCost deducts the hint penalty, clamping the score at zero.
func applyHintCost(score int) int {
	if score < hintCost {
		return 0
	}
	return score - hintCost
}
