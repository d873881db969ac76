package game

import (
	"strings"

	"organelle-quiz-service/internal/domain"
)

// Normalize lowercases the input and strips everything that is not an
// ASCII letter or digit, so "  Golgi-Body  " and "golgibody" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Judge compares a raw submission against the organelle's accepted name
// set. Matching is exact on normalized forms; no fuzzy tolerance. The
// canonical name is always returned for feedback display.
func Judge(submission string, organelle domain.Organelle) (bool, string) {
	n := Normalize(submission)
	for _, accepted := range organelle.AcceptedAnswers() {
		if n == Normalize(accepted) {
			return true, organelle.Name
		}
	}
	return false, organelle.Name
}
