package game

import (
	"math/rand"

	"organelle-quiz-service/internal/domain"
)

// Distractors samples wrong-answer names for the current organelle: two at
// easy difficulty, three otherwise. At hard difficulty candidates must share
// the current organelle's category, which makes the options more confusable.
// If the catalog is too small, every eligible candidate is returned rather
// than padding with ineligible ones.
func Distractors(current domain.Organelle, catalog []domain.Organelle, difficulty domain.Difficulty, rng *rand.Rand) []string {
	count := 3
	if difficulty == domain.DifficultyEasy {
		count = 2
	}

	candidates := make([]string, 0, len(catalog))
	for _, o := range catalog {
		if o.Name == current.Name {
			continue
		}
		if difficulty == domain.DifficultyHard && o.Category != current.Category {
			continue
		}
		candidates = append(candidates, o.Name)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

// BuildChoices returns the shuffled union of the correct name and its
// distractors; the correct position is never fixed.
func BuildChoices(current domain.Organelle, catalog []domain.Organelle, difficulty domain.Difficulty, rng *rand.Rand) []string {
	choices := append(Distractors(current, catalog, difficulty, rng), current.Name)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}
