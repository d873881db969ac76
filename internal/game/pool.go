package game

import (
	"math/rand"

	"organelle-quiz-service/internal/domain"
)

// BuildPool filters the catalog by the content-inclusion flags and shuffles
// the survivors. Entries tagged "both" are never excluded. The pool is
// consumed cyclically, so round i uses pool[i % len(pool)] and a long game
// may repeat organelles.
func BuildPool(catalog []domain.Organelle, settings domain.Settings, rng *rand.Rand) []domain.Organelle {
	pool := make([]domain.Organelle, 0, len(catalog))
	for _, o := range catalog {
		if !settings.IncludePlantOnly && o.Category == domain.CategoryPlantOnly {
			continue
		}
		if !settings.IncludeAnimalOnly && o.Category == domain.CategoryAnimalOnly {
			continue
		}
		pool = append(pool, o)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}
