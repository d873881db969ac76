package catalog

import (
	"fmt"

	"organelle-quiz-service/internal/domain"
)

// Validate checks catalog integrity: canonical names must be unique and
// every organelle needs at least one clue. Failures indicate authoring
// errors, so callers should surface them loudly at startup rather than
// tolerate them at play time.
func Validate(organelles []domain.Organelle) error {
	if len(organelles) == 0 {
		return domain.ErrCatalogEmpty
	}
	seen := make(map[string]struct{}, len(organelles))
	for _, o := range organelles {
		if o.Name == "" {
			return fmt.Errorf("%w: entry with empty name", domain.ErrCatalogInvalid)
		}
		if _, dup := seen[o.Name]; dup {
			return fmt.Errorf("%w: duplicate organelle %q", domain.ErrCatalogInvalid, o.Name)
		}
		seen[o.Name] = struct{}{}
		if len(o.Clues) == 0 {
			return fmt.Errorf("%w: organelle %q has no clues", domain.ErrCatalogInvalid, o.Name)
		}
	}
	return nil
}
