package game

import (
	"math/rand"
	"testing"

	"organelle-quiz-service/internal/catalog"
	"organelle-quiz-service/internal/domain"
)

func findOrganelle(t *testing.T, name string) domain.Organelle {
	t.Helper()
	for _, o := range catalog.Builtin() {
		if o.Name == name {
			return o
		}
	}
	t.Fatalf("organelle %s not in builtin bank", name)
	return domain.Organelle{}
}

func TestDistractorCountsByDifficulty(t *testing.T) {
	bank := catalog.Builtin()
	current := findOrganelle(t, "Nucleus")
	rng := rand.New(rand.NewSource(1))

	if got := Distractors(current, bank, domain.DifficultyEasy, rng); len(got) != 2 {
		t.Fatalf("easy: expected 2 distractors, got %d", len(got))
	}
	if got := Distractors(current, bank, domain.DifficultyMedium, rng); len(got) != 3 {
		t.Fatalf("medium: expected 3 distractors, got %d", len(got))
	}
}

func TestDistractorsNeverIncludeCorrectAnswer(t *testing.T) {
	bank := catalog.Builtin()
	rng := rand.New(rand.NewSource(2))
	for _, current := range bank {
		for _, name := range Distractors(current, bank, domain.DifficultyMedium, rng) {
			if name == current.Name {
				t.Fatalf("distractors for %s include the answer itself", current.Name)
			}
		}
	}
}

func TestHardDistractorsShareCategoryWithoutPadding(t *testing.T) {
	bank := catalog.Builtin()
	// Chloroplast and Cell Wall are the only plant-only entries, so hard
	// mode can produce just one distractor and must not pad it.
	current := findOrganelle(t, "Chloroplast")
	got := Distractors(current, bank, domain.DifficultyHard, rand.New(rand.NewSource(3)))
	if len(got) != 1 || got[0] != "Cell Wall" {
		t.Fatalf("expected exactly [Cell Wall], got %v", got)
	}
}

func TestBuildChoicesContainCorrectAnswer(t *testing.T) {
	bank := catalog.Builtin()
	current := findOrganelle(t, "Mitochondrion")
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 20; i++ {
		choices := BuildChoices(current, bank, domain.DifficultyMedium, rng)
		if len(choices) != 4 {
			t.Fatalf("expected 4 choices, got %d", len(choices))
		}
		found := false
		for _, c := range choices {
			if c == current.Name {
				found = true
			}
		}
		if !found {
			t.Fatalf("choices %v missing the correct answer", choices)
		}
	}
}
