package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"organelle-quiz-service/internal/domain"
)

type countingLoader struct {
	calls int
	bank  []domain.Organelle
	err   error
}

func (l *countingLoader) LoadCatalog(_ context.Context) ([]domain.Organelle, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.bank, nil
}

func testBank() []domain.Organelle {
	return []domain.Organelle{
		{Name: "Nucleus", Category: domain.CategoryBoth, Clues: []string{"DNA"}},
		{Name: "Chloroplast", Category: domain.CategoryPlantOnly, Clues: []string{"green"}},
	}
}

func TestCatalogRepositoryCachesInRedis(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	loader := &countingLoader{bank: testBank()}
	repo := NewCatalogRepository(client, loader, time.Minute)

	for i := 0; i < 3; i++ {
		catalog, err := repo.GetCatalog(ctx)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if len(catalog) != 2 || catalog[0].Name != "Nucleus" {
			t.Fatalf("get %d: unexpected catalog %+v", i, catalog)
		}
	}
	if loader.calls != 1 {
		t.Fatalf("expected one backing load, got %d", loader.calls)
	}

	// The blob is in Redis, so a fresh repository never hits the loader.
	other := &countingLoader{bank: nil, err: errors.New("should not be called")}
	repo2 := NewCatalogRepository(client, other, time.Minute)
	if _, err := repo2.GetCatalog(ctx); err != nil {
		t.Fatalf("cached get: %v", err)
	}
	if other.calls != 0 {
		t.Fatal("fresh repository bypassed the shared cache")
	}
}

func TestCatalogRepositoryIgnoresCorruptCache(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	if err := client.Set(ctx, catalogKey, "]broken[", 0).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	loader := &countingLoader{bank: testBank()}
	repo := NewCatalogRepository(client, loader, time.Minute)
	catalog, err := repo.GetCatalog(ctx)
	if err != nil || len(catalog) != 2 {
		t.Fatalf("expected loader fallback, got %v err=%v", catalog, err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected one load, got %d", loader.calls)
	}
}

func TestCatalogRepositoryPropagatesLoaderErrors(t *testing.T) {
	boom := errors.New("postgres down")
	repo := NewCatalogRepository(newTestClient(t), &countingLoader{err: boom}, time.Minute)
	if _, err := repo.GetCatalog(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}
