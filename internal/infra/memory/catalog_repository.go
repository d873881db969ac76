package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"organelle-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the organelle bank from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Organelle, error)
}

// CatalogRepository caches the catalog with a TTL to avoid repeated
// backing-store hits.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	catalog   []domain.Organelle
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) ([]domain.Organelle, error) {
	now := r.clock()

	r.mu.RLock()
	if r.catalog != nil && r.expiresAt.After(now) {
		catalog := r.catalog
		r.mu.RUnlock()
		return catalog, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.catalog != nil && r.expiresAt.After(now) {
			catalog := r.catalog
			r.mu.RUnlock()
			return catalog, nil
		}
		r.mu.RUnlock()

		catalog, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.catalog = catalog
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Organelle), nil
}

// StaticCatalogLoader serves a fixed bank (the builtin catalog or test data).
type StaticCatalogLoader struct {
	organelles []domain.Organelle
}

func NewStaticCatalogLoader(organelles []domain.Organelle) *StaticCatalogLoader {
	return &StaticCatalogLoader{organelles: organelles}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context) ([]domain.Organelle, error) {
	if len(l.organelles) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return l.organelles, nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
