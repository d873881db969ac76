package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"organelle-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the organelle bank from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Organelle, error)
}

// CatalogRepository caches the organelle bank in Redis as a JSON blob and
// falls back to the loader on cache miss.
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) ([]domain.Organelle, error) {
	if catalog, ok := r.fromCache(ctx); ok {
		return catalog, nil
	}

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if catalog, ok := r.fromCache(ctx); ok {
			return catalog, nil
		}

		catalog, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(catalog); err == nil {
			_ = r.client.Set(ctx, catalogKey, data, r.ttlWithJitter()).Err()
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Organelle), nil
}

func (r *CatalogRepository) fromCache(ctx context.Context) ([]domain.Organelle, bool) {
	raw, err := r.client.Get(ctx, catalogKey).Result()
	if err != nil {
		return nil, false
	}
	var catalog []domain.Organelle
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil || len(catalog) == 0 {
		return nil, false
	}
	return catalog, true
}

const catalogKey = "catalog:organelles"

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
