package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"organelle-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader loads organelle JSONB rows from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) ([]domain.Organelle, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM organelles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var catalog []domain.Organelle
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan organelle: %w", err)
		}
		var organelle domain.Organelle
		if err := json.Unmarshal(raw, &organelle); err != nil {
			return nil, fmt.Errorf("unmarshal organelle: %w", err)
		}
		catalog = append(catalog, organelle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return catalog, nil
}
