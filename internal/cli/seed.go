package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"organelle-quiz-service/internal/catalog"
	"organelle-quiz-service/internal/config"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// NewSeedCmd loads the builtin organelle bank into Postgres so teachers can
// edit entries (clues, aliases, image URLs) without a rebuild.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the organelle catalog into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	organelles := catalog.Builtin()
	if err := catalog.Validate(organelles); err != nil {
		return err
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	for _, organelle := range organelles {
		data, err := json.Marshal(organelle)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", organelle.Name, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO organelles (name, data) VALUES (?, ?::jsonb) ON CONFLICT (name) DO UPDATE SET data=EXCLUDED.data`,
			organelle.Name, string(data)); err != nil {
			return fmt.Errorf("seed %s: %w", organelle.Name, err)
		}
	}
	log.Printf("seeded %d organelles", len(organelles))
	return nil
}
