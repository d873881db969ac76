package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"organelle-quiz-service/internal/domain"
	"organelle-quiz-service/internal/game"
	pgloader "organelle-quiz-service/internal/infra/postgres"
	pgmigrations "organelle-quiz-service/internal/infra/postgres/migrations"
	infraredis "organelle-quiz-service/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestPlayGameEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedOrganelles(t, ctx, pgURL, sampleBank())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewCatalogLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	catalogRepo := infraredis.NewCatalogRepository(redisClient, loader, 5*time.Minute)
	sessionStore := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	prefsStore := infraredis.NewPrefsStore(redisClient)
	service := game.NewGameService(sessionStore, catalogRepo, prefsStore)

	settings := domain.DefaultSettings()
	settings.Mode = domain.ModeFreeType
	settings.Rounds = 1
	if _, err := service.UpdateSettings(ctx, "device-1", settings); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	if _, err := service.StartGame(ctx, "device-1"); err != nil {
		t.Fatalf("start game: %v", err)
	}

	snap, err := service.SubmitAnswer(ctx, "device-1", "mitochondria")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.Feedback == nil || !snap.Feedback.Correct {
		t.Fatalf("expected correct answer, got %+v", snap.Feedback)
	}

	result, err := service.AdvanceRound(ctx, "device-1")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if result.Phase != domain.PhaseResult {
		t.Fatalf("expected result phase, got %s", result.Phase)
	}
	if result.HighScore <= 0 {
		t.Fatalf("expected a positive high score, got %d", result.HighScore)
	}

	// Both the settings and the high score survived into Redis.
	persisted, err := prefsStore.LoadSettings(ctx, "device-1")
	if err != nil || persisted == nil || persisted.Rounds != 1 {
		t.Fatalf("settings not persisted: %+v err=%v", persisted, err)
	}
	score, ok, err := prefsStore.LoadHighScore(ctx, "device-1")
	if err != nil || !ok || score != result.HighScore {
		t.Fatalf("high score not persisted: %d ok=%v err=%v", score, ok, err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedOrganelles(t *testing.T, ctx context.Context, dsn string, bank []domain.Organelle) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, organelle := range bank {
		data, err := json.Marshal(organelle)
		if err != nil {
			t.Fatalf("marshal organelle: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO organelles (name, data) VALUES (?, ?::jsonb) ON CONFLICT (name) DO UPDATE SET data=EXCLUDED.data`, organelle.Name, string(data)); err != nil {
			t.Fatalf("insert organelle: %v", err)
		}
	}
}

func sampleBank() []domain.Organelle {
	return []domain.Organelle{
		{
			Name:      "Mitochondrion",
			Aliases:   []string{"mitochondria", "powerhouse"},
			Category:  domain.CategoryBoth,
			Function:  "Cellular respiration; makes ATP.",
			Clues:     []string{"They call me the powerhouse.", "I make ATP."},
			VisualKey: "mitochondrion",
		},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
