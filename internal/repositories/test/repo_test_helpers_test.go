package repositories_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/Kermitroid/outterspace2/internal/infrastructure/migrator"
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newTxManager(t *testing.T, pool *pgxpool.Pool) txmanager.Manager {
	t.Helper()
	mgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: log.NewStdLogger(io.Discard)})
	require.NoError(t, err)
	return mgr
}

func stringPtr(val string) *string {
	return &val
}

func discardLogger() log.Logger {
	return log.NewStdLogger(io.Discard)
}

// newPool 启动 Postgres 容器并执行全部迁移。
func newPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)
	return pool
}

func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "outterspace",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/outterspace?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip repository integration test: cannot start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/outterspace?sslmode=disable", host, port.Port())
	cleanup := func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
	return dsn, cleanup
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	m, err := migrator.New(pool, discardLogger())
	require.NoError(t, err)
	defer func() { _ = m.Close() }()
	require.NoError(t, m.Up(ctx))
}

// seedUser 注册一个带档案的用户。
func seedUser(ctx context.Context, t *testing.T, pool *pgxpool.Pool, email string) uuid.UUID {
	t.Helper()
	auth := repositories.NewAuthRepository(pool, discardLogger())
	profiles := repositories.NewProfileRepository(pool, discardLogger())

	user, err := auth.CreateUser(ctx, nil, email, "hash", po.UserMetadata{Name: "Astro", Username: "astro"})
	require.NoError(t, err)
	_, err = profiles.Create(ctx, nil, repositories.CreateProfileInput{
		ID:       user.ID,
		Username: stringPtr("astro"),
		Name:     stringPtr("Astro"),
	})
	require.NoError(t, err)
	return user.ID
}

// seedVideo 写入一条视频，publishedAt 为 nil 时为草稿。
func seedVideo(ctx context.Context, t *testing.T, pool *pgxpool.Pool, input mappers.NewVideoInput) uuid.UUID {
	t.Helper()
	repo := repositories.NewVideoRepository(pool, discardLogger())
	if input.VideoURL == "" {
		input.VideoURL = "https://cdn.example.com/" + uuid.NewString() + ".mp4"
	}
	id, err := repo.Create(ctx, nil, input)
	require.NoError(t, err)
	return id
}
