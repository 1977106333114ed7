package cache_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/Kermitroid/outterspace2/internal/infrastructure/cache"
	"github.com/Kermitroid/outterspace2/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func discardLogger() log.Logger { return log.NewStdLogger(io.Discard) }

func startRedis(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skip redis integration test: cannot start redis container: %v", err)
	}
	t.Cleanup(func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestCategoryCache_Disabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, cleanup, err := cache.NewClient(ctx, cache.Config{}, discardLogger())
	require.NoError(t, err)
	defer cleanup()
	require.Nil(t, client)

	c := cache.NewCategoryCache(nil, cache.Config{}, discardLogger())
	c.Set(ctx, []po.Category{{ID: uuid.New(), Name: "Music"}})
	_, ok := c.Get(ctx)
	require.False(t, ok)
	c.Invalidate(ctx)
}

func TestNewClient_BadURL(t *testing.T) {
	t.Parallel()
	_, _, err := cache.NewClient(context.Background(), cache.Config{URL: "mysql://nope"}, discardLogger())
	require.Error(t, err)
}

func TestCategoryCache_Redis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := cache.Config{URL: startRedis(ctx, t), KeyPrefix: "test", CategoryTTL: time.Minute}

	client, cleanup, err := cache.NewClient(ctx, cfg, discardLogger())
	require.NoError(t, err)
	defer cleanup()

	c := cache.NewCategoryCache(client, cfg, discardLogger())
	_, ok := c.Get(ctx)
	require.False(t, ok)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []po.Category{
		{ID: uuid.New(), Name: "Space", CreatedAt: created},
		{ID: uuid.New(), Name: "Space", CreatedAt: created},
	}
	c.Set(ctx, rows)

	got, ok := c.Get(ctx)
	require.True(t, ok)
	require.Equal(t, rows, got)

	ttl, err := client.TTL(ctx, "test:categories:v1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	c.Invalidate(ctx)
	_, ok = c.Get(ctx)
	require.False(t, ok)
}
