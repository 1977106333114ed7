package outbox_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/migrator"
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/tasks/outbox"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	testProject = "outterspace-test"
	testTopic   = "outterspace-events"
)

var schemaConfig = outboxcfg.Config{Schema: "outterspace"}

// eventFixture 持有一个已迁移的数据库、一个已发布视频及其作者，以及真实的服务实例。
type eventFixture struct {
	pool         *pgxpool.Pool
	outbox       *repositories.OutboxRepository
	interactions *services.InteractionService
	comments     *services.CommentService
	userID       uuid.UUID
	videoID      uuid.UUID
	pubsub       *pstest.Server
}

func newEventFixture(ctx context.Context, t *testing.T) *eventFixture {
	t.Helper()

	dsn := startPostgres(ctx, t)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	logger := log.NewStdLogger(io.Discard)
	m, err := migrator.New(pool, logger)
	require.NoError(t, err)
	require.NoError(t, m.Up(ctx))
	require.NoError(t, m.Close())

	txMgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: logger})
	require.NoError(t, err)

	outboxRepo := repositories.NewOutboxRepository(pool, logger, schemaConfig)
	videoRepo := repositories.NewVideoRepository(pool, logger)

	user, err := repositories.NewAuthRepository(pool, logger).CreateUser(ctx, nil, "vega@example.com", "hash", po.UserMetadata{Name: "Vega", Username: "vega"})
	require.NoError(t, err)
	published := time.Now().UTC().Add(-time.Hour)
	videoID, err := videoRepo.Create(ctx, nil, mappers.NewVideoInput{
		UserID:      &user.ID,
		Title:       "Night sky timelapse",
		VideoURL:    "https://cdn.example.com/night.mp4",
		SourceType:  po.SourceTypeUserUpload,
		PublishedAt: &published,
	})
	require.NoError(t, err)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })

	return &eventFixture{
		pool:         pool,
		outbox:       outboxRepo,
		interactions: services.NewInteractionService(repositories.NewInteractionRepository(pool, logger), videoRepo, outboxRepo, txMgr, logger),
		comments:     services.NewCommentService(repositories.NewCommentRepository(pool, logger), videoRepo, outboxRepo, txMgr, logger),
		userID:       user.ID,
		videoID:      videoID,
		pubsub:       server,
	}
}

func (f *eventFixture) createTopic(ctx context.Context, t *testing.T) string {
	t.Helper()
	name := fmt.Sprintf("projects/%s/topics/%s", testProject, testTopic)
	_, err := f.pubsub.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: name})
	require.NoError(t, err)
	return name
}

// startRunner 以短周期配置启动发布 Runner，返回的函数取消并等待其退出。
func (f *eventFixture) startRunner(ctx context.Context, t *testing.T, maxAttempts int) func() {
	t.Helper()

	component, cleanupPub, err := gcpubsub.NewComponent(ctx, gcpubsub.Config{
		ProjectID:        testProject,
		TopicID:          testTopic,
		EnableLogging:    boolPtr(false),
		EnableMetrics:    boolPtr(true),
		MeterName:        "outterspace.gcpubsub.test",
		EmulatorEndpoint: f.pubsub.Addr,
	}, gcpubsub.Dependencies{Logger: log.NewStdLogger(io.Discard)})
	require.NoError(t, err)

	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader())).Meter("outterspace.outbox.test")
	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     f.outbox.Shared(),
		Publisher: gcpubsub.ProvidePublisher(component),
		Config: outboxcfg.PublisherConfig{
			BatchSize:      4,
			TickInterval:   25 * time.Millisecond,
			InitialBackoff: 10 * time.Millisecond,
			MaxBackoff:     150 * time.Millisecond,
			MaxAttempts:    maxAttempts,
			PublishTimeout: 200 * time.Millisecond,
			Workers:        1,
			LockTTL:        time.Second,
			LoggingEnabled: boolPtr(false),
			MetricsEnabled: boolPtr(true),
		},
		Logger: log.NewStdLogger(io.Discard),
		Meter:  meter,
	})
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(runCtx) }()

	return func() {
		cancel()
		select {
		case err := <-errCh:
			require.True(t, err == nil || errors.Is(err, context.Canceled))
		case <-time.After(2 * time.Second):
			t.Fatal("outbox runner did not stop in time")
		}
		cleanupPub()
	}
}

func (f *eventFixture) publishedAt(ctx context.Context, eventType string) (pgtype.Timestamptz, int32, error) {
	var publishedAt pgtype.Timestamptz
	var attempts int32
	err := f.pool.QueryRow(ctx, `
		SELECT published_at, delivery_attempts
		FROM outterspace.outbox_events
		WHERE event_type = $1
		ORDER BY occurred_at DESC
		LIMIT 1`, eventType).Scan(&publishedAt, &attempts)
	return publishedAt, attempts, err
}

func TestPublisherRunner_PublishesDomainEvents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		eventType string
		act       func(ctx context.Context, t *testing.T, f *eventFixture)
	}{
		{
			name:      "like toggle",
			eventType: "outterspace.video.liked",
			act: func(ctx context.Context, t *testing.T, f *eventFixture) {
				liked, err := f.interactions.ToggleLike(ctx, f.userID, f.videoID)
				require.NoError(t, err)
				require.True(t, liked)
			},
		},
		{
			name:      "save toggled twice",
			eventType: "outterspace.video.unsaved",
			act: func(ctx context.Context, t *testing.T, f *eventFixture) {
				for _, want := range []bool{true, false} {
					saved, err := f.interactions.ToggleSave(ctx, f.userID, f.videoID)
					require.NoError(t, err)
					require.Equal(t, want, saved)
				}
			},
		},
		{
			name:      "comment added",
			eventType: "outterspace.comment.added",
			act: func(ctx context.Context, t *testing.T, f *eventFixture) {
				_, err := f.comments.AddComment(ctx, services.AddCommentInput{
					VideoID: f.videoID,
					UserID:  f.userID,
					Content: "  stunning  ",
				})
				require.NoError(t, err)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			f := newEventFixture(ctx, t)
			topic := f.createTopic(ctx, t)

			tc.act(ctx, t, f)
			pending, _, err := f.publishedAt(ctx, tc.eventType)
			require.NoError(t, err)
			require.False(t, pending.Valid)

			stop := f.startRunner(ctx, t, 3)
			defer stop()

			require.Eventually(t, func() bool {
				at, _, err := f.publishedAt(ctx, tc.eventType)
				return err == nil && at.Valid
			}, 6*time.Second, 50*time.Millisecond)

			var matched bool
			for _, msg := range f.pubsub.Messages() {
				require.Equal(t, topic, msg.Topic)
				if strings.Contains(string(msg.Data), f.videoID.String()) {
					matched = true
				}
			}
			require.True(t, matched, "published payload should reference the video")
		})
	}
}

func TestPublisherRunner_RetriesUntilTopicExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEventFixture(ctx, t)

	_, err := f.interactions.ToggleLike(ctx, f.userID, f.videoID)
	require.NoError(t, err)

	stop := f.startRunner(ctx, t, 10)
	defer stop()

	require.Eventually(t, func() bool {
		at, attempts, err := f.publishedAt(ctx, "outterspace.video.liked")
		return err == nil && !at.Valid && attempts >= 1
	}, 4*time.Second, 50*time.Millisecond)

	f.createTopic(ctx, t)

	require.Eventually(t, func() bool {
		at, _, err := f.publishedAt(ctx, "outterspace.video.liked")
		return err == nil && at.Valid
	}, 8*time.Second, 100*time.Millisecond)
	require.Len(t, f.pubsub.Messages(), 1)
}

func TestProvideRunner_SkipsWithoutTopic(t *testing.T) {
	t.Parallel()

	runner := outbox.ProvideRunner(
		&repositories.OutboxRepository{},
		nil,
		gcpubsub.Config{ProjectID: testProject},
		schemaConfig,
		log.NewStdLogger(io.Discard),
	)
	require.Nil(t, runner)
}

func TestProvideRunner_NilRepository(t *testing.T) {
	t.Parallel()

	runner := outbox.ProvideRunner(nil, nil, gcpubsub.Config{TopicID: testTopic}, schemaConfig, log.NewStdLogger(io.Discard))
	require.Nil(t, runner)
}

func startPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
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
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skip outbox integration tests: cannot start postgres container: %v", err)
	}
	t.Cleanup(func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/outterspace?sslmode=disable", host, port.Port())
}

func boolPtr(v bool) *bool {
	return &v
}
