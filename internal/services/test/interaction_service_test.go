package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/services/mocks"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type relationKey struct {
	kind  po.RelationKind
	user  uuid.UUID
	video uuid.UUID
}

// memoryRelations 以 map 模拟带唯一键的关系表。
type memoryRelations struct {
	mu    sync.Mutex
	rows  map[relationKey]struct{}
	fails error
}

func newMemoryRelations() *memoryRelations {
	return &memoryRelations{rows: make(map[relationKey]struct{})}
}

func (m *memoryRelations) Delete(_ context.Context, _ txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails != nil {
		return false, m.fails
	}
	key := relationKey{kind, userID, videoID}
	if _, ok := m.rows[key]; !ok {
		return false, nil
	}
	delete(m.rows, key)
	return true, nil
}

func (m *memoryRelations) Insert(_ context.Context, _ txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := relationKey{kind, userID, videoID}
	if _, ok := m.rows[key]; ok {
		return false, nil
	}
	m.rows[key] = struct{}{}
	return true, nil
}

func (m *memoryRelations) Exists(_ context.Context, _ txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails != nil {
		return false, m.fails
	}
	_, ok := m.rows[relationKey{kind, userID, videoID}]
	return ok, nil
}

// memoryCounter 记录点赞数并模拟视频存在性。
type memoryCounter struct {
	mu     sync.Mutex
	videos map[uuid.UUID]int64
}

func (c *memoryCounter) Exists(_ context.Context, _ txmanager.Session, videoID uuid.UUID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.videos[videoID]
	return ok, nil
}

func (c *memoryCounter) AdjustLikesCount(_ context.Context, _ txmanager.Session, videoID uuid.UUID, delta int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.videos[videoID] + delta
	if next < 0 {
		next = 0
	}
	c.videos[videoID] = next
	return next, nil
}

func newInteractionService(t *testing.T, videoIDs ...uuid.UUID) (*services.InteractionService, *memoryRelations, *memoryCounter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	outbox := mocks.NewMockOutboxEnqueuer(ctrl)
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	relations := newMemoryRelations()
	counter := &memoryCounter{videos: make(map[uuid.UUID]int64)}
	for _, id := range videoIDs {
		counter.videos[id] = 0
	}
	return services.NewInteractionService(relations, counter, outbox, fakeTxManager{}, discardLogger()), relations, counter
}

func TestInteractionService_ToggleLikeAlternates(t *testing.T) {
	t.Parallel()
	videoID, userID := uuid.New(), uuid.New()
	svc, _, counter := newInteractionService(t, videoID)
	ctx := context.Background()

	for i, want := range []bool{true, false, true, false, true} {
		got, err := svc.ToggleLike(ctx, userID, videoID)
		require.NoError(t, err)
		require.Equal(t, want, got, "toggle #%d", i+1)
		require.Equal(t, want, svc.IsLiked(ctx, userID, videoID))
	}
	require.Equal(t, int64(1), counter.videos[videoID])
}

func TestInteractionService_LikeAndSaveIndependent(t *testing.T) {
	t.Parallel()
	videoID, userID := uuid.New(), uuid.New()
	svc, _, counter := newInteractionService(t, videoID)
	ctx := context.Background()

	saved, err := svc.ToggleSave(ctx, userID, videoID)
	require.NoError(t, err)
	require.True(t, saved)
	require.False(t, svc.IsLiked(ctx, userID, videoID))
	require.Equal(t, int64(0), counter.videos[videoID])

	require.Equal(t, services.InteractionState{Liked: false, Saved: true}, svc.InteractionState(ctx, userID, videoID))
}

func TestInteractionService_ToggleMissingVideo(t *testing.T) {
	t.Parallel()
	svc, relations, _ := newInteractionService(t)

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	require.True(t, services.IsNotFound(err), "got %v", err)
	require.Empty(t, relations.rows)
}

func TestInteractionService_RejectsMissingIDs(t *testing.T) {
	t.Parallel()
	svc, _, _ := newInteractionService(t)

	_, err := svc.ToggleSave(context.Background(), uuid.Nil, uuid.New())
	require.True(t, services.IsValidation(err))
	require.False(t, svc.IsSaved(context.Background(), uuid.Nil, uuid.New()))
}

func TestInteractionService_ReadsFailClosed(t *testing.T) {
	t.Parallel()
	videoID, userID := uuid.New(), uuid.New()
	svc, relations, _ := newInteractionService(t, videoID)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, userID, videoID)
	require.NoError(t, err)

	relations.fails = errors.New("connection reset")
	require.False(t, svc.IsLiked(ctx, userID, videoID))
	require.Equal(t, services.InteractionState{}, svc.InteractionState(ctx, userID, videoID))

	_, err = svc.ToggleLike(ctx, userID, videoID)
	require.True(t, services.IsStoreError(err))
}
