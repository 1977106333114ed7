package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRepositoryListPublished(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newPool(ctx, t)
	repo := repositories.NewVideoRepository(pool, discardLogger())
	categories := repositories.NewCategoryRepository(pool, discardLogger())

	userID := seedUser(ctx, t, pool, "astro@example.com")
	space, _, err := categories.Ensure(ctx, nil, "Space")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	older := time.Now().Add(-2 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	orion := seedVideo(ctx, t, pool, mappers.NewVideoInput{
		UserID: &userID, ProfileID: &userID, Title: "Orion 100%", CategoryID: &space.ID,
		Tags: []string{"Nebula"}, PublishedAt: &past, DurationSeconds: int32Ptr(125),
	})
	mars := seedVideo(ctx, t, pool, mappers.NewVideoInput{
		Title: "Mars rover", Description: stringPtr("red planet"), PublishedAt: &older,
	})
	seedVideo(ctx, t, pool, mappers.NewVideoInput{Title: "Draft"})
	seedVideo(ctx, t, pool, mappers.NewVideoInput{Title: "Scheduled", PublishedAt: &future})

	t.Run("default order newest first and drafts hidden", func(t *testing.T) {
		videos, err := repo.ListPublished(ctx, nil, repositories.ListVideosQuery{})
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, orion, videos[0].ID)
		assert.Equal(t, mars, videos[1].ID)
		require.NotNil(t, videos[0].Category)
		assert.Equal(t, "Space", videos[0].Category.Name)
		require.NotNil(t, videos[0].Profile)
		assert.Equal(t, "astro", *videos[0].Profile.Username)
		assert.Nil(t, videos[1].Profile)
	})

	t.Run("category filter", func(t *testing.T) {
		videos, err := repo.ListPublished(ctx, nil, repositories.ListVideosQuery{CategoryID: &space.ID})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, orion, videos[0].ID)
	})

	t.Run("search matches description and tags", func(t *testing.T) {
		videos, err := repo.ListPublished(ctx, nil, repositories.ListVideosQuery{SearchTerm: "RED"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, mars, videos[0].ID)

		videos, err = repo.ListPublished(ctx, nil, repositories.ListVideosQuery{SearchTerm: "nebula"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, orion, videos[0].ID)
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		videos, err := repo.ListPublished(ctx, nil, repositories.ListVideosQuery{SearchTerm: "%"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, orion, videos[0].ID)
	})

	t.Run("sort whitelist and fallback", func(t *testing.T) {
		videos, err := repo.ListPublished(ctx, nil, repositories.ListVideosQuery{SortBy: "title", Ascending: true})
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, mars, videos[0].ID)

		videos, err = repo.ListPublished(ctx, nil, repositories.ListVideosQuery{SortBy: "id; DROP TABLE x", Ascending: true})
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, orion, videos[0].ID)
	})

	t.Run("id set and user filter", func(t *testing.T) {
		videos, err := repo.ListPublished(ctx, nil, repositories.ListVideosQuery{VideoIDs: []uuid.UUID{mars}})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, mars, videos[0].ID)

		videos, err = repo.ListPublished(ctx, nil, repositories.ListVideosQuery{UserID: &userID, Limit: 1})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, orion, videos[0].ID)
	})
}

func TestVideoRepositoryGetAndCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newPool(ctx, t)
	repo := repositories.NewVideoRepository(pool, discardLogger())

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	published := seedVideo(ctx, t, pool, mappers.NewVideoInput{Title: "Live", PublishedAt: &past, SourceType: po.SourceTypeAggregated})
	scheduled := seedVideo(ctx, t, pool, mappers.NewVideoInput{Title: "Later", PublishedAt: &future})

	got, err := repo.GetPublished(ctx, nil, published)
	require.NoError(t, err)
	assert.Equal(t, po.SourceTypeAggregated, got.SourceType)

	_, err = repo.GetPublished(ctx, nil, scheduled)
	require.ErrorIs(t, err, repositories.ErrVideoNotFound)

	for id, want := range map[uuid.UUID]bool{published: true, scheduled: false, uuid.New(): false} {
		ok, err := repo.Exists(ctx, nil, id)
		require.NoError(t, err)
		assert.Equal(t, want, ok, "exists(%s)", id)
	}

	detail, err := repo.GetDetail(ctx, nil, scheduled)
	require.NoError(t, err)
	assert.Equal(t, "Later", detail.Title)

	require.NoError(t, repo.IncrementViewCount(ctx, nil, published))
	require.NoError(t, repo.IncrementViewCount(ctx, nil, published))
	require.ErrorIs(t, repo.IncrementViewCount(ctx, nil, uuid.New()), repositories.ErrVideoNotFound)

	count, err := repo.AdjustLikesCount(ctx, nil, published, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	count, err = repo.AdjustLikesCount(ctx, nil, published, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err = repo.GetPublished(ctx, nil, published)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewsCount)
	assert.Equal(t, int64(1), got.LikesCount)
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `100\%`, repositories.EscapeLikePattern("100%"))
	assert.Equal(t, `a\_b`, repositories.EscapeLikePattern("a_b"))
	assert.Equal(t, `c:\\dir`, repositories.EscapeLikePattern(`c:\dir`))
}

func TestClampVideoLimit(t *testing.T) {
	assert.Equal(t, int32(50), repositories.ClampVideoLimit(0))
	assert.Equal(t, int32(50), repositories.ClampVideoLimit(-3))
	assert.Equal(t, int32(7), repositories.ClampVideoLimit(7))
	assert.Equal(t, int32(100), repositories.ClampVideoLimit(1000))
}

func int32Ptr(v int32) *int32 {
	return &v
}
