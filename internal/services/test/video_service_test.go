package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type videoDeps struct {
	videos     *mocks.MockVideoRepository
	categories *mocks.MockCategoryRepository
	cache      *mocks.MockCategoryCache
	comments   *mocks.MockCommentRepository
	profiles   *mocks.MockProfileRepository
	views      *mocks.MockViewNotifier
	outbox     *mocks.MockOutboxEnqueuer
}

func newVideoService(t *testing.T) (*services.VideoService, videoDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := videoDeps{
		videos:     mocks.NewMockVideoRepository(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
		cache:      mocks.NewMockCategoryCache(ctrl),
		comments:   mocks.NewMockCommentRepository(ctrl),
		profiles:   mocks.NewMockProfileRepository(ctrl),
		views:      mocks.NewMockViewNotifier(ctrl),
		outbox:     mocks.NewMockOutboxEnqueuer(ctrl),
	}
	categorySvc := services.NewCategoryService(deps.categories, deps.cache, discardLogger())
	svc := services.NewVideoService(deps.videos, categorySvc, deps.comments, deps.profiles, deps.views, deps.outbox, fakeTxManager{}, discardLogger())
	return svc, deps
}

func TestVideoService_ListVideos_UnknownCategoryReturnsEmpty(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	deps.categories.EXPECT().GetByName(gomock.Any(), gomock.Any(), "Nonexistent").Return(nil, repositories.ErrCategoryNotFound)

	videos := svc.ListVideos(context.Background(), services.VideoFilter{CategoryName: "Nonexistent"})
	require.NotNil(t, videos)
	require.Empty(t, videos)
}

func TestVideoService_ListVideos_AllCategoryIgnored(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	row := publishedVideo("nebula")
	deps.videos.EXPECT().ListPublished(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, query repositories.ListVideosQuery) ([]*po.VideoWithRelations, error) {
			assert.Nil(t, query.CategoryID)
			assert.True(t, query.Ascending)
			assert.Equal(t, "views_count", query.SortBy)
			assert.Equal(t, "nebula", query.SearchTerm)
			return []*po.VideoWithRelations{row}, nil
		})

	videos := svc.ListVideos(context.Background(), services.VideoFilter{
		CategoryName: "ALL",
		SortBy:       "views_count",
		SortOrder:    "asc",
		SearchTerm:   "  nebula ",
	})
	require.Len(t, videos, 1)
	require.Equal(t, row.ID, videos[0].ID)
	require.Equal(t, "2:05", videos[0].Duration)
	require.Equal(t, "Astro", videos[0].Channel.Name)
}

func TestVideoService_ListVideos_ResolvesCategoryByName(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	category := &po.Category{ID: uuid.New(), Name: "Space"}
	deps.categories.EXPECT().GetByName(gomock.Any(), gomock.Any(), "Space").Return(category, nil)
	deps.videos.EXPECT().ListPublished(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, query repositories.ListVideosQuery) ([]*po.VideoWithRelations, error) {
			require.NotNil(t, query.CategoryID)
			assert.Equal(t, category.ID, *query.CategoryID)
			assert.False(t, query.Ascending)
			return nil, nil
		})

	videos := svc.ListVideos(context.Background(), services.VideoFilter{CategoryName: "Space", SortOrder: "desc"})
	require.Empty(t, videos)
}

func TestVideoService_ListVideos_StoreErrorFailsSoft(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	deps.videos.EXPECT().ListPublished(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	videos := svc.ListVideos(context.Background(), services.VideoFilter{})
	require.NotNil(t, videos)
	require.Empty(t, videos)
}

func TestVideoService_GetVideoByID_UnpublishedIsNotFound(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	id := uuid.New()
	deps.videos.EXPECT().GetPublished(gomock.Any(), gomock.Any(), id).Return(nil, repositories.ErrVideoNotFound)

	detail, err := svc.GetVideoByID(context.Background(), id)
	require.Nil(t, detail)
	require.True(t, services.IsNotFound(err), "got %v", err)
}

func TestVideoService_GetVideoByID_StoreError(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	id := uuid.New()
	deps.videos.EXPECT().GetPublished(gomock.Any(), gomock.Any(), id).Return(nil, errors.New("boom"))

	_, err := svc.GetVideoByID(context.Background(), id)
	require.True(t, services.IsStoreError(err), "got %v", err)
}

func TestVideoService_GetVideoByID_ReturnsCommentsAndNotifiesView(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	row := publishedVideo("orbit")
	commenter := uuid.New()
	comments := []*po.CommentWithAuthor{
		{Comment: po.Comment{ID: uuid.New(), VideoID: row.ID, UserID: &commenter, Content: "first"}},
	}
	deps.videos.EXPECT().GetPublished(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)
	deps.comments.EXPECT().ListTopLevel(gomock.Any(), gomock.Any(), row.ID, int32(repositories.DefaultCommentListLimit)).Return(comments, nil)
	deps.views.EXPECT().Notify(row.ID).Return(false)

	detail, err := svc.GetVideoByID(context.Background(), row.ID)
	require.NoError(t, err)
	require.Equal(t, "orbit", detail.Title)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "Unknown User", detail.Comments[0].User.Name)
}

func TestVideoService_AddVideo_RequiresUser(t *testing.T) {
	t.Parallel()
	svc, _ := newVideoService(t)

	_, err := svc.AddVideo(context.Background(), services.AddVideoInput{Title: "x", VideoURL: "y"}, uuid.Nil)
	require.True(t, services.IsAuthenticationRequired(err))
}

func TestVideoService_AddVideo_RequiresTitleAndURL(t *testing.T) {
	t.Parallel()
	svc, _ := newVideoService(t)

	_, err := svc.AddVideo(context.Background(), services.AddVideoInput{Title: "  ", VideoURL: "https://v"}, uuid.New())
	require.True(t, services.IsValidation(err))

	_, err = svc.AddVideo(context.Background(), services.AddVideoInput{Title: "t"}, uuid.New())
	require.True(t, services.IsValidation(err))
}

func TestVideoService_AddVideo_CreatesMissingCategory(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	userID := uuid.New()
	horror := &po.Category{ID: uuid.New(), Name: "Horror"}
	row := publishedVideo("Night Shift")
	row.CategoryID = &horror.ID
	row.Category = horror

	deps.categories.EXPECT().Ensure(gomock.Any(), gomock.Any(), "Horror").Return(horror, true, nil)
	deps.videos.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, input mappers.NewVideoInput) (uuid.UUID, error) {
			require.NotNil(t, input.CategoryID)
			assert.Equal(t, horror.ID, *input.CategoryID)
			assert.Equal(t, []string{"scary", "night"}, input.Tags)
			assert.Equal(t, po.SourceTypeUserUpload, input.SourceType)
			assert.NotNil(t, input.PublishedAt)
			assert.Equal(t, userID, *input.UserID)
			return row.ID, nil
		})
	deps.videos.EXPECT().GetDetail(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)
	deps.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, msg repositories.OutboxMessage) error {
			assert.Equal(t, "outterspace.video.created", msg.EventType)
			assert.Equal(t, row.ID, msg.AggregateID)
			return nil
		})
	deps.cache.EXPECT().Invalidate(gomock.Any())

	video, err := svc.AddVideo(context.Background(), services.AddVideoInput{
		Title:      "Night Shift",
		VideoURL:   "https://cdn.example.com/night.mp4",
		Category:   "Horror",
		Tags:       " scary, ,night ,",
		PublishNow: true,
	}, userID)
	require.NoError(t, err)
	require.Equal(t, "Horror", video.Category)
}

func TestVideoService_AddVideo_AllCategoryLeavesCategoryEmpty(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"All", " all "} {
		t.Run(name, func(t *testing.T) {
			svc, deps := newVideoService(t)
			row := publishedVideo("Unsorted")

			// categories.Ensure 没有 EXPECT，被调用即失败。
			deps.videos.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, input mappers.NewVideoInput) (uuid.UUID, error) {
					assert.Nil(t, input.CategoryID)
					return row.ID, nil
				})
			deps.videos.EXPECT().GetDetail(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)
			deps.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			video, err := svc.AddVideo(context.Background(), services.AddVideoInput{
				Title:    "Unsorted",
				VideoURL: "https://cdn.example.com/unsorted.mp4",
				Category: name,
			}, uuid.New())
			require.NoError(t, err)
			require.NotNil(t, video)
		})
	}
}

func TestVideoService_AddVideo_AggregatedRequiresAdmin(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	userID := uuid.New()
	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), userID).Return(&po.Profile{ID: userID, Role: po.RoleUser}, nil)

	_, err := svc.AddVideo(context.Background(), services.AddVideoInput{
		Title:      "Archive reel",
		VideoURL:   "https://archive.org/reel.mp4",
		SourceType: po.SourceTypeAggregated,
		SourceName: "Archive.org",
	}, userID)
	require.True(t, services.IsPermissionDenied(err), "got %v", err)
}

func TestVideoService_AddVideo_AggregatedRequiresSourceName(t *testing.T) {
	t.Parallel()
	svc, _ := newVideoService(t)

	_, err := svc.AddVideo(context.Background(), services.AddVideoInput{
		Title:      "Archive reel",
		VideoURL:   "https://archive.org/reel.mp4",
		SourceType: po.SourceTypeAggregated,
	}, uuid.New())
	require.True(t, services.IsValidation(err))
}

func TestVideoService_AddVideo_AggregatedDefaults(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	userID := uuid.New()
	row := publishedVideo("Moon Landing")
	row.SourceType = po.SourceTypeAggregated
	row.Profile = nil
	row.OriginalSourceLink = ptrString("Archive.org")

	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), userID).Return(&po.Profile{ID: userID, Role: po.RoleAdmin}, nil)
	deps.videos.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, input mappers.NewVideoInput) (uuid.UUID, error) {
			require.NotNil(t, input.OriginalSourceLink)
			assert.Equal(t, "Archive.org", *input.OriginalSourceLink)
			require.NotNil(t, input.ThumbnailURL)
			assert.Equal(t, "https://source.unsplash.com/640x360/?Moon%20Landing", *input.ThumbnailURL)
			assert.Nil(t, input.CategoryID)
			assert.Nil(t, input.PublishedAt)
			assert.Nil(t, input.ProfileID)
			return row.ID, nil
		})
	deps.videos.EXPECT().GetDetail(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)
	deps.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	video, err := svc.AddVideo(context.Background(), services.AddVideoInput{
		Title:      "Moon Landing",
		VideoURL:   "https://archive.org/moon.mp4",
		SourceType: po.SourceTypeAggregated,
		SourceName: "Archive.org",
	}, userID)
	require.NoError(t, err)
	require.Equal(t, "Archive.org", video.Channel.Name)
}

func TestVideoService_AddVideo_OutboxFailureRollsBack(t *testing.T) {
	t.Parallel()
	svc, deps := newVideoService(t)

	row := publishedVideo("Comet")
	deps.videos.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(row.ID, nil)
	deps.videos.EXPECT().GetDetail(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)
	deps.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

	_, err := svc.AddVideo(context.Background(), services.AddVideoInput{Title: "Comet", VideoURL: "https://v"}, uuid.New())
	require.True(t, services.IsStoreError(err))
}

func TestParseTags(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "空串", raw: "", want: []string{}},
		{name: "去空白与空项", raw: " a, ,b ,, c", want: []string{"a", "b", "c"}},
		{name: "单个", raw: "space", want: []string{"space"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, services.ParseTags(tc.raw))
		})
	}
}
