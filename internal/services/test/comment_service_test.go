package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentFixture struct {
	svc    *services.CommentService
	repo   *mocks.MockCommentRepository
	videos *mocks.MockVideoCounterRepository
	outbox *mocks.MockOutboxEnqueuer
}

func newCommentService(t *testing.T) commentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := commentFixture{
		repo:   mocks.NewMockCommentRepository(ctrl),
		videos: mocks.NewMockVideoCounterRepository(ctrl),
		outbox: mocks.NewMockOutboxEnqueuer(ctrl),
	}
	f.svc = services.NewCommentService(f.repo, f.videos, f.outbox, fakeTxManager{}, discardLogger())
	return f
}

// publishedVideo 让已发布校验对任意视频返回 true。
func (f commentFixture) publishedVideo() {
	f.videos.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
}

func TestCommentService_AddComment_RejectsBlankBeforeStore(t *testing.T) {
	t.Parallel()
	svc := newCommentService(t).svc

	cases := []struct {
		name  string
		input services.AddCommentInput
	}{
		{name: "空白内容", input: services.AddCommentInput{VideoID: uuid.New(), UserID: uuid.New(), Content: " \n\t "}},
		{name: "缺少视频", input: services.AddCommentInput{UserID: uuid.New(), Content: "hi"}},
		{name: "匿名且空白", input: services.AddCommentInput{VideoID: uuid.New(), Content: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddComment(context.Background(), tc.input)
			require.True(t, services.IsValidation(err), "got %v", err)
		})
	}
}

func TestCommentService_AddComment_RequiresUser(t *testing.T) {
	t.Parallel()
	svc := newCommentService(t).svc

	_, err := svc.AddComment(context.Background(), services.AddCommentInput{VideoID: uuid.New(), Content: "hello"})
	require.True(t, services.IsAuthenticationRequired(err))
}

func TestCommentService_AddComment_TrimsAndEnqueues(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)
	f.publishedVideo()
	svc, repo, outbox := f.svc, f.repo, f.outbox

	videoID, userID := uuid.New(), uuid.New()
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), repositories.CreateCommentInput{
		VideoID: videoID,
		UserID:  userID,
		Content: "great video",
	}).Return(&po.CommentWithAuthor{
		Comment: po.Comment{ID: uuid.New(), VideoID: videoID, UserID: &userID, Content: "great video"},
		Author:  &po.ProfileSummary{ID: userID, Username: ptrString("astro")},
	}, nil)
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, msg repositories.OutboxMessage) error {
			assert.Equal(t, "outterspace.comment.added", msg.EventType)
			return nil
		})

	comment, err := svc.AddComment(context.Background(), services.AddCommentInput{
		VideoID: videoID,
		UserID:  userID,
		Content: "  great video \n",
	})
	require.NoError(t, err)
	require.Equal(t, "great video", comment.Content)
	require.Equal(t, "astro", comment.User.Name)
}

func TestCommentService_AddComment_ParentOnOtherVideo(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)
	f.publishedVideo()
	svc, repo := f.svc, f.repo

	parentID := uuid.New()
	repo.EXPECT().Get(gomock.Any(), gomock.Any(), parentID).Return(&po.CommentWithAuthor{
		Comment: po.Comment{ID: parentID, VideoID: uuid.New(), Content: "elsewhere"},
	}, nil)

	_, err := svc.AddComment(context.Background(), services.AddCommentInput{
		VideoID:         uuid.New(),
		UserID:          uuid.New(),
		ParentCommentID: &parentID,
		Content:         "reply",
	})
	require.True(t, services.IsValidation(err), "got %v", err)
}

func TestCommentService_AddComment_MissingParent(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)
	f.publishedVideo()
	svc, repo := f.svc, f.repo

	parentID := uuid.New()
	repo.EXPECT().Get(gomock.Any(), gomock.Any(), parentID).Return(nil, repositories.ErrCommentNotFound)

	_, err := svc.AddComment(context.Background(), services.AddCommentInput{
		VideoID:         uuid.New(),
		UserID:          uuid.New(),
		ParentCommentID: &parentID,
		Content:         "reply",
	})
	require.True(t, services.IsValidation(err))
}

func TestCommentService_AddComment_UnknownOrUnpublishedVideo(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)

	videoID := uuid.New()
	f.videos.EXPECT().Exists(gomock.Any(), gomock.Any(), videoID).Return(false, nil)

	_, err := f.svc.AddComment(context.Background(), services.AddCommentInput{
		VideoID: videoID,
		UserID:  uuid.New(),
		Content: "too early",
	})
	require.True(t, services.IsNotFound(err), "got %v", err)
}

func TestCommentService_AddComment_LookupFailure(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)

	f.videos.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))

	_, err := f.svc.AddComment(context.Background(), services.AddCommentInput{
		VideoID: uuid.New(),
		UserID:  uuid.New(),
		Content: "hello",
	})
	require.True(t, services.IsStoreError(err), "got %v", err)
}

func TestCommentService_ListComments_FailsSoft(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)
	svc, repo := f.svc, f.repo

	videoID := uuid.New()
	repo.EXPECT().ListTopLevel(gomock.Any(), gomock.Any(), videoID, gomock.Any()).Return(nil, errors.New("timeout"))

	comments, err := svc.ListComments(context.Background(), videoID)
	require.NoError(t, err)
	require.NotNil(t, comments)
	require.Empty(t, comments)
}

func TestCommentService_ListReplies(t *testing.T) {
	t.Parallel()
	f := newCommentService(t)
	svc, repo := f.svc, f.repo

	parentID := uuid.New()
	repo.EXPECT().ListReplies(gomock.Any(), gomock.Any(), parentID, gomock.Any()).Return([]*po.CommentWithAuthor{
		{Comment: po.Comment{ID: uuid.New(), ParentCommentID: &parentID, Content: "a"}},
		{Comment: po.Comment{ID: uuid.New(), ParentCommentID: &parentID, Content: "b"}},
	}, nil)

	replies, err := svc.ListReplies(context.Background(), parentID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	require.Equal(t, "a", replies[0].Content)

	_, err = svc.ListReplies(context.Background(), uuid.Nil)
	require.True(t, services.IsValidation(err))
}
