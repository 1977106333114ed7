package services

import (
	"context"

	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/google/uuid"
)

// VideoServiceInterface 抽象视频目录用例，便于控制器测试替换。
type VideoServiceInterface interface {
	ListVideos(ctx context.Context, filter VideoFilter) []*vo.Video
	GetVideoByID(ctx context.Context, videoID uuid.UUID) (*vo.VideoDetail, error)
	AddVideo(ctx context.Context, input AddVideoInput, userID uuid.UUID) (*vo.Video, error)
}

// CategoryServiceInterface 抽象分类列表。
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) []vo.Category
}

// CommentServiceInterface 抽象评论用例。
type CommentServiceInterface interface {
	AddComment(ctx context.Context, input AddCommentInput) (*vo.Comment, error)
	ListComments(ctx context.Context, videoID uuid.UUID) ([]*vo.Comment, error)
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*vo.Comment, error)
}

// InteractionServiceInterface 抽象点赞与收藏。
type InteractionServiceInterface interface {
	ToggleLike(ctx context.Context, userID, videoID uuid.UUID) (bool, error)
	ToggleSave(ctx context.Context, userID, videoID uuid.UUID) (bool, error)
	IsLiked(ctx context.Context, userID, videoID uuid.UUID) bool
	IsSaved(ctx context.Context, userID, videoID uuid.UUID) bool
	InteractionState(ctx context.Context, userID, videoID uuid.UUID) InteractionState
}

// HistoryServiceInterface 抽象观看历史。
type HistoryServiceInterface interface {
	RecordView(ctx context.Context, userID, videoID uuid.UUID) error
}

// LibraryServiceInterface 抽象用户视频库。
type LibraryServiceInterface interface {
	LikedVideos(ctx context.Context, userID uuid.UUID) []*vo.Video
	SavedVideos(ctx context.Context, userID uuid.UUID) []*vo.Video
	HistoryVideos(ctx context.Context, userID uuid.UUID) []*vo.Video
	UploadedVideos(ctx context.Context, userID uuid.UUID) []*vo.Video
	Library(ctx context.Context, userID uuid.UUID) (*Library, error)
}

// SessionServiceInterface 抽象登录状态。
type SessionServiceInterface interface {
	SignUp(ctx context.Context, input SignUpInput) (*vo.Session, error)
	SignIn(ctx context.Context, email, password string) (*vo.Session, error)
	Resume(ctx context.Context, identity Identity) (*vo.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*vo.Session, error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error
	UpdateProfile(ctx context.Context, identity Identity, patch vo.ProfilePatch) (*vo.Session, error)
}

// StorageServiceInterface 抽象文件上传。
type StorageServiceInterface interface {
	Upload(ctx context.Context, userID uuid.UUID, input UploadInput) (*StoredObject, error)
	PublicURL(bucket, objectPath string) string
}

var (
	_ VideoServiceInterface       = (*VideoService)(nil)
	_ CategoryServiceInterface    = (*CategoryService)(nil)
	_ CommentServiceInterface     = (*CommentService)(nil)
	_ InteractionServiceInterface = (*InteractionService)(nil)
	_ HistoryServiceInterface     = (*HistoryService)(nil)
	_ LibraryServiceInterface     = (*LibraryService)(nil)
	_ SessionServiceInterface     = (*SessionService)(nil)
	_ StorageServiceInterface     = (*StorageService)(nil)
)
