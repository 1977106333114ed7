package services

import (
	"context"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LibraryRepository 抽象按用户关系表读取视频。
type LibraryRepository interface {
	ListLiked(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit int) ([]*po.VideoWithRelations, error)
	ListSaved(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit int) ([]*po.VideoWithRelations, error)
	ListHistory(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit int) ([]*po.VideoWithRelations, error)
}

// Library 汇总用户主页的四个视频列表。
type Library struct {
	Liked    []*vo.Video `json:"liked"`
	Saved    []*vo.Video `json:"saved"`
	History  []*vo.Video `json:"history"`
	Uploaded []*vo.Video `json:"uploaded"`
}

// LibraryService 提供点赞、收藏、历史与上传列表，均为软失败。
type LibraryService struct {
	library LibraryRepository
	videos  VideoRepository
	log     *log.Helper
}

// NewLibraryService 构造 LibraryService。
func NewLibraryService(library LibraryRepository, videos VideoRepository, logger log.Logger) *LibraryService {
	return &LibraryService{
		library: library,
		videos:  videos,
		log:     log.NewHelper(logger),
	}
}

// LikedVideos 最近点赞在前。
func (s *LibraryService) LikedVideos(ctx context.Context, userID uuid.UUID) []*vo.Video {
	return s.load(ctx, "liked", userID, func() ([]*po.VideoWithRelations, error) {
		return s.library.ListLiked(ctx, nil, userID, repositories.MaxVideoListLimit)
	})
}

// SavedVideos 按 saved_at 倒序。
func (s *LibraryService) SavedVideos(ctx context.Context, userID uuid.UUID) []*vo.Video {
	return s.load(ctx, "saved", userID, func() ([]*po.VideoWithRelations, error) {
		return s.library.ListSaved(ctx, nil, userID, repositories.MaxVideoListLimit)
	})
}

// HistoryVideos 按 watched_at 倒序，最多 50 条。
func (s *LibraryService) HistoryVideos(ctx context.Context, userID uuid.UUID) []*vo.Video {
	return s.load(ctx, "history", userID, func() ([]*po.VideoWithRelations, error) {
		return s.library.ListHistory(ctx, nil, userID, repositories.DefaultVideoListLimit)
	})
}

// UploadedVideos 返回用户已发布的视频。
func (s *LibraryService) UploadedVideos(ctx context.Context, userID uuid.UUID) []*vo.Video {
	return s.load(ctx, "uploaded", userID, func() ([]*po.VideoWithRelations, error) {
		return s.videos.ListPublished(ctx, nil, repositories.ListVideosQuery{UserID: &userID})
	})
}

// Library 并发读取四个列表；单个列表失败时该列表为空，仅上下文取消会返回错误。
func (s *LibraryService) Library(ctx context.Context, userID uuid.UUID) (*Library, error) {
	if userID == uuid.Nil {
		return nil, AuthenticationRequired("you must be logged in to view your library")
	}
	lib := &Library{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lib.Liked = s.LikedVideos(gctx, userID)
		return gctx.Err()
	})
	g.Go(func() error {
		lib.Saved = s.SavedVideos(gctx, userID)
		return gctx.Err()
	})
	g.Go(func() error {
		lib.History = s.HistoryVideos(gctx, userID)
		return gctx.Err()
	})
	g.Go(func() error {
		lib.Uploaded = s.UploadedVideos(gctx, userID)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, storeFailure("load library", err)
	}
	return lib, nil
}

func (s *LibraryService) load(ctx context.Context, list string, userID uuid.UUID, fetch func() ([]*po.VideoWithRelations, error)) []*vo.Video {
	if userID == uuid.Nil {
		return []*vo.Video{}
	}
	rows, err := fetch()
	if err != nil {
		s.log.WithContext(ctx).Errorf("load %s videos failed: user=%s err=%v", list, userID, err)
		return []*vo.Video{}
	}
	return vo.NormalizeVideos(rows)
}
