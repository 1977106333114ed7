package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	outboxevents "github.com/Kermitroid/outterspace2/internal/models/outbox_events"
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoRepository 抽象视频目录仓储。
type VideoRepository interface {
	ListPublished(ctx context.Context, sess txmanager.Session, query repositories.ListVideosQuery) ([]*po.VideoWithRelations, error)
	GetPublished(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.VideoWithRelations, error)
	GetDetail(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.VideoWithRelations, error)
	Create(ctx context.Context, sess txmanager.Session, input mappers.NewVideoInput) (uuid.UUID, error)
}

// ProfileReader 读取档案，用于角色校验。
type ProfileReader interface {
	Get(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (*po.Profile, error)
}

// ViewNotifier 接收播放量通知，实现不得阻塞。
type ViewNotifier interface {
	Notify(videoID uuid.UUID) bool
}

const placeholderThumbnailBase = "https://source.unsplash.com/640x360/?"

// VideoService 实现视频目录的查询与新增。
type VideoService struct {
	eventWriter
	videos     VideoRepository
	categories *CategoryService
	comments   CommentRepository
	profiles   ProfileReader
	views      ViewNotifier
	txManager  txmanager.Manager
	log        *log.Helper
	now        func() time.Time
}

// NewVideoService 构造 VideoService。
func NewVideoService(
	videos VideoRepository,
	categories *CategoryService,
	comments CommentRepository,
	profiles ProfileReader,
	views ViewNotifier,
	outbox OutboxEnqueuer,
	tx txmanager.Manager,
	logger log.Logger,
) *VideoService {
	return &VideoService{
		eventWriter: newEventWriter(outbox, "video"),
		videos:      videos,
		categories:  categories,
		comments:    comments,
		profiles:    profiles,
		views:       views,
		txManager:   tx,
		log:         log.NewHelper(logger),
		now:         time.Now,
	}
}

// ListVideos 返回已发布视频；任何存储错误只记录日志并返回空列表。
func (s *VideoService) ListVideos(ctx context.Context, filter VideoFilter) []*vo.Video {
	query := repositories.ListVideosQuery{
		UserID:       filter.UserID,
		FeaturedOnly: filter.IsFeatured,
		TrendingOnly: filter.IsTrending,
		SearchTerm:   strings.TrimSpace(filter.SearchTerm),
		VideoIDs:     filter.VideoIDs,
		SortBy:       filter.SortBy,
		Ascending:    strings.EqualFold(strings.TrimSpace(filter.SortOrder), "asc"),
		Limit:        filter.Limit,
	}

	if name := strings.TrimSpace(filter.CategoryName); name != "" && !strings.EqualFold(name, vo.AllCategoryName) {
		category, err := s.categories.FindCategory(ctx, nil, name)
		if err != nil {
			if !isCategoryNotFound(err) {
				s.log.WithContext(ctx).Errorf("resolve category failed: name=%s err=%v", name, err)
			}
			return []*vo.Video{}
		}
		query.CategoryID = &category.ID
	}

	rows, err := s.videos.ListPublished(ctx, nil, query)
	if err != nil {
		s.log.WithContext(ctx).Errorf("list videos failed: category=%s search=%q err=%v", filter.CategoryName, query.SearchTerm, err)
		return []*vo.Video{}
	}
	return vo.NormalizeVideos(rows)
}

// GetVideoByID 返回已发布视频及其顶层评论，并异步通知播放量加一。
func (s *VideoService) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*vo.VideoDetail, error) {
	if videoID == uuid.Nil {
		return nil, NotFound("video not found")
	}

	var (
		row      *po.VideoWithRelations
		comments []*po.CommentWithAuthor
	)
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var err error
		row, err = s.videos.GetPublished(txCtx, sess, videoID)
		if err != nil {
			return err
		}
		comments, err = s.comments.ListTopLevel(txCtx, sess, videoID, repositories.DefaultCommentListLimit)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, NotFound("video %s not found", videoID)
		}
		s.log.WithContext(ctx).Errorf("get video failed: id=%s err=%v", videoID, err)
		return nil, storeFailure("get video", err)
	}

	if s.views != nil && !s.views.Notify(videoID) {
		s.log.WithContext(ctx).Debugf("view notification dropped: id=%s", videoID)
	}

	return &vo.VideoDetail{
		Video:    *vo.NormalizeVideo(row),
		Comments: vo.NewComments(comments),
	}, nil
}

// AddVideo 新增视频并返回回读后的规范化记录。
func (s *VideoService) AddVideo(ctx context.Context, input AddVideoInput, userID uuid.UUID) (*vo.Video, error) {
	if userID == uuid.Nil {
		return nil, AuthenticationRequired("you must be logged in to add a video")
	}
	title := strings.TrimSpace(input.Title)
	videoURL := strings.TrimSpace(input.VideoURL)
	if title == "" || videoURL == "" {
		return nil, ValidationError("title and video URL are required")
	}
	source := input.SourceType
	if source == "" {
		source = po.SourceTypeUserUpload
	}
	if !source.Valid() {
		return nil, ValidationError("unsupported source type %q", input.SourceType)
	}

	now := s.now().UTC()
	newVideo := mappers.NewVideoInput{
		UserID:             &userID,
		ProfileID:          &userID,
		Title:              title,
		Description:        optionalString(input.Description),
		VideoURL:           videoURL,
		ThumbnailURL:       optionalString(input.ThumbnailURL),
		DurationSeconds:    input.DurationSeconds,
		Tags:               ParseTags(input.Tags),
		SourceType:         source,
		OriginalSourceLink: optionalString(input.OriginalSourceLink),
		StoragePath:        optionalString(input.StoragePath),
	}
	if input.PublishNow {
		newVideo.PublishedAt = &now
	}

	if source == po.SourceTypeAggregated {
		sourceName := strings.TrimSpace(input.SourceName)
		if sourceName == "" {
			return nil, ValidationError("source name is required for aggregated videos")
		}
		if newVideo.OriginalSourceLink == nil {
			newVideo.OriginalSourceLink = &sourceName
		}
		if newVideo.ThumbnailURL == nil {
			placeholder := PlaceholderThumbnailURL(title)
			newVideo.ThumbnailURL = &placeholder
		}
		// 聚合视频以来源作为频道展示，不关联录入者档案。
		newVideo.ProfileID = nil
	}

	var (
		created         *po.VideoWithRelations
		categoryCreated bool
	)
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		if source == po.SourceTypeAggregated {
			if err := s.requireAdmin(txCtx, sess, userID); err != nil {
				return err
			}
		}
		if name := strings.TrimSpace(input.Category); name != "" && !strings.EqualFold(name, vo.AllCategoryName) {
			category, isNew, err := s.categories.EnsureCategory(txCtx, sess, name)
			if err != nil {
				return err
			}
			newVideo.CategoryID = &category.ID
			categoryCreated = isNew
		}

		id, err := s.videos.Create(txCtx, sess, newVideo)
		if err != nil {
			return err
		}
		created, err = s.videos.GetDetail(txCtx, sess, id)
		if err != nil {
			return err
		}
		event, err := outboxevents.NewVideoCreatedEvent(&created.Video, uuid.New(), now)
		if err != nil {
			return err
		}
		return s.enqueueEvent(txCtx, sess, event)
	})
	if err != nil {
		s.log.WithContext(ctx).Errorf("add video failed: user=%s title=%q err=%v", userID, title, err)
		return nil, storeFailure("add video", err)
	}
	if categoryCreated {
		s.categories.InvalidateCache(ctx)
	}

	s.log.WithContext(ctx).Infof("video added: id=%s user=%s source=%s", created.ID, userID, source)
	return vo.NormalizeVideo(created), nil
}

func (s *VideoService) requireAdmin(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error {
	profile, err := s.profiles.Get(ctx, sess, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return PermissionDenied("only admins can add aggregated videos")
		}
		return err
	}
	if profile.Role != po.RoleAdmin {
		return PermissionDenied("only admins can add aggregated videos")
	}
	return nil
}

// ParseTags 按逗号切分标签，去除首尾空白并丢弃空项。
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// PlaceholderThumbnailURL 为缺少缩略图的聚合视频生成基于标题的占位图地址。
func PlaceholderThumbnailURL(title string) string {
	return placeholderThumbnailBase + strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
