// Package repositories 实现数据访问层，封装 spacedb 查询方法。
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrVideoNotFound 表示请求的视频不存在或尚未发布。
var ErrVideoNotFound = errors.New("video not found")

// 列表条数的默认值与上限。
const (
	DefaultVideoListLimit = 50
	MaxVideoListLimit     = 100
)

var videoSortColumns = map[string]spacedb.VideoOrder{
	"created_at":       spacedb.VideoOrderCreatedAt,
	"published_at":     spacedb.VideoOrderPublishedAt,
	"views_count":      spacedb.VideoOrderViewsCount,
	"likes_count":      spacedb.VideoOrderLikesCount,
	"title":            spacedb.VideoOrderTitle,
	"duration_seconds": spacedb.VideoOrderDurationSeconds,
}

// VideoRepository 提供视频相关的持久化访问能力。
type VideoRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewVideoRepository 构造 VideoRepository 实例（供 Wire 注入使用）。
func NewVideoRepository(db *pgxpool.Pool, logger log.Logger) *VideoRepository {
	return &VideoRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// ListVideosQuery 是已解析的列表条件，分类已由调用方换成 ID。
type ListVideosQuery struct {
	CategoryID   *uuid.UUID
	UserID       *uuid.UUID
	FeaturedOnly bool
	TrendingOnly bool
	SearchTerm   string
	VideoIDs     []uuid.UUID
	SortBy       string
	Ascending    bool
	Limit        int
}

// ClampVideoLimit 将 limit 规整到 (0, MaxVideoListLimit]。
func ClampVideoLimit(limit int) int32 {
	switch {
	case limit <= 0:
		return DefaultVideoListLimit
	case limit > MaxVideoListLimit:
		return MaxVideoListLimit
	default:
		return int32(limit)
	}
}

// EscapeLikePattern 转义 LIKE 通配符。
func EscapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

func (r *VideoRepository) q(sess txmanager.Session) *spacedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// ListPublished 返回已发布视频，排序列不在白名单内时退回 created_at 倒序。
func (r *VideoRepository) ListPublished(ctx context.Context, sess txmanager.Session, query ListVideosQuery) ([]*po.VideoWithRelations, error) {
	params := spacedb.ListPublishedVideosParams{
		CategoryID:   mappers.ToPgUUID(query.CategoryID),
		UserID:       mappers.ToPgUUID(query.UserID),
		FeaturedOnly: query.FeaturedOnly,
		TrendingOnly: query.TrendingOnly,
		VideoIds:     query.VideoIDs,
		OrderBy:      spacedb.VideoOrderCreatedAt,
		Limit:        ClampVideoLimit(query.Limit),
	}
	if column, ok := videoSortColumns[query.SortBy]; ok {
		params.OrderBy = column
		params.Ascending = query.Ascending
	}
	if term := strings.TrimSpace(query.SearchTerm); term != "" {
		params.SearchPattern = pgtype.Text{String: "%" + EscapeLikePattern(term) + "%", Valid: true}
		params.SearchTag = pgtype.Text{String: term, Valid: true}
	}

	rows, err := r.q(sess).ListPublishedVideos(ctx, params)
	if err != nil {
		r.log.WithContext(ctx).Errorf("list published videos failed: sort=%s err=%v", query.SortBy, err)
		return nil, fmt.Errorf("list published videos: %w", err)
	}
	return mappers.VideosWithRelationsFromRows(rows), nil
}

// GetPublished 返回已发布视频详情。
func (r *VideoRepository) GetPublished(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.VideoWithRelations, error) {
	row, err := r.q(sess).GetPublishedVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("get published video failed: video=%s err=%v", videoID, err)
		return nil, fmt.Errorf("get published video: %w", err)
	}
	return mappers.VideoWithRelationsFromRow(row), nil
}

// GetDetail 返回视频详情，不检查发布状态。
func (r *VideoRepository) GetDetail(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.VideoWithRelations, error) {
	row, err := r.q(sess).GetVideoDetail(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("get video detail failed: video=%s err=%v", videoID, err)
		return nil, fmt.Errorf("get video detail: %w", err)
	}
	return mappers.VideoWithRelationsFromRow(row), nil
}

// Exists 判断视频是否存在且已发布。
func (r *VideoRepository) Exists(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (bool, error) {
	ok, err := r.q(sess).VideoExists(ctx, videoID)
	if err != nil {
		return false, fmt.Errorf("video exists: %w", err)
	}
	return ok, nil
}

// Create 插入视频并返回新 ID。
func (r *VideoRepository) Create(ctx context.Context, sess txmanager.Session, input mappers.NewVideoInput) (uuid.UUID, error) {
	id, err := r.q(sess).InsertVideo(ctx, mappers.BuildInsertVideoParams(input))
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert video failed: title=%q err=%v", input.Title, err)
		return uuid.Nil, fmt.Errorf("insert video: %w", err)
	}
	return id, nil
}

// IncrementViewCount 浏览数加一。
func (r *VideoRepository) IncrementViewCount(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) error {
	affected, err := r.q(sess).IncrementViewCount(ctx, videoID)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	if affected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// AdjustLikesCount 按 delta 调整点赞数，结果不小于 0。
func (r *VideoRepository) AdjustLikesCount(ctx context.Context, sess txmanager.Session, videoID uuid.UUID, delta int64) (int64, error) {
	count, err := r.q(sess).AdjustLikesCount(ctx, spacedb.AdjustLikesCountParams{ID: videoID, Delta: delta})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("adjust likes count failed: video=%s delta=%d err=%v", videoID, delta, err)
		return 0, fmt.Errorf("adjust likes count: %w", err)
	}
	return count, nil
}

// ListLiked 返回用户点赞过的视频，按点赞时间倒序。
func (r *VideoRepository) ListLiked(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit int) ([]*po.VideoWithRelations, error) {
	rows, err := r.q(sess).ListLikedVideos(ctx, spacedb.ListUserVideosParams{UserID: userID, Limit: ClampVideoLimit(limit)})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list liked videos failed: user=%s err=%v", userID, err)
		return nil, fmt.Errorf("list liked videos: %w", err)
	}
	return mappers.VideosWithRelationsFromRows(rows), nil
}

// ListSaved 返回用户收藏的视频，按收藏时间倒序。
func (r *VideoRepository) ListSaved(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit int) ([]*po.VideoWithRelations, error) {
	rows, err := r.q(sess).ListSavedVideos(ctx, spacedb.ListUserVideosParams{UserID: userID, Limit: ClampVideoLimit(limit)})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list saved videos failed: user=%s err=%v", userID, err)
		return nil, fmt.Errorf("list saved videos: %w", err)
	}
	return mappers.VideosWithRelationsFromRows(rows), nil
}

// ListHistory 返回用户观看过的视频，按最近观看倒序。
func (r *VideoRepository) ListHistory(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit int) ([]*po.VideoWithRelations, error) {
	rows, err := r.q(sess).ListHistoryVideos(ctx, spacedb.ListUserVideosParams{UserID: userID, Limit: ClampVideoLimit(limit)})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list history videos failed: user=%s err=%v", userID, err)
		return nil, fmt.Errorf("list history videos: %w", err)
	}
	return mappers.VideosWithRelationsFromRows(rows), nil
}
