package spacedb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// VideoOrder 是 ListPublishedVideos 允许的排序列，值直接拼入 ORDER BY。
type VideoOrder string

const (
	VideoOrderCreatedAt       VideoOrder = "v.created_at"
	VideoOrderPublishedAt     VideoOrder = "v.published_at"
	VideoOrderViewsCount      VideoOrder = "v.views_count"
	VideoOrderLikesCount      VideoOrder = "v.likes_count"
	VideoOrderTitle           VideoOrder = "v.title"
	VideoOrderDurationSeconds VideoOrder = "v.duration_seconds"
)

func (o VideoOrder) valid() bool {
	switch o {
	case VideoOrderCreatedAt, VideoOrderPublishedAt, VideoOrderViewsCount,
		VideoOrderLikesCount, VideoOrderTitle, VideoOrderDurationSeconds:
		return true
	}
	return false
}

const videoDetailColumns = `
SELECT v.id, v.user_id, v.profile_id, v.title, v.description, v.video_url, v.thumbnail_url,
       v.duration_seconds, v.category_id, v.tags, v.views_count, v.likes_count, v.is_featured,
       v.is_trending, v.published_at, v.source_type, v.original_source_link, v.storage_path,
       v.created_at, v.updated_at,
       c.id AS category_ref_id, c.name AS category_name,
       p.id AS profile_ref_id, p.username AS profile_username, p.name AS profile_name,
       p.avatar_url AS profile_avatar_url, p.subscribers_count AS profile_subscribers_count
FROM outterspace.videos v
LEFT JOIN outterspace.categories c ON c.id = v.category_id
LEFT JOIN outterspace.profiles p ON p.id = v.profile_id
`

const publishedPredicate = `v.published_at IS NOT NULL AND v.published_at <= now()`

// VideoDetailRow 是视频与分类、作者档案左连接后的行。
type VideoDetailRow struct {
	OutterspaceVideo
	CategoryRefID           pgtype.UUID `json:"category_ref_id"`
	CategoryName            pgtype.Text `json:"category_name"`
	ProfileRefID            pgtype.UUID `json:"profile_ref_id"`
	ProfileUsername         pgtype.Text `json:"profile_username"`
	ProfileName             pgtype.Text `json:"profile_name"`
	ProfileAvatarUrl        pgtype.Text `json:"profile_avatar_url"`
	ProfileSubscribersCount pgtype.Int8 `json:"profile_subscribers_count"`
}

func scanVideoDetailRow(row pgx.Row, i *VideoDetailRow) error {
	return row.Scan(
		&i.ID,
		&i.UserID,
		&i.ProfileID,
		&i.Title,
		&i.Description,
		&i.VideoUrl,
		&i.ThumbnailUrl,
		&i.DurationSeconds,
		&i.CategoryID,
		&i.Tags,
		&i.ViewsCount,
		&i.LikesCount,
		&i.IsFeatured,
		&i.IsTrending,
		&i.PublishedAt,
		&i.SourceType,
		&i.OriginalSourceLink,
		&i.StoragePath,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CategoryRefID,
		&i.CategoryName,
		&i.ProfileRefID,
		&i.ProfileUsername,
		&i.ProfileName,
		&i.ProfileAvatarUrl,
		&i.ProfileSubscribersCount,
	)
}

func collectVideoDetailRows(rows pgx.Rows) ([]VideoDetailRow, error) {
	defer rows.Close()
	var items []VideoDetailRow
	for rows.Next() {
		var i VideoDetailRow
		if err := scanVideoDetailRow(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPublishedVideos = videoDetailColumns + `
WHERE ` + publishedPredicate + `
  AND ($1::uuid IS NULL OR v.category_id = $1::uuid)
  AND ($2::uuid IS NULL OR v.user_id = $2::uuid)
  AND (NOT $3::boolean OR v.is_featured)
  AND (NOT $4::boolean OR v.is_trending)
  AND ($5::text IS NULL
       OR v.title ILIKE $5::text
       OR v.description ILIKE $5::text
       OR EXISTS (SELECT 1 FROM unnest(v.tags) AS tag WHERE lower(tag) = lower($6::text)))
  AND ($7::uuid[] IS NULL OR v.id = ANY($7::uuid[]))
ORDER BY %s %s, v.id
LIMIT $8
`

type ListPublishedVideosParams struct {
	CategoryID    pgtype.UUID `json:"category_id"`
	UserID        pgtype.UUID `json:"user_id"`
	FeaturedOnly  bool        `json:"featured_only"`
	TrendingOnly  bool        `json:"trending_only"`
	SearchPattern pgtype.Text `json:"search_pattern"`
	SearchTag     pgtype.Text `json:"search_tag"`
	VideoIds      []uuid.UUID `json:"video_ids"`
	OrderBy       VideoOrder  `json:"order_by"`
	Ascending     bool        `json:"ascending"`
	Limit         int32       `json:"limit"`
}

func (q *Queries) ListPublishedVideos(ctx context.Context, arg ListPublishedVideosParams) ([]VideoDetailRow, error) {
	order := arg.OrderBy
	if !order.valid() {
		order = VideoOrderCreatedAt
	}
	direction := "DESC"
	if arg.Ascending {
		direction = "ASC"
	}
	var ids []uuid.UUID
	if len(arg.VideoIds) > 0 {
		ids = arg.VideoIds
	}
	rows, err := q.db.Query(ctx, fmt.Sprintf(listPublishedVideos, order, direction),
		arg.CategoryID,
		arg.UserID,
		arg.FeaturedOnly,
		arg.TrendingOnly,
		arg.SearchPattern,
		arg.SearchTag,
		ids,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collectVideoDetailRows(rows)
}

const getPublishedVideo = videoDetailColumns + `
WHERE v.id = $1 AND ` + publishedPredicate

func (q *Queries) GetPublishedVideo(ctx context.Context, id uuid.UUID) (VideoDetailRow, error) {
	row := q.db.QueryRow(ctx, getPublishedVideo, id)
	var i VideoDetailRow
	err := scanVideoDetailRow(row, &i)
	return i, err
}

const getVideoDetail = videoDetailColumns + `
WHERE v.id = $1`

// GetVideoDetail 不过滤发布时间，用于写入后回读。
func (q *Queries) GetVideoDetail(ctx context.Context, id uuid.UUID) (VideoDetailRow, error) {
	row := q.db.QueryRow(ctx, getVideoDetail, id)
	var i VideoDetailRow
	err := scanVideoDetailRow(row, &i)
	return i, err
}

const insertVideo = `
INSERT INTO outterspace.videos (
    user_id, profile_id, title, description, video_url, thumbnail_url, duration_seconds,
    category_id, tags, published_at, source_type, original_source_link, storage_path
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
RETURNING id
`

type InsertVideoParams struct {
	UserID             pgtype.UUID        `json:"user_id"`
	ProfileID          pgtype.UUID        `json:"profile_id"`
	Title              string             `json:"title"`
	Description        pgtype.Text        `json:"description"`
	VideoUrl           string             `json:"video_url"`
	ThumbnailUrl       pgtype.Text        `json:"thumbnail_url"`
	DurationSeconds    pgtype.Int4        `json:"duration_seconds"`
	CategoryID         pgtype.UUID        `json:"category_id"`
	Tags               []string           `json:"tags"`
	PublishedAt        pgtype.Timestamptz `json:"published_at"`
	SourceType         string             `json:"source_type"`
	OriginalSourceLink pgtype.Text        `json:"original_source_link"`
	StoragePath        pgtype.Text        `json:"storage_path"`
}

func (q *Queries) InsertVideo(ctx context.Context, arg InsertVideoParams) (uuid.UUID, error) {
	tags := arg.Tags
	if tags == nil {
		tags = []string{}
	}
	row := q.db.QueryRow(ctx, insertVideo,
		arg.UserID,
		arg.ProfileID,
		arg.Title,
		arg.Description,
		arg.VideoUrl,
		arg.ThumbnailUrl,
		arg.DurationSeconds,
		arg.CategoryID,
		tags,
		arg.PublishedAt,
		arg.SourceType,
		arg.OriginalSourceLink,
		arg.StoragePath,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const incrementViewCount = `
UPDATE outterspace.videos
SET views_count = views_count + 1
WHERE id = $1
`

func (q *Queries) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, incrementViewCount, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const adjustLikesCount = `
UPDATE outterspace.videos
SET likes_count = GREATEST(likes_count + $2, 0),
    updated_at = now()
WHERE id = $1
RETURNING likes_count
`

type AdjustLikesCountParams struct {
	ID    uuid.UUID `json:"id"`
	Delta int64     `json:"delta"`
}

func (q *Queries) AdjustLikesCount(ctx context.Context, arg AdjustLikesCountParams) (int64, error) {
	row := q.db.QueryRow(ctx, adjustLikesCount, arg.ID, arg.Delta)
	var likesCount int64
	err := row.Scan(&likesCount)
	return likesCount, err
}

const listLikedVideos = videoDetailColumns + `
JOIN outterspace.likes l ON l.video_id = v.id
WHERE l.user_id = $1 AND ` + publishedPredicate + `
ORDER BY l.created_at DESC, v.id
LIMIT $2
`

type ListUserVideosParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
}

func (q *Queries) ListLikedVideos(ctx context.Context, arg ListUserVideosParams) ([]VideoDetailRow, error) {
	rows, err := q.db.Query(ctx, listLikedVideos, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectVideoDetailRows(rows)
}

const listSavedVideos = videoDetailColumns + `
JOIN outterspace.saved_videos s ON s.video_id = v.id
WHERE s.user_id = $1 AND ` + publishedPredicate + `
ORDER BY s.saved_at DESC, v.id
LIMIT $2
`

func (q *Queries) ListSavedVideos(ctx context.Context, arg ListUserVideosParams) ([]VideoDetailRow, error) {
	rows, err := q.db.Query(ctx, listSavedVideos, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectVideoDetailRows(rows)
}

const listHistoryVideos = videoDetailColumns + `
JOIN outterspace.video_history h ON h.video_id = v.id
WHERE h.user_id = $1 AND ` + publishedPredicate + `
ORDER BY h.watched_at DESC, v.id
LIMIT $2
`

func (q *Queries) ListHistoryVideos(ctx context.Context, arg ListUserVideosParams) ([]VideoDetailRow, error) {
	rows, err := q.db.Query(ctx, listHistoryVideos, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectVideoDetailRows(rows)
}
