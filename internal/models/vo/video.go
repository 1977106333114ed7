// Package vo 定义视图对象（View Objects），由 Service 层返回，经控制器转换为 HTTP 响应。
package vo

import (
	"fmt"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
)

// 展示层使用的占位文本。
const (
	NotAvailable          = "N/A"
	UnknownChannelName    = "Unknown Channel"
	ExternalSourceChannel = "External Source"
	UploadedAtLayout      = "Jan 2, 2006"
)

// Channel 是视频归属方的展示信息；聚合或无主视频 ID 为 nil。
type Channel struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Name        string     `json:"name"`
	Avatar      string     `json:"avatar"`
	Subscribers int64      `json:"subscribers"`
}

// Video 是归一化后的视频展示记录。
type Video struct {
	ID                 uuid.UUID     `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	VideoURL           string        `json:"video_url"`
	ThumbnailURL       string        `json:"thumbnail_url"`
	DurationSeconds    *int32        `json:"duration_seconds,omitempty"`
	Duration           string        `json:"duration"`
	Category           string        `json:"category"`
	CategoryID         *uuid.UUID    `json:"category_id,omitempty"`
	Channel            Channel       `json:"channel"`
	UserID             *uuid.UUID    `json:"user_id,omitempty"`
	Views              int64         `json:"views"`
	Likes              int64         `json:"likes"`
	PublishedAt        *time.Time    `json:"published_at,omitempty"`
	UploadedAt         string        `json:"uploaded_at"`
	Featured           bool          `json:"featured"`
	Trending           bool          `json:"trending"`
	Tags               []string      `json:"tags"`
	SourceType         po.SourceType `json:"source_type"`
	OriginalSourceLink *string       `json:"original_source_link,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// VideoDetail 是详情页视图，附带顶层评论。
type VideoDetail struct {
	Video
	Comments []*Comment `json:"comments"`
}

// NormalizeVideo 将带关联的视频行映射为展示记录，nil 输入返回 nil。
// 结果只依赖输入，重复调用得到相同记录。
func NormalizeVideo(row *po.VideoWithRelations) *Video {
	if row == nil {
		return nil
	}
	out := &Video{
		ID:                 row.ID,
		Title:              row.Title,
		Description:        deref(row.Description),
		VideoURL:           row.VideoURL,
		ThumbnailURL:       deref(row.ThumbnailURL),
		DurationSeconds:    row.DurationSeconds,
		Duration:           FormatDuration(row.DurationSeconds),
		CategoryID:         row.CategoryID,
		Channel:            channelOf(row),
		UserID:             row.UserID,
		Views:              row.ViewsCount,
		Likes:              row.LikesCount,
		PublishedAt:        row.PublishedAt,
		UploadedAt:         FormatUploadedAt(row.PublishedAt),
		Featured:           row.IsFeatured,
		Trending:           row.IsTrending,
		Tags:               append([]string{}, row.Tags...),
		SourceType:         row.SourceType,
		OriginalSourceLink: row.OriginalSourceLink,
		CreatedAt:          row.CreatedAt,
	}
	if row.Category != nil {
		out.Category = row.Category.Name
	}
	return out
}

// NormalizeVideos 批量归一化，跳过 nil。
func NormalizeVideos(rows []*po.VideoWithRelations) []*Video {
	out := make([]*Video, 0, len(rows))
	for _, row := range rows {
		if v := NormalizeVideo(row); v != nil {
			out = append(out, v)
		}
	}
	return out
}

func channelOf(row *po.VideoWithRelations) Channel {
	if p := row.Profile; p != nil {
		id := p.ID
		return Channel{
			ID:          &id,
			Name:        firstNonEmpty(deref(p.Name), deref(p.Username)),
			Avatar:      deref(p.AvatarURL),
			Subscribers: p.SubscribersCount,
		}
	}
	if row.SourceType == po.SourceTypeAggregated {
		return Channel{Name: firstNonEmpty(deref(row.OriginalSourceLink), ExternalSourceChannel)}
	}
	return Channel{Name: UnknownChannelName}
}

// FormatDuration 将秒数格式化为 m:ss；nil、0 或负数返回 "N/A"。
func FormatDuration(seconds *int32) string {
	if seconds == nil || *seconds <= 0 {
		return NotAvailable
	}
	s := *seconds
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// FormatUploadedAt 以 UTC 输出 "Jan 2, 2006"；nil 返回 "N/A"。
func FormatUploadedAt(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return t.UTC().Format(UploadedAtLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
