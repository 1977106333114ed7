// Package dto 定义 HTTP 请求与响应体，以及与业务输入之间的转换。
package dto

import (
	"fmt"
	"strings"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/services"

	"github.com/google/uuid"
)

// ListVideosQuery 是 GET /videos 的查询参数。
type ListVideosQuery struct {
	Category  string `json:"category"`
	UserID    string `json:"user_id"`
	Featured  bool   `json:"featured"`
	Trending  bool   `json:"trending"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Search    string `json:"search"`
	// IDs 为逗号分隔的视频 ID。
	IDs string `json:"ids"`
}

// ToFilter 转换为 services.VideoFilter，无法解析的 ID 返回错误。
func (q ListVideosQuery) ToFilter() (services.VideoFilter, error) {
	filter := services.VideoFilter{
		CategoryName: q.Category,
		IsFeatured:   q.Featured,
		IsTrending:   q.Trending,
		Limit:        q.Limit,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
		SearchTerm:   q.Search,
	}
	if raw := strings.TrimSpace(q.UserID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return services.VideoFilter{}, fmt.Errorf("invalid user_id: %w", err)
		}
		filter.UserID = &id
	}
	for _, raw := range strings.Split(q.IDs, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return services.VideoFilter{}, fmt.Errorf("invalid id %q: %w", raw, err)
		}
		filter.VideoIDs = append(filter.VideoIDs, id)
	}
	return filter, nil
}

// AddVideoRequest 是 POST /videos 的请求体。
type AddVideoRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	VideoURL           string `json:"video_url"`
	ThumbnailURL       string `json:"thumbnail_url"`
	Category           string `json:"category"`
	Tags               string `json:"tags"`
	DurationSeconds    *int32 `json:"duration_seconds"`
	PublishNow         bool   `json:"publish_now"`
	SourceType         string `json:"source_type"`
	SourceName         string `json:"source_name"`
	OriginalSourceLink string `json:"original_source_link"`
	StoragePath        string `json:"storage_path"`
}

// ToInput 转换为 services.AddVideoInput。
func (r AddVideoRequest) ToInput() services.AddVideoInput {
	return services.AddVideoInput{
		Title:              r.Title,
		Description:        r.Description,
		VideoURL:           r.VideoURL,
		ThumbnailURL:       r.ThumbnailURL,
		Category:           r.Category,
		Tags:               r.Tags,
		DurationSeconds:    r.DurationSeconds,
		PublishNow:         r.PublishNow,
		SourceType:         po.SourceType(strings.TrimSpace(r.SourceType)),
		SourceName:         r.SourceName,
		OriginalSourceLink: r.OriginalSourceLink,
		StoragePath:        r.StoragePath,
	}
}

// VideoListResponse 包装视频列表。
type VideoListResponse struct {
	Videos []*vo.Video `json:"videos"`
}

// NewVideoListResponse 保证 videos 字段序列化为数组。
func NewVideoListResponse(videos []*vo.Video) VideoListResponse {
	if videos == nil {
		videos = []*vo.Video{}
	}
	return VideoListResponse{Videos: videos}
}

// CategoryListResponse 包装分类列表。
type CategoryListResponse struct {
	Categories []vo.Category `json:"categories"`
}
