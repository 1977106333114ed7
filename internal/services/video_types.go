package services

import (
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
)

// VideoFilter 描述视频列表的筛选条件，零值表示全部已发布视频按创建时间倒序。
type VideoFilter struct {
	// CategoryName 精确匹配分类名，"all"（不区分大小写）视为不过滤。
	CategoryName string
	UserID       *uuid.UUID
	IsFeatured   bool
	IsTrending   bool
	// Limit 默认 50，上限 100。
	Limit int
	// SortBy 仅接受白名单列，未知值回退到默认排序。
	SortBy string
	// SortOrder 仅 "asc" 为升序。
	SortOrder  string
	SearchTerm string
	VideoIDs   []uuid.UUID
}

// AddVideoInput 描述新增视频的输入。
type AddVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	// Category 为分类名，不存在时自动创建。
	Category string
	// Tags 为逗号分隔的标签。
	Tags            string
	DurationSeconds *int32
	PublishNow      bool
	SourceType      po.SourceType
	// SourceName 仅聚合视频需要，作为原始链接的回退值。
	SourceName         string
	OriginalSourceLink string
	StoragePath        string
}

// AddCommentInput 描述新增评论的输入。
type AddCommentInput struct {
	VideoID         uuid.UUID
	UserID          uuid.UUID
	ParentCommentID *uuid.UUID
	Content         string
}

// InteractionState 描述用户对单个视频的点赞与收藏状态。
type InteractionState struct {
	Liked bool `json:"liked"`
	Saved bool `json:"saved"`
}
