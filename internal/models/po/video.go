// Package po 定义与 outterspace schema 表结构一一对应的持久化对象。
package po

import (
	"time"

	"github.com/google/uuid"
)

// SourceType 标识视频来源。
type SourceType string

const (
	// SourceTypeUserUpload 表示用户自行上传。
	SourceTypeUserUpload SourceType = "user_upload"
	// SourceTypeAggregated 表示从外部来源聚合。
	SourceTypeAggregated SourceType = "aggregated"
)

// Valid 判断来源类型是否受支持。
func (s SourceType) Valid() bool {
	return s == SourceTypeUserUpload || s == SourceTypeAggregated
}

// Video 表示 outterspace.videos 表的行。
type Video struct {
	ID                 uuid.UUID
	UserID             *uuid.UUID
	ProfileID          *uuid.UUID
	Title              string
	Description        *string
	VideoURL           string
	ThumbnailURL       *string
	DurationSeconds    *int32
	CategoryID         *uuid.UUID
	Tags               []string
	ViewsCount         int64
	LikesCount         int64
	IsFeatured         bool
	IsTrending         bool
	PublishedAt        *time.Time
	SourceType         SourceType
	OriginalSourceLink *string
	StoragePath        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VideoWithRelations 视频行及其关联的分类与作者档案，关联缺失时为 nil。
type VideoWithRelations struct {
	Video
	Category *Category
	Profile  *ProfileSummary
}

// ProfileSummary 是列表/详情关联展示所需的档案子集。
type ProfileSummary struct {
	ID               uuid.UUID
	Username         *string
	Name             *string
	AvatarURL        *string
	SubscribersCount int64
}
