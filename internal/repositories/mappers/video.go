package mappers

import (
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/google/uuid"
)

// NewVideoInput 是仓储层写入视频所需的字段，指针字段为 nil 时写 NULL。
type NewVideoInput struct {
	UserID             *uuid.UUID
	ProfileID          *uuid.UUID
	Title              string
	Description        *string
	VideoURL           string
	ThumbnailURL       *string
	DurationSeconds    *int32
	CategoryID         *uuid.UUID
	Tags               []string
	PublishedAt        *time.Time
	SourceType         po.SourceType
	OriginalSourceLink *string
	StoragePath        *string
}

// BuildInsertVideoParams 将写入输入转换为 spacedb.InsertVideoParams，未指定来源时按用户上传处理。
func BuildInsertVideoParams(in NewVideoInput) spacedb.InsertVideoParams {
	source := in.SourceType
	if !source.Valid() {
		source = po.SourceTypeUserUpload
	}
	return spacedb.InsertVideoParams{
		UserID:             ToPgUUID(in.UserID),
		ProfileID:          ToPgUUID(in.ProfileID),
		Title:              in.Title,
		Description:        ToPgText(in.Description),
		VideoUrl:           in.VideoURL,
		ThumbnailUrl:       ToPgText(in.ThumbnailURL),
		DurationSeconds:    ToPgInt4(in.DurationSeconds),
		CategoryID:         ToPgUUID(in.CategoryID),
		Tags:               in.Tags,
		PublishedAt:        ToPgTimestamptzPtr(in.PublishedAt),
		SourceType:         string(source),
		OriginalSourceLink: ToPgText(in.OriginalSourceLink),
		StoragePath:        ToPgText(in.StoragePath),
	}
}

// VideoFromRow 转换 videos 行。
func VideoFromRow(row spacedb.OutterspaceVideo) po.Video {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}
	return po.Video{
		ID:                 row.ID,
		UserID:             uuidPtr(row.UserID),
		ProfileID:          uuidPtr(row.ProfileID),
		Title:              row.Title,
		Description:        textPtr(row.Description),
		VideoURL:           row.VideoUrl,
		ThumbnailURL:       textPtr(row.ThumbnailUrl),
		DurationSeconds:    int4Ptr(row.DurationSeconds),
		CategoryID:         uuidPtr(row.CategoryID),
		Tags:               tags,
		ViewsCount:         row.ViewsCount,
		LikesCount:         row.LikesCount,
		IsFeatured:         row.IsFeatured,
		IsTrending:         row.IsTrending,
		PublishedAt:        timestampPtr(row.PublishedAt),
		SourceType:         po.SourceType(row.SourceType),
		OriginalSourceLink: textPtr(row.OriginalSourceLink),
		StoragePath:        textPtr(row.StoragePath),
		CreatedAt:          mustTimestamp(row.CreatedAt),
		UpdatedAt:          mustTimestamp(row.UpdatedAt),
	}
}

// VideoWithRelationsFromRow 转换带关联的视频行；左连接未命中时关联为 nil。
func VideoWithRelationsFromRow(row spacedb.VideoDetailRow) *po.VideoWithRelations {
	out := &po.VideoWithRelations{Video: VideoFromRow(row.OutterspaceVideo)}
	if row.CategoryRefID.Valid {
		out.Category = &po.Category{
			ID:   uuid.UUID(row.CategoryRefID.Bytes),
			Name: row.CategoryName.String,
		}
	}
	if row.ProfileRefID.Valid {
		out.Profile = &po.ProfileSummary{
			ID:               uuid.UUID(row.ProfileRefID.Bytes),
			Username:         textPtr(row.ProfileUsername),
			Name:             textPtr(row.ProfileName),
			AvatarURL:        textPtr(row.ProfileAvatarUrl),
			SubscribersCount: row.ProfileSubscribersCount.Int64,
		}
	}
	return out
}

// VideosWithRelationsFromRows 批量转换。
func VideosWithRelationsFromRows(rows []spacedb.VideoDetailRow) []*po.VideoWithRelations {
	out := make([]*po.VideoWithRelations, 0, len(rows))
	for _, row := range rows {
		out = append(out, VideoWithRelationsFromRow(row))
	}
	return out
}

// CategoryFromRow 转换分类行。
func CategoryFromRow(row spacedb.OutterspaceCategory) po.Category {
	return po.Category{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: mustTimestamp(row.CreatedAt),
	}
}

// HistoryEntryFromRow 转换观看历史行。
func HistoryEntryFromRow(row spacedb.OutterspaceVideoHistory) po.HistoryEntry {
	return po.HistoryEntry{
		UserID:    row.UserID,
		VideoID:   row.VideoID,
		WatchedAt: mustTimestamp(row.WatchedAt),
	}
}
