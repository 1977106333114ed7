package po

import (
	"time"

	"github.com/google/uuid"
)

// RelationKind 区分 likes 与 saved_videos 两张关系表。
type RelationKind string

const (
	// RelationLike 对应 outterspace.likes。
	RelationLike RelationKind = "like"
	// RelationSave 对应 outterspace.saved_videos。
	RelationSave RelationKind = "save"
)

// HistoryEntry 表示 outterspace.video_history 表的行。
type HistoryEntry struct {
	UserID    uuid.UUID
	VideoID   uuid.UUID
	WatchedAt time.Time
}
