package outboxevents

import (
	"fmt"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
)

// Kind 标识领域事件类型。
type Kind int

// 领域事件类型常量。
const (
	// KindUnknown 表示未识别的事件类型。
	KindUnknown Kind = iota
	// KindVideoCreated 视频入库。
	KindVideoCreated
	// KindVideoLiked 点赞。
	KindVideoLiked
	// KindVideoUnliked 取消点赞。
	KindVideoUnliked
	// KindVideoSaved 收藏。
	KindVideoSaved
	// KindVideoUnsaved 取消收藏。
	KindVideoUnsaved
	// KindCommentAdded 新增评论或回复。
	KindCommentAdded
)

func (k Kind) String() string {
	switch k {
	case KindVideoCreated:
		return "outterspace.video.created"
	case KindVideoLiked:
		return "outterspace.video.liked"
	case KindVideoUnliked:
		return "outterspace.video.unliked"
	case KindVideoSaved:
		return "outterspace.video.saved"
	case KindVideoUnsaved:
		return "outterspace.video.unsaved"
	case KindCommentAdded:
		return "outterspace.comment.added"
	default:
		return "outterspace.event.unknown"
	}
}

// DomainEvent 表示领域层生成的标准事件。
type DomainEvent struct {
	EventID       uuid.UUID
	Kind          Kind
	AggregateID   uuid.UUID
	AggregateType string
	Version       int64
	OccurredAt    time.Time
	Payload       any
}

// VideoCreated 描述视频入库事件载荷。
type VideoCreated struct {
	VideoID     uuid.UUID
	UserID      *uuid.UUID
	Title       string
	CategoryID  *uuid.UUID
	SourceType  po.SourceType
	PublishedAt *time.Time
}

// VideoInteraction 描述点赞/收藏切换后的状态。
type VideoInteraction struct {
	UserID     uuid.UUID
	VideoID    uuid.UUID
	Relation   po.RelationKind
	Active     bool
	LikesCount *int64
}

// CommentAdded 描述评论新增事件载荷。
type CommentAdded struct {
	CommentID       uuid.UUID
	VideoID         uuid.UUID
	UserID          *uuid.UUID
	ParentCommentID *uuid.UUID
}

const (
	// AggregateTypeVideo 视频聚合。
	AggregateTypeVideo = "video"
	// AggregateTypeComment 评论聚合。
	AggregateTypeComment = "comment"
	// SchemaVersionV1 描述事件载荷的当前 schema 版本。
	SchemaVersionV1 = "v1"
)

var (
	// ErrInvalidEventID 表示未提供合法的事件 ID。
	ErrInvalidEventID = fmt.Errorf("event builder: event id is required")
	// ErrUnknownEventKind 表示未识别的事件类型。
	ErrUnknownEventKind = fmt.Errorf("event builder: unknown event kind")
)
