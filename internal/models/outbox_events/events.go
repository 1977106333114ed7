package outboxevents

import (
	"fmt"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
)

// NewVideoCreatedEvent 构造视频入库事件。
func NewVideoCreatedEvent(video *po.Video, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
	if video == nil {
		return nil, fmt.Errorf("video created event: video required")
	}
	if eventID == uuid.Nil {
		return nil, ErrInvalidEventID
	}
	occurredAt = occurredAt.UTC()
	return &DomainEvent{
		EventID:       eventID,
		Kind:          KindVideoCreated,
		AggregateID:   video.ID,
		AggregateType: AggregateTypeVideo,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload: &VideoCreated{
			VideoID:     video.ID,
			UserID:      video.UserID,
			Title:       video.Title,
			CategoryID:  video.CategoryID,
			SourceType:  video.SourceType,
			PublishedAt: video.PublishedAt,
		},
	}, nil
}

// InteractionKind 根据关系类型与切换后的状态得到事件类型。
func InteractionKind(relation po.RelationKind, active bool) Kind {
	switch {
	case relation == po.RelationLike && active:
		return KindVideoLiked
	case relation == po.RelationLike:
		return KindVideoUnliked
	case relation == po.RelationSave && active:
		return KindVideoSaved
	case relation == po.RelationSave:
		return KindVideoUnsaved
	default:
		return KindUnknown
	}
}

// NewVideoInteractionEvent 构造点赞/收藏切换事件，likesCount 仅点赞时携带。
func NewVideoInteractionEvent(relation po.RelationKind, active bool, userID, videoID uuid.UUID, likesCount *int64, occurredAt time.Time) (*DomainEvent, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("interaction event: user_id required")
	}
	if videoID == uuid.Nil {
		return nil, fmt.Errorf("interaction event: video_id required")
	}
	kind := InteractionKind(relation, active)
	if kind == KindUnknown {
		return nil, ErrUnknownEventKind
	}
	occurredAt = occurredAt.UTC()
	return &DomainEvent{
		EventID:       uuid.New(),
		Kind:          kind,
		AggregateID:   videoID,
		AggregateType: AggregateTypeVideo,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload: &VideoInteraction{
			UserID:     userID,
			VideoID:    videoID,
			Relation:   relation,
			Active:     active,
			LikesCount: likesCount,
		},
	}, nil
}

// NewCommentAddedEvent 构造评论新增事件。
func NewCommentAddedEvent(comment *po.Comment, occurredAt time.Time) (*DomainEvent, error) {
	if comment == nil {
		return nil, fmt.Errorf("comment event: comment required")
	}
	occurredAt = occurredAt.UTC()
	return &DomainEvent{
		EventID:       uuid.New(),
		Kind:          KindCommentAdded,
		AggregateID:   comment.ID,
		AggregateType: AggregateTypeComment,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload: &CommentAdded{
			CommentID:       comment.ID,
			VideoID:         comment.VideoID,
			UserID:          comment.UserID,
			ParentCommentID: comment.ParentCommentID,
		},
	}, nil
}
