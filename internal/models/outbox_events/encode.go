package outboxevents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// EncodePayload 将事件编码为 JSON：外层信封字段加 payload 对象。
// 使用 structpb 保证字段顺序与数值表示稳定。
func EncodePayload(evt *DomainEvent) ([]byte, error) {
	if evt == nil {
		return nil, fmt.Errorf("events: nil domain event")
	}
	payload, err := payloadFields(evt.Payload)
	if err != nil {
		return nil, err
	}
	envelope, err := structpb.NewStruct(map[string]any{
		"event_id":       evt.EventID.String(),
		"event_type":     evt.Kind.String(),
		"aggregate_id":   evt.AggregateID.String(),
		"aggregate_type": evt.AggregateType,
		"version":        fmt.Sprintf("%d", evt.Version),
		"occurred_at":    evt.OccurredAt.UTC().Format(time.RFC3339Nano),
		"payload":        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("events: build envelope: %w", err)
	}
	data, err := protojson.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("events: marshal envelope: %w", err)
	}
	return data, nil
}

func payloadFields(payload any) (map[string]any, error) {
	switch p := payload.(type) {
	case *VideoCreated:
		out := map[string]any{
			"video_id":    p.VideoID.String(),
			"title":       p.Title,
			"source_type": string(p.SourceType),
		}
		putUUID(out, "user_id", p.UserID)
		putUUID(out, "category_id", p.CategoryID)
		if p.PublishedAt != nil {
			out["published_at"] = p.PublishedAt.UTC().Format(time.RFC3339Nano)
		}
		return out, nil
	case *VideoInteraction:
		out := map[string]any{
			"user_id":  p.UserID.String(),
			"video_id": p.VideoID.String(),
			"relation": string(p.Relation),
			"active":   p.Active,
		}
		if p.LikesCount != nil {
			out["likes_count"] = float64(*p.LikesCount)
		}
		return out, nil
	case *CommentAdded:
		out := map[string]any{
			"comment_id": p.CommentID.String(),
			"video_id":   p.VideoID.String(),
		}
		putUUID(out, "user_id", p.UserID)
		putUUID(out, "parent_comment_id", p.ParentCommentID)
		return out, nil
	default:
		return nil, fmt.Errorf("events: unsupported payload type %T", payload)
	}
}

func putUUID(out map[string]any, key string, id *uuid.UUID) {
	if id != nil {
		out[key] = id.String()
	}
}
