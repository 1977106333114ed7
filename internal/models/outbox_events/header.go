// Package outboxevents 定义写入 outbox 的领域事件。本文件负责
// 派生随消息一起投递的 Pub/Sub attributes，订阅方据此过滤而无需解码 payload。
package outboxevents

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ContentTypeJSON 是 EncodePayload 产物的媒体类型。
const ContentTypeJSON = "application/json"

// BuildAttributes 汇总信封字段；payload 关联了视频时额外携带 video_id，trace 有效时携带 trace_id。
func BuildAttributes(event *DomainEvent, schemaVersion string, traceID string) map[string]string {
	if event == nil {
		return nil
	}
	if schemaVersion == "" {
		schemaVersion = SchemaVersionV1
	}
	attrs := map[string]string{
		"event_id":       event.EventID.String(),
		"event_type":     event.Kind.String(),
		"aggregate_id":   event.AggregateID.String(),
		"aggregate_type": event.AggregateType,
		"version":        strconv.FormatInt(event.Version, 10),
		"occurred_at":    event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"schema_version": schemaVersion,
		"content_type":   ContentTypeJSON,
	}
	if videoID := relatedVideoID(event.Payload); videoID != "" {
		attrs["video_id"] = videoID
	}
	if traceID != "" {
		attrs["trace_id"] = traceID
	}
	return attrs
}

func relatedVideoID(payload any) string {
	switch p := payload.(type) {
	case *VideoCreated:
		return p.VideoID.String()
	case *VideoInteraction:
		return p.VideoID.String()
	case *CommentAdded:
		return p.VideoID.String()
	default:
		return ""
	}
}

// TraceIDFromContext 提取 OTel Trace ID，若不存在返回空字符串。
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() || !spanCtx.HasTraceID() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// VersionFromTime 以 UTC 微秒作为聚合版本号。
func VersionFromTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMicro()
}
