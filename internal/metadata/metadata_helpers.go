// Package metadata 提供 HandlerMetadata 在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"

	"github.com/google/uuid"
)

// HandlerMetadata 描述从访问令牌与请求头解析出的调用上下文。
type HandlerMetadata struct {
	UserID         uuid.UUID
	SessionID      uuid.UUID
	Role           string
	RequestID      string
	IdempotencyKey string
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m == HandlerMetadata{}
}

// Authenticated 判断请求是否携带了有效访问令牌。
func (m HandlerMetadata) Authenticated() bool {
	return m.UserID != uuid.Nil
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}
