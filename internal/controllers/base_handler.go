package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Kermitroid/outterspace2/internal/infrastructure/auth"
	"github.com/Kermitroid/outterspace2/internal/metadata"
	"github.com/Kermitroid/outterspace2/internal/services"

	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// HandlerType 表示 Handler 的语义类别，用于选择超时策略。
type HandlerType int

const (
	// HandlerTypeDefault 表示未显式区分的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeCommand 表示写操作。
	HandlerTypeCommand
	// HandlerTypeQuery 表示只读查询。
	HandlerTypeQuery
)

// HandlerTimeouts 聚合不同类型 Handler 的超时策略。
type HandlerTimeouts struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

const (
	fallbackDefaultTimeout = 5 * time.Second
	fallbackQueryTimeout   = 3 * time.Second
	headerRequestID        = "X-Request-Id"
	headerIdempotencyKey   = "Idempotency-Key"
)

// BaseHandler 提供公共的超时、身份解析与中间件调用能力，供具体 Handler 内嵌复用。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造基础 Handler，并为缺省值填充合理的回退策略。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Default <= 0 {
		if timeouts.Command > 0 {
			timeouts.Default = timeouts.Command
		} else if timeouts.Query > 0 {
			timeouts.Default = timeouts.Query
		} else {
			timeouts.Default = fallbackDefaultTimeout
		}
	}
	if timeouts.Command <= 0 {
		timeouts.Command = timeouts.Default
	}
	if timeouts.Query <= 0 {
		if timeouts.Default > 0 {
			timeouts.Query = timeouts.Default
		} else {
			timeouts.Query = fallbackQueryTimeout
		}
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 根据 Handler 类型包装上下文，返回绑定超时的新 Context 与取消函数。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	var timeout time.Duration
	switch kind {
	case HandlerTypeCommand:
		timeout = h.timeouts.Command
	case HandlerTypeQuery:
		timeout = h.timeouts.Query
	default:
		timeout = h.timeouts.Default
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractMetadata 合并访问令牌中的身份与请求头中的追踪信息。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) metadata.HandlerMetadata {
	var meta metadata.HandlerMetadata
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		if userID, err := claims.UserID(); err == nil {
			meta.UserID = userID
			meta.SessionID = claims.Session()
			meta.Role = string(claims.Role)
		}
	}
	if tr, ok := transport.FromServerContext(ctx); ok {
		meta.RequestID = strings.TrimSpace(tr.RequestHeader().Get(headerRequestID))
		meta.IdempotencyKey = strings.TrimSpace(tr.RequestHeader().Get(headerIdempotencyKey))
	}
	return meta
}

// InjectHandlerMetadata 将解析结果注入到 Context，供后续层访问。
func InjectHandlerMetadata(ctx context.Context, meta metadata.HandlerMetadata) context.Context {
	return metadata.Inject(ctx, meta)
}

// HandlerMetadataFromContext 读取上游注入的 HandlerMetadata。
func HandlerMetadataFromContext(ctx context.Context) (metadata.HandlerMetadata, bool) {
	return metadata.FromContext(ctx)
}

// IdentityFromContext 返回调用方身份，未登录时为零值。
func IdentityFromContext(ctx context.Context) services.Identity {
	meta, ok := metadata.FromContext(ctx)
	if !ok {
		return services.Identity{}
	}
	return services.Identity{UserID: meta.UserID, SessionID: meta.SessionID}
}

// invoke 设置 operation 后经 Server 中间件链执行 fn，并以 status 写出结果。
// fn 返回 nil 结果时响应 204。
func (h *BaseHandler) invoke(ctx khttp.Context, operation string, kind HandlerType, status int, req any, fn func(context.Context, any) (any, error)) error {
	khttp.SetOperation(ctx, operation)
	handler := ctx.Middleware(func(mwCtx context.Context, in any) (any, error) {
		meta := h.ExtractMetadata(mwCtx)
		timeoutCtx, cancel := h.WithTimeout(mwCtx, kind)
		defer cancel()
		return fn(InjectHandlerMetadata(timeoutCtx, meta), in)
	})
	out, err := handler(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		ctx.Response().WriteHeader(http.StatusNoContent)
		return nil
	}
	return ctx.Result(status, out)
}

func pathUUID(ctx khttp.Context, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(ctx.Vars().Get(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, services.ValidationError("invalid %s %q", name, raw)
	}
	return id, nil
}
