package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	jwtmw "github.com/go-kratos/kratos/v2/middleware/auth/jwt"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

var errSessionRevoked = errors.New("session revoked or expired")

const (
	authorizationKey = "Authorization"
	bearerPrefix     = "bearer "
)

// SessionValidator 判断令牌所属会话是否仍然有效（未吊销、未过期且属于该用户）。
type SessionValidator interface {
	SessionActive(ctx context.Context, userID, sessionID uuid.UUID) (bool, error)
}

// Server 解析 Authorization 头或会话 Cookie 中的访问令牌，校验通过后把 Claims 放入上下文。
// 缺少或无效的令牌按匿名请求处理，由业务层决定是否拒绝。
// sessions 非空时，会话已吊销或查询失败的令牌同样按匿名处理。
func Server(issuer *Issuer, cookies *CookieStore, sessions SessionValidator, logger log.Logger) middleware.Middleware {
	helper := log.NewHelper(logger)
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok || issuer == nil {
				return handler(ctx, req)
			}
			token := bearerToken(tr.RequestHeader().Get(authorizationKey))
			if token == "" && cookies != nil {
				if ht, ok := tr.(khttp.Transporter); ok {
					if saved := cookies.Load(ht.Request()); saved != nil {
						token = saved.AccessToken
					}
				}
			}
			if token == "" {
				return handler(ctx, req)
			}
			claims, err := issuer.Parse(token)
			if err != nil {
				helper.WithContext(ctx).Debugf("ignore access token: operation=%s err=%v", tr.Operation(), err)
				return handler(ctx, req)
			}
			if sessions != nil {
				if err := checkSession(ctx, sessions, claims); err != nil {
					helper.WithContext(ctx).Debugf("ignore access token: operation=%s err=%v", tr.Operation(), err)
					return handler(ctx, req)
				}
			}
			return handler(jwtmw.NewContext(ctx, claims), req)
		}
	}
}

func checkSession(ctx context.Context, sessions SessionValidator, claims *Claims) error {
	userID, err := claims.UserID()
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return fmt.Errorf("session id: %w", err)
	}
	active, err := sessions.SessionActive(ctx, userID, sessionID)
	if err != nil {
		return fmt.Errorf("session lookup: %w", err)
	}
	if !active {
		return errSessionRevoked
	}
	return nil
}

// ClaimsFromContext 读取 Server 中间件放入的 Claims。
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	raw, ok := jwtmw.FromContext(ctx)
	if !ok {
		return nil, false
	}
	claims, ok := raw.(*Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
