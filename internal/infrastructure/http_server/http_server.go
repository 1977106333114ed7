// Package httpserver 负责装配对外 HTTP API Server 及其中间件与过滤器。
package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/Kermitroid/outterspace2/internal/controllers"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/auth"
	configloader "github.com/Kermitroid/outterspace2/internal/infrastructure/configloader"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/objectstore"

	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// multipartSlack 为 multipart 边界与表单字段预留的额外字节。
const multipartSlack = 1 << 20

// NewHTTPServer 构造 Kratos HTTP Server。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪
// 2. recovery.Recovery() - Panic 恢复
// 3. auth.Server() - 解析访问令牌并核对会话，无效或已吊销的令牌按匿名处理
// 4. ratelimit.Server() - BBR 自适应限流
// 5. logging.Server() - 结构化访问日志
//
// 过滤器在路由之前执行：CORS、按 IP 限流、上传体积限制。
// 公开对象读取挂在 /storage/v1/object/public/ 下，不经过中间件链。
func NewHTTPServer(
	cfg configloader.ServerConfig,
	routes *controllers.Routes,
	issuer *auth.Issuer,
	cookies *auth.CookieStore,
	sessions auth.SessionValidator,
	store *objectstore.Store,
	logger log.Logger,
) *khttp.Server {
	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		auth.Server(issuer, cookies, sessions, logger),
		ratelimit.Server(),
		logging.Server(logger),
	}

	opts := []khttp.ServerOption{
		khttp.Middleware(mws...),
	}
	if filters := buildFilters(cfg, store); len(filters) > 0 {
		opts = append(opts, khttp.Filter(filters...))
	}
	if cfg.HTTP.Network != "" {
		opts = append(opts, khttp.Network(cfg.HTTP.Network))
	}
	if cfg.HTTP.Address != "" {
		opts = append(opts, khttp.Address(cfg.HTTP.Address))
	}
	if cfg.HTTP.Timeout > 0 {
		opts = append(opts, khttp.Timeout(cfg.HTTP.Timeout))
	}

	srv := khttp.NewServer(opts...)
	if store != nil {
		srv.HandlePrefix(objectstore.PublicPathPrefix, store.Router())
	}
	routes.Register(srv)
	return srv
}

func buildFilters(cfg configloader.ServerConfig, store *objectstore.Store) []khttp.FilterFunc {
	var filters []khttp.FilterFunc
	if len(cfg.CORSOrigins) > 0 {
		filters = append(filters, cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if cfg.RateLimitPerMinute > 0 {
		filters = append(filters, httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}
	if store != nil && store.MaxUploadSize() > 0 {
		filters = append(filters, limitUploadBody(controllers.APIPrefix+"/storage/", store.MaxUploadSize()+multipartSlack))
	}
	return filters
}

// limitUploadBody 限制上传路由的请求体大小，超出时读取返回错误。
func limitUploadBody(prefix string, limit int64) khttp.FilterFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, prefix) {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
