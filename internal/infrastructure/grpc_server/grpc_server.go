// Package grpcserver 负责装配运维用 gRPC Server：健康检查、反射与 RPC 指标。
// 业务接口走 HTTP，本端口供编排系统探活与内部诊断使用。
package grpcserver

import (
	configloader "github.com/Kermitroid/outterspace2/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelgrpcfilters "go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc/filters"
	"go.opentelemetry.io/otel"
	stdgrpc "google.golang.org/grpc"
	"google.golang.org/grpc/stats"
)

// NewGRPCServer 构造运维 gRPC Server，Kratos 自动注册 grpc.health.v1 与反射服务。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪
// 2. recovery.Recovery() - Panic 恢复
// 3. ratelimit.Server() - 限流保护
// 4. logging.Server() - 结构化日志
//
// metricsCfg 为 nil 时默认采集 RPC 指标并过滤健康检查。
func NewGRPCServer(cfg configloader.ServerConfig, metricsCfg *observability.MetricsConfig, logger log.Logger) *grpc.Server {
	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	opts := []grpc.ServerOption{
		grpc.Middleware(
			obsTrace.Server(),
			recovery.Recovery(),
			ratelimit.Server(),
			logging.Server(logger),
		),
	}
	if metricsEnabled {
		opts = append(opts, grpc.Options(stdgrpc.StatsHandler(newServerHandler(includeHealth))))
	}
	listener := cfg.GRPC
	if listener.Network != "" {
		opts = append(opts, grpc.Network(listener.Network))
	}
	if listener.Address != "" {
		opts = append(opts, grpc.Address(listener.Address))
	}
	if listener.Timeout > 0 {
		opts = append(opts, grpc.Timeout(listener.Timeout))
	}
	return grpc.NewServer(opts...)
}

// newServerHandler 构造 OpenTelemetry StatsHandler，includeHealth 为 false 时过滤健康检查 RPC。
func newServerHandler(includeHealth bool) stats.Handler {
	opts := []otelgrpc.Option{
		otelgrpc.WithMeterProvider(otel.GetMeterProvider()),
	}
	if !includeHealth {
		opts = append(opts, otelgrpc.WithFilter(otelgrpcfilters.Not(otelgrpcfilters.HealthCheck())))
	}
	return otelgrpc.NewServerHandler(opts...)
}
