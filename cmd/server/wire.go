//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/Kermitroid/outterspace2/internal/controllers"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/auth"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/cache"
	configloader "github.com/Kermitroid/outterspace2/internal/infrastructure/configloader"
	grpcserver "github.com/Kermitroid/outterspace2/internal/infrastructure/grpc_server"
	httpserver "github.com/Kermitroid/outterspace2/internal/infrastructure/http_server"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/migrator"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/objectstore"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/services"
	outboxtasks "github.com/Kermitroid/outterspace2/internal/tasks/outbox"
	"github.com/Kermitroid/outterspace2/internal/tasks/viewcount"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// repositoryBindings 将 services 声明的仓储接口绑定到 sqlc 实现。
var repositoryBindings = wire.NewSet(
	wire.Bind(new(services.OutboxEnqueuer), new(*repositories.OutboxRepository)),
	wire.Bind(new(services.VideoRepository), new(*repositories.VideoRepository)),
	wire.Bind(new(services.VideoCounterRepository), new(*repositories.VideoRepository)),
	wire.Bind(new(services.VideoLookup), new(*repositories.VideoRepository)),
	wire.Bind(new(services.LibraryRepository), new(*repositories.VideoRepository)),
	wire.Bind(new(services.CategoryRepository), new(*repositories.CategoryRepository)),
	wire.Bind(new(services.CommentRepository), new(*repositories.CommentRepository)),
	wire.Bind(new(services.InteractionRepository), new(*repositories.InteractionRepository)),
	wire.Bind(new(services.HistoryRepository), new(*repositories.HistoryRepository)),
	wire.Bind(new(services.ProfileReader), new(*repositories.ProfileRepository)),
	wire.Bind(new(services.ProfileRepository), new(*repositories.ProfileRepository)),
	wire.Bind(new(services.AuthRepository), new(*repositories.AuthRepository)),
)

// infrastructureBindings 将缓存、令牌、对象存储与播放量队列绑定到 services 接口。
var infrastructureBindings = wire.NewSet(
	wire.Bind(new(services.CategoryCache), new(*cache.CategoryCache)),
	wire.Bind(new(services.TokenIssuer), new(*auth.Issuer)),
	wire.Bind(new(services.ObjectStore), new(*objectstore.Store)),
	wire.Bind(new(services.ViewNotifier), new(*viewcount.Notifier)),
	wire.Bind(new(controllers.SessionCookies), new(*auth.CookieStore)),
	wire.Bind(new(auth.SessionValidator), new(*repositories.AuthRepository)),
)

// serviceBindings 将控制层依赖的用例接口绑定到具体服务。
var serviceBindings = wire.NewSet(
	wire.Bind(new(services.VideoServiceInterface), new(*services.VideoService)),
	wire.Bind(new(services.CategoryServiceInterface), new(*services.CategoryService)),
	wire.Bind(new(services.CommentServiceInterface), new(*services.CommentService)),
	wire.Bind(new(services.InteractionServiceInterface), new(*services.InteractionService)),
	wire.Bind(new(services.HistoryServiceInterface), new(*services.HistoryService)),
	wire.Bind(new(services.LibraryServiceInterface), new(*services.LibraryService)),
	wire.Bind(new(services.SessionServiceInterface), new(*services.SessionService)),
	wire.Bind(new(services.StorageServiceInterface), new(*services.StorageService)),
)

// wireApp 构建整个 Kratos 应用，分阶段装配依赖。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析 YAML、环境变量并派生组件配置
//  2. 基础设施: gclog → observability → pgxpoolx → txmanager → migrator → redis → auth → objectstore
//  3. 业务层: repositories → services → controllers
//  4. 后台任务: outbox 发布器、播放量计数
//  5. 服务器: HTTP API 与运维 gRPC
//  6. 应用: newApp 创建 Kratos App
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet, // 配置加载与解析
		gclog.ProviderSet,        // 结构化日志
		obswire.ProviderSet,      // OpenTelemetry 追踪和指标
		pgxpoolx.ProviderSet,     // PostgreSQL 连接池
		txmanager.ProviderSet,    // 事务管理器
		migrator.ProvideStartup,  // 启动时迁移（auto_migrate）
		gcpubsub.ProviderSet,     // Pub/Sub 发布
		cache.ProviderSet,        // Redis 分类缓存
		auth.ProviderSet,         // 访问令牌与会话 Cookie
		objectstore.ProviderSet,  // 本地对象存储
		viewcount.ProviderSet,    // 播放量异步计数
		repositories.ProviderSet, // 数据访问层（sqlc）
		repositoryBindings,
		infrastructureBindings,
		services.ProviderSet, // 业务逻辑层
		serviceBindings,
		controllers.ProviderSet, // 控制器层（HTTP handlers）
		httpserver.ProviderSet,  // HTTP API Server
		grpcserver.ProviderSet,  // 运维 gRPC Server
		outboxtasks.ProvideRunner,
		newApp, // 组装 Kratos 应用
	))
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// 依赖注入详细文档
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 1. 配置加载层 (configloader.ProviderSet)                                │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (RuntimeConfig, error)
//       读取 .env 与 config.yaml，应用环境变量覆盖、默认值并校验。
//
//   - configloader.ProvideServerConfig / ProvideDatabaseConfig / ProvideMessagingConfig
//       从 RuntimeConfig 拆出各段配置。
//
//   - configloader.ProvideAuthConfig / ProvideCookieConfig
//       访问令牌签名参数与会话 Cookie 参数。
//
//   - configloader.ProvideCacheConfig / ProvideObjectStoreConfig / ProvideStorageConfig
//       Redis 分类缓存、本地对象存储根目录与可写 bucket。
//
//   - configloader.ProvideViewCounterConfig
//       播放量队列容量、worker 数与单次写入超时。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 2. 基础设施                                                              │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - migrator.ProvideStartup(context.Context, *pgxpool.Pool, migrator.Options, log.Logger)
//                             (migrator.Startup, error)
//       auto_migrate 打开时在 Server 构造前执行 goose 迁移。
//
//   - cache.NewClient(context.Context, cache.Config, log.Logger) (*redis.Client, func(), error)
//       未配置 URL 时返回 nil，分类缓存退化为直读数据库。
//
//   - auth.NewIssuer(auth.Config) (*auth.Issuer, error)
//   - auth.NewCookieStore(auth.CookieConfig) *auth.CookieStore
//
//   - objectstore.NewStore(objectstore.Config, log.Logger) (*objectstore.Store, error)
//
//   - viewcount.NewNotifier(viewcount.Config) *viewcount.Notifier
//   - viewcount.ProvideRunner(*viewcount.Notifier, *repositories.VideoRepository,
//                             viewcount.Config, log.Logger) (*viewcount.Runner, error)
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 3. 业务层 (repositories/services/controllers)                           │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - repositories.New*Repository(*pgxpool.Pool, log.Logger)
//       sqlc 风格的仓储，接口绑定见 repositoryBindings。
//
//   - services.New*Service(...)
//       用例层，依赖仓储接口、txmanager.Manager 与 OutboxEnqueuer。
//
//   - controllers.New*Handler(...) / controllers.NewRoutes(...) *controllers.Routes
//       HTTP handler 汇总，由 httpserver 挂载到 /api/v1。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 4. 服务器与应用                                                          │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - httpserver.NewHTTPServer(configloader.ServerConfig, *controllers.Routes, *auth.Issuer,
//                              *auth.CookieStore, auth.SessionValidator, *objectstore.Store,
//                              log.Logger) *khttp.Server
//       SessionValidator 由 AuthRepository 提供，已吊销的会话按匿名处理。
//   - grpcserver.NewGRPCServer(configloader.ServerConfig, *observability.MetricsConfig,
//                              log.Logger) *grpc.Server
//   - outboxtasks.ProvideRunner(...) *outboxpublisher.Runner
//       未配置 Pub/Sub topic 时返回 nil。
//
//   - newApp(*observability.Component, log.Logger, *khttp.Server, *grpc.Server,
//            configloader.ServiceInfo, *outboxpublisher.Runner, *viewcount.Runner,
//            migrator.Startup) *kratos.App
