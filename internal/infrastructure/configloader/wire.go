package configloader

import (
	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	txconfig "github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/Kermitroid/outterspace2/internal/controllers"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/auth"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/cache"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/migrator"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/objectstore"
	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/tasks/viewcount"
)

// ProviderSet 暴露配置加载相关的依赖注入入口。
var ProviderSet = wire.NewSet(
	LoadRuntimeConfig,
	ProvideServiceInfo,
	ProvideLoggerConfig,
	ProvideObservabilityConfig,
	ProvideObservabilityInfo,
	ProvideServerConfig,
	ProvideDatabaseConfig,
	ProvidePgxConfig,
	ProvideTxConfig,
	ProvideMigrateOptions,
	ProvideMessagingConfig,
	ProvidePubSubConfig,
	ProvidePubSubDependencies,
	ProvideOutboxConfig,
	ProvideHandlerTimeouts,
	ProvideAuthConfig,
	ProvideCookieConfig,
	ProvideCacheConfig,
	ProvideObjectStoreConfig,
	ProvideStorageConfig,
	ProvideViewCounterConfig,
)

// LoadRuntimeConfig 调用 Load 并供 Wire 使用。
func LoadRuntimeConfig(params Params) (RuntimeConfig, error) {
	return Load(params)
}

// ProvideServiceInfo 返回服务元信息。
func ProvideServiceInfo(cfg RuntimeConfig) ServiceInfo {
	return cfg.Service
}

// ProvideLoggerConfig 构造 gclog.Config。
func ProvideLoggerConfig(info ServiceInfo) gclog.Config {
	return gclog.Config{
		Service:              info.Name,
		Version:              info.Version,
		Environment:          info.Environment,
		InstanceID:           info.InstanceID,
		EnableSourceLocation: true,
		StaticLabels: map[string]string{
			"service.id": info.InstanceID,
		},
	}
}

// ProvideObservabilityConfig 将 ObservabilityConfig 转换为 obswire.ObservabilityConfig。
func ProvideObservabilityConfig(cfg RuntimeConfig) obswire.ObservabilityConfig {
	tracing := cfg.Observability.Tracing
	metrics := cfg.Observability.Metrics

	var tracingCfg *obswire.TracingConfig
	if tracing.Enabled || tracing.Endpoint != "" || tracing.Exporter != "" {
		tracingCfg = &obswire.TracingConfig{
			Enabled:            tracing.Enabled,
			Exporter:           tracing.Exporter,
			Endpoint:           tracing.Endpoint,
			Headers:            tracing.Headers,
			Insecure:           tracing.Insecure,
			SamplingRatio:      tracing.SamplingRatio,
			Attributes:         tracing.Attributes,
			BatchTimeout:       tracing.BatchTimeout,
			ExportTimeout:      tracing.ExportTimeout,
			MaxQueueSize:       tracing.MaxQueueSize,
			MaxExportBatchSize: tracing.MaxExportBatchSize,
			Required:           tracing.Required,
		}
	}

	var metricsCfg *obswire.MetricsConfig
	if metrics.Enabled || metrics.Exporter != "" || metrics.Endpoint != "" {
		metricsCfg = &obswire.MetricsConfig{
			Enabled:             metrics.Enabled,
			Exporter:            metrics.Exporter,
			Endpoint:            metrics.Endpoint,
			Headers:             metrics.Headers,
			Insecure:            metrics.Insecure,
			Interval:            metrics.Interval,
			ResourceAttributes:  metrics.ResourceAttributes,
			DisableRuntimeStats: metrics.DisableRuntimeStats,
			Required:            metrics.Required,
			GRPCEnabled:         metrics.GRPCEnabled,
			GRPCIncludeHealth:   metrics.GRPCIncludeHealth,
		}
	}

	return obswire.ObservabilityConfig{
		Tracing:          tracingCfg,
		Metrics:          metricsCfg,
		GlobalAttributes: cfg.Observability.GlobalAttributes,
	}
}

// ProvideObservabilityInfo 转换为 obswire.ServiceInfo。
func ProvideObservabilityInfo(info ServiceInfo) obswire.ServiceInfo {
	return obswire.ServiceInfo{
		Name:        info.Name,
		Version:     info.Version,
		Environment: info.Environment,
	}
}

// ProvideServerConfig 返回 HTTP 与 gRPC 监听配置。
func ProvideServerConfig(cfg RuntimeConfig) ServerConfig {
	return cfg.Server
}

// ProvideDatabaseConfig 返回数据库配置。
func ProvideDatabaseConfig(cfg RuntimeConfig) DatabaseConfig {
	return cfg.Database
}

// ProvidePgxConfig 将 DatabaseConfig 转换为 pgxpoolx.Config。
func ProvidePgxConfig(dbCfg DatabaseConfig) pgxpoolx.Config {
	enablePrepared := dbCfg.PreparedStmts
	metricsEnabled := dbCfg.PoolMetrics
	return pgxpoolx.Config{
		DSN:                dbCfg.DSN,
		MaxConns:           int32(dbCfg.MaxOpenConns),
		MinConns:           int32(dbCfg.MinOpenConns),
		MaxConnLifetime:    dbCfg.MaxConnLifetime,
		MaxConnIdleTime:    dbCfg.MaxConnIdleTime,
		HealthCheckPeriod:  dbCfg.HealthCheckPeriod,
		Schema:             dbCfg.Schema,
		EnablePreparedStmt: &enablePrepared,
		MetricsEnabled:     &metricsEnabled,
	}
}

// ProvideTxConfig 构造 txmanager.Config。
func ProvideTxConfig(cfg RuntimeConfig) txconfig.Config {
	tx := cfg.Database.Transaction
	return txconfig.Config{
		DefaultIsolation: tx.DefaultIsolation,
		DefaultTimeout:   tx.DefaultTimeout,
		LockTimeout:      tx.LockTimeout,
		MaxRetries:       tx.MaxRetries,
		MetricsEnabled:   boolPtr(tx.MetricsEnabled),
	}
}

// ProvideMigrateOptions 决定启动时是否自动执行迁移。
func ProvideMigrateOptions(dbCfg DatabaseConfig) migrator.Options {
	return migrator.Options{AutoMigrate: dbCfg.AutoMigrate}
}

// ProvideHandlerTimeouts 将 Server 层配置映射为控制层使用的超时策略。
func ProvideHandlerTimeouts(cfg RuntimeConfig) controllers.HandlerTimeouts {
	handlers := cfg.Server.Handlers
	return controllers.HandlerTimeouts{
		Default: handlers.Default,
		Command: handlers.Command,
		Query:   handlers.Query,
	}
}

// ProvideAuthConfig 构造访问令牌签发配置。
func ProvideAuthConfig(cfg RuntimeConfig) auth.Config {
	return auth.Config{
		Secret:     []byte(cfg.Auth.JWTSecret),
		Issuer:     cfg.Auth.Issuer,
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	}
}

// ProvideCookieConfig 构造浏览器会话 Cookie 配置，有效期与刷新令牌一致。
func ProvideCookieConfig(cfg RuntimeConfig) auth.CookieConfig {
	return auth.CookieConfig{
		Name:   cfg.Auth.CookieName,
		Secret: []byte(cfg.Auth.CookieSecret),
		Secure: cfg.Auth.CookieSecure,
		MaxAge: cfg.Auth.RefreshTTL,
	}
}

// ProvideCacheConfig 构造分类缓存配置。
func ProvideCacheConfig(cfg RuntimeConfig) cache.Config {
	return cache.Config{
		URL:         cfg.Redis.URL,
		KeyPrefix:   cfg.Redis.KeyPrefix,
		CategoryTTL: cfg.Redis.CategoryTTL,
		DialTimeout: cfg.Redis.DialTimeout,
	}
}

// ProvideObjectStoreConfig 构造本地对象存储配置。
func ProvideObjectStoreConfig(cfg RuntimeConfig) objectstore.Config {
	return objectstore.Config{
		Root:          cfg.Storage.Root,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
	}
}

// ProvideStorageConfig 返回可写 bucket 列表。
func ProvideStorageConfig(cfg RuntimeConfig) services.StorageConfig {
	return services.StorageConfig{Buckets: append([]string(nil), cfg.Storage.Buckets...)}
}

// ProvideViewCounterConfig 构造浏览计数队列配置。
func ProvideViewCounterConfig(cfg RuntimeConfig) viewcount.Config {
	return viewcount.Config{
		QueueSize: cfg.ViewCounter.QueueSize,
		Workers:   cfg.ViewCounter.Workers,
		Timeout:   cfg.ViewCounter.Timeout,
	}
}

// ProvideMessagingConfig 返回消息相关配置。
func ProvideMessagingConfig(cfg RuntimeConfig) MessagingConfig {
	return cfg.Messaging
}

// ProvidePubSubConfig 将 MessagingConfig 转换为 gcpubsub.Config。
func ProvidePubSubConfig(msg MessagingConfig) gcpubsub.Config {
	cfg := msg.PubSub
	if cfg.ProjectID == "" {
		return gcpubsub.Config{}
	}
	result := gcpubsub.Config{
		ProjectID:          cfg.ProjectID,
		TopicID:            cfg.TopicID,
		PublishTimeout:     cfg.PublishTimeout,
		OrderingKeyEnabled: boolPtr(cfg.OrderingKeyEnabled),
		EnableLogging:      boolPtr(cfg.LoggingEnabled),
		EnableMetrics:      boolPtr(cfg.MetricsEnabled),
		EmulatorEndpoint:   cfg.EmulatorEndpoint,
	}
	return result.Normalize()
}

// ProvidePubSubDependencies 注入 Pub/Sub 依赖。
func ProvidePubSubDependencies(logger log.Logger) gcpubsub.Dependencies {
	return gcpubsub.Dependencies{Logger: logger}
}

// ProvideOutboxConfig 构造 outboxcfg.Config。
func ProvideOutboxConfig(msg MessagingConfig) (outboxcfg.Config, error) {
	cfg := outboxcfg.Config{
		Schema: msg.Schema,
		Publisher: outboxcfg.PublisherConfig{
			BatchSize:      msg.Outbox.BatchSize,
			TickInterval:   msg.Outbox.TickInterval,
			InitialBackoff: msg.Outbox.InitialBackoff,
			MaxBackoff:     msg.Outbox.MaxBackoff,
			MaxAttempts:    msg.Outbox.MaxAttempts,
			PublishTimeout: msg.Outbox.PublishTimeout,
			Workers:        msg.Outbox.Workers,
			LockTTL:        msg.Outbox.LockTTL,
			LoggingEnabled: msg.Outbox.LoggingEnabled,
			MetricsEnabled: msg.Outbox.MetricsEnabled,
		},
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return outboxcfg.Config{}, err
	}
	return cfg, nil
}

func boolPtr(v bool) *bool {
	return &v
}
