// Package configloader 提供配置加载与归一化能力，供 Wire 装配使用。
package configloader

import "time"

// RuntimeConfig 聚合应用在运行期所需的配置片段。
type RuntimeConfig struct {
	Service       ServiceInfo
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Auth          AuthConfig
	Storage       StorageConfig
	ViewCounter   ViewCounterConfig
	Observability ObservabilityConfig
	Messaging     MessagingConfig
}

// ServiceInfo 描述服务标识与运行环境。
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
	InstanceID  string
}

// ServerConfig 收敛 HTTP API 与 gRPC 运维端口的网络配置。
type ServerConfig struct {
	HTTP     ListenerConfig
	GRPC     ListenerConfig
	Handlers HandlerTimeoutConfig
	// CORSOrigins 为空时不启用跨域头。
	CORSOrigins []string
	// RateLimitPerMinute 按客户端 IP 限流，负数表示关闭。
	RateLimitPerMinute int
}

// ListenerConfig 描述单个监听端口。
type ListenerConfig struct {
	Network string
	Address string
	Timeout time.Duration
}

// HandlerTimeoutConfig 定义不同类型 Handler 的超时策略。
type HandlerTimeoutConfig struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

// DatabaseConfig 包含 PostgreSQL 连接池及事务默认值。
type DatabaseConfig struct {
	DSN               string
	MaxOpenConns      int
	MinOpenConns      int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	Schema            string
	PreparedStmts     bool
	PoolMetrics       bool
	AutoMigrate       bool
	Transaction       TransactionConfig
}

// TransactionConfig 指定事务默认隔离级别与超时策略。
type TransactionConfig struct {
	DefaultIsolation string
	DefaultTimeout   time.Duration
	LockTimeout      time.Duration
	MaxRetries       int
	MetricsEnabled   bool
}

// RedisConfig 描述分类缓存使用的 Redis；URL 为空表示关闭缓存。
type RedisConfig struct {
	URL         string
	KeyPrefix   string
	CategoryTTL time.Duration
	DialTimeout time.Duration
}

// AuthConfig 描述访问令牌与浏览器会话 Cookie。
type AuthConfig struct {
	JWTSecret    string
	Issuer       string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	CookieName   string
	CookieSecret string
	CookieSecure bool
}

// StorageConfig 描述本地对象存储。
type StorageConfig struct {
	Root          string
	PublicBaseURL string
	Buckets       []string
	MaxUploadSize int64
}

// ViewCounterConfig 控制浏览计数队列。
type ViewCounterConfig struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

// ObservabilityConfig 聚合 tracing 与 metrics 的配置。
type ObservabilityConfig struct {
	GlobalAttributes map[string]string
	Tracing          TracingConfig
	Metrics          MetricsConfig
}

// TracingConfig 描述 OpenTelemetry 追踪导出的行为。
type TracingConfig struct {
	Enabled            bool
	Exporter           string
	Endpoint           string
	Headers            map[string]string
	Insecure           bool
	SamplingRatio      float64
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxQueueSize       int
	MaxExportBatchSize int
	Required           bool
	Attributes         map[string]string
}

// MetricsConfig 描述 OpenTelemetry 指标导出的行为。
type MetricsConfig struct {
	Enabled             bool
	Exporter            string
	Endpoint            string
	Headers             map[string]string
	Insecure            bool
	Interval            time.Duration
	DisableRuntimeStats bool
	Required            bool
	ResourceAttributes  map[string]string
	GRPCEnabled         bool
	GRPCIncludeHealth   bool
}

// MessagingConfig 汇总消息系统相关配置。
type MessagingConfig struct {
	Schema string
	PubSub PubSubConfig
	Outbox OutboxPublisherConfig
}

// PubSubConfig 提供与 GCP Pub/Sub 兼容的设置。
type PubSubConfig struct {
	ProjectID          string
	TopicID            string
	OrderingKeyEnabled bool
	LoggingEnabled     bool
	MetricsEnabled     bool
	EmulatorEndpoint   string
	PublishTimeout     time.Duration
}

// OutboxPublisherConfig 配置 Outbox 发布器的运行参数。
type OutboxPublisherConfig struct {
	BatchSize      int
	TickInterval   time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	MaxAttempts    int
	PublishTimeout time.Duration
	Workers        int
	LockTTL        time.Duration
	LoggingEnabled *bool
	MetricsEnabled *bool
}
