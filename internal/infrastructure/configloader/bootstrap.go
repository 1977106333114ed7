package configloader

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap 是 config.yaml 的结构，由 kratos config 以 JSON 语义扫描。
type Bootstrap struct {
	Server        ServerSection        `json:"server"`
	Data          DataSection          `json:"data"`
	Auth          AuthSection          `json:"auth"`
	Storage       StorageSection       `json:"storage"`
	ViewCounter   ViewCounterSection   `json:"view_counter"`
	Observability ObservabilitySection `json:"observability"`
	Messaging     MessagingSection     `json:"messaging"`
}

type ServerSection struct {
	HTTP        ListenerSection `json:"http"`
	GRPC        ListenerSection `json:"grpc"`
	Handlers    HandlersSection `json:"handlers"`
	CORSOrigins []string        `json:"cors_origins"`
	RateLimit   int             `json:"rate_limit_per_minute"`
}

type ListenerSection struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

type HandlersSection struct {
	DefaultTimeout Duration `json:"default_timeout"`
	CommandTimeout Duration `json:"command_timeout"`
	QueryTimeout   Duration `json:"query_timeout"`
}

type DataSection struct {
	Postgres PostgresSection `json:"postgres"`
	Redis    RedisSection    `json:"redis"`
}

type PostgresSection struct {
	DSN                       string             `json:"dsn"`
	MaxOpenConns              int                `json:"max_open_conns"`
	MinOpenConns              int                `json:"min_open_conns"`
	MaxConnLifetime           Duration           `json:"max_conn_lifetime"`
	MaxConnIdleTime           Duration           `json:"max_conn_idle_time"`
	HealthCheckPeriod         Duration           `json:"health_check_period"`
	Schema                    string             `json:"schema"`
	PreparedStatementsEnabled bool               `json:"prepared_statements_enabled"`
	PoolMetricsEnabled        bool               `json:"pool_metrics_enabled"`
	AutoMigrate               bool               `json:"auto_migrate"`
	Transaction               TransactionSection `json:"transaction"`
}

type TransactionSection struct {
	DefaultIsolation string   `json:"default_isolation"`
	DefaultTimeout   Duration `json:"default_timeout"`
	LockTimeout      Duration `json:"lock_timeout"`
	MaxRetries       int      `json:"max_retries"`
	MetricsEnabled   bool     `json:"metrics_enabled"`
}

type RedisSection struct {
	URL         string   `json:"url"`
	KeyPrefix   string   `json:"key_prefix"`
	CategoryTTL Duration `json:"category_ttl"`
	DialTimeout Duration `json:"dial_timeout"`
}

type AuthSection struct {
	JWTSecret    string   `json:"jwt_secret"`
	Issuer       string   `json:"issuer"`
	AccessTTL    Duration `json:"access_ttl"`
	RefreshTTL   Duration `json:"refresh_ttl"`
	CookieName   string   `json:"cookie_name"`
	CookieSecret string   `json:"cookie_secret"`
	CookieSecure bool     `json:"cookie_secure"`
}

type StorageSection struct {
	Root          string   `json:"root"`
	PublicBaseURL string   `json:"public_base_url"`
	Buckets       []string `json:"buckets"`
	MaxUploadSize int64    `json:"max_upload_size"`
}

type ViewCounterSection struct {
	QueueSize int      `json:"queue_size"`
	Workers   int      `json:"workers"`
	Timeout   Duration `json:"timeout"`
}

type ObservabilitySection struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          TracingSection    `json:"tracing"`
	Metrics          MetricsSection    `json:"metrics"`
}

type TracingSection struct {
	Enabled            bool              `json:"enabled"`
	Exporter           string            `json:"exporter"`
	Endpoint           string            `json:"endpoint"`
	Headers            map[string]string `json:"headers"`
	Insecure           bool              `json:"insecure"`
	SamplingRatio      float64           `json:"sampling_ratio"`
	BatchTimeout       Duration          `json:"batch_timeout"`
	ExportTimeout      Duration          `json:"export_timeout"`
	MaxQueueSize       int               `json:"max_queue_size"`
	MaxExportBatchSize int               `json:"max_export_batch_size"`
	Required           bool              `json:"required"`
	Attributes         map[string]string `json:"attributes"`
}

type MetricsSection struct {
	Enabled             bool              `json:"enabled"`
	Exporter            string            `json:"exporter"`
	Endpoint            string            `json:"endpoint"`
	Headers             map[string]string `json:"headers"`
	Insecure            bool              `json:"insecure"`
	Interval            Duration          `json:"interval"`
	DisableRuntimeStats bool              `json:"disable_runtime_stats"`
	Required            bool              `json:"required"`
	ResourceAttributes  map[string]string `json:"resource_attributes"`
	GRPCEnabled         bool              `json:"grpc_enabled"`
	GRPCIncludeHealth   bool              `json:"grpc_include_health"`
}

type MessagingSection struct {
	Schema string        `json:"schema"`
	PubSub PubSubSection `json:"pubsub"`
	Outbox OutboxSection `json:"outbox"`
}

type PubSubSection struct {
	ProjectID          string   `json:"project_id"`
	TopicID            string   `json:"topic_id"`
	OrderingKeyEnabled bool     `json:"ordering_key_enabled"`
	LoggingEnabled     bool     `json:"logging_enabled"`
	MetricsEnabled     bool     `json:"metrics_enabled"`
	EmulatorEndpoint   string   `json:"emulator_endpoint"`
	PublishTimeout     Duration `json:"publish_timeout"`
}

type OutboxSection struct {
	BatchSize      int      `json:"batch_size"`
	TickInterval   Duration `json:"tick_interval"`
	InitialBackoff Duration `json:"initial_backoff"`
	MaxBackoff     Duration `json:"max_backoff"`
	MaxAttempts    int      `json:"max_attempts"`
	PublishTimeout Duration `json:"publish_timeout"`
	Workers        int      `json:"workers"`
	LockTTL        Duration `json:"lock_ttl"`
	LoggingEnabled *bool    `json:"logging_enabled"`
	MetricsEnabled *bool    `json:"metrics_enabled"`
}

// Duration 接受 "5s" 形式的字符串或纳秒整数。
type Duration time.Duration

// Std 转换为 time.Duration。
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalJSON 实现 json.Unmarshaler。
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(v))
	case string:
		if v == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}
