package configloader

import (
	"net"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second
	defaultUploadTimeout  = 60 * time.Second
	defaultRateLimit      = 600

	defaultHTTPAddr      = ":8000"
	defaultGRPCAddr      = ":9000"
	defaultSchema        = "outterspace"
	defaultRedisPrefix   = "outterspace"
	defaultCategoryTTL   = 5 * time.Minute
	defaultAccessTTL     = time.Hour
	defaultRefreshTTL    = 30 * 24 * time.Hour
	defaultCookieName    = "outterspace_session"
	defaultStorageRoot   = "./data/storage"
	defaultMaxUploadSize = 512 << 20
	defaultViewQueueSize = 1024
	defaultViewWorkers   = 1
	defaultViewTimeout   = 2 * time.Second
)

func fromBootstrap(b *Bootstrap) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	return RuntimeConfig{
		Server:        serverFromBootstrap(b.Server),
		Database:      databaseFromBootstrap(b.Data.Postgres),
		Redis:         redisFromBootstrap(b.Data.Redis),
		Auth:          authFromBootstrap(b.Auth),
		Storage:       storageFromBootstrap(b.Storage),
		ViewCounter:   viewCounterFromBootstrap(b.ViewCounter),
		Observability: observabilityFromBootstrap(b.Observability),
		Messaging:     messagingFromBootstrap(b.Messaging, b.Data.Postgres),
	}
}

func serverFromBootstrap(s ServerSection) ServerConfig {
	return ServerConfig{
		HTTP:               listenerFromBootstrap(s.HTTP),
		GRPC:               listenerFromBootstrap(s.GRPC),
		Handlers:           handlerTimeoutFromBootstrap(s.Handlers),
		CORSOrigins:        append([]string(nil), s.CORSOrigins...),
		RateLimitPerMinute: s.RateLimit,
	}
}

func listenerFromBootstrap(l ListenerSection) ListenerConfig {
	return ListenerConfig{
		Network: l.Network,
		Address: l.Addr,
		Timeout: l.Timeout.Std(),
	}
}

func handlerTimeoutFromBootstrap(h HandlersSection) HandlerTimeoutConfig {
	cfg := HandlerTimeoutConfig{
		Default: defaultHandlerTimeout,
		Command: defaultHandlerTimeout,
		Query:   defaultQueryTimeout,
	}
	if d := h.DefaultTimeout.Std(); d > 0 {
		cfg.Default = d
	}
	if d := h.CommandTimeout.Std(); d > 0 {
		cfg.Command = d
	} else {
		cfg.Command = cfg.Default
	}
	if d := h.QueryTimeout.Std(); d > 0 {
		cfg.Query = d
	} else {
		cfg.Query = firstNonZero(cfg.Query, cfg.Default)
	}
	return cfg
}

func databaseFromBootstrap(pg PostgresSection) DatabaseConfig {
	return DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   pg.MaxConnLifetime.Std(),
		MaxConnIdleTime:   pg.MaxConnIdleTime.Std(),
		HealthCheckPeriod: pg.HealthCheckPeriod.Std(),
		Schema:            pg.Schema,
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
		AutoMigrate:       pg.AutoMigrate,
		Transaction: TransactionConfig{
			DefaultIsolation: pg.Transaction.DefaultIsolation,
			DefaultTimeout:   pg.Transaction.DefaultTimeout.Std(),
			LockTimeout:      pg.Transaction.LockTimeout.Std(),
			MaxRetries:       pg.Transaction.MaxRetries,
			MetricsEnabled:   pg.Transaction.MetricsEnabled,
		},
	}
}

func redisFromBootstrap(r RedisSection) RedisConfig {
	return RedisConfig{
		URL:         r.URL,
		KeyPrefix:   r.KeyPrefix,
		CategoryTTL: r.CategoryTTL.Std(),
		DialTimeout: r.DialTimeout.Std(),
	}
}

func authFromBootstrap(a AuthSection) AuthConfig {
	return AuthConfig{
		JWTSecret:    a.JWTSecret,
		Issuer:       a.Issuer,
		AccessTTL:    a.AccessTTL.Std(),
		RefreshTTL:   a.RefreshTTL.Std(),
		CookieName:   a.CookieName,
		CookieSecret: a.CookieSecret,
		CookieSecure: a.CookieSecure,
	}
}

func storageFromBootstrap(s StorageSection) StorageConfig {
	return StorageConfig{
		Root:          s.Root,
		PublicBaseURL: s.PublicBaseURL,
		Buckets:       append([]string(nil), s.Buckets...),
		MaxUploadSize: s.MaxUploadSize,
	}
}

func viewCounterFromBootstrap(v ViewCounterSection) ViewCounterConfig {
	return ViewCounterConfig{
		QueueSize: v.QueueSize,
		Workers:   v.Workers,
		Timeout:   v.Timeout.Std(),
	}
}

func observabilityFromBootstrap(obs ObservabilitySection) ObservabilityConfig {
	t := obs.Tracing
	m := obs.Metrics
	return ObservabilityConfig{
		GlobalAttributes: mapCopy(obs.GlobalAttributes),
		Tracing: TracingConfig{
			Enabled:            t.Enabled,
			Exporter:           t.Exporter,
			Endpoint:           t.Endpoint,
			Headers:            mapCopy(t.Headers),
			Insecure:           t.Insecure,
			SamplingRatio:      t.SamplingRatio,
			BatchTimeout:       t.BatchTimeout.Std(),
			ExportTimeout:      t.ExportTimeout.Std(),
			MaxQueueSize:       t.MaxQueueSize,
			MaxExportBatchSize: t.MaxExportBatchSize,
			Required:           t.Required,
			Attributes:         mapCopy(t.Attributes),
		},
		Metrics: MetricsConfig{
			Enabled:             m.Enabled,
			Exporter:            m.Exporter,
			Endpoint:            m.Endpoint,
			Headers:             mapCopy(m.Headers),
			Insecure:            m.Insecure,
			Interval:            m.Interval.Std(),
			DisableRuntimeStats: m.DisableRuntimeStats,
			Required:            m.Required,
			ResourceAttributes:  mapCopy(m.ResourceAttributes),
			GRPCEnabled:         m.GRPCEnabled,
			GRPCIncludeHealth:   m.GRPCIncludeHealth,
		},
	}
}

func messagingFromBootstrap(msg MessagingSection, pg PostgresSection) MessagingConfig {
	ob := msg.Outbox
	return MessagingConfig{
		Schema: firstNonEmpty(msg.Schema, pg.Schema),
		PubSub: PubSubConfig{
			ProjectID:          msg.PubSub.ProjectID,
			TopicID:            msg.PubSub.TopicID,
			OrderingKeyEnabled: msg.PubSub.OrderingKeyEnabled,
			LoggingEnabled:     msg.PubSub.LoggingEnabled,
			MetricsEnabled:     msg.PubSub.MetricsEnabled,
			EmulatorEndpoint:   msg.PubSub.EmulatorEndpoint,
			PublishTimeout:     msg.PubSub.PublishTimeout.Std(),
		},
		Outbox: OutboxPublisherConfig{
			BatchSize:      ob.BatchSize,
			TickInterval:   ob.TickInterval.Std(),
			InitialBackoff: ob.InitialBackoff.Std(),
			MaxBackoff:     ob.MaxBackoff.Std(),
			MaxAttempts:    ob.MaxAttempts,
			PublishTimeout: ob.PublishTimeout.Std(),
			Workers:        ob.Workers,
			LockTTL:        ob.LockTTL.Std(),
			LoggingEnabled: ob.LoggingEnabled,
			MetricsEnabled: ob.MetricsEnabled,
		},
	}
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func firstNonZero(durations ...time.Duration) time.Duration {
	for _, d := range durations {
		if d > 0 {
			return d
		}
	}
	return 0
}

func fillDefaults(cfg *RuntimeConfig) {
	cfg.Server.HTTP.Address = firstNonEmpty(cfg.Server.HTTP.Address, defaultHTTPAddr)
	cfg.Server.GRPC.Address = firstNonEmpty(cfg.Server.GRPC.Address, defaultGRPCAddr)
	if cfg.Server.HTTP.Timeout <= 0 {
		cfg.Server.HTTP.Timeout = defaultUploadTimeout
	}
	if cfg.Server.RateLimitPerMinute == 0 {
		cfg.Server.RateLimitPerMinute = defaultRateLimit
	}
	cfg.Database.Schema = firstNonEmpty(cfg.Database.Schema, defaultSchema)
	cfg.Messaging.Schema = firstNonEmpty(cfg.Messaging.Schema, cfg.Database.Schema)

	cfg.Redis.KeyPrefix = firstNonEmpty(cfg.Redis.KeyPrefix, defaultRedisPrefix)
	cfg.Redis.CategoryTTL = firstNonZero(cfg.Redis.CategoryTTL, defaultCategoryTTL)

	cfg.Auth.Issuer = firstNonEmpty(cfg.Auth.Issuer, cfg.Service.Name)
	cfg.Auth.AccessTTL = firstNonZero(cfg.Auth.AccessTTL, defaultAccessTTL)
	cfg.Auth.RefreshTTL = firstNonZero(cfg.Auth.RefreshTTL, defaultRefreshTTL)
	cfg.Auth.CookieName = firstNonEmpty(cfg.Auth.CookieName, defaultCookieName)
	cfg.Auth.CookieSecret = firstNonEmpty(cfg.Auth.CookieSecret, cfg.Auth.JWTSecret)

	cfg.Storage.Root = firstNonEmpty(cfg.Storage.Root, defaultStorageRoot)
	if cfg.Storage.PublicBaseURL == "" {
		_, port, err := net.SplitHostPort(cfg.Server.HTTP.Address)
		if err != nil || port == "" {
			port = "8000"
		}
		cfg.Storage.PublicBaseURL = "http://localhost:" + port
	}
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.ViewCounter.QueueSize <= 0 {
		cfg.ViewCounter.QueueSize = defaultViewQueueSize
	}
	if cfg.ViewCounter.Workers <= 0 {
		cfg.ViewCounter.Workers = defaultViewWorkers
	}
	cfg.ViewCounter.Timeout = firstNonZero(cfg.ViewCounter.Timeout, defaultViewTimeout)
}
