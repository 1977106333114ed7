package configloader

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/joho/godotenv"
)

// Params 控制配置加载的输入参数。
type Params struct {
	ConfPath string
}

const (
	defaultConfPath       = "configs/config.yaml"
	envConfPath           = "CONF_PATH"
	envDatabaseURL        = "DATABASE_URL"
	envPort               = "PORT"
	envHTTPPort           = "HTTP_PORT"
	envRedisURL           = "REDIS_URL"
	envJWTSecret          = "AUTH_JWT_SECRET"
	envCookieSecret       = "AUTH_COOKIE_SECRET"
	envPubSubEmulator     = "PUBSUB_EMULATOR_HOST"
	envServiceName        = "SERVICE_NAME"
	envServiceVersion     = "SERVICE_VERSION"
	envEnvironment        = "APP_ENV"
	defaultServiceName    = "outterspace"
	defaultServiceVersion = "dev"
	defaultEnvironment    = "development"
)

// Load 解析配置文件并返回归一化的 RuntimeConfig。
func Load(params Params) (RuntimeConfig, error) {
	confPath := resolveConfPath(params.ConfPath)
	if err := loadEnvFiles(confPath); err != nil {
		return RuntimeConfig{}, fmt.Errorf("load env files: %w", err)
	}

	bootstrap, err := loadBootstrap(confPath)
	if err != nil {
		return RuntimeConfig{}, err
	}

	runtime := fromBootstrap(bootstrap)
	runtime.Service = buildServiceInfo()
	fillDefaults(&runtime)

	if err := validate(runtime); err != nil {
		return RuntimeConfig{}, fmt.Errorf("validate config: %w", err)
	}
	return runtime, nil
}

func resolveConfPath(explicit string) string {
	switch {
	case explicit != "":
		return explicit
	case os.Getenv(envConfPath) != "":
		return os.Getenv(envConfPath)
	default:
		return defaultConfPath
	}
}

func loadEnvFiles(confPath string) error {
	dirs := candidateDirs(confPath)
	var files []string
	seen := map[string]struct{}{}
	for _, dir := range dirs {
		for _, name := range []string{".env.local", ".env"} {
			fp := filepath.Join(dir, name)
			if _, err := os.Stat(fp); err != nil {
				continue
			}
			if _, ok := seen[fp]; ok {
				continue
			}
			files = append(files, fp)
			seen[fp] = struct{}{}
		}
	}
	if len(files) == 0 {
		return nil
	}
	return godotenv.Overload(files...)
}

func candidateDirs(confPath string) []string {
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		for _, exist := range dirs {
			if exist == clean {
				return
			}
		}
		dirs = append(dirs, clean)
	}

	if info, err := os.Stat(confPath); err == nil {
		if info.IsDir() {
			add(confPath)
		} else {
			add(filepath.Dir(confPath))
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		add(cwd)
	}
	return dirs
}

func loadBootstrap(confPath string) (*Bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config %q: %w", confPath, err)
	}
	defer c.Close()

	var bootstrap Bootstrap
	if err := c.Scan(&bootstrap); err != nil {
		return nil, fmt.Errorf("scan config %q: %w", confPath, err)
	}

	applyEnvOverrides(&bootstrap)
	return &bootstrap, nil
}

func buildServiceInfo() ServiceInfo {
	return ServiceInfo{
		Name:        firstNonEmpty(os.Getenv(envServiceName), defaultServiceName),
		Version:     firstNonEmpty(os.Getenv(envServiceVersion), defaultServiceVersion),
		Environment: resolveEnvironment(os.Getenv(envEnvironment)),
		InstanceID:  hostnameOrDefault(),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveEnvironment(raw string) string {
	if raw == "" {
		return defaultEnvironment
	}
	switch raw {
	case "dev", "development":
		return defaultEnvironment
	case "staging":
		return "staging"
	case "prod", "production":
		return "production"
	default:
		return raw
	}
}

func hostnameOrDefault() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "unknown-instance"
	}
	return host
}

// applyEnvOverrides 让部署环境覆盖敏感项与端口；PORT 作用于 HTTP，HTTP_PORT 优先。
func applyEnvOverrides(b *Bootstrap) {
	if b == nil {
		return
	}
	if dsn := os.Getenv(envDatabaseURL); dsn != "" {
		b.Data.Postgres.DSN = dsn
	}
	if port := firstNonEmpty(os.Getenv(envHTTPPort), os.Getenv(envPort)); port != "" {
		b.Server.HTTP.Addr = replacePort(b.Server.HTTP.Addr, port)
	}
	if url := os.Getenv(envRedisURL); url != "" {
		b.Data.Redis.URL = url
	}
	if secret := os.Getenv(envJWTSecret); secret != "" {
		b.Auth.JWTSecret = secret
	}
	if secret := os.Getenv(envCookieSecret); secret != "" {
		b.Auth.CookieSecret = secret
	}
	if host := os.Getenv(envPubSubEmulator); host != "" && b.Messaging.PubSub.EmulatorEndpoint == "" {
		b.Messaging.PubSub.EmulatorEndpoint = host
	}
}

func replacePort(addr, port string) string {
	if addr == "" {
		return ":" + port
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return ":" + port
	}
	return net.JoinHostPort(host, port)
}

const minSecretLength = 32

func validate(cfg RuntimeConfig) error {
	var errs []error
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		errs = append(errs, errors.New("data.postgres.dsn is required"))
	}
	if cfg.Database.MinOpenConns > cfg.Database.MaxOpenConns && cfg.Database.MaxOpenConns > 0 {
		errs = append(errs, fmt.Errorf("data.postgres.min_open_conns (%d) exceeds max_open_conns (%d)", cfg.Database.MinOpenConns, cfg.Database.MaxOpenConns))
	}
	if len(cfg.Auth.JWTSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minSecretLength))
	}
	if cfg.Auth.AccessTTL >= cfg.Auth.RefreshTTL {
		errs = append(errs, errors.New("auth.access_ttl must be shorter than auth.refresh_ttl"))
	}
	if len(cfg.Storage.Buckets) == 0 {
		errs = append(errs, errors.New("storage.buckets must not be empty"))
	}
	return errors.Join(errs...)
}
