// Package migrator 使用 goose 将内嵌的 SQL 迁移应用到 Postgres。
package migrator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kermitroid/outterspace2/migrations"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator 包装 goose Provider。
type Migrator struct {
	provider *goose.Provider
	db       *sql.DB
	log      *log.Helper
}

// New 基于连接池构造 Migrator，调用方负责 Close。
func New(pool *pgxpool.Pool, logger log.Logger) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init goose provider: %w", err)
	}
	return &Migrator{
		provider: provider,
		db:       db,
		log:      log.NewHelper(logger),
	}, nil
}

// Up 应用全部未执行的迁移。
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, res := range results {
		if res == nil || res.Source == nil {
			continue
		}
		m.log.WithContext(ctx).Infof("migration applied: version=%d file=%s duration=%s", res.Source.Version, res.Source.Path, res.Duration)
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down 回滚最近一次迁移。
func (m *Migrator) Down(ctx context.Context) error {
	res, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	if res != nil && res.Source != nil {
		m.log.WithContext(ctx).Infof("migration rolled back: version=%d file=%s", res.Source.Version, res.Source.Path)
	}
	return nil
}

// Version 返回数据库当前版本。
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("get db version: %w", err)
	}
	return version, nil
}

// Close 释放 goose 使用的 *sql.DB，不会关闭底层连接池。
func (m *Migrator) Close() error {
	return m.provider.Close()
}

// Options 控制服务启动时的迁移行为。
type Options struct {
	AutoMigrate bool
}

// Startup 标记启动迁移已处理，供装配阶段建立依赖顺序。
type Startup struct {
	Applied bool
}

// ProvideStartup 在 AutoMigrate 打开时于服务启动前应用全部迁移。
func ProvideStartup(ctx context.Context, pool *pgxpool.Pool, opts Options, logger log.Logger) (Startup, error) {
	if !opts.AutoMigrate {
		return Startup{}, nil
	}
	m, err := New(pool, logger)
	if err != nil {
		return Startup{}, err
	}
	defer m.Close()
	if err := m.Up(ctx); err != nil {
		return Startup{}, err
	}
	return Startup{Applied: true}, nil
}
