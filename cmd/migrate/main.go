// Package main 提供数据库迁移命令：up、down、version。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	configloader "github.com/Kermitroid/outterspace2/internal/infrastructure/configloader"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/migrator"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-conf path] up|down|version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	logger := log.With(log.NewStdLogger(os.Stdout), "module", "cmd.migrate")
	helper := log.NewHelper(logger)

	if err := run(context.Background(), *confFlag, command, logger); err != nil {
		helper.Errorf("migrate %s failed: %v", command, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, confPath, command string, logger log.Logger) error {
	cfg, err := configloader.Load(configloader.Params{ConfPath: confPath})
	if err != nil {
		return err
	}
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	m, err := migrator.New(pool, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "version":
		version, err := m.Version(ctx)
		if err != nil {
			return err
		}
		log.NewHelper(logger).Infof("database version: %d", version)
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
