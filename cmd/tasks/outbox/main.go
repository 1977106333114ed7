// Package main 提供 Outbox Runner 独立进程入口，点赞、收藏与评论事件可脱离 API 进程单独投递到 Pub/Sub。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/Kermitroid/outterspace2/internal/infrastructure/configloader"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2/log"
)

type outboxTaskApp struct {
	Runner *outboxpublisher.Runner
	Logger log.Logger
}

func main() {
	confPath := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *confPath); err != nil {
		fmt.Fprintf(os.Stderr, "outbox task: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, confPath string) error {
	app, cleanup, err := wireOutboxTask(ctx, configloader.Params{ConfPath: confPath})
	if err != nil {
		return fmt.Errorf("wire outbox task: %w", err)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(log.With(logger, "task", "outbox"))

	if app.Runner == nil {
		helper.Warn("outbox publisher disabled: messaging.pubsub.topic_id is empty")
		return nil
	}

	helper.Info("outbox publisher started")
	if err := app.Runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox runner: %w", err)
	}
	helper.Info("outbox publisher stopped")
	return nil
}
