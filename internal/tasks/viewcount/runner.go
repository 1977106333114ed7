package viewcount

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

type viewCounterStore interface {
	IncrementViewCount(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) error
}

// Failure 描述一次写入失败。
type Failure struct {
	VideoID uuid.UUID
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("increment view count %s: %v", f.VideoID, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Runner 从 Notifier 队列取出视频 ID 并写库。
type Runner struct {
	notifier *Notifier
	store    viewCounterStore
	cfg      Config
	errs     chan Failure
	log      *log.Helper
}

// NewRunner 构造 Runner。
func NewRunner(notifier *Notifier, store viewCounterStore, cfg Config, logger log.Logger) (*Runner, error) {
	if notifier == nil {
		return nil, errors.New("viewcount: notifier is required")
	}
	if store == nil {
		return nil, errors.New("viewcount: store is required")
	}
	cfg = cfg.normalize()
	return &Runner{
		notifier: notifier,
		store:    store,
		cfg:      cfg,
		errs:     make(chan Failure, cfg.QueueSize),
		log:      log.NewHelper(log.With(logger, "module", "task.viewcount")),
	}, nil
}

// Errors 返回写入失败通道，满时新的失败只记日志。
func (r *Runner) Errors() <-chan Failure {
	return r.errs
}

// Run 启动 worker 直到 ctx 取消，取消后排空队列中已有的通知。
func (r *Runner) Run(ctx context.Context) error {
	r.log.Infof("view counter started: workers=%d queue=%d", r.cfg.Workers, cap(r.notifier.queue))

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.work(ctx)
		}()
	}
	wg.Wait()
	r.drain()

	r.log.Info("view counter stopped")
	return nil
}

func (r *Runner) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-r.notifier.queue:
			r.apply(context.WithoutCancel(ctx), id)
		}
	}
}

func (r *Runner) drain() {
	for {
		select {
		case id := <-r.notifier.queue:
			r.apply(context.Background(), id)
		default:
			return
		}
	}
}

func (r *Runner) apply(ctx context.Context, videoID uuid.UUID) {
	started := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	if err := r.store.IncrementViewCount(callCtx, nil, videoID); err != nil {
		r.notifier.metrics.recordFailure(ctx)
		r.log.WithContext(ctx).Warnf("increment view count failed: video=%s err=%v", videoID, err)
		select {
		case r.errs <- Failure{VideoID: videoID, Err: err}:
		default:
		}
		return
	}
	r.notifier.metrics.recordSuccess(ctx, started)
}
