// Package viewcount 异步累加视频播放量，读路径只做非阻塞投递。
package viewcount

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Config 控制队列容量、worker 数与单次写入超时。
type Config struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

func (c Config) normalize() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = 1024
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = 2 * time.Second
	}
	return c
}

// Notifier 持有有界队列，满时丢弃通知。
type Notifier struct {
	queue   chan uuid.UUID
	dropped atomic.Int64
	metrics *metrics
}

// NewNotifier 按配置创建队列。
func NewNotifier(cfg Config) *Notifier {
	cfg = cfg.normalize()
	return &Notifier{
		queue:   make(chan uuid.UUID, cfg.QueueSize),
		metrics: newMetrics(),
	}
}

// Notify 非阻塞投递一次播放，返回是否入队。
func (n *Notifier) Notify(videoID uuid.UUID) bool {
	if n == nil || videoID == uuid.Nil {
		return false
	}
	select {
	case n.queue <- videoID:
		return true
	default:
		n.dropped.Add(1)
		n.metrics.recordDropped(context.Background())
		return false
	}
}

// Dropped 返回因队列已满而丢弃的通知数。
func (n *Notifier) Dropped() int64 {
	if n == nil {
		return 0
	}
	return n.dropped.Load()
}
