package repositories

import (
	"context"
	"strings"
	"time"

	outboxpkg "github.com/bionicotaku/lingo-utils/outbox"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultOutboxSchema 是 outbox_events 所在的 schema。
const DefaultOutboxSchema = "outterspace"

// OutboxMessage 是写入 outterspace.outbox_events 的一条领域事件。
type OutboxMessage = store.Message

// OutboxEvent 是发布任务认领到的待投递事件。
type OutboxEvent = store.Event

// OutboxRepository 将点赞、收藏、评论与视频创建事件写入 outbox，并为发布任务提供认领接口。
type OutboxRepository struct {
	delegate *store.Repository
	log      *log.Helper
}

// NewOutboxRepository 按配置的 schema 构造仓储，schema 为空时使用 outterspace。
func NewOutboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *OutboxRepository {
	helper := log.NewHelper(logger)
	schema := strings.TrimSpace(cfg.Schema)
	if schema == "" {
		schema = DefaultOutboxSchema
	}
	storeRepo, err := outboxpkg.NewRepository(db, logger, outboxpkg.RepositoryOptions{Schema: schema})
	if err != nil {
		helper.Errorf("init outbox repository failed: schema=%s err=%v", schema, err)
		storeRepo = store.NewRepository(db, logger)
	}
	return &OutboxRepository{delegate: storeRepo, log: helper}
}

// Enqueue 与业务写入共用 sess 所在事务。
func (r *OutboxRepository) Enqueue(ctx context.Context, sess txmanager.Session, msg OutboxMessage) error {
	if err := r.delegate.Enqueue(ctx, sess, msg); err != nil {
		r.log.WithContext(ctx).Errorf("enqueue outbox event failed: type=%s aggregate=%s err=%v", msg.EventType, msg.AggregateID, err)
		return err
	}
	return nil
}

// ClaimPending 认领 availableBefore 之前可投递、且锁早于 staleBefore 的事件。
func (r *OutboxRepository) ClaimPending(ctx context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]OutboxEvent, error) {
	return r.delegate.ClaimPending(ctx, availableBefore, staleBefore, limit, lockToken)
}

// MarkPublished 标记投递成功。
func (r *OutboxRepository) MarkPublished(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, publishedAt time.Time) error {
	return r.delegate.MarkPublished(ctx, sess, eventID, lockToken, publishedAt)
}

// Reschedule 释放锁并推迟到 nextAvailable，记录失败原因。
func (r *OutboxRepository) Reschedule(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error {
	return r.delegate.Reschedule(ctx, sess, eventID, lockToken, nextAvailable, lastErr)
}

// CountPending 返回尚未发布的事件数。
func (r *OutboxRepository) CountPending(ctx context.Context) (int64, error) {
	return r.delegate.CountPending(ctx)
}

// Shared 暴露底层仓储，供 lingo-utils 发布器使用。
func (r *OutboxRepository) Shared() *store.Repository {
	return r.delegate
}
