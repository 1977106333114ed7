package repositories

import (
	"context"
	"fmt"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository 访问 outterspace.video_history。
type HistoryRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewHistoryRepository 构造仓储实例。
func NewHistoryRepository(db *pgxpool.Pool, logger log.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Upsert 记录一次观看，重复观看刷新 watched_at。
func (r *HistoryRepository) Upsert(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) (*po.HistoryEntry, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpsertHistory(ctx, spacedb.InteractionKey{UserID: userID, VideoID: videoID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("upsert history failed: user=%s video=%s err=%v", userID, videoID, err)
		return nil, fmt.Errorf("upsert history: %w", err)
	}
	entry := mappers.HistoryEntryFromRow(row)
	return &entry, nil
}
