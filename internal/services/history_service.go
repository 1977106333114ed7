package services

import (
	"context"

	"github.com/Kermitroid/outterspace2/internal/models/po"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// HistoryRepository 抽象观看历史仓储。
type HistoryRepository interface {
	Upsert(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) (*po.HistoryEntry, error)
}

// HistoryService 记录观看历史。
type HistoryService struct {
	history HistoryRepository
	log     *log.Helper
}

// NewHistoryService 构造 HistoryService。
func NewHistoryService(history HistoryRepository, logger log.Logger) *HistoryService {
	return &HistoryService{
		history: history,
		log:     log.NewHelper(logger),
	}
}

// RecordView 按 (user, video) 写入或刷新 watched_at。
func (s *HistoryService) RecordView(ctx context.Context, userID, videoID uuid.UUID) error {
	if userID == uuid.Nil || videoID == uuid.Nil {
		return ValidationError("user and video are required")
	}
	if _, err := s.history.Upsert(ctx, nil, userID, videoID); err != nil {
		s.log.WithContext(ctx).Errorf("record view failed: user=%s video=%s err=%v", userID, videoID, err)
		return storeFailure("record view", err)
	}
	return nil
}
