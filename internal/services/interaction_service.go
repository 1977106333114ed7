package services

import (
	"context"
	"errors"
	"time"

	outboxevents "github.com/Kermitroid/outterspace2/internal/models/outbox_events"
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// InteractionRepository 抽象 likes 与 saved_videos 关系表。
type InteractionRepository interface {
	Delete(ctx context.Context, sess txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error)
	Insert(ctx context.Context, sess txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error)
	Exists(ctx context.Context, sess txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error)
}

// VideoLookup 判断视频是否存在且已发布。
type VideoLookup interface {
	Exists(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (bool, error)
}

// VideoCounterRepository 抽象已发布校验与点赞计数。
type VideoCounterRepository interface {
	VideoLookup
	AdjustLikesCount(ctx context.Context, sess txmanager.Session, videoID uuid.UUID, delta int64) (int64, error)
}

// InteractionService 实现点赞与收藏的切换和查询。
type InteractionService struct {
	eventWriter
	relations InteractionRepository
	videos    VideoCounterRepository
	txManager txmanager.Manager
	log       *log.Helper
	now       func() time.Time
}

// NewInteractionService 构造 InteractionService。
func NewInteractionService(
	relations InteractionRepository,
	videos VideoCounterRepository,
	outbox OutboxEnqueuer,
	tx txmanager.Manager,
	logger log.Logger,
) *InteractionService {
	return &InteractionService{
		eventWriter: newEventWriter(outbox, "interaction"),
		relations:   relations,
		videos:      videos,
		txManager:   tx,
		log:         log.NewHelper(logger),
		now:         time.Now,
	}
}

// ToggleLike 切换点赞并返回新状态，同时调整视频的点赞数。
func (s *InteractionService) ToggleLike(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	return s.toggle(ctx, po.RelationLike, userID, videoID)
}

// ToggleSave 切换收藏并返回新状态。
func (s *InteractionService) ToggleSave(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	return s.toggle(ctx, po.RelationSave, userID, videoID)
}

// toggle 先删除，删除不到再插入；两步在同一事务内，唯一键保证每对 (user, video) 至多一行。
func (s *InteractionService) toggle(ctx context.Context, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || videoID == uuid.Nil {
		return false, ValidationError("user and video are required")
	}

	var active bool
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		deleted, err := s.relations.Delete(txCtx, sess, kind, userID, videoID)
		if err != nil {
			return err
		}

		var delta int64
		if deleted {
			active = false
			delta = -1
		} else {
			exists, err := s.videos.Exists(txCtx, sess, videoID)
			if err != nil {
				return err
			}
			if !exists {
				return NotFound("video %s not found", videoID)
			}
			inserted, err := s.relations.Insert(txCtx, sess, kind, userID, videoID)
			if err != nil {
				return err
			}
			active = true
			if inserted {
				delta = 1
			}
		}

		var likesCount *int64
		if kind == po.RelationLike && delta != 0 {
			count, err := s.videos.AdjustLikesCount(txCtx, sess, videoID, delta)
			if err != nil {
				return err
			}
			likesCount = &count
		}

		event, err := outboxevents.NewVideoInteractionEvent(kind, active, userID, videoID, likesCount, s.now())
		if err != nil {
			return err
		}
		return s.enqueueEvent(txCtx, sess, event)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return false, NotFound("video %s not found", videoID)
		}
		s.log.WithContext(ctx).Errorf("toggle %s failed: user=%s video=%s err=%v", kind, userID, videoID, err)
		return false, storeFailure("toggle "+string(kind), err)
	}
	return active, nil
}

// IsLiked 查询是否已点赞；缺少 ID 或读取失败时返回 false。
func (s *InteractionService) IsLiked(ctx context.Context, userID, videoID uuid.UUID) bool {
	return s.exists(ctx, po.RelationLike, userID, videoID)
}

// IsSaved 查询是否已收藏；缺少 ID 或读取失败时返回 false。
func (s *InteractionService) IsSaved(ctx context.Context, userID, videoID uuid.UUID) bool {
	return s.exists(ctx, po.RelationSave, userID, videoID)
}

func (s *InteractionService) exists(ctx context.Context, kind po.RelationKind, userID, videoID uuid.UUID) bool {
	if userID == uuid.Nil || videoID == uuid.Nil {
		return false
	}
	ok, err := s.relations.Exists(ctx, nil, kind, userID, videoID)
	if err != nil {
		s.log.WithContext(ctx).Warnf("check %s failed: user=%s video=%s err=%v", kind, userID, videoID, err)
		return false
	}
	return ok
}

// InteractionState 在一个只读事务内读取点赞与收藏状态，失败时两者均为 false。
func (s *InteractionService) InteractionState(ctx context.Context, userID, videoID uuid.UUID) InteractionState {
	var state InteractionState
	if userID == uuid.Nil || videoID == uuid.Nil {
		return state
	}
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		liked, err := s.relations.Exists(txCtx, sess, po.RelationLike, userID, videoID)
		if err != nil {
			return err
		}
		saved, err := s.relations.Exists(txCtx, sess, po.RelationSave, userID, videoID)
		if err != nil {
			return err
		}
		state = InteractionState{Liked: liked, Saved: saved}
		return nil
	})
	if err != nil {
		s.log.WithContext(ctx).Warnf("read interaction state failed: user=%s video=%s err=%v", userID, videoID, err)
		return InteractionState{}
	}
	return state
}
