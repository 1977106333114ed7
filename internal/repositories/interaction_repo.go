package repositories

import (
	"context"
	"fmt"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InteractionRepository 访问 likes 与 saved_videos 两张关系表。
// 两表均以 (user_id, video_id) 为主键，同一对最多一行。
type InteractionRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewInteractionRepository 构造仓储实例。
func NewInteractionRepository(db *pgxpool.Pool, logger log.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *InteractionRepository) q(sess txmanager.Session) *spacedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// Delete 删除关系，返回是否确有删除。
func (r *InteractionRepository) Delete(ctx context.Context, sess txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	key := spacedb.InteractionKey{UserID: userID, VideoID: videoID}
	var (
		affected int64
		err      error
	)
	switch kind {
	case po.RelationLike:
		affected, err = r.q(sess).DeleteLike(ctx, key)
	case po.RelationSave:
		affected, err = r.q(sess).DeleteSavedVideo(ctx, key)
	default:
		return false, fmt.Errorf("unknown relation kind %q", kind)
	}
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete %s failed: user=%s video=%s err=%v", kind, userID, videoID, err)
		return false, fmt.Errorf("delete %s: %w", kind, err)
	}
	return affected > 0, nil
}

// Insert 插入关系，冲突时不做任何事；返回是否确有插入。
func (r *InteractionRepository) Insert(ctx context.Context, sess txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	key := spacedb.InteractionKey{UserID: userID, VideoID: videoID}
	var (
		affected int64
		err      error
	)
	switch kind {
	case po.RelationLike:
		affected, err = r.q(sess).InsertLike(ctx, key)
	case po.RelationSave:
		affected, err = r.q(sess).InsertSavedVideo(ctx, key)
	default:
		return false, fmt.Errorf("unknown relation kind %q", kind)
	}
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert %s failed: user=%s video=%s err=%v", kind, userID, videoID, err)
		return false, fmt.Errorf("insert %s: %w", kind, err)
	}
	return affected > 0, nil
}

// Exists 判断关系是否存在。
func (r *InteractionRepository) Exists(ctx context.Context, sess txmanager.Session, kind po.RelationKind, userID, videoID uuid.UUID) (bool, error) {
	key := spacedb.InteractionKey{UserID: userID, VideoID: videoID}
	var (
		ok  bool
		err error
	)
	switch kind {
	case po.RelationLike:
		ok, err = r.q(sess).HasLike(ctx, key)
	case po.RelationSave:
		ok, err = r.q(sess).HasSavedVideo(ctx, key)
	default:
		return false, fmt.Errorf("unknown relation kind %q", kind)
	}
	if err != nil {
		return false, fmt.Errorf("check %s: %w", kind, err)
	}
	return ok, nil
}
