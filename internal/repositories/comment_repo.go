package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCommentNotFound 表示评论不存在。
var ErrCommentNotFound = errors.New("comment not found")

// 评论列表默认上限。
const DefaultCommentListLimit = 100

// CommentRepository 访问 outterspace.comments。
type CommentRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewCommentRepository 构造仓储实例。
func NewCommentRepository(db *pgxpool.Pool, logger log.Logger) *CommentRepository {
	return &CommentRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateCommentInput 描述评论写入参数。
type CreateCommentInput struct {
	VideoID         uuid.UUID
	UserID          uuid.UUID
	ParentCommentID *uuid.UUID
	Content         string
}

func (r *CommentRepository) q(sess txmanager.Session) *spacedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// Create 插入评论并带作者信息回读。
func (r *CommentRepository) Create(ctx context.Context, sess txmanager.Session, input CreateCommentInput) (*po.CommentWithAuthor, error) {
	queries := r.q(sess)
	id, err := queries.InsertComment(ctx, spacedb.InsertCommentParams{
		VideoID:         input.VideoID,
		UserID:          mappers.ToPgUUID(&input.UserID),
		ParentCommentID: mappers.ToPgUUID(input.ParentCommentID),
		Content:         input.Content,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert comment failed: video=%s user=%s err=%v", input.VideoID, input.UserID, err)
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	row, err := queries.GetCommentWithAuthor(ctx, id)
	if err != nil {
		r.log.WithContext(ctx).Errorf("reload comment failed: comment=%s err=%v", id, err)
		return nil, fmt.Errorf("reload comment: %w", err)
	}
	return mappers.CommentWithAuthorFromRow(row), nil
}

// Get 返回单条评论。
func (r *CommentRepository) Get(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (*po.CommentWithAuthor, error) {
	row, err := r.q(sess).GetCommentWithAuthor(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return mappers.CommentWithAuthorFromRow(row), nil
}

// ListTopLevel 返回视频的顶层评论，最新在前。
func (r *CommentRepository) ListTopLevel(ctx context.Context, sess txmanager.Session, videoID uuid.UUID, limit int32) ([]*po.CommentWithAuthor, error) {
	if limit <= 0 {
		limit = DefaultCommentListLimit
	}
	rows, err := r.q(sess).ListTopLevelComments(ctx, spacedb.ListTopLevelCommentsParams{VideoID: videoID, Limit: limit})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list comments failed: video=%s err=%v", videoID, err)
		return nil, fmt.Errorf("list top-level comments: %w", err)
	}
	return mappers.CommentsWithAuthorFromRows(rows), nil
}

// ListReplies 返回某条评论的回复，最早在前。
func (r *CommentRepository) ListReplies(ctx context.Context, sess txmanager.Session, parentID uuid.UUID, limit int32) ([]*po.CommentWithAuthor, error) {
	if limit <= 0 {
		limit = DefaultCommentListLimit
	}
	rows, err := r.q(sess).ListReplies(ctx, spacedb.ListRepliesParams{ParentCommentID: parentID, Limit: limit})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list replies failed: parent=%s err=%v", parentID, err)
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return mappers.CommentsWithAuthorFromRows(rows), nil
}
