package services

import (
	"context"
	"errors"
	"strings"
	"time"

	outboxevents "github.com/Kermitroid/outterspace2/internal/models/outbox_events"
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// CommentRepository 抽象评论仓储。
type CommentRepository interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateCommentInput) (*po.CommentWithAuthor, error)
	Get(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (*po.CommentWithAuthor, error)
	ListTopLevel(ctx context.Context, sess txmanager.Session, videoID uuid.UUID, limit int32) ([]*po.CommentWithAuthor, error)
	ListReplies(ctx context.Context, sess txmanager.Session, parentID uuid.UUID, limit int32) ([]*po.CommentWithAuthor, error)
}

// CommentService 处理评论与回复。
type CommentService struct {
	eventWriter
	comments  CommentRepository
	videos    VideoLookup
	txManager txmanager.Manager
	log       *log.Helper
	now       func() time.Time
}

// NewCommentService 构造 CommentService。
func NewCommentService(comments CommentRepository, videos VideoLookup, outbox OutboxEnqueuer, tx txmanager.Manager, logger log.Logger) *CommentService {
	return &CommentService{
		eventWriter: newEventWriter(outbox, "comment"),
		comments:    comments,
		videos:      videos,
		txManager:   tx,
		log:         log.NewHelper(logger),
		now:         time.Now,
	}
}

// AddComment 写入评论；视频须已发布，ParentCommentID 非空时作为回复，父评论必须属于同一视频。
func (s *CommentService) AddComment(ctx context.Context, input AddCommentInput) (*vo.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if input.VideoID == uuid.Nil || content == "" {
		return nil, ValidationError("video and non-empty content are required")
	}
	if input.UserID == uuid.Nil {
		return nil, AuthenticationRequired("you must be logged in to comment")
	}

	var created *po.CommentWithAuthor
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		published, err := s.videos.Exists(txCtx, sess, input.VideoID)
		if err != nil {
			return err
		}
		if !published {
			return NotFound("video %s not found", input.VideoID)
		}
		if input.ParentCommentID != nil {
			parent, err := s.comments.Get(txCtx, sess, *input.ParentCommentID)
			if err != nil {
				if errors.Is(err, repositories.ErrCommentNotFound) {
					return ValidationError("parent comment %s not found", *input.ParentCommentID)
				}
				return err
			}
			if parent.VideoID != input.VideoID {
				return ValidationError("parent comment belongs to another video")
			}
		}

		created, err = s.comments.Create(txCtx, sess, repositories.CreateCommentInput{
			VideoID:         input.VideoID,
			UserID:          input.UserID,
			ParentCommentID: input.ParentCommentID,
			Content:         content,
		})
		if err != nil {
			return err
		}
		event, err := outboxevents.NewCommentAddedEvent(&created.Comment, s.now())
		if err != nil {
			return err
		}
		return s.enqueueEvent(txCtx, sess, event)
	})
	if err != nil {
		s.log.WithContext(ctx).Errorf("add comment failed: video=%s user=%s err=%v", input.VideoID, input.UserID, err)
		return nil, storeFailure("add comment", err)
	}
	return vo.NewComment(created), nil
}

// ListComments 返回视频的顶层评论，新评论在前；读取失败时返回空列表。
func (s *CommentService) ListComments(ctx context.Context, videoID uuid.UUID) ([]*vo.Comment, error) {
	if videoID == uuid.Nil {
		return nil, ValidationError("video id is required")
	}
	rows, err := s.comments.ListTopLevel(ctx, nil, videoID, repositories.DefaultCommentListLimit)
	if err != nil {
		s.log.WithContext(ctx).Errorf("list comments failed: video=%s err=%v", videoID, err)
		return []*vo.Comment{}, nil
	}
	return vo.NewComments(rows), nil
}

// ListReplies 返回某条评论的回复，按时间正序；读取失败时返回空列表。
func (s *CommentService) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*vo.Comment, error) {
	if parentID == uuid.Nil {
		return nil, ValidationError("comment id is required")
	}
	rows, err := s.comments.ListReplies(ctx, nil, parentID, repositories.DefaultCommentListLimit)
	if err != nil {
		s.log.WithContext(ctx).Errorf("list replies failed: parent=%s err=%v", parentID, err)
		return []*vo.Comment{}, nil
	}
	return vo.NewComments(rows), nil
}
