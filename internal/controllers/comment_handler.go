package controllers

import (
	"context"
	"net/http"

	"github.com/Kermitroid/outterspace2/internal/controllers/dto"
	"github.com/Kermitroid/outterspace2/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationListComments = "/outterspace.v1.CommentService/ListComments"
	OperationAddComment   = "/outterspace.v1.CommentService/AddComment"
	OperationListReplies  = "/outterspace.v1.CommentService/ListReplies"
)

// CommentHandler 处理评论路由。
type CommentHandler struct {
	*BaseHandler
	comments services.CommentServiceInterface
}

// NewCommentHandler 构造 CommentHandler。
func NewCommentHandler(comments services.CommentServiceInterface, base *BaseHandler) *CommentHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &CommentHandler{BaseHandler: base, comments: comments}
}

// Register 挂载路由。
func (h *CommentHandler) Register(r *khttp.Router) {
	if h == nil {
		return
	}
	r.GET("/videos/{id}/comments", h.ListComments)
	r.POST("/videos/{id}/comments", h.AddComment)
	r.GET("/comments/{id}/replies", h.ListReplies)
}

// ListComments 返回视频的顶层评论。
func (h *CommentHandler) ListComments(ctx khttp.Context) error {
	videoID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return h.invoke(ctx, OperationListComments, HandlerTypeQuery, http.StatusOK, videoID, func(c context.Context, _ any) (any, error) {
		comments, err := h.comments.ListComments(c, videoID)
		if err != nil {
			return nil, err
		}
		return dto.NewCommentListResponse(comments), nil
	})
}

// AddComment 发表评论或回复。
func (h *CommentHandler) AddComment(ctx khttp.Context) error {
	videoID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.AddCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return services.ValidationError("invalid body: %v", err)
	}
	return h.invoke(ctx, OperationAddComment, HandlerTypeCommand, http.StatusCreated, &req, func(c context.Context, _ any) (any, error) {
		input, err := req.ToInput(videoID, IdentityFromContext(c).UserID)
		if err != nil {
			return nil, services.ValidationError("%v", err)
		}
		return h.comments.AddComment(c, input)
	})
}

// ListReplies 返回某条评论的回复。
func (h *CommentHandler) ListReplies(ctx khttp.Context) error {
	parentID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return h.invoke(ctx, OperationListReplies, HandlerTypeQuery, http.StatusOK, parentID, func(c context.Context, _ any) (any, error) {
		replies, err := h.comments.ListReplies(c, parentID)
		if err != nil {
			return nil, err
		}
		return dto.NewCommentListResponse(replies), nil
	})
}
