package controllers

import (
	"context"
	"net/http"

	"github.com/Kermitroid/outterspace2/internal/controllers/dto"
	"github.com/Kermitroid/outterspace2/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationToggleLike       = "/outterspace.v1.InteractionService/ToggleLike"
	OperationToggleSave       = "/outterspace.v1.InteractionService/ToggleSave"
	OperationInteractionState = "/outterspace.v1.InteractionService/InteractionState"
)

// InteractionHandler 处理点赞与收藏路由。
type InteractionHandler struct {
	*BaseHandler
	interactions services.InteractionServiceInterface
}

// NewInteractionHandler 构造 InteractionHandler。
func NewInteractionHandler(interactions services.InteractionServiceInterface, base *BaseHandler) *InteractionHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &InteractionHandler{BaseHandler: base, interactions: interactions}
}

// Register 挂载路由。
func (h *InteractionHandler) Register(r *khttp.Router) {
	if h == nil {
		return
	}
	r.POST("/videos/{id}/like", h.ToggleLike)
	r.POST("/videos/{id}/save", h.ToggleSave)
	r.GET("/videos/{id}/interaction", h.State)
}

// ToggleLike 切换点赞状态。
func (h *InteractionHandler) ToggleLike(ctx khttp.Context) error {
	videoID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return h.invoke(ctx, OperationToggleLike, HandlerTypeCommand, http.StatusOK, videoID, func(c context.Context, _ any) (any, error) {
		identity := IdentityFromContext(c)
		if identity.Anonymous() {
			return nil, services.AuthenticationRequired("you must be logged in to like videos")
		}
		liked, err := h.interactions.ToggleLike(c, identity.UserID, videoID)
		if err != nil {
			return nil, err
		}
		return dto.ToggleLikeResponse{Liked: liked}, nil
	})
}

// ToggleSave 切换收藏状态。
func (h *InteractionHandler) ToggleSave(ctx khttp.Context) error {
	videoID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return h.invoke(ctx, OperationToggleSave, HandlerTypeCommand, http.StatusOK, videoID, func(c context.Context, _ any) (any, error) {
		identity := IdentityFromContext(c)
		if identity.Anonymous() {
			return nil, services.AuthenticationRequired("you must be logged in to save videos")
		}
		saved, err := h.interactions.ToggleSave(c, identity.UserID, videoID)
		if err != nil {
			return nil, err
		}
		return dto.ToggleSaveResponse{Saved: saved}, nil
	})
}

// State 返回当前用户对视频的点赞与收藏状态，匿名请求两者均为 false。
func (h *InteractionHandler) State(ctx khttp.Context) error {
	videoID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return h.invoke(ctx, OperationInteractionState, HandlerTypeQuery, http.StatusOK, videoID, func(c context.Context, _ any) (any, error) {
		identity := IdentityFromContext(c)
		if identity.Anonymous() {
			return services.InteractionState{}, nil
		}
		return h.interactions.InteractionState(c, identity.UserID, videoID), nil
	})
}
