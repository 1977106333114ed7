package controllers

import (
	"context"
	"net/http"

	"github.com/Kermitroid/outterspace2/internal/controllers/dto"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

const (
	OperationLikedVideos   = "/outterspace.v1.LibraryService/LikedVideos"
	OperationSavedVideos   = "/outterspace.v1.LibraryService/SavedVideos"
	OperationHistoryVideos = "/outterspace.v1.LibraryService/HistoryVideos"
	OperationUserVideos    = "/outterspace.v1.LibraryService/UserVideos"
	OperationLibrary       = "/outterspace.v1.LibraryService/Library"
)

// LibraryHandler 处理个人视频库路由。
type LibraryHandler struct {
	*BaseHandler
	library services.LibraryServiceInterface
}

// NewLibraryHandler 构造 LibraryHandler。
func NewLibraryHandler(library services.LibraryServiceInterface, base *BaseHandler) *LibraryHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &LibraryHandler{BaseHandler: base, library: library}
}

// Register 挂载路由。
func (h *LibraryHandler) Register(r *khttp.Router) {
	if h == nil {
		return
	}
	r.GET("/me/liked", h.LikedVideos)
	r.GET("/me/saved", h.SavedVideos)
	r.GET("/me/history", h.HistoryVideos)
	r.GET("/me/library", h.Library)
	r.GET("/users/{id}/videos", h.UserVideos)
}

// LikedVideos 返回当前用户点赞的视频。
func (h *LibraryHandler) LikedVideos(ctx khttp.Context) error {
	return h.serveOwnList(ctx, OperationLikedVideos, h.library.LikedVideos)
}

// SavedVideos 返回当前用户收藏的视频。
func (h *LibraryHandler) SavedVideos(ctx khttp.Context) error {
	return h.serveOwnList(ctx, OperationSavedVideos, h.library.SavedVideos)
}

// HistoryVideos 返回当前用户最近观看的视频。
func (h *LibraryHandler) HistoryVideos(ctx khttp.Context) error {
	return h.serveOwnList(ctx, OperationHistoryVideos, h.library.HistoryVideos)
}

// UserVideos 返回指定用户上传的已发布视频。
func (h *LibraryHandler) UserVideos(ctx khttp.Context) error {
	userID, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return h.invoke(ctx, OperationUserVideos, HandlerTypeQuery, http.StatusOK, userID, func(c context.Context, _ any) (any, error) {
		return dto.NewVideoListResponse(h.library.UploadedVideos(c, userID)), nil
	})
}

// Library 一次返回当前用户的四个列表。
func (h *LibraryHandler) Library(ctx khttp.Context) error {
	return h.invoke(ctx, OperationLibrary, HandlerTypeQuery, http.StatusOK, nil, func(c context.Context, _ any) (any, error) {
		return h.library.Library(c, IdentityFromContext(c).UserID)
	})
}

func (h *LibraryHandler) serveOwnList(ctx khttp.Context, operation string, list func(context.Context, uuid.UUID) []*vo.Video) error {
	return h.invoke(ctx, operation, HandlerTypeQuery, http.StatusOK, nil, func(c context.Context, _ any) (any, error) {
		identity := IdentityFromContext(c)
		if identity.Anonymous() {
			return nil, services.AuthenticationRequired("you must be logged in to view your library")
		}
		return dto.NewVideoListResponse(list(c, identity.UserID)), nil
	})
}
