package controllers

import (
	"context"
	"net/http"

	"github.com/Kermitroid/outterspace2/internal/controllers/dto"
	"github.com/Kermitroid/outterspace2/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

const (
	OperationListVideos     = "/outterspace.v1.VideoService/ListVideos"
	OperationGetVideo       = "/outterspace.v1.VideoService/GetVideo"
	OperationAddVideo       = "/outterspace.v1.VideoService/AddVideo"
	OperationListCategories = "/outterspace.v1.VideoService/ListCategories"
)

// VideoHandler 处理视频目录与分类路由。
type VideoHandler struct {
	*BaseHandler
	videos     services.VideoServiceInterface
	categories services.CategoryServiceInterface
	history    services.HistoryServiceInterface
	log        *log.Helper
}

// NewVideoHandler 构造 VideoHandler。
func NewVideoHandler(
	videos services.VideoServiceInterface,
	categories services.CategoryServiceInterface,
	history services.HistoryServiceInterface,
	base *BaseHandler,
	logger log.Logger,
) *VideoHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &VideoHandler{
		BaseHandler: base,
		videos:      videos,
		categories:  categories,
		history:     history,
		log:         log.NewHelper(logger),
	}
}

// Register 挂载路由。
func (h *VideoHandler) Register(r *khttp.Router) {
	if h == nil {
		return
	}
	r.GET("/videos", h.ListVideos)
	r.POST("/videos", h.AddVideo)
	r.GET("/videos/{id}", h.GetVideo)
	r.GET("/categories", h.ListCategories)
}

// ListVideos 按查询参数返回已发布视频，读取失败时返回空列表。
func (h *VideoHandler) ListVideos(ctx khttp.Context) error {
	var query dto.ListVideosQuery
	if err := ctx.BindQuery(&query); err != nil {
		return services.ValidationError("invalid query: %v", err)
	}
	filter, err := query.ToFilter()
	if err != nil {
		return services.ValidationError("%v", err)
	}
	return h.invoke(ctx, OperationListVideos, HandlerTypeQuery, http.StatusOK, &filter, func(c context.Context, _ any) (any, error) {
		return dto.NewVideoListResponse(h.videos.ListVideos(c, filter)), nil
	})
}

// GetVideo 返回视频详情；登录用户同时写入观看历史，写入失败不影响响应。
func (h *VideoHandler) GetVideo(ctx khttp.Context) error {
	videoID, err := uuid.Parse(ctx.Vars().Get("id"))
	if err != nil {
		return services.NotFound("video %q not found", ctx.Vars().Get("id"))
	}
	return h.invoke(ctx, OperationGetVideo, HandlerTypeQuery, http.StatusOK, videoID, func(c context.Context, _ any) (any, error) {
		detail, err := h.videos.GetVideoByID(c, videoID)
		if err != nil {
			return nil, err
		}
		if identity := IdentityFromContext(c); !identity.Anonymous() && h.history != nil {
			if err := h.history.RecordView(c, identity.UserID, videoID); err != nil {
				h.log.WithContext(c).Warnf("record view skipped: user=%s video=%s err=%v", identity.UserID, videoID, err)
			}
		}
		return detail, nil
	})
}

// AddVideo 发布或暂存新视频。
func (h *VideoHandler) AddVideo(ctx khttp.Context) error {
	var req dto.AddVideoRequest
	if err := ctx.Bind(&req); err != nil {
		return services.ValidationError("invalid body: %v", err)
	}
	return h.invoke(ctx, OperationAddVideo, HandlerTypeCommand, http.StatusCreated, &req, func(c context.Context, _ any) (any, error) {
		return h.videos.AddVideo(c, req.ToInput(), IdentityFromContext(c).UserID)
	})
}

// ListCategories 返回带 "All" 的分类列表。
func (h *VideoHandler) ListCategories(ctx khttp.Context) error {
	return h.invoke(ctx, OperationListCategories, HandlerTypeQuery, http.StatusOK, nil, func(c context.Context, _ any) (any, error) {
		return dto.CategoryListResponse{Categories: h.categories.ListCategories(c)}, nil
	})
}
