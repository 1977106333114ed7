package controllers

import khttp "github.com/go-kratos/kratos/v2/transport/http"

// APIPrefix 是业务路由前缀。
const APIPrefix = "/api/v1"

// Routes 汇总全部 Handler，由 HTTP Server 统一挂载。
type Routes struct {
	Videos       *VideoHandler
	Comments     *CommentHandler
	Interactions *InteractionHandler
	Library      *LibraryHandler
	Sessions     *SessionHandler
	Storage      *StorageHandler
}

// NewRoutes 构造 Routes。
func NewRoutes(
	videos *VideoHandler,
	comments *CommentHandler,
	interactions *InteractionHandler,
	library *LibraryHandler,
	sessions *SessionHandler,
	storage *StorageHandler,
) *Routes {
	return &Routes{
		Videos:       videos,
		Comments:     comments,
		Interactions: interactions,
		Library:      library,
		Sessions:     sessions,
		Storage:      storage,
	}
}

// Register 将非空 Handler 挂到 srv 的 APIPrefix 下。
func (r *Routes) Register(srv *khttp.Server) {
	if r == nil || srv == nil {
		return
	}
	router := srv.Route(APIPrefix)
	for _, h := range []interface{ Register(*khttp.Router) }{
		r.Videos, r.Comments, r.Interactions, r.Library, r.Sessions, r.Storage,
	} {
		h.Register(router)
	}
}
