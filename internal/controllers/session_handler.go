package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/Kermitroid/outterspace2/internal/controllers/dto"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"golang.org/x/oauth2"
)

const (
	OperationSignUp        = "/outterspace.v1.SessionService/SignUp"
	OperationSignIn        = "/outterspace.v1.SessionService/SignIn"
	OperationRefresh       = "/outterspace.v1.SessionService/Refresh"
	OperationSignOut       = "/outterspace.v1.SessionService/SignOut"
	OperationSession       = "/outterspace.v1.SessionService/Session"
	OperationUpdateProfile = "/outterspace.v1.SessionService/UpdateProfile"
)

// SessionCookies 在浏览器 Cookie 中保存令牌对。
type SessionCookies interface {
	Save(w http.ResponseWriter, r *http.Request, token *oauth2.Token) error
	Load(r *http.Request) *oauth2.Token
	Clear(w http.ResponseWriter, r *http.Request) error
}

// SessionHandler 处理注册、登录、刷新、登出与档案更新。
type SessionHandler struct {
	*BaseHandler
	sessions services.SessionServiceInterface
	cookies  SessionCookies
	log      *log.Helper
}

// NewSessionHandler 构造 SessionHandler，cookies 为 nil 时只通过响应体返回令牌。
func NewSessionHandler(sessions services.SessionServiceInterface, cookies SessionCookies, base *BaseHandler, logger log.Logger) *SessionHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &SessionHandler{
		BaseHandler: base,
		sessions:    sessions,
		cookies:     cookies,
		log:         log.NewHelper(logger),
	}
}

// Register 挂载路由。
func (h *SessionHandler) Register(r *khttp.Router) {
	if h == nil {
		return
	}
	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/login", h.SignIn)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.SignOut)
	r.GET("/auth/session", h.Session)
	r.PATCH("/profile", h.UpdateProfile)
}

// SignUp 注册并直接登录。
func (h *SessionHandler) SignUp(ctx khttp.Context) error {
	var req dto.SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return services.ValidationError("invalid body: %v", err)
	}
	return h.invoke(ctx, OperationSignUp, HandlerTypeCommand, http.StatusCreated, &req, func(c context.Context, _ any) (any, error) {
		session, err := h.sessions.SignUp(c, req.ToInput())
		if err != nil {
			return nil, err
		}
		h.saveCookie(ctx, session)
		return session, nil
	})
}

// SignIn 邮箱密码登录。
func (h *SessionHandler) SignIn(ctx khttp.Context) error {
	var req dto.SignInRequest
	if err := ctx.Bind(&req); err != nil {
		return services.ValidationError("invalid body: %v", err)
	}
	return h.invoke(ctx, OperationSignIn, HandlerTypeCommand, http.StatusOK, &req, func(c context.Context, _ any) (any, error) {
		session, err := h.sessions.SignIn(c, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		h.saveCookie(ctx, session)
		return session, nil
	})
}

// Refresh 轮换刷新令牌。
func (h *SessionHandler) Refresh(ctx khttp.Context) error {
	var req dto.RefreshRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&req); err != nil {
			return services.ValidationError("invalid body: %v", err)
		}
	}
	if strings.TrimSpace(req.RefreshToken) == "" && h.cookies != nil {
		if saved := h.cookies.Load(ctx.Request()); saved != nil {
			req.RefreshToken = saved.RefreshToken
		}
	}
	return h.invoke(ctx, OperationRefresh, HandlerTypeCommand, http.StatusOK, &req, func(c context.Context, _ any) (any, error) {
		session, err := h.sessions.Refresh(c, req.RefreshToken)
		if err != nil {
			h.clearCookie(ctx)
			return nil, err
		}
		h.saveCookie(ctx, session)
		return session, nil
	})
}

// SignOut 吊销当前会话并清除 Cookie，匿名请求同样返回 204。
func (h *SessionHandler) SignOut(ctx khttp.Context) error {
	return h.invoke(ctx, OperationSignOut, HandlerTypeCommand, http.StatusNoContent, nil, func(c context.Context, _ any) (any, error) {
		identity := IdentityFromContext(c)
		if !identity.Anonymous() {
			if err := h.sessions.SignOut(c, identity.SessionID); err != nil {
				return nil, err
			}
		}
		h.clearCookie(ctx)
		return nil, nil
	})
}

// Session 返回当前登录状态。
func (h *SessionHandler) Session(ctx khttp.Context) error {
	return h.invoke(ctx, OperationSession, HandlerTypeQuery, http.StatusOK, nil, func(c context.Context, _ any) (any, error) {
		return h.sessions.Resume(c, IdentityFromContext(c))
	})
}

// UpdateProfile 部分更新当前用户档案。
func (h *SessionHandler) UpdateProfile(ctx khttp.Context) error {
	var patch vo.ProfilePatch
	if err := ctx.Bind(&patch); err != nil {
		return services.ValidationError("invalid body: %v", err)
	}
	return h.invoke(ctx, OperationUpdateProfile, HandlerTypeCommand, http.StatusOK, &patch, func(c context.Context, _ any) (any, error) {
		return h.sessions.UpdateProfile(c, IdentityFromContext(c), patch)
	})
}

func (h *SessionHandler) saveCookie(ctx khttp.Context, session *vo.Session) {
	if h.cookies == nil || session == nil || session.Token == nil {
		return
	}
	if err := h.cookies.Save(ctx.Response(), ctx.Request(), session.Token); err != nil {
		h.log.WithContext(ctx).Warnf("save session cookie failed: %v", err)
	}
}

func (h *SessionHandler) clearCookie(ctx khttp.Context) {
	if h.cookies == nil {
		return
	}
	if err := h.cookies.Clear(ctx.Response(), ctx.Request()); err != nil {
		h.log.WithContext(ctx).Warnf("clear session cookie failed: %v", err)
	}
}
