package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
)

const (
	cookieAccessKey  = "access_token"
	cookieRefreshKey = "refresh_token"
	cookieExpiryKey  = "expiry"
)

// CookieConfig 控制浏览器会话 Cookie。
type CookieConfig struct {
	Name   string
	Secret []byte
	Secure bool
	MaxAge time.Duration
}

// CookieStore 把令牌对保存在签名 Cookie 中，供浏览器客户端免去手动携带 Authorization 头。
type CookieStore struct {
	name  string
	store *sessions.CookieStore
}

// NewCookieStore 构造 CookieStore。
func NewCookieStore(cfg CookieConfig) *CookieStore {
	store := sessions.NewCookieStore(cfg.Secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{name: cfg.Name, store: store}
}

// Save 写入令牌对。
func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, token *oauth2.Token) error {
	if token == nil {
		return nil
	}
	sess, _ := c.store.Get(r, c.name)
	sess.Values[cookieAccessKey] = token.AccessToken
	sess.Values[cookieRefreshKey] = token.RefreshToken
	sess.Values[cookieExpiryKey] = token.Expiry.Unix()
	return sess.Save(r, w)
}

// Load 读取令牌对；Cookie 缺失或签名无效时返回 nil。
func (c *CookieStore) Load(r *http.Request) *oauth2.Token {
	sess, err := c.store.Get(r, c.name)
	if err != nil || sess.IsNew {
		return nil
	}
	access, _ := sess.Values[cookieAccessKey].(string)
	refresh, _ := sess.Values[cookieRefreshKey].(string)
	if access == "" && refresh == "" {
		return nil
	}
	token := &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}
	if expiry, ok := sess.Values[cookieExpiryKey].(int64); ok {
		token.Expiry = time.Unix(expiry, 0)
	}
	return token
}

// Clear 使 Cookie 立即过期。
func (c *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := c.store.Get(r, c.name)
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	return sess.Save(r, w)
}
