// Package auth 签发与校验访问令牌，并维护浏览器会话 Cookie。
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken 表示访问令牌无法通过校验。
var ErrInvalidToken = errors.New("invalid access token")

const refreshTokenBytes = 32

// Config 控制令牌签发。
type Config struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Claims 是访问令牌的载荷，Subject 为用户 ID。
type Claims struct {
	SessionID string  `json:"sid"`
	Role      po.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID 解析 Subject。
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Session 解析会话 ID，缺失时返回 uuid.Nil。
func (c *Claims) Session() uuid.UUID {
	id, err := uuid.Parse(c.SessionID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Issuer 使用 HS256 签发访问令牌，刷新令牌为随机串，仅保存其 SHA-256 摘要。
type Issuer struct {
	cfg Config
	now func() time.Time
}

// NewIssuer 构造 Issuer。
func NewIssuer(cfg Config) (*Issuer, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("auth: signing secret is required")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("auth: token ttl must be positive")
	}
	return &Issuer{cfg: cfg, now: time.Now}, nil
}

// IssueAccessToken 签发访问令牌。
func (i *Issuer) IssueAccessToken(userID, sessionID uuid.UUID, role po.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.cfg.AccessTTL)
	claims := Claims{
		SessionID: sessionID.String(),
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse 校验签名、签发者与有效期。
func (i *Issuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	}
	if i.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.cfg.Issuer))
	}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.cfg.Secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return claims, nil
}

// NewRefreshToken 生成刷新令牌及其摘要。
func (i *Issuer) NewRefreshToken() (string, string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	return token, i.HashRefreshToken(token), nil
}

// HashRefreshToken 返回刷新令牌的十六进制 SHA-256。
func (i *Issuer) HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RefreshTTL 返回刷新令牌有效期。
func (i *Issuer) RefreshTTL() time.Duration {
	return i.cfg.RefreshTTL
}
