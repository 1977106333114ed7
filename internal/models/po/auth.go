package po

import (
	"time"

	"github.com/google/uuid"
)

// UserMetadata 是注册时写入 auth_users.user_metadata 的字段。
type UserMetadata struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
}

// AuthUser 表示 outterspace.auth_users 表的行。
type AuthUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Metadata     UserMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthSession 表示 outterspace.auth_sessions 表的行。
type AuthSession struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RefreshTokenHash string
	ExpiresAt        time.Time
	RevokedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Active 判断会话在给定时刻是否仍然有效。
func (s *AuthSession) Active(now time.Time) bool {
	if s == nil || s.RevokedAt != nil {
		return false
	}
	return now.Before(s.ExpiresAt)
}
