package po

import (
	"time"

	"github.com/google/uuid"
)

// Role 表示档案角色。
type Role string

const (
	// RoleUser 普通用户。
	RoleUser Role = "user"
	// RoleAdmin 管理员，可录入聚合视频。
	RoleAdmin Role = "admin"
)

// Profile 表示 outterspace.profiles 表的行。
type Profile struct {
	ID               uuid.UUID
	Username         *string
	Name             *string
	AvatarURL        *string
	BannerURL        *string
	Bio              *string
	Website          *string
	Role             Role
	SubscribersCount int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
