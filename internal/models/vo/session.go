package vo

import (
	"net/url"
	"strings"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// DefaultAvatarURL 返回以邮箱为种子的占位头像。
func DefaultAvatarURL(email string) string {
	return "https://api.dicebear.com/7.x/thumbs/svg?seed=" + url.QueryEscape(email)
}

// CurrentUser 是认证用户与档案合并后的身份视图。
type CurrentUser struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Username         string     `json:"username"`
	AvatarURL        string     `json:"avatar_url"`
	BannerURL        *string    `json:"banner_url"`
	Bio              *string    `json:"bio"`
	Website          *string    `json:"website"`
	Role             po.Role    `json:"role"`
	SubscribersCount int64      `json:"subscribers_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// IsAdmin 判断是否管理员。
func (u *CurrentUser) IsAdmin() bool {
	return u != nil && u.Role == po.RoleAdmin
}

// Session 是一次登录的显式状态；User 为 nil 表示匿名。
type Session struct {
	ID     uuid.UUID     `json:"id"`
	User   *CurrentUser  `json:"user"`
	Token  *oauth2.Token `json:"token,omitempty"`
	Notice string        `json:"notice,omitempty"`
}

// Authenticated 判断会话是否已认证。
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// ProfilePatch 描述档案的部分更新，nil 字段保持不变。
type ProfilePatch struct {
	Username  *string `json:"username,omitempty"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	BannerURL *string `json:"banner_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Website   *string `json:"website,omitempty"`
}

// Empty 判断是否没有待更新字段。
func (p ProfilePatch) Empty() bool {
	return p.Username == nil && p.Name == nil && p.AvatarURL == nil &&
		p.BannerURL == nil && p.Bio == nil && p.Website == nil
}

// MergeProfile 以认证用户为底，叠加默认值，再叠加档案行中非空的字段。
// profile 为 nil 时仅使用默认值。
func MergeProfile(user *po.AuthUser, profile *po.Profile) *CurrentUser {
	if user == nil {
		return nil
	}
	local := emailLocalPart(user.Email)
	out := &CurrentUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      firstNonEmpty(user.Metadata.Name, local),
		Username:  firstNonEmpty(user.Metadata.Username, local),
		AvatarURL: DefaultAvatarURL(user.Email),
		Role:      po.RoleUser,
		CreatedAt: user.CreatedAt,
	}
	if profile == nil {
		return out
	}
	if v := deref(profile.Name); v != "" {
		out.Name = v
	}
	if v := deref(profile.Username); v != "" {
		out.Username = v
	}
	if v := deref(profile.AvatarURL); v != "" {
		out.AvatarURL = v
	}
	out.BannerURL = profile.BannerURL
	out.Bio = profile.Bio
	out.Website = profile.Website
	if profile.Role != "" {
		out.Role = profile.Role
	}
	out.SubscribersCount = profile.SubscribersCount
	if !profile.CreatedAt.IsZero() {
		out.CreatedAt = profile.CreatedAt
	}
	if !profile.UpdatedAt.IsZero() {
		updated := profile.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

// ApplyPatch 返回替换了 patch 中已设置字段的副本，其余字段保持不变。
func (u *CurrentUser) ApplyPatch(patch ProfilePatch, updatedAt time.Time) *CurrentUser {
	if u == nil {
		return nil
	}
	out := *u
	if patch.Username != nil {
		out.Username = *patch.Username
	}
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		out.AvatarURL = *patch.AvatarURL
	}
	if patch.BannerURL != nil {
		out.BannerURL = cloneString(patch.BannerURL)
	}
	if patch.Bio != nil {
		out.Bio = cloneString(patch.Bio)
	}
	if patch.Website != nil {
		out.Website = cloneString(patch.Website)
	}
	if !updatedAt.IsZero() {
		out.UpdatedAt = &updatedAt
	}
	return &out
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
