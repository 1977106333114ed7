package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/google/uuid"
)

// ProfileFields 是档案的可更新字段，nil 表示不修改。
type ProfileFields struct {
	Username  *string
	Name      *string
	AvatarURL *string
	BannerURL *string
	Bio       *string
	Website   *string
}

// Empty 判断是否没有任何待更新字段。
func (f ProfileFields) Empty() bool {
	return f.Username == nil && f.Name == nil && f.AvatarURL == nil &&
		f.BannerURL == nil && f.Bio == nil && f.Website == nil
}

// BuildUpdateProfileParams 构造 UpdateProfileParams。
func BuildUpdateProfileParams(id uuid.UUID, fields ProfileFields) spacedb.UpdateProfileParams {
	return spacedb.UpdateProfileParams{
		ID:        id,
		Username:  ToPgText(fields.Username),
		Name:      ToPgText(fields.Name),
		AvatarUrl: ToPgText(fields.AvatarURL),
		BannerUrl: ToPgText(fields.BannerURL),
		Bio:       ToPgText(fields.Bio),
		Website:   ToPgText(fields.Website),
	}
}

// ProfileFromRow 将 spacedb 档案行转换为领域对象。
func ProfileFromRow(row spacedb.OutterspaceProfile) *po.Profile {
	return &po.Profile{
		ID:               row.ID,
		Username:         textPtr(row.Username),
		Name:             textPtr(row.Name),
		AvatarURL:        textPtr(row.AvatarUrl),
		BannerURL:        textPtr(row.BannerUrl),
		Bio:              textPtr(row.Bio),
		Website:          textPtr(row.Website),
		Role:             po.Role(row.Role),
		SubscribersCount: row.SubscribersCount,
		CreatedAt:        mustTimestamp(row.CreatedAt),
		UpdatedAt:        mustTimestamp(row.UpdatedAt),
	}
}

// BuildInsertAuthUserParams 序列化注册元数据。
func BuildInsertAuthUserParams(email, passwordHash string, meta po.UserMetadata) (spacedb.InsertAuthUserParams, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return spacedb.InsertAuthUserParams{}, fmt.Errorf("marshal user metadata: %w", err)
	}
	return spacedb.InsertAuthUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		UserMetadata: payload,
	}, nil
}

// AuthUserFromRow 转换认证用户行。
func AuthUserFromRow(row spacedb.OutterspaceAuthUser) (*po.AuthUser, error) {
	var meta po.UserMetadata
	if len(row.UserMetadata) > 0 {
		if err := json.Unmarshal(row.UserMetadata, &meta); err != nil {
			return nil, fmt.Errorf("unmarshal user metadata: %w", err)
		}
	}
	return &po.AuthUser{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Metadata:     meta,
		CreatedAt:    mustTimestamp(row.CreatedAt),
		UpdatedAt:    mustTimestamp(row.UpdatedAt),
	}, nil
}

// AuthSessionFromRow 转换会话行。
func AuthSessionFromRow(row spacedb.OutterspaceAuthSession) *po.AuthSession {
	return &po.AuthSession{
		ID:               row.ID,
		UserID:           row.UserID,
		RefreshTokenHash: row.RefreshTokenHash,
		ExpiresAt:        mustTimestamp(row.ExpiresAt),
		RevokedAt:        timestampPtr(row.RevokedAt),
		CreatedAt:        mustTimestamp(row.CreatedAt),
		UpdatedAt:        mustTimestamp(row.UpdatedAt),
	}
}
