package spacedb

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutterspaceAuthUser struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	UserMetadata []byte             `json:"user_metadata"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type OutterspaceAuthSession struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	RefreshTokenHash string             `json:"refresh_token_hash"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
	RevokedAt        pgtype.Timestamptz `json:"revoked_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type OutterspaceProfile struct {
	ID               uuid.UUID          `json:"id"`
	Username         pgtype.Text        `json:"username"`
	Name             pgtype.Text        `json:"name"`
	AvatarUrl        pgtype.Text        `json:"avatar_url"`
	BannerUrl        pgtype.Text        `json:"banner_url"`
	Bio              pgtype.Text        `json:"bio"`
	Website          pgtype.Text        `json:"website"`
	Role             string             `json:"role"`
	SubscribersCount int64              `json:"subscribers_count"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type OutterspaceCategory struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type OutterspaceVideo struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             pgtype.UUID        `json:"user_id"`
	ProfileID          pgtype.UUID        `json:"profile_id"`
	Title              string             `json:"title"`
	Description        pgtype.Text        `json:"description"`
	VideoUrl           string             `json:"video_url"`
	ThumbnailUrl       pgtype.Text        `json:"thumbnail_url"`
	DurationSeconds    pgtype.Int4        `json:"duration_seconds"`
	CategoryID         pgtype.UUID        `json:"category_id"`
	Tags               []string           `json:"tags"`
	ViewsCount         int64              `json:"views_count"`
	LikesCount         int64              `json:"likes_count"`
	IsFeatured         bool               `json:"is_featured"`
	IsTrending         bool               `json:"is_trending"`
	PublishedAt        pgtype.Timestamptz `json:"published_at"`
	SourceType         string             `json:"source_type"`
	OriginalSourceLink pgtype.Text        `json:"original_source_link"`
	StoragePath        pgtype.Text        `json:"storage_path"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type OutterspaceComment struct {
	ID              uuid.UUID          `json:"id"`
	VideoID         uuid.UUID          `json:"video_id"`
	UserID          pgtype.UUID        `json:"user_id"`
	ParentCommentID pgtype.UUID        `json:"parent_comment_id"`
	Content         string             `json:"content"`
	LikesCount      int32              `json:"likes_count"`
	DislikesCount   int32              `json:"dislikes_count"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type OutterspaceVideoHistory struct {
	UserID    uuid.UUID          `json:"user_id"`
	VideoID   uuid.UUID          `json:"video_id"`
	WatchedAt pgtype.Timestamptz `json:"watched_at"`
}
