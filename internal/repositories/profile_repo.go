package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProfileNotFound 表示档案不存在。
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository 提供访问 outterspace.profiles 的接口。
type ProfileRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewProfileRepository 构造仓储实例。
func NewProfileRepository(db *pgxpool.Pool, logger log.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateProfileInput 描述注册时写入的档案初值。
type CreateProfileInput struct {
	ID        uuid.UUID
	Username  *string
	Name      *string
	AvatarURL *string
	Role      po.Role
}

func (r *ProfileRepository) q(sess txmanager.Session) *spacedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// Create 写入档案。
func (r *ProfileRepository) Create(ctx context.Context, sess txmanager.Session, input CreateProfileInput) (*po.Profile, error) {
	role := input.Role
	if role == "" {
		role = po.RoleUser
	}
	row, err := r.q(sess).InsertProfile(ctx, spacedb.InsertProfileParams{
		ID:        input.ID,
		Username:  mappers.ToPgText(input.Username),
		Name:      mappers.ToPgText(input.Name),
		AvatarUrl: mappers.ToPgText(input.AvatarURL),
		Role:      string(role),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert profile failed: user=%s err=%v", input.ID, err)
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return mappers.ProfileFromRow(row), nil
}

// Get 返回档案记录。
func (r *ProfileRepository) Get(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (*po.Profile, error) {
	row, err := r.q(sess).GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return mappers.ProfileFromRow(row), nil
}

// Update 仅更新非 nil 字段，同时刷新 updated_at。
func (r *ProfileRepository) Update(ctx context.Context, sess txmanager.Session, userID uuid.UUID, fields mappers.ProfileFields) (*po.Profile, error) {
	row, err := r.q(sess).UpdateProfile(ctx, mappers.BuildUpdateProfileParams(userID, fields))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		r.log.WithContext(ctx).Errorf("update profile failed: user=%s err=%v", userID, err)
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return mappers.ProfileFromRow(row), nil
}
