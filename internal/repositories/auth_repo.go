package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrAuthUserNotFound 表示认证用户不存在。
	ErrAuthUserNotFound = errors.New("auth user not found")
	// ErrEmailTaken 表示邮箱已被注册。
	ErrEmailTaken = errors.New("email already registered")
	// ErrAuthSessionNotFound 表示会话不存在或刷新令牌已轮换。
	ErrAuthSessionNotFound = errors.New("auth session not found")
)

const pgUniqueViolation = "23505"

// AuthRepository 访问 auth_users 与 auth_sessions。
type AuthRepository struct {
	db      *pgxpool.Pool
	queries *spacedb.Queries
	log     *log.Helper
}

// NewAuthRepository 构造仓储实例。
func NewAuthRepository(db *pgxpool.Pool, logger log.Logger) *AuthRepository {
	return &AuthRepository{
		db:      db,
		queries: spacedb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *AuthRepository) q(sess txmanager.Session) *spacedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// CreateUser 注册认证用户，邮箱重复时返回 ErrEmailTaken。
func (r *AuthRepository) CreateUser(ctx context.Context, sess txmanager.Session, email, passwordHash string, meta po.UserMetadata) (*po.AuthUser, error) {
	params, err := mappers.BuildInsertAuthUserParams(email, passwordHash, meta)
	if err != nil {
		return nil, err
	}
	row, err := r.q(sess).InsertAuthUser(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}
		r.log.WithContext(ctx).Errorf("insert auth user failed: err=%v", err)
		return nil, fmt.Errorf("insert auth user: %w", err)
	}
	return mappers.AuthUserFromRow(row)
}

// GetUserByEmail 按邮箱（忽略大小写）查找用户。
func (r *AuthRepository) GetUserByEmail(ctx context.Context, sess txmanager.Session, email string) (*po.AuthUser, error) {
	row, err := r.q(sess).GetAuthUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthUserNotFound
		}
		return nil, fmt.Errorf("get auth user by email: %w", err)
	}
	return mappers.AuthUserFromRow(row)
}

// GetUser 按 ID 查找用户。
func (r *AuthRepository) GetUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (*po.AuthUser, error) {
	row, err := r.q(sess).GetAuthUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthUserNotFound
		}
		return nil, fmt.Errorf("get auth user: %w", err)
	}
	return mappers.AuthUserFromRow(row)
}

// CreateSession 写入刷新会话。
func (r *AuthRepository) CreateSession(ctx context.Context, sess txmanager.Session, sessionID, userID uuid.UUID, refreshHash string, expiresAt time.Time) (*po.AuthSession, error) {
	row, err := r.q(sess).InsertAuthSession(ctx, spacedb.InsertAuthSessionParams{
		ID:               sessionID,
		UserID:           userID,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        mappers.ToPgTimestamptz(expiresAt),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert auth session failed: user=%s err=%v", userID, err)
		return nil, fmt.Errorf("insert auth session: %w", err)
	}
	return mappers.AuthSessionFromRow(row), nil
}

// GetSession 按 ID 返回会话。
func (r *AuthRepository) GetSession(ctx context.Context, sess txmanager.Session, sessionID uuid.UUID) (*po.AuthSession, error) {
	row, err := r.q(sess).GetAuthSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthSessionNotFound
		}
		return nil, fmt.Errorf("get auth session: %w", err)
	}
	return mappers.AuthSessionFromRow(row), nil
}

// SessionActive 判断会话存在、属于 userID 且未吊销未过期；会话不存在时返回 false。
func (r *AuthRepository) SessionActive(ctx context.Context, userID, sessionID uuid.UUID) (bool, error) {
	row, err := r.GetSession(ctx, nil, sessionID)
	if err != nil {
		if errors.Is(err, ErrAuthSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return row.UserID == userID && row.Active(time.Now()), nil
}

// GetSessionByRefreshHash 按刷新令牌哈希返回会话。
func (r *AuthRepository) GetSessionByRefreshHash(ctx context.Context, sess txmanager.Session, refreshHash string) (*po.AuthSession, error) {
	row, err := r.q(sess).GetAuthSessionByRefreshHash(ctx, refreshHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthSessionNotFound
		}
		return nil, fmt.Errorf("get auth session by refresh hash: %w", err)
	}
	return mappers.AuthSessionFromRow(row), nil
}

// RotateSession 以旧哈希为条件轮换刷新令牌；旧哈希不匹配或已吊销时返回 ErrAuthSessionNotFound。
func (r *AuthRepository) RotateSession(ctx context.Context, sess txmanager.Session, sessionID uuid.UUID, oldHash, newHash string, expiresAt time.Time) (*po.AuthSession, error) {
	row, err := r.q(sess).RotateAuthSession(ctx, spacedb.RotateAuthSessionParams{
		ID:                  sessionID,
		OldRefreshTokenHash: oldHash,
		NewRefreshTokenHash: newHash,
		ExpiresAt:           mappers.ToPgTimestamptz(expiresAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthSessionNotFound
		}
		r.log.WithContext(ctx).Errorf("rotate auth session failed: session=%s err=%v", sessionID, err)
		return nil, fmt.Errorf("rotate auth session: %w", err)
	}
	return mappers.AuthSessionFromRow(row), nil
}

// RevokeSession 吊销会话，重复吊销保持首次时间。
func (r *AuthRepository) RevokeSession(ctx context.Context, sess txmanager.Session, sessionID uuid.UUID) error {
	affected, err := r.q(sess).RevokeAuthSession(ctx, sessionID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("revoke auth session failed: session=%s err=%v", sessionID, err)
		return fmt.Errorf("revoke auth session: %w", err)
	}
	if affected == 0 {
		return ErrAuthSessionNotFound
	}
	return nil
}
