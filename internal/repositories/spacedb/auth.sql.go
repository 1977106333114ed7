package spacedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const authUserColumns = `id, email, password_hash, user_metadata, created_at, updated_at`

const insertAuthUser = `
INSERT INTO outterspace.auth_users (email, password_hash, user_metadata)
VALUES ($1, $2, $3)
RETURNING ` + authUserColumns

type InsertAuthUserParams struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	UserMetadata []byte `json:"user_metadata"`
}

func (q *Queries) InsertAuthUser(ctx context.Context, arg InsertAuthUserParams) (OutterspaceAuthUser, error) {
	row := q.db.QueryRow(ctx, insertAuthUser, arg.Email, arg.PasswordHash, arg.UserMetadata)
	var i OutterspaceAuthUser
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.UserMetadata, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getAuthUserByEmail = `
SELECT ` + authUserColumns + `
FROM outterspace.auth_users
WHERE lower(email) = lower($1)
`

func (q *Queries) GetAuthUserByEmail(ctx context.Context, email string) (OutterspaceAuthUser, error) {
	row := q.db.QueryRow(ctx, getAuthUserByEmail, email)
	var i OutterspaceAuthUser
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.UserMetadata, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getAuthUser = `
SELECT ` + authUserColumns + `
FROM outterspace.auth_users
WHERE id = $1
`

func (q *Queries) GetAuthUser(ctx context.Context, id uuid.UUID) (OutterspaceAuthUser, error) {
	row := q.db.QueryRow(ctx, getAuthUser, id)
	var i OutterspaceAuthUser
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.UserMetadata, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const authSessionColumns = `id, user_id, refresh_token_hash, expires_at, revoked_at, created_at, updated_at`

func scanAuthSession(row interface{ Scan(dest ...any) error }, i *OutterspaceAuthSession) error {
	return row.Scan(
		&i.ID,
		&i.UserID,
		&i.RefreshTokenHash,
		&i.ExpiresAt,
		&i.RevokedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

const insertAuthSession = `
INSERT INTO outterspace.auth_sessions (id, user_id, refresh_token_hash, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + authSessionColumns

type InsertAuthSessionParams struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	RefreshTokenHash string             `json:"refresh_token_hash"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) InsertAuthSession(ctx context.Context, arg InsertAuthSessionParams) (OutterspaceAuthSession, error) {
	row := q.db.QueryRow(ctx, insertAuthSession, arg.ID, arg.UserID, arg.RefreshTokenHash, arg.ExpiresAt)
	var i OutterspaceAuthSession
	err := scanAuthSession(row, &i)
	return i, err
}

const getAuthSession = `
SELECT ` + authSessionColumns + `
FROM outterspace.auth_sessions
WHERE id = $1
`

func (q *Queries) GetAuthSession(ctx context.Context, id uuid.UUID) (OutterspaceAuthSession, error) {
	row := q.db.QueryRow(ctx, getAuthSession, id)
	var i OutterspaceAuthSession
	err := scanAuthSession(row, &i)
	return i, err
}

const getAuthSessionByRefreshHash = `
SELECT ` + authSessionColumns + `
FROM outterspace.auth_sessions
WHERE refresh_token_hash = $1
`

func (q *Queries) GetAuthSessionByRefreshHash(ctx context.Context, refreshTokenHash string) (OutterspaceAuthSession, error) {
	row := q.db.QueryRow(ctx, getAuthSessionByRefreshHash, refreshTokenHash)
	var i OutterspaceAuthSession
	err := scanAuthSession(row, &i)
	return i, err
}

const rotateAuthSession = `
UPDATE outterspace.auth_sessions
SET refresh_token_hash = $3,
    expires_at = $4,
    updated_at = now()
WHERE id = $1
  AND refresh_token_hash = $2
  AND revoked_at IS NULL
RETURNING ` + authSessionColumns

// RotateAuthSessionParams 以旧哈希做乐观校验，并发刷新只有一方成功。
type RotateAuthSessionParams struct {
	ID                  uuid.UUID          `json:"id"`
	OldRefreshTokenHash string             `json:"old_refresh_token_hash"`
	NewRefreshTokenHash string             `json:"new_refresh_token_hash"`
	ExpiresAt           pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) RotateAuthSession(ctx context.Context, arg RotateAuthSessionParams) (OutterspaceAuthSession, error) {
	row := q.db.QueryRow(ctx, rotateAuthSession, arg.ID, arg.OldRefreshTokenHash, arg.NewRefreshTokenHash, arg.ExpiresAt)
	var i OutterspaceAuthSession
	err := scanAuthSession(row, &i)
	return i, err
}

const revokeAuthSession = `
UPDATE outterspace.auth_sessions
SET revoked_at = COALESCE(revoked_at, now()),
    updated_at = now()
WHERE id = $1
`

func (q *Queries) RevokeAuthSession(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, revokeAuthSession, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
