package spacedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const profileColumns = `id, username, name, avatar_url, banner_url, bio, website, role, subscribers_count, created_at, updated_at`

func scanProfile(row interface{ Scan(dest ...any) error }, i *OutterspaceProfile) error {
	return row.Scan(
		&i.ID,
		&i.Username,
		&i.Name,
		&i.AvatarUrl,
		&i.BannerUrl,
		&i.Bio,
		&i.Website,
		&i.Role,
		&i.SubscribersCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

const insertProfile = `
INSERT INTO outterspace.profiles (id, username, name, avatar_url, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + profileColumns

type InsertProfileParams struct {
	ID        uuid.UUID   `json:"id"`
	Username  pgtype.Text `json:"username"`
	Name      pgtype.Text `json:"name"`
	AvatarUrl pgtype.Text `json:"avatar_url"`
	Role      string      `json:"role"`
}

func (q *Queries) InsertProfile(ctx context.Context, arg InsertProfileParams) (OutterspaceProfile, error) {
	row := q.db.QueryRow(ctx, insertProfile, arg.ID, arg.Username, arg.Name, arg.AvatarUrl, arg.Role)
	var i OutterspaceProfile
	err := scanProfile(row, &i)
	return i, err
}

const getProfile = `
SELECT ` + profileColumns + `
FROM outterspace.profiles
WHERE id = $1
`

func (q *Queries) GetProfile(ctx context.Context, id uuid.UUID) (OutterspaceProfile, error) {
	row := q.db.QueryRow(ctx, getProfile, id)
	var i OutterspaceProfile
	err := scanProfile(row, &i)
	return i, err
}

const updateProfile = `
UPDATE outterspace.profiles
SET username   = COALESCE($2, username),
    name       = COALESCE($3, name),
    avatar_url = COALESCE($4, avatar_url),
    banner_url = COALESCE($5, banner_url),
    bio        = COALESCE($6, bio),
    website    = COALESCE($7, website),
    updated_at = now()
WHERE id = $1
RETURNING ` + profileColumns

// UpdateProfileParams 中为 NULL 的字段保持原值。
type UpdateProfileParams struct {
	ID        uuid.UUID   `json:"id"`
	Username  pgtype.Text `json:"username"`
	Name      pgtype.Text `json:"name"`
	AvatarUrl pgtype.Text `json:"avatar_url"`
	BannerUrl pgtype.Text `json:"banner_url"`
	Bio       pgtype.Text `json:"bio"`
	Website   pgtype.Text `json:"website"`
}

func (q *Queries) UpdateProfile(ctx context.Context, arg UpdateProfileParams) (OutterspaceProfile, error) {
	row := q.db.QueryRow(ctx, updateProfile,
		arg.ID,
		arg.Username,
		arg.Name,
		arg.AvatarUrl,
		arg.BannerUrl,
		arg.Bio,
		arg.Website,
	)
	var i OutterspaceProfile
	err := scanProfile(row, &i)
	return i, err
}
