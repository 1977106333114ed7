package spacedb

import (
	"context"

	"github.com/google/uuid"
)

type InteractionKey struct {
	UserID  uuid.UUID `json:"user_id"`
	VideoID uuid.UUID `json:"video_id"`
}

const deleteLike = `
DELETE FROM outterspace.likes
WHERE user_id = $1 AND video_id = $2
`

func (q *Queries) DeleteLike(ctx context.Context, arg InteractionKey) (int64, error) {
	result, err := q.db.Exec(ctx, deleteLike, arg.UserID, arg.VideoID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertLike = `
INSERT INTO outterspace.likes (user_id, video_id)
VALUES ($1, $2)
ON CONFLICT (user_id, video_id) DO NOTHING
`

func (q *Queries) InsertLike(ctx context.Context, arg InteractionKey) (int64, error) {
	result, err := q.db.Exec(ctx, insertLike, arg.UserID, arg.VideoID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const hasLike = `
SELECT EXISTS (
    SELECT 1 FROM outterspace.likes WHERE user_id = $1 AND video_id = $2
)
`

func (q *Queries) HasLike(ctx context.Context, arg InteractionKey) (bool, error) {
	row := q.db.QueryRow(ctx, hasLike, arg.UserID, arg.VideoID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const deleteSavedVideo = `
DELETE FROM outterspace.saved_videos
WHERE user_id = $1 AND video_id = $2
`

func (q *Queries) DeleteSavedVideo(ctx context.Context, arg InteractionKey) (int64, error) {
	result, err := q.db.Exec(ctx, deleteSavedVideo, arg.UserID, arg.VideoID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertSavedVideo = `
INSERT INTO outterspace.saved_videos (user_id, video_id)
VALUES ($1, $2)
ON CONFLICT (user_id, video_id) DO NOTHING
`

func (q *Queries) InsertSavedVideo(ctx context.Context, arg InteractionKey) (int64, error) {
	result, err := q.db.Exec(ctx, insertSavedVideo, arg.UserID, arg.VideoID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const hasSavedVideo = `
SELECT EXISTS (
    SELECT 1 FROM outterspace.saved_videos WHERE user_id = $1 AND video_id = $2
)
`

func (q *Queries) HasSavedVideo(ctx context.Context, arg InteractionKey) (bool, error) {
	row := q.db.QueryRow(ctx, hasSavedVideo, arg.UserID, arg.VideoID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const videoExists = `
SELECT EXISTS (SELECT 1 FROM outterspace.videos v WHERE v.id = $1 AND ` + publishedPredicate + `)
`

func (q *Queries) VideoExists(ctx context.Context, id uuid.UUID) (bool, error) {
	row := q.db.QueryRow(ctx, videoExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
