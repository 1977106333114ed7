package spacedb

import (
	"context"
)

const upsertHistory = `
INSERT INTO outterspace.video_history (user_id, video_id, watched_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at
RETURNING user_id, video_id, watched_at
`

func (q *Queries) UpsertHistory(ctx context.Context, arg InteractionKey) (OutterspaceVideoHistory, error) {
	row := q.db.QueryRow(ctx, upsertHistory, arg.UserID, arg.VideoID)
	var i OutterspaceVideoHistory
	err := row.Scan(&i.UserID, &i.VideoID, &i.WatchedAt)
	return i, err
}
