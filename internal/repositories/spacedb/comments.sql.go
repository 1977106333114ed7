package spacedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const commentWithAuthorColumns = `
SELECT cm.id, cm.video_id, cm.user_id, cm.parent_comment_id, cm.content, cm.likes_count,
       cm.dislikes_count, cm.created_at, cm.updated_at,
       p.id AS author_ref_id, p.username AS author_username, p.name AS author_name,
       p.avatar_url AS author_avatar_url, p.subscribers_count AS author_subscribers_count
FROM outterspace.comments cm
LEFT JOIN outterspace.profiles p ON p.id = cm.user_id
`

// CommentWithAuthorRow 是评论与作者档案左连接后的行。
type CommentWithAuthorRow struct {
	OutterspaceComment
	AuthorRefID            pgtype.UUID `json:"author_ref_id"`
	AuthorUsername         pgtype.Text `json:"author_username"`
	AuthorName             pgtype.Text `json:"author_name"`
	AuthorAvatarUrl        pgtype.Text `json:"author_avatar_url"`
	AuthorSubscribersCount pgtype.Int8 `json:"author_subscribers_count"`
}

func scanCommentWithAuthorRow(row pgx.Row, i *CommentWithAuthorRow) error {
	return row.Scan(
		&i.ID,
		&i.VideoID,
		&i.UserID,
		&i.ParentCommentID,
		&i.Content,
		&i.LikesCount,
		&i.DislikesCount,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.AuthorRefID,
		&i.AuthorUsername,
		&i.AuthorName,
		&i.AuthorAvatarUrl,
		&i.AuthorSubscribersCount,
	)
}

func collectCommentWithAuthorRows(rows pgx.Rows) ([]CommentWithAuthorRow, error) {
	defer rows.Close()
	var items []CommentWithAuthorRow
	for rows.Next() {
		var i CommentWithAuthorRow
		if err := scanCommentWithAuthorRow(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertComment = `
INSERT INTO outterspace.comments (video_id, user_id, parent_comment_id, content)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type InsertCommentParams struct {
	VideoID         uuid.UUID   `json:"video_id"`
	UserID          pgtype.UUID `json:"user_id"`
	ParentCommentID pgtype.UUID `json:"parent_comment_id"`
	Content         string      `json:"content"`
}

func (q *Queries) InsertComment(ctx context.Context, arg InsertCommentParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, insertComment, arg.VideoID, arg.UserID, arg.ParentCommentID, arg.Content)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getCommentWithAuthor = commentWithAuthorColumns + `
WHERE cm.id = $1`

func (q *Queries) GetCommentWithAuthor(ctx context.Context, id uuid.UUID) (CommentWithAuthorRow, error) {
	row := q.db.QueryRow(ctx, getCommentWithAuthor, id)
	var i CommentWithAuthorRow
	err := scanCommentWithAuthorRow(row, &i)
	return i, err
}

const listTopLevelComments = commentWithAuthorColumns + `
JOIN outterspace.videos v ON v.id = cm.video_id
WHERE cm.video_id = $1 AND cm.parent_comment_id IS NULL AND ` + publishedPredicate + `
ORDER BY cm.created_at DESC, cm.id
LIMIT $2
`

type ListTopLevelCommentsParams struct {
	VideoID uuid.UUID `json:"video_id"`
	Limit   int32     `json:"limit"`
}

func (q *Queries) ListTopLevelComments(ctx context.Context, arg ListTopLevelCommentsParams) ([]CommentWithAuthorRow, error) {
	rows, err := q.db.Query(ctx, listTopLevelComments, arg.VideoID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectCommentWithAuthorRows(rows)
}

const listReplies = commentWithAuthorColumns + `
WHERE cm.parent_comment_id = $1
ORDER BY cm.created_at ASC, cm.id
LIMIT $2
`

type ListRepliesParams struct {
	ParentCommentID uuid.UUID `json:"parent_comment_id"`
	Limit           int32     `json:"limit"`
}

func (q *Queries) ListReplies(ctx context.Context, arg ListRepliesParams) ([]CommentWithAuthorRow, error) {
	rows, err := q.db.Query(ctx, listReplies, arg.ParentCommentID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectCommentWithAuthorRows(rows)
}
