package mappers

import (
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/repositories/spacedb"

	"github.com/google/uuid"
)

// CommentWithAuthorFromRow 转换带作者的评论行。
func CommentWithAuthorFromRow(row spacedb.CommentWithAuthorRow) *po.CommentWithAuthor {
	out := &po.CommentWithAuthor{
		Comment: po.Comment{
			ID:              row.ID,
			VideoID:         row.VideoID,
			UserID:          uuidPtr(row.UserID),
			ParentCommentID: uuidPtr(row.ParentCommentID),
			Content:         row.Content,
			LikesCount:      row.LikesCount,
			DislikesCount:   row.DislikesCount,
			CreatedAt:       mustTimestamp(row.CreatedAt),
			UpdatedAt:       mustTimestamp(row.UpdatedAt),
		},
	}
	if row.AuthorRefID.Valid {
		out.Author = &po.ProfileSummary{
			ID:               uuid.UUID(row.AuthorRefID.Bytes),
			Username:         textPtr(row.AuthorUsername),
			Name:             textPtr(row.AuthorName),
			AvatarURL:        textPtr(row.AuthorAvatarUrl),
			SubscribersCount: row.AuthorSubscribersCount.Int64,
		}
	}
	return out
}

// CommentsWithAuthorFromRows 批量转换。
func CommentsWithAuthorFromRows(rows []spacedb.CommentWithAuthorRow) []*po.CommentWithAuthor {
	out := make([]*po.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		out = append(out, CommentWithAuthorFromRow(row))
	}
	return out
}
