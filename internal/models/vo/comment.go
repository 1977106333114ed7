package vo

import (
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/google/uuid"
)

// UnknownUserName 是作者档案缺失时的显示名。
const UnknownUserName = "Unknown User"

// CommentUser 评论作者展示信息。
type CommentUser struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Comment 评论视图。
type Comment struct {
	ID              uuid.UUID   `json:"id"`
	VideoID         uuid.UUID   `json:"video_id"`
	UserID          *uuid.UUID  `json:"user_id,omitempty"`
	ParentCommentID *uuid.UUID  `json:"parent_comment_id,omitempty"`
	Content         string      `json:"content"`
	Likes           int32       `json:"likes"`
	Dislikes        int32       `json:"dislikes"`
	CreatedAt       time.Time   `json:"created_at"`
	User            CommentUser `json:"user"`
}

// NewComment 构造评论视图，nil 输入返回 nil。
func NewComment(row *po.CommentWithAuthor) *Comment {
	if row == nil {
		return nil
	}
	user := CommentUser{Name: UnknownUserName}
	if a := row.Author; a != nil {
		user = CommentUser{
			Name:   firstNonEmpty(deref(a.Name), deref(a.Username)),
			Avatar: deref(a.AvatarURL),
		}
	}
	return &Comment{
		ID:              row.ID,
		VideoID:         row.VideoID,
		UserID:          row.UserID,
		ParentCommentID: row.ParentCommentID,
		Content:         row.Content,
		Likes:           row.LikesCount,
		Dislikes:        row.DislikesCount,
		CreatedAt:       row.CreatedAt,
		User:            user,
	}
}

// NewComments 批量构造。
func NewComments(rows []*po.CommentWithAuthor) []*Comment {
	out := make([]*Comment, 0, len(rows))
	for _, row := range rows {
		if c := NewComment(row); c != nil {
			out = append(out, c)
		}
	}
	return out
}
