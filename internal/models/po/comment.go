package po

import (
	"time"

	"github.com/google/uuid"
)

// Comment 表示 outterspace.comments 表的行。
type Comment struct {
	ID              uuid.UUID
	VideoID         uuid.UUID
	UserID          *uuid.UUID
	ParentCommentID *uuid.UUID
	Content         string
	LikesCount      int32
	DislikesCount   int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CommentWithAuthor 评论及其作者档案，作者已删除时 Author 为 nil。
type CommentWithAuthor struct {
	Comment
	Author *ProfileSummary
}
