package dto

import (
	"fmt"
	"strings"

	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/services"

	"github.com/google/uuid"
)

// AddCommentRequest 是 POST /videos/{id}/comments 的请求体。
type AddCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID string `json:"parent_comment_id"`
}

// ToInput 组装评论输入，parent_comment_id 为空表示顶层评论。
func (r AddCommentRequest) ToInput(videoID, userID uuid.UUID) (services.AddCommentInput, error) {
	input := services.AddCommentInput{
		VideoID: videoID,
		UserID:  userID,
		Content: r.Content,
	}
	if raw := strings.TrimSpace(r.ParentCommentID); raw != "" {
		parent, err := uuid.Parse(raw)
		if err != nil {
			return services.AddCommentInput{}, fmt.Errorf("invalid parent_comment_id: %w", err)
		}
		input.ParentCommentID = &parent
	}
	return input, nil
}

// CommentListResponse 包装评论列表。
type CommentListResponse struct {
	Comments []*vo.Comment `json:"comments"`
}

// NewCommentListResponse 保证 comments 字段序列化为数组。
func NewCommentListResponse(comments []*vo.Comment) CommentListResponse {
	if comments == nil {
		comments = []*vo.Comment{}
	}
	return CommentListResponse{Comments: comments}
}

// ToggleLikeResponse 返回切换后的点赞状态。
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// ToggleSaveResponse 返回切换后的收藏状态。
type ToggleSaveResponse struct {
	Saved bool `json:"saved"`
}
