package dto

// CreateCommentRequest represents a new comment on a resource or event.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
