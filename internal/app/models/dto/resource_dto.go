package dto

import "github.com/vikass-pal/campusconnect/internal/app/models"

// CreateResourceRequest represents the multipart form fields of a new
// resource. The type-conditional payload (file for pdf, url for link,
// content for notes) is validated by the service.
type CreateResourceRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Type        string `form:"type" binding:"required,oneof=pdf link notes"`
	Tags        string `form:"tags"` // Comma-separated tag list
	URL         string `form:"url"`
	Content     string `form:"content"`
}

// ResourceFilterRequest carries the list query parameters.
type ResourceFilterRequest struct {
	Query    string
	Type     string
	Tags     []string
	SortBy   string
	Page     int
	PageSize int
}

// ResourceListResponse represents a page of filtered resources.
type ResourceListResponse struct {
	Resources  []models.Resource `json:"resources"`
	Pagination PaginationInfo    `json:"pagination"`
}
