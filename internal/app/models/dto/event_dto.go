package dto

import "github.com/vikass-pal/campusconnect/internal/app/models"

// CreateEventRequest represents a new event submission.
type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Category     string `json:"category" binding:"required"`
	MaxAttendees *int   `json:"maxAttendees,omitempty" binding:"omitempty,min=1"`
}

// EventFilterRequest carries the list query parameters.
type EventFilterRequest struct {
	Query    string
	Category string
	SortBy   string
	Page     int
	PageSize int
}

// EventListResponse represents a page of filtered events.
type EventListResponse struct {
	Events     []models.Event `json:"events"`
	Pagination PaginationInfo `json:"pagination"`
}
