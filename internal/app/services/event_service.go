package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
	"github.com/vikass-pal/campusconnect/internal/pkg/helpers"
)

// EventService defines the operations on campus events.
type EventService interface {
	GetAllEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error)
	GetEventByID(ctx context.Context, id string) (models.Event, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, authorID string) (models.Event, error)
	DeleteEvent(ctx context.Context, id, userID string, isAdmin bool) error
	ToggleRSVP(ctx context.Context, id, userID string) (models.Event, error)
	AddComment(ctx context.Context, id, authorID, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, id, commentID, userID string, isAdmin bool) error
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(st *store.Store, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		store:  st,
		logger: logger,
	}
}

// GetAllEvents returns a filtered, sorted page of events.
func (s *eventServiceImpl) GetAllEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error) {
	s.logger.Debug().Interface("filter", filter).Msg("Listing events")

	filtered := store.FilterEvents(s.store.Events.Snapshot(), store.FilterSpec{
		Query:    filter.Query,
		Category: filter.Category,
		SortBy:   store.SortOrder(filter.SortBy),
	})

	total := len(filtered)
	start, end := helpers.CalculateSliceIndices(filter.Page, filter.PageSize, total)

	return &dto.EventListResponse{
		Events:     filtered[start:end],
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// GetEventByID returns a single event.
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id string) (models.Event, error) {
	event, err := s.store.Events.GetByID(id)
	if err != nil {
		return models.Event{}, apperrors.NewNotFoundError("Event not found")
	}
	return event, nil
}

// CreateEvent validates the submission and inserts the new event.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, authorID string) (models.Event, error) {
	author, err := s.store.Users.GetByID(authorID)
	if err != nil {
		return models.Event{}, apperrors.NewNotFoundError("Author not found")
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return models.Event{}, apperrors.NewValidationError("title must not be empty")
	}
	if description == "" {
		return models.Event{}, apperrors.NewValidationError("description must not be empty")
	}
	if req.MaxAttendees != nil && *req.MaxAttendees < 1 {
		return models.Event{}, apperrors.NewValidationError("maxAttendees must be positive")
	}

	now := time.Now()
	event := models.Event{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Category:     req.Category,
		MaxAttendees: req.MaxAttendees,
		Author:       author.AuthorRef(),
		Attendees:    []string{},
		Comments:     []models.Comment{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Events.Insert(event); err != nil {
		return models.Event{}, err
	}

	s.logger.Info().Str("eventId", event.ID).Str("category", event.Category).Msg("Event created")
	return event, nil
}

// DeleteEvent removes an event and, with it, its comments. Only the owning
// author or an admin may delete.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id, userID string, isAdmin bool) error {
	event, err := s.store.Events.GetByID(id)
	if err != nil {
		return apperrors.NewNotFoundError("Event not found")
	}

	if event.Author.ID != userID && !isAdmin {
		return apperrors.NewForbiddenError("Only the author can delete this event")
	}

	if err := s.store.Events.Remove(id); err != nil {
		return err
	}

	s.logger.Info().Str("eventId", id).Msg("Event deleted")
	return nil
}

// ToggleRSVP flips the caller's membership in the attendee set. Joining an
// event at declared capacity fails with no mutation; leaving is never
// blocked.
func (s *eventServiceImpl) ToggleRSVP(ctx context.Context, id, userID string) (models.Event, error) {
	updated, err := s.store.Events.Update(id, func(event *models.Event) error {
		if hasMember(event.Attendees, userID) {
			event.Attendees, _ = toggleMember(event.Attendees, userID)
			return nil
		}
		if event.AtCapacity() {
			return apperrors.NewCapacityError("Event is at capacity")
		}
		event.Attendees = append(event.Attendees, userID)
		return nil
	})
	if err != nil {
		return models.Event{}, err
	}
	return updated, nil
}

// AddComment appends a new comment to the event and returns it.
func (s *eventServiceImpl) AddComment(ctx context.Context, id, authorID, content string) (models.Comment, error) {
	author, err := s.store.Users.GetByID(authorID)
	if err != nil {
		return models.Comment{}, apperrors.NewNotFoundError("Comment author not found")
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.Comment{}, apperrors.NewValidationError("comment content must not be empty")
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		Content:   trimmed,
		Author:    author.AuthorRef(),
		CreatedAt: time.Now(),
	}

	if _, err := s.store.Events.Update(id, func(event *models.Event) error {
		event.Comments = append(event.Comments, comment)
		return nil
	}); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// DeleteComment removes a comment by id. A missing parent or comment is
// reported as NotFound.
func (s *eventServiceImpl) DeleteComment(ctx context.Context, id, commentID, userID string, isAdmin bool) error {
	_, err := s.store.Events.Update(id, func(event *models.Event) error {
		for i, comment := range event.Comments {
			if comment.ID != commentID {
				continue
			}
			if comment.Author.ID != userID && !isAdmin {
				return apperrors.NewForbiddenError("Only the comment author can delete it")
			}
			event.Comments = append(event.Comments[:i], event.Comments[i+1:]...)
			return nil
		}
		return apperrors.NewNotFoundError("Comment not found")
	})
	return err
}
