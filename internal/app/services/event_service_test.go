package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
)

func eventInitial(maxAttendees *int) store.Initial {
	author := testUser("1", "alice")
	return store.Initial{
		Users: []models.User{author, testUser("2", "bob"), testUser("3", "sarah")},
		Events: []models.Event{{
			ID:           "evt1",
			Title:        "React Workshop",
			Description:  "Hands-on session",
			Date:         "2024-02-15",
			Time:         "14:00",
			Location:     "Room 301",
			Category:     "workshop",
			MaxAttendees: maxAttendees,
			Author:       author.AuthorRef(),
			Attendees:    []string{},
			Comments:     []models.Comment{},
			CreatedAt:    time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		}},
	}
}

func TestToggleRSVP_AddThenRemove(t *testing.T) {
	env := newTestEnv(t, eventInitial(nil))
	ctx := context.Background()

	joined, err := env.events.ToggleRSVP(ctx, "evt1", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, joined.Attendees)

	left, err := env.events.ToggleRSVP(ctx, "evt1", "2")
	require.NoError(t, err)
	assert.Empty(t, left.Attendees, "second toggle must undo the first")

	again, err := env.events.ToggleRSVP(ctx, "evt1", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, again.Attendees)
}

func TestToggleRSVP_CapacityEnforced(t *testing.T) {
	one := 1
	env := newTestEnv(t, eventInitial(&one))
	ctx := context.Background()

	full, err := env.events.ToggleRSVP(ctx, "evt1", "2")
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, full.Attendees)

	_, err = env.events.ToggleRSVP(ctx, "evt1", "3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded))

	// Rejected join left the attendee set untouched.
	stored, err := env.events.GetEventByID(ctx, "evt1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, stored.Attendees)

	// Leaving a full event is never blocked.
	left, err := env.events.ToggleRSVP(ctx, "evt1", "2")
	require.NoError(t, err)
	assert.Empty(t, left.Attendees)
}

func TestToggleRSVP_MissingEvent(t *testing.T) {
	env := newTestEnv(t, eventInitial(nil))

	_, err := env.events.ToggleRSVP(context.Background(), "nope", "2")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCreateEvent(t *testing.T) {
	env := newTestEnv(t, eventInitial(nil))
	ctx := context.Background()

	thirty := 30
	created, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{
		Title:        "  AI Seminar  ",
		Description:  "ML trends",
		Date:         "2024-03-01",
		Time:         "18:00",
		Location:     "Auditorium",
		Category:     "seminar",
		MaxAttendees: &thirty,
	}, "1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "AI Seminar", created.Title, "title is trimmed")
	assert.Equal(t, "1", created.Author.ID)
	assert.Empty(t, created.Attendees)

	stored, err := env.events.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, stored.Title)
}

func TestCreateEvent_Validation(t *testing.T) {
	env := newTestEnv(t, eventInitial(nil))
	ctx := context.Background()

	zero := 0
	tests := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{"blank title", dto.CreateEventRequest{Title: "   ", Description: "d", Date: "2024-03-01", Time: "10:00", Location: "L", Category: "social"}},
		{"blank description", dto.CreateEventRequest{Title: "T", Description: " ", Date: "2024-03-01", Time: "10:00", Location: "L", Category: "social"}},
		{"non-positive capacity", dto.CreateEventRequest{Title: "T", Description: "d", Date: "2024-03-01", Time: "10:00", Location: "L", Category: "social", MaxAttendees: &zero}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.events.CreateEvent(ctx, &tt.req, "1")
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}

	t.Run("unknown author", func(t *testing.T) {
		_, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{Title: "T", Description: "d", Date: "2024-03-01", Time: "10:00", Location: "L", Category: "social"}, "ghost")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestDeleteEvent_Ownership(t *testing.T) {
	env := newTestEnv(t, eventInitial(nil))
	ctx := context.Background()

	err := env.events.DeleteEvent(ctx, "evt1", "2", false)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	// Admins may delete anything.
	require.NoError(t, env.events.DeleteEvent(ctx, "evt1", "2", true))

	_, err = env.events.GetEventByID(ctx, "evt1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestEventComments(t *testing.T) {
	env := newTestEnv(t, eventInitial(nil))
	ctx := context.Background()

	comment, err := env.events.AddComment(ctx, "evt1", "2", "  Count me in!  ")
	require.NoError(t, err)
	assert.Equal(t, "Count me in!", comment.Content)
	assert.Equal(t, "2", comment.Author.ID)

	stored, err := env.events.GetEventByID(ctx, "evt1")
	require.NoError(t, err)
	require.Len(t, stored.Comments, 1)

	t.Run("blank content rejected", func(t *testing.T) {
		_, err := env.events.AddComment(ctx, "evt1", "2", "   ")
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		err := env.events.DeleteComment(ctx, "evt1", comment.ID, "3", false)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		require.NoError(t, env.events.DeleteComment(ctx, "evt1", comment.ID, "2", false))

		stored, err := env.events.GetEventByID(ctx, "evt1")
		require.NoError(t, err)
		assert.Empty(t, stored.Comments)
	})

	t.Run("deleting an absent comment is not found", func(t *testing.T) {
		err := env.events.DeleteComment(ctx, "evt1", comment.ID, "2", false)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestGetAllEvents_FilterAndPaginate(t *testing.T) {
	initial := eventInitial(nil)
	author := initial.Users[0]
	for _, e := range []models.Event{
		{ID: "evt2", Title: "AI Seminar", Description: "ML", Category: "seminar", Author: author.AuthorRef(), Attendees: []string{"1", "2"}, CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "evt3", Title: "Pizza Night", Description: "Social", Category: "social", Author: author.AuthorRef(), Attendees: []string{"3"}, CreatedAt: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)},
	} {
		initial.Events = append(initial.Events, e)
	}
	env := newTestEnv(t, initial)

	resp, err := env.events.GetAllEvents(context.Background(), &dto.EventFilterRequest{
		SortBy:   "newest",
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Events, 2)
	assert.Equal(t, "evt3", resp.Events[0].ID)
	assert.Equal(t, "evt2", resp.Events[1].ID)
	assert.Equal(t, 3, resp.Pagination.TotalItems)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	filtered, err := env.events.GetAllEvents(context.Background(), &dto.EventFilterRequest{
		Category: "workshop",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, filtered.Events, 1)
	assert.Equal(t, "evt1", filtered.Events[0].ID)
}
