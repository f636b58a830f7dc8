package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
)

func testResource(id, title string, created time.Time) models.Resource {
	return models.Resource{
		ID:          id,
		Title:       title,
		Description: "description of " + title,
		Type:        models.ResourceTypeNotes,
		Content:     "content",
		Tags:        []string{"Go"},
		Author:      models.Author{ID: "u1", Username: "alice"},
		Likes:       []string{},
		Comments:    []models.Comment{},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestCollection_InsertAndGet(t *testing.T) {
	c := NewCollection[models.Resource](nil)

	res := testResource("r1", "First", time.Now())
	require.NoError(t, c.Insert(res))

	got, err := c.GetByID("r1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_InsertDuplicateID(t *testing.T) {
	c := NewCollection[models.Resource](nil)
	require.NoError(t, c.Insert(testResource("r1", "First", time.Now())))

	err := c.Insert(testResource("r1", "Second", time.Now()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	// The stored entity is untouched.
	got, err := c.GetByID("r1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
}

func TestCollection_GetMissing(t *testing.T) {
	c := NewCollection[models.Resource](nil)

	_, err := c.GetByID("nope")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection[models.Resource](nil)
	require.NoError(t, c.Insert(testResource("r1", "First", time.Now())))

	require.NoError(t, c.Remove("r1"))
	assert.Equal(t, 0, c.Len())

	err := c.Remove("r1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCollection_UpdateRefreshesUpdatedAt(t *testing.T) {
	c := NewCollection[models.Resource](nil)
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.Insert(testResource("r1", "First", created)))

	frozen := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return frozen })

	updated, err := c.Update("r1", func(r *models.Resource) error {
		r.Likes = append(r.Likes, "u2")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"u2"}, updated.Likes)
	assert.Equal(t, frozen, updated.UpdatedAt)
	assert.Equal(t, created, updated.CreatedAt)
}

func TestCollection_UpdateErrorWritesNothing(t *testing.T) {
	c := NewCollection[models.Resource](nil)
	require.NoError(t, c.Insert(testResource("r1", "First", time.Now())))

	boom := errors.New("boom")
	_, err := c.Update("r1", func(r *models.Resource) error {
		r.Likes = append(r.Likes, "u2")
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := c.GetByID("r1")
	require.NoError(t, err)
	assert.Empty(t, got.Likes, "failed update must not mutate stored state")
}

func TestCollection_SnapshotIsolation(t *testing.T) {
	c := NewCollection[models.Resource](nil)
	require.NoError(t, c.Insert(testResource("r1", "First", time.Now())))

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	snap[0].Likes = append(snap[0].Likes, "intruder")
	snap[0].Tags[0] = "mutated"

	got, err := c.GetByID("r1")
	require.NoError(t, err)
	assert.Empty(t, got.Likes, "snapshot mutation must not leak into the store")
	assert.Equal(t, "Go", got.Tags[0])
}

func TestCollection_SnapshotPreservesInsertionOrder(t *testing.T) {
	c := NewCollection[models.Resource](nil)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, c.Insert(testResource(id, id, time.Now())))
	}
	require.NoError(t, c.Remove("b"))
	require.NoError(t, c.Insert(testResource("d", "d", time.Now())))

	snap := c.Snapshot()
	ids := make([]string, 0, len(snap))
	for _, r := range snap {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestUsers_InsertUniqueness(t *testing.T) {
	u := NewUsers(nil)
	require.NoError(t, u.Insert(models.User{ID: "1", Username: "alice", Email: "alice@university.edu"}))

	tests := []struct {
		name string
		user models.User
		want error
	}{
		{
			name: "duplicate email different case",
			user: models.User{ID: "2", Username: "other", Email: "Alice@University.edu"},
			want: apperrors.ErrEmailAlreadyExists,
		},
		{
			name: "duplicate username different case",
			user: models.User{ID: "3", Username: "Alice", Email: "new@university.edu"},
			want: apperrors.ErrUsernameTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.Insert(tt.user)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	assert.Equal(t, 1, u.Len())
}

func TestUsers_FindByEmailCaseInsensitive(t *testing.T) {
	u := NewUsers([]models.User{{ID: "1", Username: "alice", Email: "alice@university.edu"}})

	got, err := u.FindByEmail("ALICE@university.EDU")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = u.FindByEmail("nobody@university.edu")
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}

func TestUsers_UpdateKeepsIdentityFields(t *testing.T) {
	u := NewUsers([]models.User{{ID: "1", Username: "alice", Email: "alice@university.edu", FullName: "Alice Chen"}})

	updated, err := u.Update("1", func(user *models.User) error {
		user.Username = "hacker"
		user.Email = "hacker@evil.io"
		user.FullName = "Alice C."
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "alice@university.edu", updated.Email)
	assert.Equal(t, "Alice C.", updated.FullName)

	// Lookup by the original email still works.
	_, err = u.FindByEmail("alice@university.edu")
	assert.NoError(t, err)
}
