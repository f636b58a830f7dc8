package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikass-pal/campusconnect/internal/app/controllers"
	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/routes"
	"github.com/vikass-pal/campusconnect/internal/app/services"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/middleware"
	"github.com/vikass-pal/campusconnect/internal/pkg/auth"
	"github.com/vikass-pal/campusconnect/internal/pkg/filestorage"
	"github.com/vikass-pal/campusconnect/internal/pkg/localstore"
)

func newTestRouter(t *testing.T, initial store.Initial) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	blobs, err := localstore.Open(filepath.Join(t.TempDir(), "blobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { blobs.Close() })

	files, err := filestorage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusconnect.test",
	})

	st := store.New(initial)
	lgr := zerolog.Nop()

	authService := services.NewAuthService(st, blobs, jwtService, lgr)
	resourceService := services.NewResourceService(st, files, lgr)
	eventService := services.NewEventService(st, lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewResourceController(resourceService),
		controllers.NewEventController(eventService),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAlice(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":     "alice_chen",
		"email":        "alice@university.edu",
		"password":     "Password123!",
		"fullName":     "Alice Chen",
		"academicYear": "Third Year",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Token struct {
				AccessToken string `json:"accessToken"`
			} `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token.AccessToken)
	return body.Data.Token.AccessToken
}

func eventFixture() store.Initial {
	author := models.User{ID: "1", Username: "bob_wilson", Email: "bob@university.edu", FullName: "Bob Wilson"}
	one := 1
	return store.Initial{
		Users: []models.User{author},
		Events: []models.Event{{
			ID:           "evt1",
			Title:        "Study Group",
			Description:  "Weekly session",
			Date:         "2024-02-12",
			Time:         "19:00",
			Location:     "Library",
			Category:     "study-group",
			MaxAttendees: &one,
			Author:       author.AuthorRef(),
			Attendees:    []string{},
			Comments:     []models.Comment{},
			CreatedAt:    time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		}},
	}
}

func TestAuthEndpoints(t *testing.T) {
	router := newTestRouter(t, store.Initial{})

	token := registerAlice(t, router)

	t.Run("login succeeds with registered credentials", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "alice@university.edu",
			"password": "Password123!",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("login rejects a wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "alice@university.edu",
			"password": "nope-nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("register rejects a duplicate email", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
			"username":     "someone_else",
			"email":        "alice@university.edu",
			"password":     "Password123!",
			"fullName":     "Someone Else",
			"academicYear": "First Year",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("register rejects missing fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
			"username": "no_email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile requires a token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/auth/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile returns the authenticated user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/auth/profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data models.User `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alice_chen", body.Data.Username)
	})
}

func TestToggleEndpoints(t *testing.T) {
	router := newTestRouter(t, eventFixture())
	token := registerAlice(t, router)

	t.Run("rsvp requires a token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/events/evt1/rsvp", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var attendees []string
	readAttendees := func(t *testing.T, w *httptest.ResponseRecorder) []string {
		var body struct {
			Data models.Event `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body.Data.Attendees
	}

	t.Run("first rsvp joins", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/events/evt1/rsvp", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		attendees = readAttendees(t, w)
		assert.Len(t, attendees, 1)
	})

	t.Run("joining a full event conflicts", func(t *testing.T) {
		// A second account against the capacity-1 event.
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
			"username":     "sarah_davis",
			"email":        "sarah@university.edu",
			"password":     "Password123!",
			"fullName":     "Sarah Davis",
			"academicYear": "Fourth Year",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Data struct {
				Token struct {
					AccessToken string `json:"accessToken"`
				} `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		resp := doJSON(t, router, http.MethodPost, "/api/v1/events/evt1/rsvp", body.Data.Token.AccessToken, nil)
		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("second rsvp leaves", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/events/evt1/rsvp", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, readAttendees(t, w))
	})

	t.Run("missing event is not found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/events/ghost/rsvp", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResourceListEndpoint(t *testing.T) {
	author := models.User{ID: "1", Username: "bob_wilson", Email: "bob@university.edu", FullName: "Bob Wilson"}
	router := newTestRouter(t, store.Initial{
		Users: []models.User{author},
		Resources: []models.Resource{
			{ID: "res1", Title: "React Cheat Sheet", Description: "Hooks", Type: models.ResourceTypeLink, LinkURL: "https://example.com", Tags: []string{"React"}, Author: author.AuthorRef(), Likes: []string{}, Comments: []models.Comment{}, CreatedAt: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)},
			{ID: "res2", Title: "SQL Notes", Description: "Joins", Type: models.ResourceTypeNotes, Content: "notes", Tags: []string{"SQL"}, Author: author.AuthorRef(), Likes: []string{}, Comments: []models.Comment{}, CreatedAt: time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)},
		},
	})

	w := doJSON(t, router, http.MethodGet, "/api/v1/resources?query=react", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Resources []models.Resource `json:"resources"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Resources, 1)
	assert.Equal(t, "res1", body.Data.Resources[0].ID)
}
