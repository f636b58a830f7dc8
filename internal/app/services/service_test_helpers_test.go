package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/pkg/auth"
	"github.com/vikass-pal/campusconnect/internal/pkg/filestorage"
	"github.com/vikass-pal/campusconnect/internal/pkg/localstore"
)

// testEnv bundles a fresh store, blob storage and services for one test.
type testEnv struct {
	store     *store.Store
	blobs     *localstore.Store
	auth      AuthService
	resources ResourceService
	events    EventService
}

func newTestEnv(t *testing.T, initial store.Initial) *testEnv {
	t.Helper()

	blobs, err := localstore.Open(filepath.Join(t.TempDir(), "blobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { blobs.Close() })

	files, err := filestorage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	jwtService := testJWTService()

	st := store.New(initial)
	lgr := zerolog.Nop()

	return &testEnv{
		store:     st,
		blobs:     blobs,
		auth:      NewAuthService(st, blobs, jwtService, lgr),
		resources: NewResourceService(st, files, lgr),
		events:    NewEventService(st, lgr),
	}
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusconnect.test",
	})
}

func testUser(id, username string) models.User {
	return models.User{
		ID:           id,
		Username:     username,
		Email:        username + "@university.edu",
		FullName:     username,
		Skills:       []string{},
		AcademicYear: "Second Year",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
