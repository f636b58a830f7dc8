package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/vikass-pal/campusconnect/internal/app/controllers"
	"github.com/vikass-pal/campusconnect/internal/app/models"
	appRoutes "github.com/vikass-pal/campusconnect/internal/app/routes"
	appServices "github.com/vikass-pal/campusconnect/internal/app/services"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/config"
	appMiddleware "github.com/vikass-pal/campusconnect/internal/middleware"
	pkgAuth "github.com/vikass-pal/campusconnect/internal/pkg/auth"
	"github.com/vikass-pal/campusconnect/internal/pkg/filestorage"
	"github.com/vikass-pal/campusconnect/internal/pkg/helpers"
	"github.com/vikass-pal/campusconnect/internal/pkg/localstore"
	"github.com/vikass-pal/campusconnect/internal/pkg/logger"
	"github.com/vikass-pal/campusconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	ResourceService    appServices.ResourceService
	EventService       appServices.EventService
	AuthController     *appControllers.AuthController
	ResourceController *appControllers.ResourceController
	EventController    *appControllers.EventController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Store              *store.Store
	Blobs              *localstore.Store
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
	FileStorage        *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the durable blob storage and builds the in-memory
// entity store on top of it. Registered users persisted by an earlier run
// are reloaded; resources and events are rebuilt from the sample catalogue
// each start when seeding is enabled.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*store.Store, *localstore.Store, error) {
	lgr.Info().Str("path", cfg.Store.Path).Msg("Opening blob storage...")
	blobs, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open blob storage")
		return nil, nil, err
	}

	var initial store.Initial
	if cfg.Store.Seed {
		initial = seed.DefaultData(lgr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var persisted []models.User
	found, err := blobs.Get(ctx, localstore.UsersKey, &persisted)
	if err != nil {
		blobs.Close()
		return nil, nil, fmt.Errorf("failed to load persisted users: %w", err)
	}
	if found && len(persisted) > 0 {
		lgr.Info().Int("count", len(persisted)).Msg("Loaded persisted users")
		initial.Users = persisted
	} else if len(initial.Users) > 0 {
		// First start: persist the seeded accounts so later runs keep them.
		if err := blobs.Put(ctx, localstore.UsersKey, initial.Users); err != nil {
			lgr.Error().Err(err).Msg("Failed to persist seeded users, proceeding anyway...")
		}
	}

	st := store.New(initial)
	lgr.Info().
		Int("users", st.Users.Len()).
		Int("resources", st.Resources.Len()).
		Int("events", st.Events.Len()).
		Msg("Entity store initialized")
	return st, blobs, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, blobs *localstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: st, Blobs: blobs}

	// Initialize File Storage
	// Configure baseURL to match the static file serving endpoint
	var err error
	baseUrl := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseUrl + "/uploads" // This must match the static file serving URL path
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(st, blobs, deps.JWTService, lgr)
	deps.ResourceService = appServices.NewResourceService(st, deps.FileStorage, lgr)
	deps.EventService = appServices.NewEventService(st, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.EventController = appControllers.NewEventController(deps.EventService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	if cfg.RateLimit.RequestsPerSecond > 0 {
		router.Use(appMiddleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ResourceController,
		deps.EventController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
