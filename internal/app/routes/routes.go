package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vikass-pal/campusconnect/internal/app/controllers"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	resourceController *controllers.ResourceController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public browse routes ---
	resources := v1.Group("/resources")
	{
		resources.GET("", resourceController.GetAllResources)
		resources.GET("/:id", resourceController.GetResourceByID)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.GetAllEvents)
		events.GET("/:id", eventController.GetEventByID)
	}

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Session and profile
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)

		// Resource mutations
		resourcesProtected := authenticated.Group("/resources")
		{
			resourcesProtected.POST("", resourceController.CreateResource)
			resourcesProtected.DELETE("/:id", resourceController.DeleteResource)
			resourcesProtected.POST("/:id/like", resourceController.ToggleLike)
			resourcesProtected.POST("/:id/comments", resourceController.AddComment)
			resourcesProtected.DELETE("/:id/comments/:commentId", resourceController.DeleteComment)
		}

		// Event mutations
		eventsProtected := authenticated.Group("/events")
		{
			eventsProtected.POST("", eventController.CreateEvent)
			eventsProtected.DELETE("/:id", eventController.DeleteEvent)
			eventsProtected.POST("/:id/rsvp", eventController.ToggleRSVP)
			eventsProtected.POST("/:id/comments", eventController.AddComment)
			eventsProtected.DELETE("/:id/comments/:commentId", eventController.DeleteComment)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
