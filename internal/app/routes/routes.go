package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/controllers"
	"github.com/nsounjou2-stack/inscription-concours/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	registrationController *controllers.RegistrationController,
	authController *controllers.AuthController,
	settingsController *controllers.SettingsController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes: the candidate-facing registration flow ---
	registrations := v1.Group("/registrations")
	{
		registrations.POST("", registrationController.CreateRegistration)
		registrations.GET("/:id", registrationController.GetRegistrationByID)
		// Payment provider callback, authenticated by the provider out of band
		registrations.PUT("/:id/payment", registrationController.UpdatePayment)
	}

	uploads := v1.Group("/uploads")
	{
		uploads.POST("/photos", uploadController.UploadPhoto)
		uploads.POST("/diplomas", uploadController.UploadDiploma)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Admin routes, guarded by JWT ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/register", authController.RegisterAdmin)
		authenticated.POST("/auth/logout", authController.Logout)

		adminRegistrations := authenticated.Group("/registrations")
		{
			adminRegistrations.GET("", registrationController.ListRegistrations)
			// Static segments registered alongside :id; gin resolves them first
			adminRegistrations.GET("/search", registrationController.SearchRegistrations)
			adminRegistrations.GET("/stats", registrationController.GetStats)
			adminRegistrations.PUT("/bulk-payment", registrationController.BulkUpdatePayment)
			adminRegistrations.PUT("/:id", registrationController.UpdateRegistration)
			adminRegistrations.DELETE("/:id", registrationController.DeleteRegistration)
		}

		settings := authenticated.Group("/contest-settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.PUT("", settingsController.UpdateSettings)
		}
	}
}
