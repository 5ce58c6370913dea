package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pavallion/turfbook/internal/config"
	"github.com/pavallion/turfbook/internal/container"
	"github.com/pavallion/turfbook/internal/handlers"
	"github.com/pavallion/turfbook/internal/helpers"
	"github.com/pavallion/turfbook/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "turfbook-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.CreateUser(container.UserService))
		v1.POST("/login", handlers.AuthenticateUser(container.UserService))
		v1.POST("/logout", handlers.Logout())

		// the turf listing and detail pages are browsable without an account
		v1.GET("/turfs", handlers.ListTurfs(container.TurfService))
		v1.GET("/turfs/:id", handlers.GetTurf(container.TurfService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.AdminRepo, container.Logger))
	{
		protected.GET("/profile", func(c *gin.Context) {
			user, exist := c.Get("user")
			if !exist {
				c.JSON(401, gin.H{"error": "Unauthorized"})
				return
			}

			enhancedClaims, ok := user.(*helpers.EnhancedClaims)
			if !ok {
				c.JSON(500, gin.H{"error": "Invalid user claims format"})
				return
			}

			c.JSON(200, gin.H{
				"status":       "OK",
				"user_id":      enhancedClaims.UserID,
				"email":        enhancedClaims.Email,
				"full_name":    enhancedClaims.Fullname,
				"phone_number": enhancedClaims.PhoneNumber,
				"role":         enhancedClaims.GetSafeRole(),
				"is_admin":     enhancedClaims.IsAdmin(),
			})
		})
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.RequestBooking(container.BookingService))
		bookingRoutes.GET("/availability", handlers.Availability(container.BookingService))
		bookingRoutes.GET("/quote", handlers.QuoteSlots(container.BookingService))
		bookingRoutes.GET("/recommendations", handlers.Recommendations(container.BookingService))
		bookingRoutes.GET("/mine", handlers.ListMyBookings(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(container.BookingService))
	}

	admin := protected.Group("/")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/bookings", handlers.ListBookings(container.BookingService))
		admin.PATCH("/bookings/:id/confirm", handlers.ConfirmBooking(container.BookingService))

		admin.POST("/turfs", handlers.CreateTurf(container.TurfService))
		admin.PUT("/turfs/:id", handlers.UpdateTurf(container.TurfService))
		admin.DELETE("/turfs/:id", handlers.DeleteTurf(container.TurfService))
	}

	return r
}
