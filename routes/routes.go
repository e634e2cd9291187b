package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fitness-api/config"
	"fitness-api/controllers"
	"fitness-api/middleware"
	"fitness-api/repositories"
	"fitness-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepository := repositories.NewUserRepository(db)
	routeRepository := repositories.NewRouteRepository(db)
	checkInRepository := repositories.NewCheckInRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Controllers
	authController := controllers.NewAuthController(userRepository, tokenService)
	routeController := controllers.NewRouteController(routeRepository, checkInRepository, userRepository)
	consoleController := controllers.NewConsoleController(db)

	// The gateway intercepts every request; public paths are exempted
	// inside the middleware itself.
	r.Use(middleware.Auth(tokenService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "fitness-api",
		})
	})

	r.GET("/console", consoleController.GetDiagnostics)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// Route and check-in routes (protected)
	routeGroup := r.Group("/routes")
	{
		routeGroup.GET("", routeController.GetRoutes)
		routeGroup.GET("/:routeId", routeController.GetRoute)
		routeGroup.GET("/:routeId/checkins", routeController.GetCheckIns)
		routeGroup.POST("/:routeId/checkins", routeController.CreateCheckIn)
	}
}

func SetupCORS() gin.HandlerFunc {
	return middleware.CORS()
}
