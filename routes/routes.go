package routes

import (
	"time"

	"Fivestack/controllers"
	"Fivestack/middleware"
	"Fivestack/services/listings"
	"Fivestack/services/ratelimit"
	"Fivestack/services/realtime"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, svc *listings.Service, feed *realtime.Feed) {
	// Login attempts are limited harder than listing creation
	var loginLimiter, createLimiter ratelimit.Limiter
	if redisClient != nil {
		loginLimiter = ratelimit.NewRedis(redisClient, 5, time.Minute)
		createLimiter = ratelimit.NewRedis(redisClient, 10, time.Minute)
	} else {
		loginLimiter = ratelimit.NewMemory(5, time.Minute)
		createLimiter = ratelimit.NewMemory(10, time.Minute)
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/signup", middleware.RateLimit(loginLimiter), controllers.Register(db))
	api.POST("/login", middleware.RateLimit(loginLimiter), controllers.Login(db))

	// Public browse and detail endpoints
	api.GET("/parties", controllers.BrowseParties(svc))
	api.GET("/parties/:id", controllers.GetParty(svc))
	api.GET("/lfg", controllers.BrowseLFG(svc))
	api.GET("/lfg/:id", controllers.GetLFG(svc))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.GET("/me", controllers.Me(db))

		authentication.POST("/parties", middleware.RateLimit(createLimiter), controllers.CreateParty(svc, feed))
		authentication.POST("/lfg", middleware.RateLimit(createLimiter), controllers.CreateLFG(svc, feed))

		authentication.GET("/my/listings", controllers.MyListings(svc))

		authentication.DELETE("/parties/:id", controllers.DeleteParty(svc))
		authentication.DELETE("/lfg/:id", controllers.DeleteLFG(svc))
	}
}
