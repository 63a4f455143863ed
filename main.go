package main

import (
	"context"
	"log"
	"os"

	"Fivestack/config"
	_ "Fivestack/docs"
	"Fivestack/middleware"
	"Fivestack/routes"
	"Fivestack/services/listings"
	"Fivestack/services/realtime"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Fivestack API
// @version 1.0
// @description Gin-Gonic server for the Fivestack party-finder API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
			// Continue execution even if migration fails
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	// Rate limiting degrades to a per-process window when Redis is down
	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Warning: Redis unavailable, using in-memory rate limits: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	svc := listings.NewService(gormDB)

	// Passive eviction of expired listings, the TTL-index stand-in
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	svc.Store().StartJanitor(janitorCtx, listings.DefaultJanitorInterval)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	feed := realtime.NewFeed()
	feed.Start(r)
	defer feed.Close()

	routes.SetupRoutes(r, gormDB, redisClient, svc, feed)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
