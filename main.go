package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"foodhub-api/config"
	"foodhub-api/db"
	"foodhub-api/routes"
)

func main() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.Load()

	sessions, err := db.Open(config.LoadCredentials())
	if err != nil {
		log.Fatal("Failed to open database sessions:", err)
	}
	if err := sessions.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "FoodHub API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, sessions)

	port := config.Port()
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
