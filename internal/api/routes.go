package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/roulettetracker/backend/internal/api/handlers"
	"github.com/roulettetracker/backend/internal/config"
	"github.com/roulettetracker/backend/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware())

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			// Aggressive no-cache for development
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	// Status payload at the root, matching what the tracker overlay polls
	router.GET("/", handlers.Status)
	router.GET("/health", handlers.Status)

	router.POST("/predict_marks", handlers.PredictMarks())
}
