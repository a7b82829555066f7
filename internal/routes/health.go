package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/thirabeach/concierge/internal/controllers"
	"github.com/thirabeach/concierge/internal/loaders"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, db *loaders.SqliteClient) {
	healthController := controllers.NewHealthController(db)

	router.GET("/health", healthController.HealthCheck)
}
