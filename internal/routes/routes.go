package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/thirabeach/concierge/internal/api/channels/twilio"
	"github.com/thirabeach/concierge/internal/api/email"
	"github.com/thirabeach/concierge/internal/api/query"
	"github.com/thirabeach/concierge/internal/config"
	"github.com/thirabeach/concierge/internal/core"
	"github.com/thirabeach/concierge/internal/llm"
	"github.com/thirabeach/concierge/internal/loaders"
	"github.com/thirabeach/concierge/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *loaders.SqliteClient, cfg *config.Config) {
	// Apply global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	groq := llm.NewGroqClient(cfg)
	pipeline := core.NewPipeline(groq, db)

	// Setup route groups
	SetupHealthRoutes(router, db)
	query.RegisterRoutes(router, pipeline)
	twilio.RegisterRoutes(router, pipeline, cfg)
	email.RegisterRoutes(router, cfg)
	Setup404Handler(router)
}
