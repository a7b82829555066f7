package query

import (
	"github.com/gin-gonic/gin"

	"github.com/thirabeach/concierge/internal/core"
)

// RegisterRoutes registers the /query endpoint and the UI page
func RegisterRoutes(router *gin.Engine, pipeline *core.Pipeline) {
	svc := NewService(pipeline)
	ctrl := NewController(svc)

	router.GET("/", ctrl.Home)
	router.POST("/query", ctrl.HandleQuery)
}
