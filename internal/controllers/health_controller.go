package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/loaders"
	"github.com/thirabeach/concierge/internal/utils"
)

type HealthController struct {
	db *loaders.SqliteClient
}

func NewHealthController(db *loaders.SqliteClient) *HealthController {
	return &HealthController{db: db}
}

// HealthCheck reports service and room-store health.
func (h *HealthController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.Zlog.Error("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"database":  "down",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	roomCount, err := h.db.CountRooms(ctx)
	if err != nil {
		utils.Zlog.Error("Room count failed during health check", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "up",
		"room_count": roomCount,
		"timestamp":  time.Now().UTC(),
	})
}
