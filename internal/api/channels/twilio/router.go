package twilio

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/config"
	"github.com/thirabeach/concierge/internal/core"
	"github.com/thirabeach/concierge/internal/utils"
)

// RegisterRoutes registers the Twilio webhook endpoint
func RegisterRoutes(router *gin.Engine, pipeline *core.Pipeline, cfg *config.Config) {
	svc := NewService(pipeline)
	ctrl := NewController(svc, cfg)

	router.POST("/twilio_webhook", ctrl.Webhook)

	if cfg.TwilioAuthToken == "" {
		utils.Zlog.Warn("TWILIO_AUTH_TOKEN not set, webhook signature validation disabled")
	}
	utils.Zlog.Info("Twilio routes registered",
		zap.String("webhook_endpoint", "/twilio_webhook [POST]"))
}
