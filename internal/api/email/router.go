package email

import (
	"github.com/gin-gonic/gin"

	"github.com/thirabeach/concierge/internal/config"
	"github.com/thirabeach/concierge/internal/utils"
)

// RegisterRoutes registers the email relay endpoint
func RegisterRoutes(router *gin.Engine, cfg *config.Config) {
	if cfg.PostmarkAPIKey == "" {
		utils.Zlog.Warn("POSTMARK_API_KEY not set, /send_email will fail upstream")
	}

	svc := NewService(cfg)
	ctrl := NewController(svc)

	router.POST("/send_email", ctrl.SendEmail)
}
