package twilio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/config"
	"github.com/thirabeach/concierge/internal/utils"
)

// Controller handles the Twilio messaging webhook
type Controller struct {
	service *Service
	cfg     *config.Config
}

func NewController(service *Service, cfg *config.Config) *Controller {
	return &Controller{service: service, cfg: cfg}
}

// Webhook handles POST /twilio_webhook
func (c *Controller) Webhook(ctx *gin.Context) {
	phoneNumber := ctx.PostForm("From")
	messageBody := ctx.PostForm("Body")

	if phoneNumber == "" || messageBody == "" {
		utils.Zlog.Warn("Twilio webhook missing required fields",
			zap.Bool("has_from", phoneNumber != ""),
			zap.Bool("has_body", messageBody != ""))
		ctx.XML(http.StatusBadRequest, MessagingResponse{
			Message: "Error: Phone number and message are required.",
		})
		return
	}

	if c.cfg.TwilioAuthToken != "" {
		signature := ctx.GetHeader("X-Twilio-Signature")
		requestURL := "https://" + ctx.Request.Host + ctx.Request.URL.String()
		if !ValidateSignature(c.cfg.TwilioAuthToken, requestURL, ctx.Request.PostForm, signature) {
			utils.Zlog.Warn("Twilio signature validation failed",
				zap.String("from", phoneNumber))
			ctx.XML(http.StatusForbidden, MessagingResponse{
				Message: "Error: Invalid request signature.",
			})
			return
		}
	}

	utils.Zlog.Info("Received Twilio message", zap.String("from", phoneNumber))

	reply, err := c.service.Reply(ctx.Request.Context(), messageBody)
	if err != nil {
		utils.Zlog.Error("Failed to process Twilio message",
			zap.String("from", phoneNumber),
			zap.Error(err))
		ctx.XML(http.StatusInternalServerError, MessagingResponse{
			Message: "Error: Unable to process your message right now.",
		})
		return
	}

	ctx.XML(http.StatusOK, MessagingResponse{Message: reply})
}
