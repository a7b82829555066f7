package email

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thirabeach/concierge/internal/utils"
)

// Controller handles the email relay endpoint
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// SendEmail handles POST /send_email
func (c *Controller) SendEmail(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" {
		utils.Zlog.Warn("Email request missing recipient")
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Email is required",
		})
		return
	}

	result := c.service.Send(ctx.Request.Context(), req.Email, req.Subject, req.Body)
	ctx.JSON(http.StatusOK, result)
}
