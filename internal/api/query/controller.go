package query

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/core"
	"github.com/thirabeach/concierge/internal/utils"
)

// Controller handles the guest query endpoint and the browser UI.
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// HandleQuery handles POST /query
func (c *Controller) HandleQuery(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Query == "" {
		utils.Zlog.Warn("Empty or invalid query payload")
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Query parameter is required",
		})
		return
	}

	reply, err := c.service.Answer(ctx.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, core.ErrUnknownCategory) {
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Invalid query classification",
			})
			return
		}
		utils.Zlog.Error("Query handling failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, Response{Response: reply})
}

// Home serves the single-page UI.
func (c *Controller) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Thira Beach Home",
	})
}
