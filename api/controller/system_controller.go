package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

type SystemController struct {
	SystemUsecase domain.SystemRepository
}

func NewSystemController(uc domain.SystemRepository) *SystemController {
	return &SystemController{SystemUsecase: uc}
}

func (c *SystemController) Healthz(ctx *gin.Context) {
	if err := c.SystemUsecase.Ping(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"detail": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, domain.HealthStatus{Status: "ok", DB: "connected"})
}

func (c *SystemController) Metrics(ctx *gin.Context) {
	metrics, err := c.SystemUsecase.Metrics(ctx.Request.Context())
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, metrics)
}
