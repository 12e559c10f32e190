package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

func ErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, domain.ErrorResponse{Message: message})
}
