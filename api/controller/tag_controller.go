package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

type TagController struct {
	TagUsecase domain.TagRepository
}

func NewTagController(uc domain.TagRepository) *TagController {
	return &TagController{TagUsecase: uc}
}

func (c *TagController) Fetch(ctx *gin.Context) {
	var params struct {
		Page     int `form:"page,default=1" binding:"omitempty,min=1"`
		PageSize int `form:"page_size,default=50" binding:"omitempty,min=1,max=100"`
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	page := domain.PageRequest{Page: params.Page, PageSize: params.PageSize}
	tags, total, err := c.TagUsecase.Fetch(ctx.Request.Context(), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParam) {
			ErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.TagPage{
		Items:    tags,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	})
}
