package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

type RatingController struct {
	RatingUsecase domain.RatingRepository
}

func NewRatingController(uc domain.RatingRepository) *RatingController {
	return &RatingController{RatingUsecase: uc}
}

// Upsert handles POST /ratings. The API-key middleware runs before this
// handler; unauthenticated requests never get here.
func (c *RatingController) Upsert(ctx *gin.Context) {
	var body struct {
		UserID int `json:"user_id" binding:"required"`
		BookID int `json:"book_id" binding:"required"`
		Rating int `json:"rating" binding:"required,min=1,max=5"`
	}

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := c.RatingUsecase.Upsert(ctx.Request.Context(), domain.Rating{
		UserID: body.UserID,
		BookID: body.BookID,
		Rating: body.Rating,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParam) {
			ErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *RatingController) Summary(ctx *gin.Context) {
	bookID, err := strconv.Atoi(ctx.Param("book_id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "book_id must be an integer")
		return
	}

	summary, err := c.RatingUsecase.Summary(ctx.Request.Context(), bookID)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
