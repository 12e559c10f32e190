package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

type UserController struct {
	ToReadUsecase domain.ToReadRepository
}

func NewUserController(uc domain.ToReadRepository) *UserController {
	return &UserController{ToReadUsecase: uc}
}

// GetToRead returns the user's reading list. An unknown user gets an empty
// list, not a 404.
func (c *UserController) GetToRead(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("user_id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "user_id must be an integer")
		return
	}

	books, err := c.ToReadUsecase.BooksForUser(ctx.Request.Context(), userID)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.UserToRead{UserID: userID, ToRead: books})
}
