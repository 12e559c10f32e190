package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

type BookController struct {
	BookUsecase domain.BookRepository
}

func NewBookController(uc domain.BookRepository) *BookController {
	return &BookController{BookUsecase: uc}
}

func (c *BookController) Fetch(ctx *gin.Context) {
	var params struct {
		Query    string   `form:"q"`
		MinAvg   *float64 `form:"min_avg"`
		YearFrom *int     `form:"year_from"`
		YearTo   *int     `form:"year_to"`
		Sort     string   `form:"sort,default=avg" binding:"omitempty,oneof=avg ratings_count year title"`
		Order    string   `form:"order,default=desc" binding:"omitempty,oneof=asc desc"`
		Page     int      `form:"page,default=1" binding:"omitempty,min=1"`
		PageSize int      `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	filter := domain.BookFilter{
		Query:        params.Query,
		MinAvgRating: params.MinAvg,
		YearFrom:     params.YearFrom,
		YearTo:       params.YearTo,
	}
	sort := domain.SortOrder{Sort: params.Sort, Order: params.Order}
	page := domain.PageRequest{Page: params.Page, PageSize: params.PageSize}

	books, total, err := c.BookUsecase.Fetch(ctx.Request.Context(), filter, sort, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParam) {
			ErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.BookPage{
		Items:    books,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	})
}

func (c *BookController) GetByID(ctx *gin.Context) {
	bookID, err := strconv.Atoi(ctx.Param("book_id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "book_id must be an integer")
		return
	}

	book, err := c.BookUsecase.GetByID(ctx.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ErrorResponse(ctx, http.StatusNotFound, "book not found")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, book)
}

func (c *BookController) GetTags(ctx *gin.Context) {
	bookID, err := strconv.Atoi(ctx.Param("book_id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "book_id must be an integer")
		return
	}

	tags, err := c.BookUsecase.GetTags(ctx.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ErrorResponse(ctx, http.StatusNotFound, "book not found")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.BookTagList{BookID: bookID, Tags: tags})
}

func (c *BookController) SearchByAuthor(ctx *gin.Context) {
	author := ctx.Param("name")

	books, err := c.BookUsecase.SearchByAuthor(ctx.Request.Context(), author)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.AuthorBooks{
		Author: author,
		Count:  len(books),
		Books:  books,
	})
}
