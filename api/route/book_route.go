package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/api/controller"
	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"github.com/goodbooks/goodbooks-api/repository"
	"github.com/goodbooks/goodbooks-api/usecase"
)

func NewBookRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewBookRepository(db, domain.CollectionBook)
	uc := usecase.NewBookUsecase(repo, timeout)
	ctrl := controller.NewBookController(uc)

	group.GET("/books", ctrl.Fetch)
	group.GET("/books/:book_id", ctrl.GetByID)
	group.GET("/books/:book_id/tags", ctrl.GetTags)
	group.GET("/authors/:name/books", ctrl.SearchByAuthor)
}
