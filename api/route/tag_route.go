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

func NewTagRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewTagRepository(db, domain.CollectionTag)
	uc := usecase.NewTagUsecase(repo, timeout)
	ctrl := controller.NewTagController(uc)

	group.GET("/tags", ctrl.Fetch)
}
