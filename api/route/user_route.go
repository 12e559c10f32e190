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

func NewUserRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewToReadRepository(db, domain.CollectionToRead)
	uc := usecase.NewToReadUsecase(repo, timeout)
	ctrl := controller.NewUserController(uc)

	group.GET("/users/:user_id/to-read", ctrl.GetToRead)
}
