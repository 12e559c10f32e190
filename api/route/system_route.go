package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/api/controller"
	"github.com/goodbooks/goodbooks-api/mongo"
	"github.com/goodbooks/goodbooks-api/repository"
	"github.com/goodbooks/goodbooks-api/usecase"
)

func NewSystemRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewSystemRepository(db)
	uc := usecase.NewSystemUsecase(repo, timeout)
	ctrl := controller.NewSystemController(uc)

	group.GET("/healthz", ctrl.Healthz)
	group.GET("/metrics", ctrl.Metrics)
}
