package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/api/controller"
	"github.com/goodbooks/goodbooks-api/api/middleware"
	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"github.com/goodbooks/goodbooks-api/repository"
	"github.com/goodbooks/goodbooks-api/usecase"
)

func NewRatingRouter(apiKey string, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewRatingRepository(db, domain.CollectionRating)
	uc := usecase.NewRatingUsecase(repo, timeout)
	ctrl := controller.NewRatingController(uc)

	group.GET("/books/:book_id/ratings/summary", ctrl.Summary)
	group.POST("/ratings", middleware.APIKey(apiKey), ctrl.Upsert)
}
