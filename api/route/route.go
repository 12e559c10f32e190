package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/api/middleware"
	"github.com/goodbooks/goodbooks-api/bootstrap"
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.uber.org/zap"
)

// Setup wires all routers onto the engine. The Mongo database handle is the
// single shared dependency; each router builds its own repo→usecase→controller
// chain from it.
func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, log *zap.SugaredLogger, engine *gin.Engine) {
	engine.Use(middleware.RequestLogger(log))

	public := engine.Group("")

	NewSystemRouter(timeout, db, public)
	NewBookRouter(timeout, db, public)
	NewTagRouter(timeout, db, public)
	NewUserRouter(timeout, db, public)
	NewRatingRouter(env.APIKey, timeout, db, public)
}
