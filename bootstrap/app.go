package bootstrap

import (
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.uber.org/zap"
)

// Application owns the process-wide dependencies: configuration, the Mongo
// client and the logger. Entry points build one and pass its parts down;
// nothing else holds global state.
type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Logger *zap.SugaredLogger
}

func App() (*Application, error) {
	env := NewEnv()

	logger, err := NewLogger(env)
	if err != nil {
		return nil, err
	}

	client, err := NewMongoClient(env)
	if err != nil {
		return nil, err
	}

	return &Application{
		Env:    env,
		Mongo:  client,
		Logger: logger,
	}, nil
}

func (app *Application) Close() {
	CloseMongoClient(app.Mongo, app.Logger)
	_ = app.Logger.Sync()
}
