package main

import (
	"context"
	"time"

	"github.com/goodbooks/goodbooks-api/bootstrap"
	"github.com/goodbooks/goodbooks-api/ingest"
	"github.com/goodbooks/goodbooks-api/mongo"
)

func main() {
	app, err := bootstrap.App()
	if err != nil {
		panic(err)
	}
	defer app.Close()

	env := app.Env
	log := app.Logger
	db := app.Mongo.Database(env.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := mongo.CreateIndexes(db); err != nil {
		log.Fatalw("create indexes", "error", err)
	}

	loader := ingest.NewLoader(db, log, env.DataDir)
	if err := loader.Run(ctx); err != nil {
		log.Fatalw("ingest finished with errors", "error", err)
	}
	log.Info("ingest complete")
}
