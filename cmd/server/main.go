package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/api/route"
	"github.com/goodbooks/goodbooks-api/bootstrap"
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
	timeout := time.Duration(env.ContextTimeout) * time.Second

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	route.Setup(env, timeout, db, log, engine)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server listening", "address", env.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown failed", "error", err)
	}
}
