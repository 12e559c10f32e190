package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/goodbooks/goodbooks-api/mongo"
	"go.uber.org/zap"
)

func NewMongoClient(env *Env) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

func CloseMongoClient(client mongo.Client, log *zap.SugaredLogger) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Errorw("mongo disconnect failed", "error", err)
		return
	}
	log.Info("connection to mongo closed")
}
