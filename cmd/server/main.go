package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"catalog/internal/config"
	"catalog/internal/db"
	"catalog/internal/handlers"
	"catalog/internal/routers"
	"catalog/internal/store"
)

func main() {
	// load .env from the current dir, the parent, or the repo root (when
	// running from cmd/server)
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer database.Client().Disconnect(context.Background())

	products := store.NewProductStore(database)
	h := handlers.NewProductHandler(products, logger, cfg.PublicDir)
	r := routers.SetupRouters(cfg, h)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, routers.MethodOverride(r)); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
