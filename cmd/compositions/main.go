package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"compositions/internal/config"
	"compositions/internal/logger"
	"compositions/internal/mongo"
	"compositions/internal/mysql"
	"compositions/internal/routing"
	"compositions/pkg/user"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load() // load env var from .env
	if err != nil {
		return err
	}

	logger := logger.Load(os.Getenv("DEBUG") != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mysql.LoadDB(cfg.MySQLDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	mongoDB, err := mongo.LoadDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return err
	}
	defer mongoDB.Client().Disconnect(context.Background())

	if err := user.NewMongoRepo(mongoDB).EnsureIndexes(ctx); err != nil {
		return err
	}

	r := routing.InitRoutes(mongoDB, db, logger, cfg.JWTSecret)
	return routing.StartServer(ctx, cfg.Addr(), r, logger)
}
