package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/userweb/engine/internal/repository"
	"github.com/userweb/engine/pkg/config"
	"github.com/userweb/engine/pkg/database"
	"github.com/userweb/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Open(context.Background(), database.Options{
		Driver: cfg.DatabaseDriver,
		DSN:    cfg.DatabaseURL,
		Logger: log,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
