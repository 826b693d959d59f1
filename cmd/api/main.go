package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/userweb/engine/docs"
	"github.com/userweb/engine/internal/api"
	"github.com/userweb/engine/internal/api/handlers"
	"github.com/userweb/engine/internal/repository"
	"github.com/userweb/engine/internal/services"
	"github.com/userweb/engine/pkg/config"
	"github.com/userweb/engine/pkg/database"
	"github.com/userweb/engine/pkg/logger"
)

// @title           User Records API
// @version         1.0
// @description     Create, list, look up and update user records.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting user records api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db_driver", cfg.DatabaseDriver),
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{
		Driver:     cfg.DatabaseDriver,
		DSN:        cfg.DatabaseURL,
		LogQueries: cfg.IsDevelopment(),
		Logger:     log,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()
	log.Info("database connected")

	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			log.Fatal("auto migration failed", zap.Error(err))
		}
		log.Info("schema migrated")
	}

	userService := services.NewUserService(repository.NewUserRepository(db))

	router := api.NewRouter(api.Dependencies{
		UsersHandler:   handlers.NewUsersHandler(userService),
		HealthHandler:  handlers.NewHealthHandler(sqlDB),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustProxy:     cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
