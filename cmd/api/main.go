// Package main is the entry point for the ERP API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bcrezende/erp-rezendetech-sub000/config"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/cache"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/db"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/dependency"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/email"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/events"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting ERP API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database, cfg.Server.Environment)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services := dependency.Services{}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
	} else if redisClient != nil {
		services.Redis = redisClient
		defer redisClient.Close()
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.ExchangeName)
		if err != nil {
			slog.Warn("AMQP unavailable, domain events will only be logged", "error", err)
		} else {
			services.Publisher = publisher
			defer publisher.Close()
		}
	}

	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		slog.Error("Failed to configure email delivery", "error", err)
		os.Exit(1)
	}
	services.EmailSender = sender

	injector, err := dependency.NewInjector(cfg, database.DB(), services)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		injector.EmailWorker.Start(ctx)
	}()
	if cfg.Notifications.WorkerEnabled {
		workers.Add(1)
		go func() {
			defer workers.Done()
			injector.NotificationWorker.Start(ctx)
		}()
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	workers.Wait()

	slog.Info("Server exited properly")
}
