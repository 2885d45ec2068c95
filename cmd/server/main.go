package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trichygold-order/internal/adapters/http/middleware"
	"trichygold-order/internal/adapters/http/routes"
	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/config"
	"trichygold-order/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// @title Trichy Gold Order Tracking API
// @version 1.0
// @description Monthly item order tracking for the restaurant shops

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		log.Printf("server exited: %v", err)
		os.Exit(1)
	}
}

// run wires the application and blocks until the server stops
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	appLog, err := logger.New(cfg.AppMode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer appLog.Sync()

	// Connect to database
	db, err := config.ConnectDatabase(cfg, appLog)
	if err != nil {
		appLog.Error("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			appLog.Error("failed to close database", "error", err)
		}
	}()

	if err := models.AutoMigrate(db); err != nil {
		appLog.Error("failed to auto migrate", "error", err)
		return fmt.Errorf("auto migrate: %w", err)
	}
	appLog.Info("database migration completed")

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := config.NewSeeder(db, cfg.Admin, appLog).Run(seedCtx); err != nil {
		appLog.Warn("failed to seed admin account", "error", err)
	}
	cancel()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Trichy Gold Order API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, db, cfg, appLog)

	go gracefulShutdown(app, appLog)

	appLog.Info("server starting", "port", cfg.Port, "mode", cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Error("server stopped", "error", err)
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.Error("error during shutdown", "error", err)
	}
	appLog.Info("server stopped gracefully")
}
