// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"go-expense-tracker/config"
	"go-expense-tracker/handler"
	"go-expense-tracker/logger"
	"go-expense-tracker/router"
	"go-expense-tracker/service"
	"go-expense-tracker/store"
)

func Run() {
	// A missing .env is fine; the environment itself may carry everything.
	godotenv.Load()

	logger.Init()
	logger.Log.Info("Logger initialized")

	cfg, err := config.Load(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Log.Info("Configuration loaded successfully")

	// Missing store credentials are a warning, not a startup failure: the
	// process comes up and every store call reports the problem instead.
	if !cfg.HasStoreURL() || !cfg.HasStoreKey() {
		logger.Log.Warn("Store endpoint URL or access key is not configured")
	}

	transactionStore, cleanup, err := store.New(cfg)
	if err != nil {
		logger.Log.Fatalf("Error initializing transaction store: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// --- Wiring All Layers Together ---
	transactionService := service.NewTransactionService(transactionStore, cfg)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	healthHandler := handler.NewHealthHandler(transactionService)

	r := router.NewRouter(transactionHandler, healthHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
