package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evcomply/compliance-checker-api/internal/catalog"
	"github.com/evcomply/compliance-checker-api/internal/compliance"
	"github.com/evcomply/compliance-checker-api/internal/config"
	"github.com/evcomply/compliance-checker-api/internal/db"
	"github.com/evcomply/compliance-checker-api/internal/parser"
	"github.com/evcomply/compliance-checker-api/internal/repository"
	"github.com/evcomply/compliance-checker-api/internal/router"
	"github.com/evcomply/compliance-checker-api/internal/services"
	"github.com/evcomply/compliance-checker-api/internal/storage"
	"github.com/evcomply/compliance-checker-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize database
	database, err := db.NewSQLiteDB(cfg.DatabaseFile)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.DatabaseFile); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Initialize object storage
	s3Storage, err := storage.NewS3Storage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize S3 storage", "error", err)
	}

	// Wire the parsing engine and compliance checker with the built-in
	// knowledge bases
	engine := parser.NewEngine(catalog.Default())
	checker := compliance.NewService(catalog.DefaultTestCaseKB(), catalog.DefaultComponentKB())

	reportRepo := repository.NewReportRepository(database)
	componentRepo := repository.NewComponentRepository(database)
	reportService := services.NewReportService(reportRepo, componentRepo, s3Storage, engine, checker, logger)

	// Setup HTTP router
	handler := router.NewRouter(reportService, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
