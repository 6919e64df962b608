package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Matraca130/axon-backend/internal/api"
	"github.com/Matraca130/axon-backend/internal/config"
	"github.com/Matraca130/axon-backend/internal/db"
	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/queue"
	"github.com/Matraca130/axon-backend/internal/repository/sqlite"
	"github.com/Matraca130/axon-backend/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Axon Backend Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("queue_weights=%.2f/%.2f/%.2f/%.2f grace_days=%.2f",
		cfg.WeightOverdue, cfg.WeightMastery, cfg.WeightFragility, cfg.WeightNovelty, cfg.GraceDays)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	masteryRepo := sqlite.NewMasteryRepository(database)
	schedulingRepo := sqlite.NewSchedulingRepository(database)
	itemRepo := sqlite.NewItemRepository(database)
	hierarchyRepo := sqlite.NewHierarchyRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	// Initialize the queue engine
	weights := models.ScoreWeights{
		Overdue:   cfg.WeightOverdue,
		Mastery:   cfg.WeightMastery,
		Fragility: cfg.WeightFragility,
		Novelty:   cfg.WeightNovelty,
		GraceDays: cfg.GraceDays,
	}
	resolver := queue.NewScopeResolver(hierarchyRepo)
	assembler := queue.NewAssembler(masteryRepo, schedulingRepo, itemRepo, resolver, weights, nil)

	// Initialize services
	queueService := services.NewQueueService(assembler)
	statsService := services.NewStatsService(statsRepo)

	srv := &api.Server{
		QueueService: queueService,
		StatsService: statsService,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Axon Backend Stopped")
	log.Info("===========================================")
}
