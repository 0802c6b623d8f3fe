package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledger-statement-service/internal/api"
	"github.com/ledger-statement-service/internal/api/service"
	"github.com/ledger-statement-service/internal/archive"
	"github.com/ledger-statement-service/internal/config"
	"github.com/ledger-statement-service/internal/data/postgres"
	"github.com/ledger-statement-service/internal/data/static"
	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/ledger-statement-service/internal/logger"
	"github.com/ledger-statement-service/internal/mailer"
	"github.com/ledger-statement-service/internal/platform/messaging/producers"
	"github.com/ledger-statement-service/internal/platform/persistence"
	"github.com/ledger-statement-service/internal/statement"
	"github.com/ledger-statement-service/internal/statement/pdf"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("statement_server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the party catalog from the configured dataset source
	var (
		partyStore ledger.PartyStore
		postgresDB *persistence.PostgresDB
	)
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		postgresDB, err = persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
		if err != nil {
			log.Error("Failed to initialize PostgreSQL", "error", err)
			os.Exit(1)
		}
		partyStore = postgres.NewPartyStore(log, postgresDB)
	default:
		partyStore = static.NewPartyStore(log)
	}

	// Initialize Kafka producer for dispatch events when enabled
	var dispatchEvents producers.MessagePublisher
	if cfg.Kafka.Enabled {
		producer, err := producers.NewStatementDispatchedProducer(appCtx, log, &cfg.Kafka)
		if err != nil {
			log.Error("Failed to initialize Kafka producer", "error", err)
			os.Exit(1)
		}
		dispatchEvents = producer
	}

	// Initialize dispatch infrastructure
	smtpMailer := mailer.NewMailer(log, &cfg.SMTP)
	archiveStore := archive.NewStore(log, &cfg.Archive)
	builder := statement.NewBuilder(partyStore)

	dispatchPool, err := service.NewDispatchPool(log, &cfg.DispatchPool)
	if err != nil {
		log.Error("Failed to initialize dispatch pool", "error", err)
		os.Exit(1)
	}

	// Initialize services
	statementService := service.NewStatementService(
		log,
		partyStore,
		builder,
		pdf.Render,
		smtpMailer,
		archiveStore,
		dispatchEvents,
		pdf.HeaderInfo{CompanyName: cfg.Statement.CompanyName},
		dispatchPool,
	)
	partyService := service.NewPartyService(partyStore)

	// Initialize REST server
	server := api.NewServer(log, cfg, statementService, partyService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	dispatchPool.Shutdown()

	if dispatchEvents != nil {
		if err := dispatchEvents.Close(); err != nil {
			log.Error("Error closing Kafka producer", "error", err)
		}
	}

	if postgresDB != nil {
		postgresDB.Close()
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
