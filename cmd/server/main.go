package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lounge-advisor-service/internal/infrastructure/config"
	"lounge-advisor-service/internal/infrastructure/persistence"
	"lounge-advisor-service/internal/infrastructure/secrets"
	"lounge-advisor-service/internal/interface/amadeus"
	"lounge-advisor-service/internal/interface/httpapi"
	storeRepo "lounge-advisor-service/internal/interface/repository"
	"lounge-advisor-service/internal/usecase"
	"lounge-advisor-service/pkg/logger"
	"lounge-advisor-service/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Lounge Advisor Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("lounge_advisor")

	// Set up MongoDB connection (user profiles)
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// PostgreSQL reference tables (airlines, airports)
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// AWS clients: DynamoDB lounge catalog, Secrets Manager credentials
	awsCfg, err := persistence.NewAWSConfig(ctx, cfg.AWSRegion, cfg.DynamoEndpoint != "" || cfg.SecretsEndpoint != "")
	if err != nil {
		log.Fatal("Failed to load AWS config", "error", err)
	}
	dynamoClient := persistence.NewDynamoClient(awsCfg, cfg.DynamoEndpoint)
	secretsClient := persistence.NewSecretsManagerClient(awsCfg, cfg.SecretsEndpoint)

	// Set up repositories
	airlineRepository := storeRepo.NewGormAirlineRepository(gormDB)
	airportRepository := storeRepo.NewGormAirportRepository(gormDB)
	userRepository := storeRepo.NewMongoUserProfileRepository(db)
	loungeRepository := storeRepo.NewDynamoLoungeRepository(dynamoClient, cfg.LoungesTable)

	// Flight gateway: cached Secrets Manager credentials feeding the
	// OAuth token exchange
	credentialStore := secrets.NewCache(secrets.NewManagerStore(secretsClient), cfg.CredentialTTL, log, m)
	flightGateway := amadeus.NewClient(cfg.AmadeusBaseURL, credentialStore, cfg.AmadeusSecretName, cfg.TokenTTL, cfg.UpstreamTimeout, log, m)

	policy := usecase.ConnectionPolicy{
		SameTerminalMinutes:   cfg.MCTSameTerminal,
		TerminalChangeMinutes: cfg.MCTTerminalChange,
		MobilityExtraMinutes:  cfg.MCTMobilityExtra,
	}

	advisor := usecase.NewAdvisor(
		flightGateway,
		loungeRepository,
		userRepository,
		airlineRepository,
		airportRepository,
		policy,
		cfg.BoardingBufferMinutes,
		log,
		m,
	)

	handler := httpapi.NewHandler(advisor, log, m)
	router := httpapi.NewRouter(handler, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Lounge Advisor Service stopped")
	_ = log.Sync()
}
