package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/HunterTXx/privateplapay/pkg/admin"
	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/config"
	"github.com/HunterTXx/privateplapay/pkg/handlers"
	wshandlers "github.com/HunterTXx/privateplapay/pkg/handlers/websockets"
	"github.com/HunterTXx/privateplapay/pkg/investing"
	"github.com/HunterTXx/privateplapay/pkg/ledger"
	custommiddleware "github.com/HunterTXx/privateplapay/pkg/middleware"
	"github.com/HunterTXx/privateplapay/pkg/scheduler"
	"github.com/HunterTXx/privateplapay/pkg/settlement"
	dydbstore "github.com/HunterTXx/privateplapay/pkg/storage/dynamodb"
	"github.com/HunterTXx/privateplapay/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.SQSQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, cfg.Tables)

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(awsCfg)
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, cfg.SQSQueueURL)

	// WebSocket publisher: real API Gateway in the cloud, no-op locally.
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if cfg.WebSocketEndpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, cfg.WebSocketEndpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	// Domain services
	balances := ledger.NewReader(store)
	orchestrator := investing.New(store, balances, cfg.CycleDurationDays)
	sweeper := settlement.NewSweeper(store)
	workflow := admin.NewWorkflow(store, store, balances)

	handler := handlers.NewApiHandler(store, balances, orchestrator, sweeper, sqsScheduler, publisher, workflow)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(custommiddleware.NewStructuredLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))))

	// Local WebSocket endpoint for development.
	router.Handle("/ws", wshandlers.NewHandler(store))

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	log.Printf("Starting server on port %s", cfg.HTTPPort)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
