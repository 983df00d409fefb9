package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ebay"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/freeagent"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/handlers/connections"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/handlers/export"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/handlers/settings"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/handlers/sync"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/handlers/transactions"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/middleware"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/scheduler"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)
	settingsTable := os.Getenv("DYNAMODB_SETTINGS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if settingsTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_AUTOSYNC_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_AUTOSYNC_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Create our storage implementation
	store := dynamodb.New(dbClient, settingsTable, connectionsTable)

	// Upstream API clients
	ebayToken := os.Getenv("EBAY_OAUTH_TOKEN")
	if ebayToken == "" {
		log.Fatal("EBAY_OAUTH_TOKEN environment variable not set")
	}
	ebayClient := ebay.NewClient(os.Getenv("EBAY_API_BASE_URL"), ebayToken)

	freeagentToken := os.Getenv("FREEAGENT_ACCESS_TOKEN")
	if freeagentToken == "" {
		log.Fatal("FREEAGENT_ACCESS_TOKEN environment variable not set")
	}
	freeagentClient := freeagent.NewClient(os.Getenv("FREEAGENT_API_BASE_URL"), freeagentToken)

	// Create our handlers
	transactionsHandler := transactions.NewTransactionsHandler(ebayClient)
	syncHandler := sync.NewSyncHandler(ebayClient, freeagentClient)
	exportHandler := export.NewExportHandler(ebayClient)
	settingsHandler := settings.NewSettingsHandler(store, sqsScheduler)
	connectionsHandler := connections.NewConnectionsHandler(store)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(slog.Default()))

	router.Get("/ebay/transactions", transactionsHandler.ListTransactions)
	router.Post("/freeagent/sync", syncHandler.SyncTransactions)
	router.Get("/export/csv", exportHandler.ExportCSV)
	router.Get("/autosync/settings/{userId}", settingsHandler.GetSettings)
	router.Put("/autosync/settings/{userId}", settingsHandler.PutSettings)
	router.Get("/connections/{userId}", connectionsHandler.ListConnections)
	router.Post("/connections/{userId}", connectionsHandler.CreateConnection)
	router.Delete("/connections/{userId}/{provider}", connectionsHandler.DeleteConnection)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
