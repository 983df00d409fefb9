package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ebay"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/freeagent"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ledger"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/notify"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/scheduler"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
	dydbstore "github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage/dynamodb"
)

var (
	store    storage.SettingsStore
	source   ebay.TransactionSource
	sink     freeagent.StatementSink
	notifier notify.Notifier
)

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
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

	store = dydbstore.New(dbClient, settingsTable, connectionsTable)

	ebayToken := os.Getenv("EBAY_OAUTH_TOKEN")
	if ebayToken == "" {
		log.Fatal("EBAY_OAUTH_TOKEN environment variable not set")
	}
	source = ebay.NewClient(os.Getenv("EBAY_API_BASE_URL"), ebayToken)

	freeagentToken := os.Getenv("FREEAGENT_ACCESS_TOKEN")
	if freeagentToken == "" {
		log.Fatal("FREEAGENT_ACCESS_TOKEN environment variable not set")
	}
	sink = freeagent.NewClient(os.Getenv("FREEAGENT_API_BASE_URL"), freeagentToken)

	notifier = &notify.LogNotifier{}
}

// HandleRequest processes queued sync jobs: for each one it fetches the eBay
// transactions in the job's window, turns them into ledger entries, and
// uploads the result to FreeAgent.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var job scheduler.SyncJob
		if err := json.Unmarshal([]byte(message.Body), &job); err != nil {
			log.Printf("ERROR: failed to unmarshal sync job from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if err := runJob(ctx, &job); err != nil {
			log.Printf("ERROR: sync job for user %s failed: %v", job.UserID, err)
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}

func runJob(ctx context.Context, job *scheduler.SyncJob) error {
	settings, err := store.GetSettings(ctx, job.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			log.Printf("No autosync settings for user %s, skipping", job.UserID)
			return nil
		}
		return err
	}
	if !settings.Enabled {
		log.Printf("Autosync disabled for user %s, skipping", job.UserID)
		return nil
	}

	from, err := time.Parse("2006-01-02", job.From)
	if err != nil {
		return err
	}
	to, err := time.Parse("2006-01-02", job.To)
	if err != nil {
		return err
	}

	bankAccountID := job.BankAccountID
	if bankAccountID == "" {
		bankAccountID = settings.BankAccountID
	}

	txs, err := source.ListTransactions(ctx, from, to)
	if err != nil {
		return err
	}

	batch := ledger.Build(txs)
	uploaded, err := sink.UploadStatement(ctx, bankAccountID, batch.Entries)
	if err != nil {
		return err
	}

	log.Printf("Uploaded %d entries for user %s (%s to %s)", uploaded, job.UserID, job.From, job.To)

	if settings.NotifyOnCompletion {
		event := notify.Event{
			UserID:        job.UserID,
			From:          job.From,
			To:            job.To,
			UploadedCount: uploaded,
			NetAmount:     batch.NetAmount.StringFixed(2),
		}
		if err := notifier.SyncCompleted(ctx, event); err != nil {
			log.Printf("ERROR: failed to notify user %s: %v", job.UserID, err)
		}
	}

	return nil
}
