package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/HunterTXx/privateplapay/pkg/config"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/reconcile"
	"github.com/HunterTXx/privateplapay/pkg/scheduler"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	dydbstore "github.com/HunterTXx/privateplapay/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage
var reconciler *reconcile.Reconciler
var sqsScheduler scheduler.Scheduler

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.SQSQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store = dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.Tables)
	reconciler = reconcile.New(store)
	sqsScheduler = scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL)
}

// HandleRequest is triggered by an EventBridge Schedule. It repairs drift
// across active investments and fans out settlement sweeps.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation over active investments...")

	active, err := store.ListInvestmentsByStatus(ctx, models.InvestmentActive)
	if err != nil {
		log.Printf("ERROR: failed to list active investments: %v", err)
		return err
	}

	if len(active) == 0 {
		log.Println("No active investments found.")
		return nil
	}

	backfilled, err := reconciler.BackfillCycles(ctx, active)
	if err != nil {
		log.Printf("ERROR: cycle backfill finished with an error: %v", err)
		// Keep going; rate reconciliation is independent of the backfill.
	}

	corrected, err := reconciler.ReconcileRates(ctx, active)
	if err != nil {
		log.Printf("ERROR: rate reconciliation finished with an error: %v", err)
	}

	log.Printf("Reconciled %d investments: %d schedules backfilled, %d rates corrected", len(active), backfilled, corrected)

	// Fan out one sweep per holder so due cycles settle.
	users := make(map[string]struct{})
	for _, inv := range active {
		users[inv.UserID] = struct{}{}
	}
	for userID := range users {
		if err := sqsScheduler.ScheduleSweep(ctx, scheduler.SweepJob{UserID: userID}, 0); err != nil {
			log.Printf("ERROR: failed to enqueue sweep for user %s: %v", userID, err)
			// Continue with the remaining users; the next run will retry.
			continue
		}
	}

	log.Println("Reconciliation finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
