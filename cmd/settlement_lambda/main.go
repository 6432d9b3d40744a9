package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/HunterTXx/privateplapay/pkg/config"
	"github.com/HunterTXx/privateplapay/pkg/scheduler"
	"github.com/HunterTXx/privateplapay/pkg/settlement"
	dydbstore "github.com/HunterTXx/privateplapay/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var sweeper *settlement.Sweeper

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.Tables)
	sweeper = settlement.NewSweeper(store)
}

// HandleRequest processes sweep jobs from SQS and settles due cycles.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var job scheduler.SweepJob
		if err := json.Unmarshal([]byte(message.Body), &job); err != nil {
			log.Printf("ERROR: failed to unmarshal sweep job from SQS message %s: %v", message.MessageId, err)
			// Returning an error causes SQS to retry the message.
			return err
		}

		report, err := sweeper.SettleDueCycles(ctx, job.UserID)
		if err != nil {
			log.Printf("ERROR: sweep for user %s failed: %v", job.UserID, err)
			return err
		}
		if report.Failed() {
			log.Printf("ERROR: sweep for user %s settled %d cycles but left %d failures", job.UserID, report.CyclesSettled, len(report.Failures))
			// Retrying is safe: settled cycles are skipped by the status condition.
			return fmt.Errorf("sweep for user %s: %w", job.UserID, report.Failures[0])
		}

		log.Printf("Swept user %s: %d cycles settled, %d principals returned", job.UserID, report.CyclesSettled, report.PrincipalsReturned)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
