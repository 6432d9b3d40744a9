package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/HunterTXx/privateplapay/pkg/storage/dynamodb"
)

// Config holds the runtime settings shared by the API server and the lambdas.
type Config struct {
	Tables dynamodb.Tables

	SQSQueueURL       string
	WebSocketEndpoint string

	HTTPPort string

	// CycleDurationDays is the length of a single return cycle, used when
	// new investment schedules are derived.
	CycleDurationDays int
}

const defaultCycleDurationDays = 14

// FromEnv builds a Config from environment variables. Table names and the
// SQS queue URL are required.
func FromEnv() (Config, error) {
	cfg := Config{
		Tables: dynamodb.Tables{
			Profiles:     os.Getenv("DYNAMODB_PROFILES_TABLE_NAME"),
			Deposits:     os.Getenv("DYNAMODB_DEPOSITS_TABLE_NAME"),
			Withdrawals:  os.Getenv("DYNAMODB_WITHDRAWALS_TABLE_NAME"),
			Investments:  os.Getenv("DYNAMODB_INVESTMENTS_TABLE_NAME"),
			Cycles:       os.Getenv("DYNAMODB_CYCLES_TABLE_NAME"),
			Transactions: os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME"),
			Connections:  os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
			Admins:       os.Getenv("DYNAMODB_ADMINS_TABLE_NAME"),
		},
		SQSQueueURL:       os.Getenv("SQS_QUEUE_URL"),
		WebSocketEndpoint: os.Getenv("WEBSOCKET_API_ENDPOINT"),
		HTTPPort:          os.Getenv("HTTP_PORT"),
		CycleDurationDays: defaultCycleDurationDays,
	}

	required := map[string]string{
		"DYNAMODB_PROFILES_TABLE_NAME":     cfg.Tables.Profiles,
		"DYNAMODB_DEPOSITS_TABLE_NAME":     cfg.Tables.Deposits,
		"DYNAMODB_WITHDRAWALS_TABLE_NAME":  cfg.Tables.Withdrawals,
		"DYNAMODB_INVESTMENTS_TABLE_NAME":  cfg.Tables.Investments,
		"DYNAMODB_CYCLES_TABLE_NAME":       cfg.Tables.Cycles,
		"DYNAMODB_TRANSACTIONS_TABLE_NAME": cfg.Tables.Transactions,
	}
	for name, value := range required {
		if value == "" {
			return Config{}, fmt.Errorf("%s environment variable not set", name)
		}
	}

	if raw := os.Getenv("CYCLE_DURATION_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			return Config{}, fmt.Errorf("invalid CYCLE_DURATION_DAYS %q", raw)
		}
		cfg.CycleDurationDays = days
	}

	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}

	return cfg, nil
}
