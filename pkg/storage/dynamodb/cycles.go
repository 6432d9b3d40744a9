package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
)

const investmentIDIndex = "investment_id-index"

// ListCyclesByUserID retrieves all cycles for a user.
func (s *Store) ListCyclesByUserID(ctx context.Context, userID string) ([]models.Cycle, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Cycles),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query cycles by user ID: %w", err)
	}
	return unmarshalCycles(result.Items)
}

// ListOpenCyclesByUserID retrieves the user's cycles that are not yet
// completed. This status guard is the sweeper's idempotency boundary.
func (s *Store) ListOpenCyclesByUserID(ctx context.Context, userID string) ([]models.Cycle, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Cycles),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		FilterExpression:       aws.String("#status <> :completed"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID":    &types.AttributeValueMemberS{Value: userID},
			":completed": &types.AttributeValueMemberS{Value: string(models.CycleCompleted)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query open cycles: %w", err)
	}
	return unmarshalCycles(result.Items)
}

// ListCyclesByInvestmentID retrieves all cycles of one investment.
func (s *Store) ListCyclesByInvestmentID(ctx context.Context, investmentID string) ([]models.Cycle, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Cycles),
		IndexName:              aws.String(investmentIDIndex),
		KeyConditionExpression: aws.String("investment_id = :investmentID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":investmentID": &types.AttributeValueMemberS{Value: investmentID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query cycles by investment ID: %w", err)
	}
	return unmarshalCycles(result.Items)
}

// PutCycles bulk-inserts a cycle set. Used by the backfill path; a cycle
// set created alongside a new investment goes through CreateInvestment
// instead.
func (s *Store) PutCycles(ctx context.Context, cycleSet []models.Cycle) error {
	// BatchWriteItem accepts at most 25 items per call.
	const batchSize = 25
	for start := 0; start < len(cycleSet); start += batchSize {
		end := start + batchSize
		if end > len(cycleSet) {
			end = len(cycleSet)
		}
		requests := make([]types.WriteRequest, 0, end-start)
		for _, c := range cycleSet[start:end] {
			item, err := attributevalue.MarshalMap(c)
			if err != nil {
				return fmt.Errorf("failed to marshal cycle %d: %w", c.CycleNumber, err)
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
		}
		_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{s.Tables.Cycles: requests},
		})
		if err != nil {
			return fmt.Errorf("failed to batch-write cycles: %w", err)
		}
	}
	return nil
}

func unmarshalCycles(items []map[string]types.AttributeValue) ([]models.Cycle, error) {
	var cycleSet []models.Cycle
	if err := attributevalue.UnmarshalListOfMaps(items, &cycleSet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cycles: %w", err)
	}
	return cycleSet, nil
}
