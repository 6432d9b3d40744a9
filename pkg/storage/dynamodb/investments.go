package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// GetInvestment retrieves an investment by its ID.
func (s *Store) GetInvestment(ctx context.Context, investmentID string) (*models.Investment, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Investments),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: investmentID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get investment from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("investment %s: %w", investmentID, storage.ErrNotFound)
	}

	var inv models.Investment
	if err := attributevalue.UnmarshalMap(result.Item, &inv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal investment: %w", err)
	}
	return &inv, nil
}

// ListInvestmentsByUserID retrieves all investments for a user.
func (s *Store) ListInvestmentsByUserID(ctx context.Context, userID string) ([]models.Investment, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Investments),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query investments by user ID: %w", err)
	}

	var investments []models.Investment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &investments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal investments: %w", err)
	}
	return investments, nil
}

// ListInvestmentsByStatus retrieves all investments in the given status
// across users. Used by the reconciliation job.
func (s *Store) ListInvestmentsByStatus(ctx context.Context, status models.InvestmentStatus) ([]models.Investment, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Investments),
		IndexName:              aws.String(statusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query investments by status: %w", err)
	}

	var investments []models.Investment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &investments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal investments: %w", err)
	}
	return investments, nil
}
