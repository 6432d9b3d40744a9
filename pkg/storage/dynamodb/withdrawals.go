package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/google/uuid"
)

// CreateWithdrawalRequest inserts a pending withdrawal request.
func (s *Store) CreateWithdrawalRequest(ctx context.Context, req *models.WithdrawalRequest) (*models.WithdrawalRequest, error) {
	req.Id = uuid.New().String()
	req.Status = models.RequestPending
	req.CreatedAt = time.Now()

	item, err := attributevalue.MarshalMap(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal request: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Withdrawals),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal request: %w", err)
	}
	return req, nil
}

// GetWithdrawalRequest retrieves a withdrawal request by its ID.
func (s *Store) GetWithdrawalRequest(ctx context.Context, requestID string) (*models.WithdrawalRequest, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Withdrawals),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: requestID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal request from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("withdrawal request %s: %w", requestID, storage.ErrNotFound)
	}

	var req models.WithdrawalRequest
	if err := attributevalue.UnmarshalMap(result.Item, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal request: %w", err)
	}
	return &req, nil
}

// ListWithdrawalsByUserID retrieves all withdrawal requests for a user.
func (s *Store) ListWithdrawalsByUserID(ctx context.Context, userID string) ([]models.WithdrawalRequest, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Withdrawals),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals by user ID: %w", err)
	}

	var reqs []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal requests: %w", err)
	}
	return reqs, nil
}

// ListWithdrawalsByStatus retrieves all withdrawal requests in the given
// status.
func (s *Store) ListWithdrawalsByStatus(ctx context.Context, status models.RequestStatus) ([]models.WithdrawalRequest, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Withdrawals),
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
		return nil, fmt.Errorf("failed to query withdrawals by status: %w", err)
	}

	var reqs []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal requests: %w", err)
	}
	return reqs, nil
}
