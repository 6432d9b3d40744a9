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

// CreateDeposit atomically inserts a pending deposit together with its
// pending ledger transaction. The transaction reuses the deposit's ID as
// its own, so the admin approval flow can flip the matching entry without
// a search.
func (s *Store) CreateDeposit(ctx context.Context, dep *models.Deposit) (*models.Deposit, error) {
	now := time.Now()
	dep.Id = uuid.New().String()
	dep.Status = models.RequestPending
	dep.CreatedAt = now

	tx := models.Transaction{
		Id:          dep.Id,
		UserID:      dep.UserID,
		Amount:      dep.Amount,
		Type:        models.TxDeposit,
		Status:      models.TxPending,
		Description: fmt.Sprintf("Deposit claimed (ref %s)", dep.ExternalRef),
		CreatedAt:   now,
	}

	depAV, err := attributevalue.MarshalMap(dep)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deposit: %w", err)
	}
	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deposit transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Deposits),
					Item:                depAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Transactions),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to execute deposit creation: %w", err)
	}
	return dep, nil
}

// GetDeposit retrieves a deposit by its ID.
func (s *Store) GetDeposit(ctx context.Context, depositID string) (*models.Deposit, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Deposits),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: depositID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get deposit from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("deposit %s: %w", depositID, storage.ErrNotFound)
	}

	var dep models.Deposit
	if err := attributevalue.UnmarshalMap(result.Item, &dep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deposit: %w", err)
	}
	return &dep, nil
}

// ListDepositsByUserID retrieves all deposits for a user.
func (s *Store) ListDepositsByUserID(ctx context.Context, userID string) ([]models.Deposit, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Deposits),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query deposits by user ID: %w", err)
	}

	var deposits []models.Deposit
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &deposits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deposits: %w", err)
	}
	return deposits, nil
}

// ListDepositsByStatus retrieves all deposits in the given status.
func (s *Store) ListDepositsByStatus(ctx context.Context, status models.RequestStatus) ([]models.Deposit, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Deposits),
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
		return nil, fmt.Errorf("failed to query deposits by status: %w", err)
	}

	var deposits []models.Deposit
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &deposits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deposits: %w", err)
	}
	return deposits, nil
}
