package dynamodb

import (
	"context"
	"errors"
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

// SettleCycle finalizes one due cycle: flip the cycle to completed,
// append the completed profit transaction, and refresh the cached
// balance, atomically. The condition on the cycle's current status is the
// race defense: two concurrent sweepers cannot both credit the profit,
// the loser gets ErrCycleAlreadySettled.
func (s *Store) SettleCycle(ctx context.Context, cycle *models.Cycle) error {
	now := time.Now()

	profitTx := models.Transaction{
		Id:           uuid.New().String(),
		UserID:       cycle.UserID,
		Amount:       cycle.Profit,
		Type:         models.TxProfit,
		Status:       models.TxCompleted,
		InvestmentID: cycle.InvestmentID,
		CycleID:      cycle.Id,
		Description:  fmt.Sprintf("Profit from cycle #%d", cycle.CycleNumber),
		CreatedAt:    now,
	}
	profitAV, err := attributevalue.MarshalMap(profitTx)
	if err != nil {
		return fmt.Errorf("failed to marshal profit transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Mark the cycle completed, guarded against a
				// concurrent settlement.
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Cycles),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: cycle.Id}},
					UpdateExpression:    aws.String("SET #status = :completed, materials_recycled = :materials"),
					ConditionExpression: aws.String("#status <> :completed"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(models.CycleCompleted)},
						":materials": &types.AttributeValueMemberN{Value: "100"},
					},
				},
			},
			{
				// Operation 2: Append the profit ledger entry.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Transactions),
					Item:                profitAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 3: Refresh the cached display balance.
				Update: &types.Update{
					TableName:        aws.String(s.Tables.Profiles),
					Key:              profileKey(cycle.UserID),
					UpdateExpression: aws.String("SET deposit_balance = deposit_balance + :profit, version = version + :inc"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":profit": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", cycle.Profit)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil &&
				*tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return storage.ErrCycleAlreadySettled
			}
		}
		return fmt.Errorf("failed to execute cycle settlement: %w", err)
	}
	return nil
}

// CompleteInvestment returns the principal once every cycle of the
// investment has settled: flip the investment from active to completed,
// append the completed principal_return transaction, and refresh the
// cached balance, atomically. The status condition guarantees at most one
// principal return per investment.
func (s *Store) CompleteInvestment(ctx context.Context, inv *models.Investment) error {
	now := time.Now()

	returnTx := models.Transaction{
		Id:           uuid.New().String(),
		UserID:       inv.UserID,
		Amount:       inv.Amount,
		Type:         models.TxPrincipalReturn,
		Status:       models.TxCompleted,
		InvestmentID: inv.Id,
		Description:  fmt.Sprintf("Principal returned for investment %s", inv.Id),
		CreatedAt:    now,
	}
	returnAV, err := attributevalue.MarshalMap(returnTx)
	if err != nil {
		return fmt.Errorf("failed to marshal principal return transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Complete the investment, guarded against a
				// concurrent principal return.
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Investments),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: inv.Id}},
					UpdateExpression:    aws.String("SET #status = :completed"),
					ConditionExpression: aws.String("#status = :active"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(models.InvestmentCompleted)},
						":active":    &types.AttributeValueMemberS{Value: string(models.InvestmentActive)},
					},
				},
			},
			{
				// Operation 2: Append the principal_return ledger entry.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Transactions),
					Item:                returnAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 3: Refresh the cached display balance.
				Update: &types.Update{
					TableName:        aws.String(s.Tables.Profiles),
					Key:              profileKey(inv.UserID),
					UpdateExpression: aws.String("SET deposit_balance = deposit_balance + :amount, version = version + :inc"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", inv.Amount)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil &&
				*tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return storage.ErrInvestmentAlreadyCompleted
			}
		}
		return fmt.Errorf("failed to execute principal return: %w", err)
	}
	return nil
}
