package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// A TransactWriteItems call holds at most 100 items: profile update +
// investment + audit transaction leaves 97 slots for cycles.
const maxCyclesPerWrite = 97

// CreateInvestment persists the investment row, its full cycle set, and
// the completed audit transaction in one DynamoDB transaction. The first
// item bumps the profile version under the condition that it still equals
// the version read during the eligibility check; any concurrent
// balance-affecting write invalidates that condition and the whole unit
// rolls back with ErrProfileConflict, leaving zero rows behind.
func (s *Store) CreateInvestment(ctx context.Context, inv *models.Investment, cycleSet []models.Cycle, audit *models.Transaction, expectedVersion int64) error {
	if len(cycleSet) > maxCyclesPerWrite {
		return fmt.Errorf("cycle count %d exceeds the atomic write limit of %d", len(cycleSet), maxCyclesPerWrite)
	}

	invAV, err := attributevalue.MarshalMap(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal investment: %w", err)
	}
	auditAV, err := attributevalue.MarshalMap(audit)
	if err != nil {
		return fmt.Errorf("failed to marshal audit transaction: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Re-assert the precondition inside the transaction: the
			// profile must not have changed since the balance was read.
			Update: &types.Update{
				TableName:           aws.String(s.Tables.Profiles),
				Key:                 profileKey(inv.UserID),
				UpdateExpression:    aws.String("SET version = version + :inc"),
				ConditionExpression: aws.String("version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":inc":     &types.AttributeValueMemberN{Value: "1"},
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(s.Tables.Investments),
				Item:                invAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}

	for i := range cycleSet {
		cycleAV, err := attributevalue.MarshalMap(cycleSet[i])
		if err != nil {
			return fmt.Errorf("failed to marshal cycle %d: %w", cycleSet[i].CycleNumber, err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.Tables.Cycles),
				Item:                cycleAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.Tables.Transactions),
			Item:                auditAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		},
	})

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil &&
				*tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return storage.ErrProfileConflict
			}
		}
		return fmt.Errorf("failed to execute investment creation: %w", err)
	}
	return nil
}
