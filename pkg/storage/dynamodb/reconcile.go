package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
)

// ReconcileInvestmentRate sets the investment's return rate and rewrites
// the profit on every cycle in one transaction, so a half-corrected
// investment can never be observed. Ledger transactions recorded for
// already-settled cycles are deliberately untouched.
func (s *Store) ReconcileInvestmentRate(ctx context.Context, inv *models.Investment, newRate int64, cycleIDs []string, newProfit int64) error {
	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName:           aws.String(s.Tables.Investments),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: inv.Id}},
				UpdateExpression:    aws.String("SET return_rate = :rate"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":rate": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newRate)},
				},
			},
		},
	}

	for _, cycleID := range cycleIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:        aws.String(s.Tables.Cycles),
				Key:              map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: cycleID}},
				UpdateExpression: aws.String("SET profit = :profit"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":profit": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newProfit)},
				},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return fmt.Errorf("failed to execute rate reconciliation: %w", err)
	}
	return nil
}
