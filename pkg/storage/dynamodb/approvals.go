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

// requestStatusUpdate builds the conditioned pending -> resolved status
// flip shared by the four approval operations.
func requestStatusUpdate(table, id string, to models.RequestStatus) *types.Update {
	return &types.Update{
		TableName:           aws.String(table),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET #status = :to"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":      &types.AttributeValueMemberS{Value: string(to)},
			":pending": &types.AttributeValueMemberS{Value: string(models.RequestPending)},
		},
	}
}

// isConditionalCancel reports whether the error is a transaction
// cancellation caused by a failed condition check.
func isConditionalCancel(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// ApproveDeposit resolves a pending deposit as approved. The deposit row,
// its pending ledger transaction (which shares the deposit's ID), and the
// cached balance move in one transaction; a second approval attempt fails
// the pending condition.
func (s *Store) ApproveDeposit(ctx context.Context, dep *models.Deposit) error {
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: requestStatusUpdate(s.Tables.Deposits, dep.Id, models.RequestApproved)},
			{
				// Flip the matching pending ledger entry to completed.
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Transactions),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: dep.Id}},
					UpdateExpression:    aws.String("SET #status = :completed, description = :desc"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(models.TxCompleted)},
						":pending":   &types.AttributeValueMemberS{Value: string(models.TxPending)},
						":desc":      &types.AttributeValueMemberS{Value: "Deposit approved"},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:        aws.String(s.Tables.Profiles),
					Key:              profileKey(dep.UserID),
					UpdateExpression: aws.String("SET deposit_balance = deposit_balance + :amount, version = version + :inc"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", dep.Amount)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCancel(err) {
			return storage.ErrRequestNotPending
		}
		return fmt.Errorf("failed to execute deposit approval: %w", err)
	}
	return nil
}

// RejectDeposit resolves a pending deposit as rejected and flips its
// ledger entry to rejected. No balance effect.
func (s *Store) RejectDeposit(ctx context.Context, dep *models.Deposit) error {
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: requestStatusUpdate(s.Tables.Deposits, dep.Id, models.RequestRejected)},
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Transactions),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: dep.Id}},
					UpdateExpression:    aws.String("SET #status = :rejected, description = :desc"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":rejected": &types.AttributeValueMemberS{Value: string(models.TxRejected)},
						":pending":  &types.AttributeValueMemberS{Value: string(models.TxPending)},
						":desc":     &types.AttributeValueMemberS{Value: "Deposit rejected"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCancel(err) {
			return storage.ErrRequestNotPending
		}
		return fmt.Errorf("failed to execute deposit rejection: %w", err)
	}
	return nil
}

// ApproveWithdrawal resolves a pending withdrawal request as approved and
// moves the amount between the cached balances. The cached-balance
// condition is a last-line guard; the caller has already verified the
// reconciled figure.
func (s *Store) ApproveWithdrawal(ctx context.Context, req *models.WithdrawalRequest, notes string) error {
	now := time.Now()

	withdrawalTx := models.Transaction{
		Id:          uuid.New().String(),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Type:        models.TxWithdrawal,
		Status:      models.TxCompleted,
		Description: fmt.Sprintf("Withdrawal approved to %s", req.WalletAddress),
		CreatedAt:   now,
	}
	txAV, err := attributevalue.MarshalMap(withdrawalTx)
	if err != nil {
		return fmt.Errorf("failed to marshal withdrawal transaction: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal processed timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Withdrawals),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: req.Id}},
					UpdateExpression:    aws.String("SET #status = :approved, admin_notes = :notes, processed_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":approved": &types.AttributeValueMemberS{Value: string(models.RequestApproved)},
						":pending":  &types.AttributeValueMemberS{Value: string(models.RequestPending)},
						":notes":    &types.AttributeValueMemberS{Value: notes},
						":now":      nowAV,
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Transactions),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Profiles),
					Key:                 profileKey(req.UserID),
					UpdateExpression:    aws.String("SET deposit_balance = deposit_balance - :amount, withdraw_balance = withdraw_balance + :amount, version = version + :inc"),
					ConditionExpression: aws.String("deposit_balance >= :amount"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", req.Amount)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) == 3 {
			if code := tce.CancellationReasons[0].Code; code != nil && *code == "ConditionalCheckFailed" {
				return storage.ErrRequestNotPending
			}
			if code := tce.CancellationReasons[2].Code; code != nil && *code == "ConditionalCheckFailed" {
				return storage.ErrInsufficientBalance
			}
		}
		return fmt.Errorf("failed to execute withdrawal approval: %w", err)
	}
	return nil
}

// RejectWithdrawal resolves a pending withdrawal request as rejected with
// notes and a processed timestamp. No balance effect.
func (s *Store) RejectWithdrawal(ctx context.Context, req *models.WithdrawalRequest, notes string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal processed timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Withdrawals),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: req.Id}},
		UpdateExpression:    aws.String("SET #status = :rejected, admin_notes = :notes, processed_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rejected": &types.AttributeValueMemberS{Value: string(models.RequestRejected)},
			":pending":  &types.AttributeValueMemberS{Value: string(models.RequestPending)},
			":notes":    &types.AttributeValueMemberS{Value: notes},
			":now":      nowAV,
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return storage.ErrRequestNotPending
		}
		return fmt.Errorf("failed to execute withdrawal rejection: %w", err)
	}
	return nil
}

// OverrideInvestmentStatus force-sets an investment's status.
func (s *Store) OverrideInvestmentStatus(ctx context.Context, investmentID string, status models.InvestmentStatus) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Investments),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: investmentID}},
		UpdateExpression:    aws.String("SET #status = :status"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("investment %s: %w", investmentID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to override investment status: %w", err)
	}
	return nil
}

// DeleteInvestment removes the investment, its cycles, and its ledger
// transactions in one transaction so no orphaned dependents survive.
func (s *Store) DeleteInvestment(ctx context.Context, investmentID string) error {
	cycleSet, err := s.ListCyclesByInvestmentID(ctx, investmentID)
	if err != nil {
		return err
	}
	transactions, err := s.listTransactionsByInvestmentID(ctx, investmentID)
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName: aws.String(s.Tables.Investments),
				Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: investmentID}},
			},
		},
	}
	for _, c := range cycleSet {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(s.Tables.Cycles),
				Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: c.Id}},
			},
		})
	}
	for _, tx := range transactions {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(s.Tables.Transactions),
				Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: tx.Id}},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return fmt.Errorf("failed to execute investment deletion: %w", err)
	}
	return nil
}

func (s *Store) listTransactionsByInvestmentID(ctx context.Context, investmentID string) ([]models.Transaction, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Transactions),
		IndexName:              aws.String(investmentIDIndex),
		KeyConditionExpression: aws.String("investment_id = :investmentID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":investmentID": &types.AttributeValueMemberS{Value: investmentID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by investment ID: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	return transactions, nil
}
