package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/HunterTXx/privateplapay/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTables = Tables{
	Profiles:     "profiles",
	Deposits:     "deposits",
	Withdrawals:  "withdrawals",
	Investments:  "investments",
	Cycles:       "cycles",
	Transactions: "transactions",
	Connections:  "connections",
	Admins:       "admins",
}

func conditionalCancel() *types.TransactionCanceledException {
	return &types.TransactionCanceledException{
		Message: aws.String("Transaction cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
			{Code: aws.String("None")},
		},
	}
}

func TestCreateInvestment(t *testing.T) {
	inv := &models.Investment{Id: "inv-1", UserID: "user-1", Amount: 1000_00, CycleCount: 2, ReturnRate: 11, Status: models.InvestmentActive}
	cycleSet := []models.Cycle{{Id: "c1", InvestmentID: "inv-1"}, {Id: "c2", InvestmentID: "inv-1"}}
	audit := &models.Transaction{Id: "tx-1", UserID: "user-1", Type: models.TxInvestment}

	t.Run("writes profile guard, investment, cycles and audit in one transaction", func(t *testing.T) {
		mockDB := new(mocks.DynamoDBAPI)
		store := New(mockDB, testTables)

		mockDB.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 5 {
				return false
			}
			guard := input.TransactItems[0].Update
			return guard != nil && *guard.TableName == "profiles" && *guard.ConditionExpression == "version = :version"
		})).Return(&awsdynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CreateInvestment(context.Background(), inv, cycleSet, audit, 7)

		require.NoError(t, err)
		mockDB.AssertExpectations(t)
	})

	t.Run("maps a version condition failure to ErrProfileConflict", func(t *testing.T) {
		mockDB := new(mocks.DynamoDBAPI)
		store := New(mockDB, testTables)

		mockDB.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionalCancel())

		err := store.CreateInvestment(context.Background(), inv, cycleSet, audit, 7)

		assert.ErrorIs(t, err, storage.ErrProfileConflict)
	})

	t.Run("rejects cycle sets beyond the transaction limit", func(t *testing.T) {
		mockDB := new(mocks.DynamoDBAPI)
		store := New(mockDB, testTables)

		big := make([]models.Cycle, maxCyclesPerWrite+1)
		err := store.CreateInvestment(context.Background(), inv, big, audit, 7)

		assert.Error(t, err)
		mockDB.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})
}

func TestSettleCycle(t *testing.T) {
	cycle := &models.Cycle{Id: "c1", InvestmentID: "inv-1", UserID: "user-1", CycleNumber: 2, Profit: 55_00}

	t.Run("already settled maps to ErrCycleAlreadySettled", func(t *testing.T) {
		mockDB := new(mocks.DynamoDBAPI)
		store := New(mockDB, testTables)

		mockDB.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionalCancel())

		err := store.SettleCycle(context.Background(), cycle)

		assert.ErrorIs(t, err, storage.ErrCycleAlreadySettled)
	})

	t.Run("settlement credits profit and flips the cycle", func(t *testing.T) {
		mockDB := new(mocks.DynamoDBAPI)
		store := New(mockDB, testTables)

		mockDB.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 3 {
				return false
			}
			flip := input.TransactItems[0].Update
			credit := input.TransactItems[2].Update
			return flip != nil && *flip.TableName == "cycles" &&
				credit != nil && *credit.TableName == "profiles"
		})).Return(&awsdynamodb.TransactWriteItemsOutput{}, nil)

		require.NoError(t, store.SettleCycle(context.Background(), cycle))
		mockDB.AssertExpectations(t)
	})
}

func TestCompleteInvestment(t *testing.T) {
	inv := &models.Investment{Id: "inv-1", UserID: "user-1", Amount: 1000_00, Status: models.InvestmentActive}

	t.Run("already completed maps to ErrInvestmentAlreadyCompleted", func(t *testing.T) {
		mockDB := new(mocks.DynamoDBAPI)
		store := New(mockDB, testTables)

		mockDB.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionalCancel())

		err := store.CompleteInvestment(context.Background(), inv)

		assert.ErrorIs(t, err, storage.ErrInvestmentAlreadyCompleted)
	})
}

func TestGetProfile_NotFound(t *testing.T) {
	mockDB := new(mocks.DynamoDBAPI)
	store := New(mockDB, testTables)

	mockDB.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{Item: nil}, nil)

	_, err := store.GetProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPutCycles_ChunksBatches(t *testing.T) {
	mockDB := new(mocks.DynamoDBAPI)
	store := New(mockDB, testTables)

	// 60 cycles means three BatchWriteItem calls of at most 25 each.
	cycleSet := make([]models.Cycle, 60)
	for i := range cycleSet {
		cycleSet[i] = models.Cycle{
			Id:           string(rune('a' + i%26)),
			InvestmentID: "inv-1",
			StartDate:    time.Now(),
			EndDate:      time.Now().Add(24 * time.Hour),
		}
	}

	mockDB.On("BatchWriteItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.BatchWriteItemInput) bool {
		return len(input.RequestItems["cycles"]) <= 25
	})).Return(&awsdynamodb.BatchWriteItemOutput{}, nil).Times(3)

	require.NoError(t, store.PutCycles(context.Background(), cycleSet))
	mockDB.AssertExpectations(t)
}

func TestIsAdmin(t *testing.T) {
	mockDB := new(mocks.DynamoDBAPI)
	store := New(mockDB, testTables)

	mockDB.On("GetItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.GetItemInput) bool {
		return *input.TableName == "admins"
	})).Return(&awsdynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: "admin-1"},
	}}, nil).Once()

	ok, err := store.IsAdmin(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.True(t, ok)

	mockDB.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{Item: nil}, nil).Once()

	ok, err = store.IsAdmin(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
