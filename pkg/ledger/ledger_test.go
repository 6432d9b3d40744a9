package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestComputeBalance(t *testing.T) {
	deposits := []models.Deposit{
		{Amount: 1000_00, Status: models.RequestApproved},
		{Amount: 500_00, Status: models.RequestPending},
		{Amount: 250_00, Status: models.RequestRejected},
	}
	withdrawals := []models.WithdrawalRequest{
		{Amount: 100_00, Status: models.RequestApproved},
		{Amount: 50_00, Status: models.RequestPending},
	}
	investments := []models.Investment{
		{Amount: 200_00, Status: models.InvestmentActive},
		{Amount: 300_00, Status: models.InvestmentCompleted},
	}
	transactions := []models.Transaction{
		{Amount: 55_00, Type: models.TxProfit, Status: models.TxCompleted},
		{Amount: 10_00, Type: models.TxProfit, Status: models.TxPending},
		{Amount: 200_00, Type: models.TxPrincipalReturn, Status: models.TxCompleted},
		// Deposit-type ledger entries never count; the deposit rows do.
		{Amount: 1000_00, Type: models.TxDeposit, Status: models.TxCompleted},
	}

	// 1000 - 100 - 200 - 300 + 55 + 200 = 655
	assert.Equal(t, int64(655_00), ComputeBalance(deposits, withdrawals, investments, transactions))
}

func TestComputeBalance_Empty(t *testing.T) {
	assert.Zero(t, ComputeBalance(nil, nil, nil, nil))
}

func TestComputeBalance_CanGoNegative(t *testing.T) {
	// Investments subtract regardless of status; a failed investment with
	// no matching principal return leaves the ledger short.
	investments := []models.Investment{{Amount: 100_00, Status: models.InvestmentFailed}}
	assert.Equal(t, int64(-100_00), ComputeBalance(nil, nil, investments, nil))
}

func TestGetAvailableBalance(t *testing.T) {
	t.Run("reconciles from all sources", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reader := NewReader(mockStorage)

		mockStorage.On("ListDepositsByUserID", mock.Anything, "user-1").Return([]models.Deposit{{Amount: 1000_00, Status: models.RequestApproved}}, nil)
		mockStorage.On("ListWithdrawalsByUserID", mock.Anything, "user-1").Return([]models.WithdrawalRequest{}, nil)
		mockStorage.On("ListInvestmentsByUserID", mock.Anything, "user-1").Return([]models.Investment{{Amount: 400_00}}, nil)
		mockStorage.On("ListTransactionsByUserID", mock.Anything, "user-1").Return([]models.Transaction{{Amount: 18_00, Type: models.TxProfit, Status: models.TxCompleted}}, nil)

		assert.Equal(t, int64(618_00), reader.GetAvailableBalance(context.Background(), "user-1"))
		mockStorage.AssertExpectations(t)
	})

	t.Run("degrades to zero on read failure", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reader := NewReader(mockStorage)

		mockStorage.On("ListDepositsByUserID", mock.Anything, "user-1").Return(nil, errors.New("throttled"))

		assert.Zero(t, reader.GetAvailableBalance(context.Background(), "user-1"))
		mockStorage.AssertExpectations(t)
	})
}
