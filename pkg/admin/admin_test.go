package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/HunterTXx/privateplapay/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubAuth struct {
	admins map[string]bool
	err    error
}

func (a *stubAuth) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if a.err != nil {
		return false, a.err
	}
	return a.admins[userID], nil
}

type stubBalances struct {
	available int64
}

func (s *stubBalances) GetAvailableBalance(ctx context.Context, userID string) int64 {
	return s.available
}

func newTestWorkflow(store Store, available int64) *Workflow {
	auth := &stubAuth{admins: map[string]bool{"admin-1": true}}
	return NewWorkflow(store, auth, &stubBalances{available: available})
}

func TestApproveDeposit(t *testing.T) {
	t.Run("approves a pending deposit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 0)

		dep := &models.Deposit{Id: "dep-1", UserID: "user-1", Amount: 1000_00, Status: models.RequestPending}
		mockStorage.On("GetDeposit", mock.Anything, "dep-1").Return(dep, nil)
		mockStorage.On("ApproveDeposit", mock.Anything, dep).Return(nil)

		assert.NoError(t, workflow.ApproveDeposit(context.Background(), "admin-1", "dep-1"))
		mockStorage.AssertExpectations(t)
	})

	t.Run("rejects non-admin callers", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 0)

		err := workflow.ApproveDeposit(context.Background(), "user-1", "dep-1")

		assert.ErrorIs(t, err, ErrNotAuthorized)
		mockStorage.AssertNotCalled(t, "GetDeposit", mock.Anything, mock.Anything)
	})

	t.Run("refuses an already resolved deposit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 0)

		dep := &models.Deposit{Id: "dep-1", Status: models.RequestApproved}
		mockStorage.On("GetDeposit", mock.Anything, "dep-1").Return(dep, nil)

		err := workflow.ApproveDeposit(context.Background(), "admin-1", "dep-1")

		assert.ErrorIs(t, err, storage.ErrRequestNotPending)
		mockStorage.AssertNotCalled(t, "ApproveDeposit", mock.Anything, mock.Anything)
	})

	t.Run("propagates authorizer failures", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := NewWorkflow(mockStorage, &stubAuth{err: errors.New("idp down")}, &stubBalances{})

		err := workflow.ApproveDeposit(context.Background(), "admin-1", "dep-1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestApproveWithdrawal(t *testing.T) {
	t.Run("approves when the ledger covers the amount", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 500_00)

		req := &models.WithdrawalRequest{Id: "wr-1", UserID: "user-1", Amount: 300_00, Status: models.RequestPending}
		mockStorage.On("GetWithdrawalRequest", mock.Anything, "wr-1").Return(req, nil)
		mockStorage.On("ApproveWithdrawal", mock.Anything, req, "looks good").Return(nil)

		assert.NoError(t, workflow.ApproveWithdrawal(context.Background(), "admin-1", "wr-1", "looks good"))
		mockStorage.AssertExpectations(t)
	})

	t.Run("refuses when the reconciled balance is short", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 100_00)

		req := &models.WithdrawalRequest{Id: "wr-1", UserID: "user-1", Amount: 300_00, Status: models.RequestPending}
		mockStorage.On("GetWithdrawalRequest", mock.Anything, "wr-1").Return(req, nil)

		err := workflow.ApproveWithdrawal(context.Background(), "admin-1", "wr-1", "")

		assert.ErrorIs(t, err, storage.ErrInsufficientBalance)
		mockStorage.AssertNotCalled(t, "ApproveWithdrawal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("refuses an already resolved request", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 500_00)

		req := &models.WithdrawalRequest{Id: "wr-1", Status: models.RequestRejected}
		mockStorage.On("GetWithdrawalRequest", mock.Anything, "wr-1").Return(req, nil)

		err := workflow.ApproveWithdrawal(context.Background(), "admin-1", "wr-1", "")

		assert.ErrorIs(t, err, storage.ErrRequestNotPending)
	})
}

func TestRejectWithdrawal(t *testing.T) {
	mockStorage := new(mocks.Storage)
	workflow := newTestWorkflow(mockStorage, 0)

	req := &models.WithdrawalRequest{Id: "wr-1", UserID: "user-1", Amount: 300_00, Status: models.RequestPending}
	mockStorage.On("GetWithdrawalRequest", mock.Anything, "wr-1").Return(req, nil)
	mockStorage.On("RejectWithdrawal", mock.Anything, req, "bad address").Return(nil)

	// Rejection needs no balance: the pending request never held funds.
	assert.NoError(t, workflow.RejectWithdrawal(context.Background(), "admin-1", "wr-1", "bad address"))
	mockStorage.AssertExpectations(t)
}

func TestOverrideInvestmentStatus(t *testing.T) {
	t.Run("allows terminal statuses only", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		workflow := newTestWorkflow(mockStorage, 0)

		mockStorage.On("OverrideInvestmentStatus", mock.Anything, "inv-1", models.InvestmentFailed).Return(nil)

		assert.NoError(t, workflow.OverrideInvestmentStatus(context.Background(), "admin-1", "inv-1", models.InvestmentFailed))

		err := workflow.OverrideInvestmentStatus(context.Background(), "admin-1", "inv-1", models.InvestmentActive)
		assert.Error(t, err)
		mockStorage.AssertNumberOfCalls(t, "OverrideInvestmentStatus", 1)
	})
}

func TestDeleteInvestment(t *testing.T) {
	mockStorage := new(mocks.Storage)
	workflow := newTestWorkflow(mockStorage, 0)

	mockStorage.On("DeleteInvestment", mock.Anything, "inv-1").Return(nil)

	assert.NoError(t, workflow.DeleteInvestment(context.Background(), "admin-1", "inv-1"))

	err := workflow.DeleteInvestment(context.Background(), "stranger", "inv-1")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
