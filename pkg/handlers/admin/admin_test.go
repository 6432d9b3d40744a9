package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HunterTXx/privateplapay/pkg/admin"
	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/models"
	storage_mocks "github.com/HunterTXx/privateplapay/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubAuth struct {
	admins map[string]bool
}

func (s *stubAuth) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.admins[userID], nil
}

type stubBalances struct {
	balance int64
}

func (s *stubBalances) GetAvailableBalance(ctx context.Context, userID string) int64 {
	return s.balance
}

func newTestHandler(store *storage_mocks.Storage, balance int64) *AdminHandler {
	auth := &stubAuth{admins: map[string]bool{"admin-1": true}}
	workflow := admin.NewWorkflow(store, auth, &stubBalances{balance: balance})
	return NewAdminHandler(store, workflow)
}

func TestApproveDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 0)

		pending := &models.Deposit{Id: "dep-1", UserID: "user1", Amount: 500_00, Status: models.RequestPending}

		// 2. Mock expectations
		mockStorage.On("GetDeposit", mock.Anything, "dep-1").Return(pending, nil)
		mockStorage.On("ApproveDeposit", mock.Anything, pending).Return(nil)

		// 3. Execute
		req := httptest.NewRequest(http.MethodPost, "/admin/deposits/dep-1/approve", nil)
		req.Header.Set("X-Admin-Id", "admin-1")
		rr := httptest.NewRecorder()

		handler.ApproveDeposit(rr, req, "dep-1")

		// 4. Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Forbidden Without Admin Role", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 0)

		req := httptest.NewRequest(http.MethodPost, "/admin/deposits/dep-1/approve", nil)
		req.Header.Set("X-Admin-Id", "user1")
		rr := httptest.NewRecorder()

		handler.ApproveDeposit(rr, req, "dep-1")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertNotCalled(t, "GetDeposit", mock.Anything, mock.Anything)
	})

	t.Run("Conflict When Already Resolved", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 0)

		resolved := &models.Deposit{Id: "dep-1", Status: models.RequestApproved}
		mockStorage.On("GetDeposit", mock.Anything, "dep-1").Return(resolved, nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/deposits/dep-1/approve", nil)
		req.Header.Set("X-Admin-Id", "admin-1")
		rr := httptest.NewRecorder()

		handler.ApproveDeposit(rr, req, "dep-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertNotCalled(t, "ApproveDeposit", mock.Anything, mock.Anything)
	})
}

func TestApproveWithdrawal(t *testing.T) {
	pendingReq := func() *models.WithdrawalRequest {
		return &models.WithdrawalRequest{Id: "wd-1", UserID: "user1", Amount: 200_00, Status: models.RequestPending}
	}

	t.Run("Success With Notes", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 1000_00)

		// 2. Mock expectations
		mockStorage.On("GetWithdrawalRequest", mock.Anything, "wd-1").Return(pendingReq(), nil)
		mockStorage.On("ApproveWithdrawal", mock.Anything, mock.AnythingOfType("*models.WithdrawalRequest"), "wire sent").Return(nil)

		// 3. Execute
		notes := "wire sent"
		body, _ := json.Marshal(api.ApprovalNotes{Notes: &notes})
		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/wd-1/approve", bytes.NewReader(body))
		req.Header.Set("X-Admin-Id", "admin-1")
		rr := httptest.NewRecorder()

		handler.ApproveWithdrawal(rr, req, "wd-1")

		// 4. Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Reconciled Balance", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 50_00)

		mockStorage.On("GetWithdrawalRequest", mock.Anything, "wd-1").Return(pendingReq(), nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/wd-1/approve", nil)
		req.Header.Set("X-Admin-Id", "admin-1")
		rr := httptest.NewRecorder()

		handler.ApproveWithdrawal(rr, req, "wd-1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertNotCalled(t, "ApproveWithdrawal", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOverrideInvestmentStatus(t *testing.T) {
	t.Run("Rejects Non Terminal Status", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 0)

		body, _ := json.Marshal(api.StatusOverride{Status: "active"})
		req := httptest.NewRequest(http.MethodPost, "/admin/investments/inv-1/status", bytes.NewReader(body))
		req.Header.Set("X-Admin-Id", "admin-1")
		rr := httptest.NewRecorder()

		handler.OverrideInvestmentStatus(rr, req, "inv-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "OverrideInvestmentStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forces Failed Status", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := newTestHandler(mockStorage, 0)

		mockStorage.On("OverrideInvestmentStatus", mock.Anything, "inv-1", models.InvestmentFailed).Return(nil)

		body, _ := json.Marshal(api.StatusOverride{Status: "failed"})
		req := httptest.NewRequest(http.MethodPost, "/admin/investments/inv-1/status", bytes.NewReader(body))
		req.Header.Set("X-Admin-Id", "admin-1")
		rr := httptest.NewRecorder()

		handler.OverrideInvestmentStatus(rr, req, "inv-1")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestListDepositsByStatus_DefaultsToPending(t *testing.T) {
	mockStorage := new(storage_mocks.Storage)
	handler := newTestHandler(mockStorage, 0)

	mockStorage.On("ListDepositsByStatus", mock.Anything, models.RequestPending).Return([]models.Deposit{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/deposits", nil)
	rr := httptest.NewRecorder()

	handler.ListDepositsByStatus(rr, req, api.ListDepositsByStatusParams{})

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}
