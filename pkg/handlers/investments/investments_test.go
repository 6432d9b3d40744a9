package investments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/investing"
	"github.com/HunterTXx/privateplapay/pkg/models"
	scheduler_mocks "github.com/HunterTXx/privateplapay/pkg/scheduler/mocks"
	"github.com/HunterTXx/privateplapay/pkg/settlement"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	storage_mocks "github.com/HunterTXx/privateplapay/pkg/storage/mocks"
	"github.com/HunterTXx/privateplapay/pkg/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubBalances struct {
	balance int64
}

func (s *stubBalances) GetAvailableBalance(ctx context.Context, userID string) int64 {
	return s.balance
}

func newTestHandler(store *storage_mocks.Storage, sched *scheduler_mocks.Scheduler, balance int64) *InvestmentsHandler {
	balances := &stubBalances{balance: balance}
	orchestrator := investing.New(store, balances, 14)
	sweeper := settlement.NewSweeper(store)
	return NewInvestmentsHandler(store, orchestrator, sweeper, sched, &websockets.NoOpPublisher{}, balances)
}

func TestCreateInvestment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.Storage)
		mockScheduler := new(scheduler_mocks.Scheduler)
		handler := newTestHandler(mockStorage, mockScheduler, 5000_00)

		newInv := &api.NewInvestment{
			UserId:     "user1",
			Amount:     1000_00,
			CycleCount: 3,
		}

		// 2. Mock expectations
		mockStorage.On("GetProfile", mock.Anything, "user1").Return(&models.Profile{UserID: "user1", Version: 4}, nil)
		mockStorage.On("CreateInvestment", mock.Anything, mock.AnythingOfType("*models.Investment"), mock.AnythingOfType("[]models.Cycle"), mock.AnythingOfType("*models.Transaction"), int64(4)).Return(nil)
		mockScheduler.On("ScheduleSweep", mock.Anything, mock.AnythingOfType("scheduler.SweepJob"), time.Duration(0)).Return(nil)

		// 3. Execute
		body, _ := json.Marshal(newInv)
		req := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateInvestment(rr, req)

		// 4. Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var created api.Investment
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, "user1", created.UserId)
		assert.Equal(t, int64(11), created.ReturnRate)
		mockStorage.AssertExpectations(t)
		mockScheduler.AssertExpectations(t)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.Storage)
		mockScheduler := new(scheduler_mocks.Scheduler)
		handler := newTestHandler(mockStorage, mockScheduler, 100_00)

		newInv := &api.NewInvestment{
			UserId:     "user1",
			Amount:     1000_00,
			CycleCount: 3,
		}

		// 2. Mock expectations
		mockStorage.On("GetProfile", mock.Anything, "user1").Return(&models.Profile{UserID: "user1", Version: 4}, nil)

		// 3. Execute
		body, _ := json.Marshal(newInv)
		req := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateInvestment(rr, req)

		// 4. Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockScheduler.AssertNotCalled(t, "ScheduleSweep", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Below Minimum", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.Storage)
		mockScheduler := new(scheduler_mocks.Scheduler)
		handler := newTestHandler(mockStorage, mockScheduler, 5000_00)

		newInv := &api.NewInvestment{
			UserId:     "user1",
			Amount:     10_00,
			CycleCount: 3,
		}

		// 2. Execute
		body, _ := json.Marshal(newInv)
		req := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateInvestment(rr, req)

		// 3. Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})

	t.Run("Missing User", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		mockScheduler := new(scheduler_mocks.Scheduler)
		handler := newTestHandler(mockStorage, mockScheduler, 5000_00)

		body, _ := json.Marshal(&api.NewInvestment{Amount: 1000_00, CycleCount: 3})
		req := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateInvestment(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateInvestment_SweepEnqueueFailureDoesNotFailRequest(t *testing.T) {
	// 1. Setup
	mockStorage := new(storage_mocks.Storage)
	mockScheduler := new(scheduler_mocks.Scheduler)
	handler := newTestHandler(mockStorage, mockScheduler, 5000_00)

	// 2. Mock expectations
	mockStorage.On("GetProfile", mock.Anything, "user1").Return(&models.Profile{UserID: "user1", Version: 1}, nil)
	mockStorage.On("CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(1)).Return(nil)
	mockScheduler.On("ScheduleSweep", mock.Anything, mock.AnythingOfType("scheduler.SweepJob"), time.Duration(0)).Return(assert.AnError)

	// 3. Execute
	body, _ := json.Marshal(&api.NewInvestment{UserId: "user1", Amount: 300_00, CycleCount: 2})
	req := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.CreateInvestment(rr, req)

	// 4. Assert. The investment is committed; the immediate sweep is a
	// best-effort shortcut and the nightly job covers the gap.
	assert.Equal(t, http.StatusCreated, rr.Code)
	mockScheduler.AssertExpectations(t)
}

func TestGetInvestmentById_NotFound(t *testing.T) {
	mockStorage := new(storage_mocks.Storage)
	handler := newTestHandler(mockStorage, new(scheduler_mocks.Scheduler), 0)

	mockStorage.On("GetInvestment", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/investments/missing", nil)
	rr := httptest.NewRecorder()

	handler.GetInvestmentById(rr, req, "missing")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSettleUserCycles(t *testing.T) {
	// 1. Setup
	mockStorage := new(storage_mocks.Storage)
	handler := newTestHandler(mockStorage, new(scheduler_mocks.Scheduler), 0)

	// 2. Mock expectations: no open cycles means an empty report.
	mockStorage.On("ListOpenCyclesByUserID", mock.Anything, "user1").Return([]models.Cycle{}, nil)

	// 3. Execute
	req := httptest.NewRequest(http.MethodPost, "/users/user1/cycles/settle", nil)
	rr := httptest.NewRecorder()

	handler.SettleUserCycles(rr, req, "user1")

	// 4. Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	var report api.SettlementReport
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 0, report.CyclesSettled)
	assert.Equal(t, 0, report.PrincipalsReturned)
}
