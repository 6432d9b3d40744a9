package investing

import (
	"context"
	"testing"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/rates"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/HunterTXx/privateplapay/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubBalances struct {
	available int64
}

func (s *stubBalances) GetAvailableBalance(ctx context.Context, userID string) int64 {
	return s.available
}

func TestCreateInvestment_Success(t *testing.T) {
	// 1. Setup
	mockStorage := new(mocks.Storage)
	orchestrator := New(mockStorage, &stubBalances{available: 2000_00}, 14)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	orchestrator.now = func() time.Time { return now }

	profile := &models.Profile{UserID: "user-1", Version: 7}

	var gotCycles []models.Cycle
	var gotAudit *models.Transaction

	// 2. Mock expectations
	mockStorage.On("GetProfile", mock.Anything, "user-1").Return(profile, nil)
	mockStorage.On("CreateInvestment", mock.Anything, mock.AnythingOfType("*models.Investment"), mock.Anything, mock.Anything, int64(7)).
		Run(func(args mock.Arguments) {
			gotCycles = args.Get(2).([]models.Cycle)
			gotAudit = args.Get(3).(*models.Transaction)
		}).
		Return(nil)

	// 3. Execute
	inv, err := orchestrator.CreateInvestment(context.Background(), "user-1", 1000_00, 3)

	// 4. Assert
	require.NoError(t, err)
	assert.Equal(t, int64(11), inv.ReturnRate)
	assert.Equal(t, models.InvestmentActive, inv.Status)
	assert.Equal(t, now, inv.CreationDate)
	assert.Equal(t, now.Add(3*14*24*time.Hour), inv.EndDate)

	require.Len(t, gotCycles, 3)
	assert.Equal(t, int64(55_00), gotCycles[0].Profit)
	assert.Equal(t, inv.Id, gotCycles[0].InvestmentID)

	require.NotNil(t, gotAudit)
	assert.Equal(t, models.TxInvestment, gotAudit.Type)
	assert.Equal(t, models.TxCompleted, gotAudit.Status)
	assert.Equal(t, inv.Id, gotAudit.InvestmentID)

	mockStorage.AssertExpectations(t)
}

func TestCreateInvestment_BelowMinimum(t *testing.T) {
	mockStorage := new(mocks.Storage)
	orchestrator := New(mockStorage, &stubBalances{available: 2000_00}, 14)

	_, err := orchestrator.CreateInvestment(context.Background(), "user-1", 49_99, 3)

	assert.ErrorIs(t, err, rates.ErrBelowMinimum)
	mockStorage.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	mockStorage.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateInvestment_InsufficientBalance(t *testing.T) {
	mockStorage := new(mocks.Storage)
	orchestrator := New(mockStorage, &stubBalances{available: 100_00}, 14)

	mockStorage.On("GetProfile", mock.Anything, "user-1").Return(&models.Profile{UserID: "user-1", Version: 1}, nil)

	_, err := orchestrator.CreateInvestment(context.Background(), "user-1", 1000_00, 3)

	assert.ErrorIs(t, err, storage.ErrInsufficientBalance)
	mockStorage.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateInvestment_RetriesOnceOnProfileConflict(t *testing.T) {
	mockStorage := new(mocks.Storage)
	orchestrator := New(mockStorage, &stubBalances{available: 2000_00}, 14)

	// The profile changes between the first read and the first write.
	mockStorage.On("GetProfile", mock.Anything, "user-1").Return(&models.Profile{UserID: "user-1", Version: 7}, nil).Once()
	mockStorage.On("GetProfile", mock.Anything, "user-1").Return(&models.Profile{UserID: "user-1", Version: 8}, nil).Once()
	mockStorage.On("CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(7)).Return(storage.ErrProfileConflict).Once()
	mockStorage.On("CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(8)).Return(nil).Once()

	inv, err := orchestrator.CreateInvestment(context.Background(), "user-1", 1000_00, 3)

	require.NoError(t, err)
	assert.Equal(t, models.InvestmentActive, inv.Status)
	mockStorage.AssertExpectations(t)
}

func TestCreateInvestment_SurfacesSecondConflict(t *testing.T) {
	mockStorage := new(mocks.Storage)
	orchestrator := New(mockStorage, &stubBalances{available: 2000_00}, 14)

	mockStorage.On("GetProfile", mock.Anything, "user-1").Return(&models.Profile{UserID: "user-1", Version: 7}, nil)
	mockStorage.On("CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(7)).Return(storage.ErrProfileConflict)

	_, err := orchestrator.CreateInvestment(context.Background(), "user-1", 1000_00, 3)

	assert.ErrorIs(t, err, storage.ErrProfileConflict)
	mockStorage.AssertNumberOfCalls(t, "CreateInvestment", 2)
}

func TestCreateInvestment_InvalidCycleCount(t *testing.T) {
	mockStorage := new(mocks.Storage)
	orchestrator := New(mockStorage, &stubBalances{available: 2000_00}, 14)

	mockStorage.On("GetProfile", mock.Anything, "user-1").Return(&models.Profile{UserID: "user-1", Version: 1}, nil)

	_, err := orchestrator.CreateInvestment(context.Background(), "user-1", 1000_00, 0)

	assert.Error(t, err)
	mockStorage.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
