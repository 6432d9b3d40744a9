package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileRates(t *testing.T) {
	t.Run("corrects a drifted rate", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)

		// 1000.00 should earn 11, stored as 9.
		drifted := models.Investment{Id: "inv-1", Amount: 1000_00, ReturnRate: 9}

		mockStorage.On("ListCyclesByInvestmentID", mock.Anything, "inv-1").Return([]models.Cycle{
			{Id: "c1"}, {Id: "c2"},
		}, nil)
		mockStorage.On("ReconcileInvestmentRate", mock.Anything, mock.Anything, int64(11), []string{"c1", "c2"}, int64(55_00)).Return(nil)

		investments := []models.Investment{drifted}
		corrected, err := reconciler.ReconcileRates(context.Background(), investments)

		require.NoError(t, err)
		assert.Equal(t, 1, corrected)
		assert.Equal(t, int64(11), investments[0].ReturnRate)
		mockStorage.AssertExpectations(t)
	})

	t.Run("second pass converges to a no-op", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)

		investments := []models.Investment{{Id: "inv-1", Amount: 1000_00, ReturnRate: 11}}
		corrected, err := reconciler.ReconcileRates(context.Background(), investments)

		require.NoError(t, err)
		assert.Zero(t, corrected)
		mockStorage.AssertNotCalled(t, "ReconcileInvestmentRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips below-minimum legacy rows", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)

		investments := []models.Investment{{Id: "inv-legacy", Amount: 10_00, ReturnRate: 8}}
		corrected, err := reconciler.ReconcileRates(context.Background(), investments)

		require.NoError(t, err)
		assert.Zero(t, corrected)
	})
}

func TestBackfillCycles(t *testing.T) {
	creation := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("regenerates a missing schedule", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)
		reconciler.now = func() time.Time { return creation.Add(20 * 24 * time.Hour) }

		bare := models.Investment{
			Id:           "inv-1",
			UserID:       "user-1",
			Amount:       1000_00,
			CycleCount:   3,
			ReturnRate:   11,
			Status:       models.InvestmentActive,
			CreationDate: creation,
			EndDate:      creation.Add(42 * 24 * time.Hour),
		}

		mockStorage.On("ListCyclesByInvestmentID", mock.Anything, "inv-1").Return([]models.Cycle{}, nil)
		mockStorage.On("PutCycles", mock.Anything, mock.MatchedBy(func(cs []models.Cycle) bool {
			return len(cs) == 3 && cs[0].Status == models.CycleCompleted && cs[1].Status == models.CycleActive
		})).Return(nil)

		backfilled, err := reconciler.BackfillCycles(context.Background(), []models.Investment{bare})

		require.NoError(t, err)
		assert.Equal(t, 1, backfilled)
		mockStorage.AssertExpectations(t)
	})

	t.Run("leaves populated schedules alone", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)

		inv := models.Investment{Id: "inv-1", Status: models.InvestmentActive, CycleCount: 3,
			CreationDate: creation, EndDate: creation.Add(42 * 24 * time.Hour)}

		mockStorage.On("ListCyclesByInvestmentID", mock.Anything, "inv-1").Return([]models.Cycle{{Id: "c1"}}, nil)

		backfilled, err := reconciler.BackfillCycles(context.Background(), []models.Investment{inv})

		require.NoError(t, err)
		assert.Zero(t, backfilled)
		mockStorage.AssertNotCalled(t, "PutCycles", mock.Anything, mock.Anything)
	})

	t.Run("skips completed investments", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)

		inv := models.Investment{Id: "inv-1", Status: models.InvestmentCompleted}

		backfilled, err := reconciler.BackfillCycles(context.Background(), []models.Investment{inv})

		require.NoError(t, err)
		assert.Zero(t, backfilled)
		mockStorage.AssertNotCalled(t, "ListCyclesByInvestmentID", mock.Anything, mock.Anything)
	})

	t.Run("one failure does not stop the batch", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		reconciler := New(mockStorage)
		reconciler.now = func() time.Time { return creation }

		bad := models.Investment{Id: "inv-bad", Status: models.InvestmentActive, CycleCount: 3,
			CreationDate: creation, EndDate: creation.Add(42 * 24 * time.Hour)}
		good := models.Investment{Id: "inv-good", UserID: "user-1", Amount: 500_00, ReturnRate: 9,
			Status: models.InvestmentActive, CycleCount: 2,
			CreationDate: creation, EndDate: creation.Add(28 * 24 * time.Hour)}

		mockStorage.On("ListCyclesByInvestmentID", mock.Anything, "inv-bad").Return(nil, errors.New("throttled"))
		mockStorage.On("ListCyclesByInvestmentID", mock.Anything, "inv-good").Return([]models.Cycle{}, nil)
		mockStorage.On("PutCycles", mock.Anything, mock.Anything).Return(nil)

		backfilled, err := reconciler.BackfillCycles(context.Background(), []models.Investment{bad, good})

		assert.Error(t, err)
		assert.Equal(t, 1, backfilled)
		mockStorage.AssertExpectations(t)
	})
}
