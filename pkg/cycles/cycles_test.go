package cycles

import (
	"testing"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want models.CycleStatus
	}{
		{"before start", start.Add(-time.Second), models.CycleUpcoming},
		{"exactly at start", start, models.CycleActive},
		{"mid cycle", start.Add(7 * 24 * time.Hour), models.CycleActive},
		{"exactly at end", end, models.CycleCompleted},
		{"after end", end.Add(time.Hour), models.CycleCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(start, end, tc.now))
		})
	}
}

func TestGenerate(t *testing.T) {
	creation := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	inv := &models.Investment{
		Id:           "inv-1",
		UserID:       "user-1",
		Amount:       1000_00,
		CycleCount:   3,
		ReturnRate:   11,
		Status:       models.InvestmentActive,
		CreationDate: creation,
		EndDate:      creation.Add(42 * 24 * time.Hour),
	}

	t.Run("fresh investment", func(t *testing.T) {
		cycleSet, err := Generate(inv, creation)
		require.NoError(t, err)
		require.Len(t, cycleSet, 3)

		for i, c := range cycleSet {
			assert.Equal(t, "inv-1", c.InvestmentID)
			assert.Equal(t, "user-1", c.UserID)
			assert.Equal(t, i+1, c.CycleNumber)
			assert.Equal(t, int64(1000_00), c.Amount, "cycle amount is the full principal")
			assert.Equal(t, int64(55_00), c.Profit)
			assert.NotEmpty(t, c.Id)
		}

		// 42 days over 3 cycles is 14 days each, with contiguous spans.
		assert.Equal(t, creation, cycleSet[0].StartDate)
		for i := 1; i < len(cycleSet); i++ {
			assert.Equal(t, cycleSet[i-1].EndDate, cycleSet[i].StartDate)
			assert.Equal(t, 14*24*time.Hour, cycleSet[i].EndDate.Sub(cycleSet[i].StartDate))
		}
		assert.Equal(t, inv.EndDate, cycleSet[2].EndDate)

		// Evaluated at creation: the first cycle has begun, the rest are
		// still upcoming.
		assert.Equal(t, models.CycleActive, cycleSet[0].Status)
		assert.Equal(t, models.CycleUpcoming, cycleSet[1].Status)
		assert.Equal(t, models.CycleUpcoming, cycleSet[2].Status)
		assert.Zero(t, cycleSet[1].MaterialsRecycled)
	})

	t.Run("backdated investment", func(t *testing.T) {
		cycleSet, err := Generate(inv, creation.Add(100*24*time.Hour))
		require.NoError(t, err)
		require.Len(t, cycleSet, 3)

		for _, c := range cycleSet {
			assert.Equal(t, models.CycleCompleted, c.Status)
			assert.Equal(t, 100, c.MaterialsRecycled)
		}
	})

	t.Run("mid-term evaluation", func(t *testing.T) {
		cycleSet, err := Generate(inv, creation.Add(20*24*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, models.CycleCompleted, cycleSet[0].Status)
		assert.Equal(t, models.CycleActive, cycleSet[1].Status)
		assert.Equal(t, models.CycleUpcoming, cycleSet[2].Status)
	})
}

func TestGenerate_InvalidSchedules(t *testing.T) {
	creation := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		inv  *models.Investment
	}{
		{
			"zero cycle count",
			&models.Investment{CycleCount: 0, CreationDate: creation, EndDate: creation.Add(14 * 24 * time.Hour)},
		},
		{
			"end date equals creation date",
			&models.Investment{CycleCount: 2, CreationDate: creation, EndDate: creation},
		},
		{
			"end date before creation date",
			&models.Investment{CycleCount: 2, CreationDate: creation, EndDate: creation.Add(-24 * time.Hour)},
		},
		{
			"less than a day per cycle",
			&models.Investment{CycleCount: 3, CreationDate: creation, EndDate: creation.Add(48 * time.Hour)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.inv, creation)
			var schedErr *InvalidScheduleError
			assert.ErrorAs(t, err, &schedErr)
		})
	}
}
