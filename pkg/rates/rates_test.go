package rates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForAmount(t *testing.T) {
	tests := []struct {
		amount  int64
		rate    int64
		wantErr bool
	}{
		{49_99, 0, true},
		{50_00, 8, false},
		{299_99, 8, false},
		{300_00, 9, false},
		{599_99, 9, false},
		{600_00, 10, false},
		{999_99, 10, false},
		{1000_00, 11, false},
		{2999_99, 11, false},
		{3000_00, 12, false},
		{1_000_000_00, 12, false},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("amount=%d", tc.amount), func(t *testing.T) {
			rate, err := ForAmount(tc.amount)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrBelowMinimum)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.rate, rate)
		})
	}
}

func TestForAmount_Monotonic(t *testing.T) {
	// A larger principal never earns a lower rate.
	prev := int64(0)
	for amount := MinimumInvestment; amount <= 4000_00; amount += 50_00 {
		rate, err := ForAmount(amount)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, rate, prev, "rate dropped at amount %d", amount)
		prev = rate
	}
}

func TestPerCycleProfit(t *testing.T) {
	// Half the per-2-cycles rate against the base amount.
	assert.Equal(t, int64(55_00), PerCycleProfit(1000_00, 11))
	assert.Equal(t, int64(2_00), PerCycleProfit(50_00, 8))
	assert.Equal(t, int64(180_00), PerCycleProfit(3000_00, 12))

	// Sub-cent remainders truncate.
	assert.Equal(t, int64(14), PerCycleProfit(333, 9))
	assert.Equal(t, int64(0), PerCycleProfit(0, 12))
}
