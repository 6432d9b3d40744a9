// Package rates implements the tiered return-rate policy. The rate is an
// integer percent return per two settlement cycles, tiered by investment
// amount. The function is total and deterministic: it is evaluated at
// investment creation and re-evaluated later by rate reconciliation, and
// both call sites must see identical output for the same amount.
package rates

import "errors"

// MinimumInvestment is the smallest principal, in cents, eligible for an
// investment. Amounts below it are a validation error for the caller, not
// a rate question.
const MinimumInvestment int64 = 50_00

// ErrBelowMinimum is returned when an amount is below MinimumInvestment.
var ErrBelowMinimum = errors.New("amount below minimum investment")

// tier maps an amount floor (inclusive, in cents) to a percent return per
// two cycles. Ordered descending; first match wins.
type tier struct {
	floor int64
	rate  int64
}

var tiers = []tier{
	{3000_00, 12},
	{1000_00, 11},
	{600_00, 10},
	{300_00, 9},
	{50_00, 8},
}

// ForAmount returns the percent return per two settlement cycles for the
// given principal in cents.
func ForAmount(amount int64) (int64, error) {
	if amount < MinimumInvestment {
		return 0, ErrBelowMinimum
	}
	for _, t := range tiers {
		if amount >= t.floor {
			return t.rate, nil
		}
	}
	// Unreachable: the last tier floor equals MinimumInvestment.
	return 0, ErrBelowMinimum
}

// PerCycleProfit computes the profit credited when one cycle settles:
// half the stated per-2-cycles rate applied to the cycle's base amount.
// Integer division truncates sub-cent remainders.
func PerCycleProfit(amount, rate int64) int64 {
	return amount * rate / 200
}
