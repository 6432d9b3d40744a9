package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// ReconciliationStore defines the privileged write used by rate
// reconciliation.
type ReconciliationStore interface {
	// ReconcileInvestmentRate sets the investment's return rate and
	// rewrites the profit figure on every one of its cycles in one atomic
	// write. Recorded profit transactions are left untouched: historical
	// payouts are final.
	ReconcileInvestmentRate(ctx context.Context, inv *models.Investment, newRate int64, cycleIDs []string, newProfit int64) error
}
