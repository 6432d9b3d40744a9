// Package reconcile keeps stored investments consistent with current
// policy: return rates are re-derived from the rate table, and active
// investments found without cycles get their schedule regenerated. Both
// passes converge: a corrected investment matches policy exactly, so the
// next pass is a no-op for it.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/cycles"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/rates"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// Store is the slice of the data layer reconciliation needs.
type Store interface {
	storage.CycleStore
	storage.InvestmentStore
	storage.ReconciliationStore
}

// Reconciler corrects rate drift and missing cycle sets.
type Reconciler struct {
	store Store
	now   func() time.Time
}

// New creates a Reconciler.
func New(store Store) *Reconciler {
	return &Reconciler{store: store, now: time.Now}
}

// ReconcileRates recomputes each investment's rate from its amount and,
// where the stored rate disagrees, rewrites the rate and every cycle's
// profit in one atomic write. Profit transactions already recorded for
// cycles settled under the old rate are left alone: historical payouts
// are final. Returns the number of corrected investments.
func (r *Reconciler) ReconcileRates(ctx context.Context, investments []models.Investment) (int, error) {
	corrected := 0
	for i := range investments {
		inv := &investments[i]
		rate, err := rates.ForAmount(inv.Amount)
		if err != nil {
			// Below-minimum principal can only come from legacy rows;
			// leave them for manual review rather than invent a rate.
			slog.Warn("investment amount below policy minimum, skipping", "investment_id", inv.Id, "amount", inv.Amount)
			continue
		}
		if rate == inv.ReturnRate {
			continue
		}

		cycleSet, err := r.store.ListCyclesByInvestmentID(ctx, inv.Id)
		if err != nil {
			return corrected, fmt.Errorf("failed to list cycles for %s: %w", inv.Id, err)
		}
		cycleIDs := make([]string, len(cycleSet))
		for j, c := range cycleSet {
			cycleIDs[j] = c.Id
		}

		newProfit := rates.PerCycleProfit(inv.Amount, rate)
		if err := r.store.ReconcileInvestmentRate(ctx, inv, rate, cycleIDs, newProfit); err != nil {
			return corrected, fmt.Errorf("failed to reconcile %s: %w", inv.Id, err)
		}
		slog.Info("corrected investment return rate",
			"investment_id", inv.Id, "old_rate", inv.ReturnRate, "new_rate", rate)
		inv.ReturnRate = rate
		corrected++
	}
	return corrected, nil
}

// BackfillCycles regenerates the cycle set for active investments found
// with zero cycles, from their stored creation and end dates. Returns the
// number of investments backfilled; a failure on one investment does not
// stop the rest.
func (r *Reconciler) BackfillCycles(ctx context.Context, investments []models.Investment) (int, error) {
	backfilled := 0
	var firstErr error
	for i := range investments {
		inv := &investments[i]
		if inv.Status != models.InvestmentActive {
			continue
		}
		existing, err := r.store.ListCyclesByInvestmentID(ctx, inv.Id)
		if err != nil {
			slog.Error("cycle backfill read failed", "investment_id", inv.Id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(existing) > 0 {
			continue
		}

		cycleSet, err := cycles.Generate(inv, r.now().UTC())
		if err != nil {
			slog.Error("cycle backfill generation failed", "investment_id", inv.Id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := r.store.PutCycles(ctx, cycleSet); err != nil {
			slog.Error("cycle backfill write failed", "investment_id", inv.Id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		slog.Info("backfilled cycles", "investment_id", inv.Id, "count", len(cycleSet))
		backfilled++
	}
	return backfilled, firstErr
}
