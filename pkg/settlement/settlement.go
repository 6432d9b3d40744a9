// Package settlement sweeps due cycles: cycles past their end boundary are
// marked completed with their profit credited, and an investment whose
// last cycle closes gets its principal returned. Each cycle settles in its
// own atomic store write, so one failure never blocks the rest of the
// sweep, and a concurrent sweeper hitting the same cycle resolves to a
// harmless no-op.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/cycles"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// Store is the slice of the data layer the sweeper needs.
type Store interface {
	storage.CycleStore
	storage.InvestmentStore
	storage.SettlementStore
}

// Report summarizes one sweep.
type Report struct {
	CyclesSettled      int
	PrincipalsReturned int
	Failures           []error
}

// Failed reports whether any cycle could not be settled.
func (r *Report) Failed() bool { return len(r.Failures) > 0 }

// Sweeper settles due cycles for a user.
type Sweeper struct {
	store Store
	now   func() time.Time
}

// NewSweeper creates a Sweeper.
func NewSweeper(store Store) *Sweeper {
	return &Sweeper{store: store, now: time.Now}
}

// SettleDueCycles finds the user's open cycles whose end date has passed
// and settles each one. The open-status fetch plus the conditioned
// settlement write form the idempotency boundary: re-running the sweep
// over already-settled cycles is a no-op.
func (s *Sweeper) SettleDueCycles(ctx context.Context, userID string) (*Report, error) {
	open, err := s.store.ListOpenCyclesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open cycles: %w", err)
	}

	report := &Report{}
	now := s.now().UTC()
	touched := map[string]bool{}

	for i := range open {
		cycle := &open[i]
		if cycles.StatusFor(cycle.StartDate, cycle.EndDate, now) != models.CycleCompleted {
			continue
		}

		err := s.store.SettleCycle(ctx, cycle)
		switch {
		case err == nil:
			report.CyclesSettled++
			touched[cycle.InvestmentID] = true
		case errors.Is(err, storage.ErrCycleAlreadySettled):
			// Another sweeper credited this cycle; still worth checking
			// whether the investment just finished.
			touched[cycle.InvestmentID] = true
		default:
			slog.Error("cycle settlement failed", "cycle_id", cycle.Id, "error", err)
			report.Failures = append(report.Failures, fmt.Errorf("cycle %s: %w", cycle.Id, err))
			continue
		}
	}

	for investmentID := range touched {
		returned, err := s.maybeReturnPrincipal(ctx, investmentID)
		if err != nil {
			slog.Error("principal return failed", "investment_id", investmentID, "error", err)
			report.Failures = append(report.Failures, fmt.Errorf("investment %s: %w", investmentID, err))
			continue
		}
		if returned {
			report.PrincipalsReturned++
		}
	}

	return report, nil
}

// maybeReturnPrincipal completes the investment once every cycle is
// settled. Reports true when this call performed the principal return.
func (s *Sweeper) maybeReturnPrincipal(ctx context.Context, investmentID string) (bool, error) {
	cycleSet, err := s.store.ListCyclesByInvestmentID(ctx, investmentID)
	if err != nil {
		return false, fmt.Errorf("failed to list cycles: %w", err)
	}
	for _, c := range cycleSet {
		if c.Status != models.CycleCompleted {
			return false, nil
		}
	}

	inv, err := s.store.GetInvestment(ctx, investmentID)
	if err != nil {
		return false, fmt.Errorf("failed to load investment: %w", err)
	}
	if inv.Status != models.InvestmentActive {
		return false, nil
	}

	if err := s.store.CompleteInvestment(ctx, inv); err != nil {
		if errors.Is(err, storage.ErrInvestmentAlreadyCompleted) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
