package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// SettlementStore defines the privileged interface for settling cycles.
// Each operation is a single atomic write across the cycles, transactions
// and profiles tables; there is no window where a cycle is marked
// completed without its profit credited.
type SettlementStore interface {
	// SettleCycle marks the cycle completed, appends the completed
	// profit transaction, and opportunistically refreshes the profile's
	// cached balance, all in one conditioned write. Returns
	// ErrCycleAlreadySettled when a concurrent sweep got there first;
	// callers treat that as a no-op, not a failure.
	SettleCycle(ctx context.Context, cycle *models.Cycle) error

	// CompleteInvestment flips the investment from active to completed,
	// appends the completed principal_return transaction for the full
	// principal, and refreshes the cached balance, all in one conditioned
	// write. Returns ErrInvestmentAlreadyCompleted when a concurrent
	// sweep already returned the principal.
	CompleteInvestment(ctx context.Context, inv *models.Investment) error
}
