package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// InvestmentStore defines the interface for creating and reading
// investments and their cycle sets.
type InvestmentStore interface {
	// CreateInvestment atomically inserts the investment row, its full
	// cycle set, and the completed investment-type audit transaction, and
	// re-validates the caller's eligibility via a condition on the
	// profile's version. Returns ErrProfileConflict if the profile changed
	// since expectedVersion was read, so the caller can re-check balance
	// and retry.
	CreateInvestment(ctx context.Context, inv *models.Investment, cycleSet []models.Cycle, audit *models.Transaction, expectedVersion int64) error

	// GetInvestment retrieves an investment by its ID.
	GetInvestment(ctx context.Context, investmentID string) (*models.Investment, error)

	// ListInvestmentsByUserID retrieves all investments for a user.
	ListInvestmentsByUserID(ctx context.Context, userID string) ([]models.Investment, error)

	// ListInvestmentsByStatus retrieves all investments in the given
	// status across users. Used by the reconciliation job.
	ListInvestmentsByStatus(ctx context.Context, status models.InvestmentStatus) ([]models.Investment, error)
}

// CycleStore defines the interface for reading and bulk-inserting cycles.
type CycleStore interface {
	// ListCyclesByUserID retrieves all cycles for a user.
	ListCyclesByUserID(ctx context.Context, userID string) ([]models.Cycle, error)

	// ListCyclesByInvestmentID retrieves all cycles of one investment.
	ListCyclesByInvestmentID(ctx context.Context, investmentID string) ([]models.Cycle, error)

	// ListOpenCyclesByUserID retrieves the user's cycles whose status is
	// not completed. The status guard here is the sweeper's idempotency
	// boundary.
	ListOpenCyclesByUserID(ctx context.Context, userID string) ([]models.Cycle, error)

	// PutCycles bulk-inserts a cycle set. Used by the one-time backfill
	// for active investments found with zero cycles.
	PutCycles(ctx context.Context, cycleSet []models.Cycle) error
}
