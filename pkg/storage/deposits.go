package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// DepositStore defines the interface for recording and reading deposit
// requests.
type DepositStore interface {
	// CreateDeposit atomically inserts a pending deposit together with its
	// pending deposit-type ledger transaction.
	CreateDeposit(ctx context.Context, dep *models.Deposit) (*models.Deposit, error)

	// GetDeposit retrieves a deposit by its ID.
	GetDeposit(ctx context.Context, depositID string) (*models.Deposit, error)

	// ListDepositsByUserID retrieves all deposits for a user.
	ListDepositsByUserID(ctx context.Context, userID string) ([]models.Deposit, error)

	// ListDepositsByStatus retrieves all deposits in the given status,
	// across users. Used by the admin console.
	ListDepositsByStatus(ctx context.Context, status models.RequestStatus) ([]models.Deposit, error)
}
