package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// TransactionReader defines the interface for reading ledger transactions.
// The ledger is append-only; writes happen only inside the composite
// operations of the other stores.
type TransactionReader interface {
	// ListTransactionsByUserID retrieves all transactions for a user,
	// newest first.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
}

// LedgerSource bundles the reads the ledger reader needs to reconcile a
// user's spendable balance from immutable records.
type LedgerSource interface {
	ListDepositsByUserID(ctx context.Context, userID string) ([]models.Deposit, error)
	ListWithdrawalsByUserID(ctx context.Context, userID string) ([]models.WithdrawalRequest, error)
	ListInvestmentsByUserID(ctx context.Context, userID string) ([]models.Investment, error)
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
}
