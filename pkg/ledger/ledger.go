// Package ledger derives a user's spendable balance from immutable
// financial records. The cached balance on the profile row is never
// consulted here: eligibility decisions always go through the reconciled
// figure this package computes.
package ledger

import (
	"context"
	"log/slog"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// ComputeBalance applies the reconciliation formula:
//
//	approved deposits + completed profit + completed principal returns
//	- approved withdrawals - all invested principal (any status)
//
// Missing or empty record sets contribute zero; the function never errors.
func ComputeBalance(deposits []models.Deposit, withdrawals []models.WithdrawalRequest, investments []models.Investment, transactions []models.Transaction) int64 {
	var balance int64
	for _, d := range deposits {
		if d.Status == models.RequestApproved {
			balance += d.Amount
		}
	}
	for _, w := range withdrawals {
		if w.Status == models.RequestApproved {
			balance -= w.Amount
		}
	}
	for _, inv := range investments {
		balance -= inv.Amount
	}
	for _, tx := range transactions {
		if tx.Status != models.TxCompleted {
			continue
		}
		if tx.Type == models.TxProfit || tx.Type == models.TxPrincipalReturn {
			balance += tx.Amount
		}
	}
	return balance
}

// Reader reconciles spendable balances on demand. Read-only and safe to
// poll.
type Reader struct {
	source storage.LedgerSource
}

// NewReader creates a new Reader.
func NewReader(source storage.LedgerSource) *Reader {
	return &Reader{source: source}
}

// GetAvailableBalance returns the user's reconciled spendable balance in
// cents. On any read failure it returns 0: callers must treat a zero
// reading as "unknown" and disable balance-gated actions rather than
// propagate an error into every balance display.
func (r *Reader) GetAvailableBalance(ctx context.Context, userID string) int64 {
	deposits, err := r.source.ListDepositsByUserID(ctx, userID)
	if err != nil {
		slog.Warn("balance read degraded to zero", "user_id", userID, "error", err)
		return 0
	}
	withdrawals, err := r.source.ListWithdrawalsByUserID(ctx, userID)
	if err != nil {
		slog.Warn("balance read degraded to zero", "user_id", userID, "error", err)
		return 0
	}
	investments, err := r.source.ListInvestmentsByUserID(ctx, userID)
	if err != nil {
		slog.Warn("balance read degraded to zero", "user_id", userID, "error", err)
		return 0
	}
	transactions, err := r.source.ListTransactionsByUserID(ctx, userID)
	if err != nil {
		slog.Warn("balance read degraded to zero", "user_id", userID, "error", err)
		return 0
	}
	return ComputeBalance(deposits, withdrawals, investments, transactions)
}
