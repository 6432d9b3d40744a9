package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// AdminStore defines the privileged operations behind the admin approval
// workflow. Every status flip is conditioned on the request still being
// pending, so a double-click or a second admin resolves to
// ErrRequestNotPending instead of a double credit.
type AdminStore interface {
	// ApproveDeposit marks the deposit approved, flips its pending
	// deposit transaction to completed, and credits the profile's cached
	// deposit balance, in one atomic write.
	ApproveDeposit(ctx context.Context, dep *models.Deposit) error

	// RejectDeposit marks the deposit rejected and flips its pending
	// deposit transaction to rejected. No balance effect.
	RejectDeposit(ctx context.Context, dep *models.Deposit) error

	// ApproveWithdrawal marks the request approved with notes and a
	// processed timestamp and moves the amount between the cached deposit
	// and withdraw balances. The write is conditioned on the cached
	// deposit balance covering the amount; callers must have verified the
	// reconciled figure first.
	ApproveWithdrawal(ctx context.Context, req *models.WithdrawalRequest, notes string) error

	// RejectWithdrawal marks the request rejected with notes and a
	// processed timestamp. No balance effect.
	RejectWithdrawal(ctx context.Context, req *models.WithdrawalRequest, notes string) error

	// OverrideInvestmentStatus force-sets an investment's status.
	OverrideInvestmentStatus(ctx context.Context, investmentID string, status models.InvestmentStatus) error

	// DeleteInvestment removes an investment with all its cycles and
	// ledger transactions.
	DeleteInvestment(ctx context.Context, investmentID string) error
}
