// Package admin implements the approval workflow for deposits and
// withdrawals, plus investment overrides. Every operation is authorized
// against the external admin-role check before any write.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// Authorizer is the external is_admin predicate. The engine treats it as
// an opaque boundary.
type Authorizer interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// BalanceReader supplies the reconciled spendable balance for withdrawal
// eligibility. The cached profile figure is never the deciding check.
type BalanceReader interface {
	GetAvailableBalance(ctx context.Context, userID string) int64
}

// ErrNotAuthorized is returned when the acting user is not an admin.
var ErrNotAuthorized = errors.New("admin role required")

// Store is the slice of the data layer the workflow needs.
type Store interface {
	storage.DepositStore
	storage.WithdrawalStore
	storage.AdminStore
}

// Workflow carries out admin approvals.
type Workflow struct {
	store    Store
	auth     Authorizer
	balances BalanceReader
}

// NewWorkflow creates a Workflow.
func NewWorkflow(store Store, auth Authorizer, balances BalanceReader) *Workflow {
	return &Workflow{store: store, auth: auth, balances: balances}
}

func (w *Workflow) authorize(ctx context.Context, adminID string) error {
	ok, err := w.auth.IsAdmin(ctx, adminID)
	if err != nil {
		return fmt.Errorf("admin check failed: %w", err)
	}
	if !ok {
		return ErrNotAuthorized
	}
	return nil
}

// ApproveDeposit resolves a pending deposit as approved: the deposit row,
// its pending ledger transaction, and the cached balance move together in
// one store write.
func (w *Workflow) ApproveDeposit(ctx context.Context, adminID, depositID string) error {
	if err := w.authorize(ctx, adminID); err != nil {
		return err
	}
	dep, err := w.store.GetDeposit(ctx, depositID)
	if err != nil {
		return err
	}
	if dep.Status != models.RequestPending {
		return storage.ErrRequestNotPending
	}
	return w.store.ApproveDeposit(ctx, dep)
}

// RejectDeposit resolves a pending deposit as rejected. No balance effect.
func (w *Workflow) RejectDeposit(ctx context.Context, adminID, depositID string) error {
	if err := w.authorize(ctx, adminID); err != nil {
		return err
	}
	dep, err := w.store.GetDeposit(ctx, depositID)
	if err != nil {
		return err
	}
	if dep.Status != models.RequestPending {
		return storage.ErrRequestNotPending
	}
	return w.store.RejectDeposit(ctx, dep)
}

// ApproveWithdrawal resolves a pending withdrawal request as approved.
// Eligibility is verified against the reconciled ledger balance before the
// write; the write itself re-guards the cached balance so concurrent
// approvals cannot drive it negative.
func (w *Workflow) ApproveWithdrawal(ctx context.Context, adminID, requestID, notes string) error {
	if err := w.authorize(ctx, adminID); err != nil {
		return err
	}
	req, err := w.store.GetWithdrawalRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.RequestPending {
		return storage.ErrRequestNotPending
	}
	if available := w.balances.GetAvailableBalance(ctx, req.UserID); available < req.Amount {
		return storage.ErrInsufficientBalance
	}
	return w.store.ApproveWithdrawal(ctx, req, notes)
}

// RejectWithdrawal resolves a pending withdrawal request as rejected.
func (w *Workflow) RejectWithdrawal(ctx context.Context, adminID, requestID, notes string) error {
	if err := w.authorize(ctx, adminID); err != nil {
		return err
	}
	req, err := w.store.GetWithdrawalRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.RequestPending {
		return storage.ErrRequestNotPending
	}
	return w.store.RejectWithdrawal(ctx, req, notes)
}

// OverrideInvestmentStatus force-sets an investment's status to completed
// or failed.
func (w *Workflow) OverrideInvestmentStatus(ctx context.Context, adminID, investmentID string, status models.InvestmentStatus) error {
	if err := w.authorize(ctx, adminID); err != nil {
		return err
	}
	if status != models.InvestmentCompleted && status != models.InvestmentFailed {
		return fmt.Errorf("status %q cannot be forced", status)
	}
	return w.store.OverrideInvestmentStatus(ctx, investmentID, status)
}

// DeleteInvestment removes an investment and all its dependent rows.
func (w *Workflow) DeleteInvestment(ctx context.Context, adminID, investmentID string) error {
	if err := w.authorize(ctx, adminID); err != nil {
		return err
	}
	return w.store.DeleteInvestment(ctx, investmentID)
}
