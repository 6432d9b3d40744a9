// Package investing orchestrates investment creation: rate lookup, cycle
// schedule generation, and the single atomic write that persists the
// investment row, its cycle set, and the audit transaction together.
package investing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/cycles"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/rates"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/google/uuid"
)

// BalanceReader supplies the reconciled spendable balance.
type BalanceReader interface {
	GetAvailableBalance(ctx context.Context, userID string) int64
}

// Store is the slice of the data layer the orchestrator needs.
type Store interface {
	storage.ProfileStore
	storage.InvestmentStore
}

// Orchestrator creates investments.
type Orchestrator struct {
	store         Store
	balances      BalanceReader
	cycleDuration time.Duration
	now           func() time.Time
}

// New creates an Orchestrator. cycleDays is the configured length of one
// settlement cycle in days.
func New(store Store, balances BalanceReader, cycleDays int) *Orchestrator {
	return &Orchestrator{
		store:         store,
		balances:      balances,
		cycleDuration: time.Duration(cycleDays) * 24 * time.Hour,
		now:           time.Now,
	}
}

// CreateInvestment validates the request, derives the schedule, and
// persists investment + cycles + audit transaction as one unit. The
// balance precondition is re-asserted at commit time through the profile
// version condition: if anything touched the profile between our read and
// the write, the store reports ErrProfileConflict and we re-check once
// before surfacing a retryable conflict.
func (o *Orchestrator) CreateInvestment(ctx context.Context, userID string, amount int64, cycleCount int) (*models.Investment, error) {
	rate, err := rates.ForAmount(amount)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		profile, err := o.store.GetProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}

		if available := o.balances.GetAvailableBalance(ctx, userID); available < amount {
			return nil, storage.ErrInsufficientBalance
		}

		now := o.now().UTC()
		inv := &models.Investment{
			Id:           uuid.New().String(),
			UserID:       userID,
			Amount:       amount,
			CycleCount:   cycleCount,
			ReturnRate:   rate,
			Status:       models.InvestmentActive,
			CreationDate: now,
			EndDate:      now.Add(time.Duration(cycleCount) * o.cycleDuration),
		}

		cycleSet, err := cycles.Generate(inv, now)
		if err != nil {
			return nil, err
		}

		audit := &models.Transaction{
			Id:           uuid.New().String(),
			UserID:       userID,
			Amount:       amount,
			Type:         models.TxInvestment,
			Status:       models.TxCompleted,
			InvestmentID: inv.Id,
			Description:  fmt.Sprintf("Investment created with %d cycles", cycleCount),
			CreatedAt:    now,
		}

		err = o.store.CreateInvestment(ctx, inv, cycleSet, audit, profile.Version)
		if err == nil {
			return inv, nil
		}
		if errors.Is(err, storage.ErrProfileConflict) && attempt == 0 {
			slog.Info("profile changed during investment creation, re-checking", "user_id", userID)
			continue
		}
		return nil, err
	}
}
