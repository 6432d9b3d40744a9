package investments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/investing"
	"github.com/HunterTXx/privateplapay/pkg/mapping"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/rates"
	"github.com/HunterTXx/privateplapay/pkg/scheduler"
	"github.com/HunterTXx/privateplapay/pkg/settlement"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/HunterTXx/privateplapay/pkg/websockets"
)

// BalanceReader reports a user's spendable balance from the ledger.
type BalanceReader interface {
	GetAvailableBalance(ctx context.Context, userID string) int64
}

// InvestmentsHandler holds the dependencies for investment-related handlers.
type InvestmentsHandler struct {
	Store        storage.ApiStore
	Orchestrator *investing.Orchestrator
	Sweeper      *settlement.Sweeper
	Scheduler    scheduler.Scheduler
	Publisher    websockets.Publisher
	Balances     BalanceReader
}

// NewInvestmentsHandler creates a new InvestmentsHandler.
func NewInvestmentsHandler(store storage.ApiStore, orchestrator *investing.Orchestrator, sweeper *settlement.Sweeper, sched scheduler.Scheduler, publisher websockets.Publisher, balances BalanceReader) *InvestmentsHandler {
	return &InvestmentsHandler{
		Store:        store,
		Orchestrator: orchestrator,
		Sweeper:      sweeper,
		Scheduler:    sched,
		Publisher:    publisher,
		Balances:     balances,
	}
}

// CreateInvestment commits principal to a new investment with its full
// cycle schedule.
func (h *InvestmentsHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var newInv api.NewInvestment
	if err := json.NewDecoder(r.Body).Decode(&newInv); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newInv.UserId == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	created, err := h.Orchestrator.CreateInvestment(r.Context(), newInv.UserId, newInv.Amount, newInv.CycleCount)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrBelowMinimum):
			http.Error(w, "Amount is below the minimum investment", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrInsufficientBalance):
			http.Error(w, "Insufficient balance", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			slog.Error("failed to create investment", "user_id", newInv.UserId, "error", err)
			http.Error(w, fmt.Sprintf("Failed to create investment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	// Enqueue an immediate sweep so cycles that are already due, for
	// example on a backdated schedule, settle without waiting for the
	// nightly job.
	if h.Scheduler != nil {
		if err := h.Scheduler.ScheduleSweep(r.Context(), scheduler.SweepJob{UserID: created.UserID}, 0); err != nil {
			slog.Error("investment created but sweep enqueue failed", "investment_id", created.Id, "error", err)
		}
	}

	h.publishBalanceUpdate(r.Context(), created.UserID, -created.Amount, "investment_created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiInvestment(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetInvestmentById returns a single investment.
func (h *InvestmentsHandler) GetInvestmentById(w http.ResponseWriter, r *http.Request, investmentId string) {
	inv, err := h.Store.GetInvestment(r.Context(), investmentId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Investment not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve investment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiInvestment(inv)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListUserInvestments returns all investments owned by the user.
func (h *InvestmentsHandler) ListUserInvestments(w http.ResponseWriter, r *http.Request, userId string) {
	domainInvs, err := h.Store.ListInvestmentsByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve investments: %v", err), http.StatusInternalServerError)
		return
	}

	apiInvs := make([]*api.Investment, len(domainInvs))
	for i, inv := range domainInvs {
		apiInvs[i] = mapping.ToApiInvestment(&inv)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiInvs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListInvestmentCycles returns the cycle schedule of one investment.
func (h *InvestmentsHandler) ListInvestmentCycles(w http.ResponseWriter, r *http.Request, investmentId string) {
	domainCycles, err := h.Store.ListCyclesByInvestmentID(r.Context(), investmentId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve cycles: %v", err), http.StatusInternalServerError)
		return
	}
	writeCycleList(w, domainCycles)
}

// ListUserCycles returns cycles across all of the user's investments.
func (h *InvestmentsHandler) ListUserCycles(w http.ResponseWriter, r *http.Request, userId string) {
	domainCycles, err := h.Store.ListCyclesByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve cycles: %v", err), http.StatusInternalServerError)
		return
	}
	writeCycleList(w, domainCycles)
}

func writeCycleList(w http.ResponseWriter, domainCycles []models.Cycle) {
	apiCycles := make([]*api.Cycle, len(domainCycles))
	for i, c := range domainCycles {
		apiCycles[i] = mapping.ToApiCycle(&c)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiCycles); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// SettleUserCycles runs a settlement sweep over the user's due cycles and
// reports what it did. Safe to call repeatedly.
func (h *InvestmentsHandler) SettleUserCycles(w http.ResponseWriter, r *http.Request, userId string) {
	report, err := h.Sweeper.SettleDueCycles(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Settlement sweep failed: %v", err), http.StatusInternalServerError)
		return
	}
	if report.Failed() {
		slog.Warn("settlement sweep finished with failures", "user_id", userId, "failures", len(report.Failures))
	}

	if report.CyclesSettled > 0 || report.PrincipalsReturned > 0 {
		h.publishBalanceUpdate(r.Context(), userId, 0, "settlement")
	}

	resp := api.SettlementReport{
		CyclesSettled:      report.CyclesSettled,
		PrincipalsReturned: report.PrincipalsReturned,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func (h *InvestmentsHandler) publishBalanceUpdate(ctx context.Context, userID string, change int64, reason string) {
	if h.Publisher == nil {
		return
	}
	msg := websockets.Message{
		Type: websockets.MessageTypeBalanceUpdate,
		Payload: websockets.BalanceUpdatePayload{
			UserID:     userID,
			Change:     change,
			NewBalance: h.Balances.GetAvailableBalance(ctx, userID),
			Reason:     reason,
		},
	}
	if err := h.Publisher.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish balance update", "user_id", userID, "error", err)
	}
}
