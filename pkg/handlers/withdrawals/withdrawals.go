package withdrawals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/mapping"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// BalanceReader reports a user's spendable balance from the ledger.
type BalanceReader interface {
	GetAvailableBalance(ctx context.Context, userID string) int64
}

// WithdrawalsHandler handles withdrawal requests and listing.
type WithdrawalsHandler struct {
	Store    storage.ApiStore
	Balances BalanceReader
}

// NewWithdrawalsHandler creates a new WithdrawalsHandler.
func NewWithdrawalsHandler(store storage.ApiStore, balances BalanceReader) *WithdrawalsHandler {
	return &WithdrawalsHandler{Store: store, Balances: balances}
}

// RequestWithdrawal records a pending payout request. The reconciled
// balance is checked here as a courtesy; the authoritative check happens
// again at approval time.
func (h *WithdrawalsHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var newWithdrawal api.NewWithdrawal
	if err := json.NewDecoder(r.Body).Decode(&newWithdrawal); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newWithdrawal.UserId == "" || newWithdrawal.Amount <= 0 || newWithdrawal.WalletAddress == "" {
		http.Error(w, "userId, walletAddress and a positive amount are required", http.StatusBadRequest)
		return
	}

	if available := h.Balances.GetAvailableBalance(r.Context(), newWithdrawal.UserId); newWithdrawal.Amount > available {
		http.Error(w, "Insufficient balance", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateWithdrawalRequest(r.Context(), mapping.ToDomainNewWithdrawal(&newWithdrawal))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to submit withdrawal request: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiWithdrawalRequest(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListUserWithdrawals returns all withdrawal requests made by the user.
func (h *WithdrawalsHandler) ListUserWithdrawals(w http.ResponseWriter, r *http.Request, userId string) {
	domainReqs, err := h.Store.ListWithdrawalsByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve withdrawal requests: %v", err), http.StatusInternalServerError)
		return
	}

	apiReqs := make([]*api.WithdrawalRequest, len(domainReqs))
	for i, req := range domainReqs {
		apiReqs[i] = mapping.ToApiWithdrawalRequest(&req)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiReqs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
