package ledger

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/ledger"
	"github.com/HunterTXx/privateplapay/pkg/mapping"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// LedgerHandler serves the reconciled balance and the transaction history
// it is derived from.
type LedgerHandler struct {
	Store    storage.ApiStore
	Balances *ledger.Reader
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.ApiStore, balances *ledger.Reader) *LedgerHandler {
	return &LedgerHandler{Store: store, Balances: balances}
}

// GetUserBalance returns the user's spendable balance reconstructed from
// the ledger. It never errors; an unreadable ledger reconciles to zero.
func (h *LedgerHandler) GetUserBalance(w http.ResponseWriter, r *http.Request, userId string) {
	balance := h.Balances.GetAvailableBalance(r.Context(), userId)

	resp := api.Balance{UserId: userId, Available: balance}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListUserTransactions returns the user's ledger entries, newest first.
func (h *LedgerHandler) ListUserTransactions(w http.ResponseWriter, r *http.Request, userId string) {
	domainTxs, err := h.Store.ListTransactionsByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTxs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
