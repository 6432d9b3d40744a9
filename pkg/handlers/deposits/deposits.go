package deposits

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/mapping"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// DepositsHandler handles deposit submission and listing.
type DepositsHandler struct {
	Store storage.ApiStore
}

// NewDepositsHandler creates a new DepositsHandler.
func NewDepositsHandler(store storage.ApiStore) *DepositsHandler {
	return &DepositsHandler{Store: store}
}

// SubmitDeposit records a claimed external payment. The deposit and its
// pending ledger entry are written together; nothing is spendable until
// an admin approves it.
func (h *DepositsHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	var newDep api.NewDeposit
	if err := json.NewDecoder(r.Body).Decode(&newDep); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newDep.UserId == "" || newDep.Amount <= 0 {
		http.Error(w, "userId and a positive amount are required", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateDeposit(r.Context(), mapping.ToDomainNewDeposit(&newDep))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to submit deposit: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiDeposit(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListUserDeposits returns all deposits submitted by the user.
func (h *DepositsHandler) ListUserDeposits(w http.ResponseWriter, r *http.Request, userId string) {
	domainDeps, err := h.Store.ListDepositsByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve deposits: %v", err), http.StatusInternalServerError)
		return
	}

	apiDeps := make([]*api.Deposit, len(domainDeps))
	for i, dep := range domainDeps {
		apiDeps[i] = mapping.ToApiDeposit(&dep)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiDeps); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
