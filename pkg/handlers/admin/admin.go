package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/HunterTXx/privateplapay/pkg/admin"
	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/mapping"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// AdminHandler exposes the approval workflow. The acting admin is
// identified by the X-Admin-Id header; the workflow rejects callers
// without the admin role.
type AdminHandler struct {
	Store    storage.ApiStore
	Workflow *admin.Workflow
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store storage.ApiStore, workflow *admin.Workflow) *AdminHandler {
	return &AdminHandler{Store: store, Workflow: workflow}
}

func adminID(r *http.Request) string {
	return r.Header.Get("X-Admin-Id")
}

// writeWorkflowError maps workflow sentinel errors onto HTTP statuses.
func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, admin.ErrNotAuthorized):
		http.Error(w, "Admin role required", http.StatusForbidden)
	case errors.Is(err, storage.ErrRequestNotPending):
		http.Error(w, "Request is no longer pending", http.StatusConflict)
	case errors.Is(err, storage.ErrInsufficientBalance):
		http.Error(w, "Insufficient balance", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		http.Error(w, fmt.Sprintf("Operation failed: %v", err), http.StatusInternalServerError)
	}
}

// ListDepositsByStatus returns deposits in the given status, defaulting
// to the pending review queue.
func (h *AdminHandler) ListDepositsByStatus(w http.ResponseWriter, r *http.Request, params api.ListDepositsByStatusParams) {
	status := models.RequestPending
	if params.Status != nil {
		status = models.RequestStatus(*params.Status)
	}

	domainDeps, err := h.Store.ListDepositsByStatus(r.Context(), status)
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

// ListWithdrawalsByStatus returns withdrawal requests in the given status,
// defaulting to the pending review queue.
func (h *AdminHandler) ListWithdrawalsByStatus(w http.ResponseWriter, r *http.Request, params api.ListWithdrawalsByStatusParams) {
	status := models.RequestPending
	if params.Status != nil {
		status = models.RequestStatus(*params.Status)
	}

	domainReqs, err := h.Store.ListWithdrawalsByStatus(r.Context(), status)
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

// ApproveDeposit credits a pending deposit into the user's balance.
func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request, depositId string) {
	if err := h.Workflow.ApproveDeposit(r.Context(), adminID(r), depositId); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RejectDeposit marks a pending deposit as rejected.
func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request, depositId string) {
	if err := h.Workflow.RejectDeposit(r.Context(), adminID(r), depositId); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApproveWithdrawal approves a pending withdrawal and moves the funds out
// of the spendable balance.
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request, requestId string) {
	var body api.ApprovalNotes
	if r.Body != nil {
		// The notes body is optional; ignore decode errors on empty bodies.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	if err := h.Workflow.ApproveWithdrawal(r.Context(), adminID(r), requestId, notes); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RejectWithdrawal marks a pending withdrawal request as rejected.
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request, requestId string) {
	var body api.ApprovalNotes
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	if err := h.Workflow.RejectWithdrawal(r.Context(), adminID(r), requestId, notes); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OverrideInvestmentStatus force-sets an investment's terminal status.
func (h *AdminHandler) OverrideInvestmentStatus(w http.ResponseWriter, r *http.Request, investmentId string) {
	var body api.StatusOverride
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	status := models.InvestmentStatus(body.Status)
	if status != models.InvestmentCompleted && status != models.InvestmentFailed {
		http.Error(w, "status must be completed or failed", http.StatusBadRequest)
		return
	}

	if err := h.Workflow.OverrideInvestmentStatus(r.Context(), adminID(r), investmentId, status); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteInvestmentById removes an investment together with its cycles and
// ledger entries.
func (h *AdminHandler) DeleteInvestmentById(w http.ResponseWriter, r *http.Request, investmentId string) {
	if err := h.Workflow.DeleteInvestment(r.Context(), adminID(r), investmentId); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
