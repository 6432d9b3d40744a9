package handlers

import (
	"github.com/HunterTXx/privateplapay/pkg/admin"
	"github.com/HunterTXx/privateplapay/pkg/api"
	adminhandler "github.com/HunterTXx/privateplapay/pkg/handlers/admin"
	"github.com/HunterTXx/privateplapay/pkg/handlers/deposits"
	"github.com/HunterTXx/privateplapay/pkg/handlers/investments"
	ledgerhandler "github.com/HunterTXx/privateplapay/pkg/handlers/ledger"
	"github.com/HunterTXx/privateplapay/pkg/handlers/profiles"
	"github.com/HunterTXx/privateplapay/pkg/handlers/withdrawals"
	"github.com/HunterTXx/privateplapay/pkg/investing"
	"github.com/HunterTXx/privateplapay/pkg/ledger"
	"github.com/HunterTXx/privateplapay/pkg/scheduler"
	"github.com/HunterTXx/privateplapay/pkg/settlement"
	"github.com/HunterTXx/privateplapay/pkg/storage"
	"github.com/HunterTXx/privateplapay/pkg/websockets"
)

// ApiHandler composes the per-resource handlers into the generated server
// interface.
type ApiHandler struct {
	*profiles.ProfilesHandler
	*ledgerhandler.LedgerHandler
	*deposits.DepositsHandler
	*withdrawals.WithdrawalsHandler
	*investments.InvestmentsHandler
	*adminhandler.AdminHandler
}

// Make sure we conform to the interface.
var _ api.ServerInterface = (*ApiHandler)(nil)

// NewApiHandler wires the per-resource handlers with their dependencies.
func NewApiHandler(
	store storage.Storage,
	balances *ledger.Reader,
	orchestrator *investing.Orchestrator,
	sweeper *settlement.Sweeper,
	sched scheduler.Scheduler,
	publisher websockets.Publisher,
	workflow *admin.Workflow,
) *ApiHandler {
	return &ApiHandler{
		ProfilesHandler:    profiles.NewProfilesHandler(store),
		LedgerHandler:      ledgerhandler.NewLedgerHandler(store, balances),
		DepositsHandler:    deposits.NewDepositsHandler(store),
		WithdrawalsHandler: withdrawals.NewWithdrawalsHandler(store, balances),
		InvestmentsHandler: investments.NewInvestmentsHandler(store, orchestrator, sweeper, sched, publisher, balances),
		AdminHandler:       adminhandler.NewAdminHandler(store, workflow),
	}
}
