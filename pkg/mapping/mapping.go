package mapping

import (
	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/models"
)

// ToApiProfile converts a domain Profile model to an API Profile model.
func ToApiProfile(p *models.Profile) *api.Profile {
	return &api.Profile{
		UserId:          p.UserID,
		DisplayName:     optional(p.DisplayName),
		WalletAddress:   optional(p.WalletAddress),
		DepositBalance:  p.DepositBalance,
		WithdrawBalance: p.WithdrawBalance,
		Version:         p.Version,
		CreatedAt:       &p.CreatedAt,
	}
}

// ToDomainNewProfile converts an API NewProfile to a domain Profile.
// Balances and version are set by the storage layer on creation.
func ToDomainNewProfile(np *api.NewProfile) *models.Profile {
	return &models.Profile{
		UserID:        np.UserId,
		DisplayName:   deref(np.DisplayName),
		WalletAddress: deref(np.WalletAddress),
	}
}

// ToApiDeposit converts a domain Deposit model to an API Deposit model.
func ToApiDeposit(d *models.Deposit) *api.Deposit {
	return &api.Deposit{
		Id:          d.Id,
		UserId:      d.UserID,
		Amount:      d.Amount,
		Currency:    optional(d.Currency),
		ExternalRef: optional(d.ExternalRef),
		Status:      api.DepositStatus(d.Status),
		CreatedAt:   &d.CreatedAt,
	}
}

// ToDomainNewDeposit converts an API NewDeposit to a domain Deposit.
// The id, status and timestamp are filled in when the deposit is submitted.
func ToDomainNewDeposit(nd *api.NewDeposit) *models.Deposit {
	return &models.Deposit{
		UserID:      nd.UserId,
		Amount:      nd.Amount,
		Currency:    deref(nd.Currency),
		ExternalRef: deref(nd.ExternalRef),
	}
}

// ToApiWithdrawalRequest converts a domain WithdrawalRequest to its API model.
func ToApiWithdrawalRequest(wr *models.WithdrawalRequest) *api.WithdrawalRequest {
	return &api.WithdrawalRequest{
		Id:            wr.Id,
		UserId:        wr.UserID,
		Amount:        wr.Amount,
		WalletAddress: optional(wr.WalletAddress),
		Status:        api.WithdrawalRequestStatus(wr.Status),
		Notes:         optional(wr.AdminNotes),
		CreatedAt:     &wr.CreatedAt,
		ProcessedAt:   wr.ProcessedAt,
	}
}

// ToDomainNewWithdrawal converts an API NewWithdrawal to a domain WithdrawalRequest.
func ToDomainNewWithdrawal(nw *api.NewWithdrawal) *models.WithdrawalRequest {
	return &models.WithdrawalRequest{
		UserID:        nw.UserId,
		Amount:        nw.Amount,
		WalletAddress: nw.WalletAddress,
	}
}

// ToApiInvestment converts a domain Investment model to an API Investment model.
func ToApiInvestment(inv *models.Investment) *api.Investment {
	return &api.Investment{
		Id:           inv.Id,
		UserId:       inv.UserID,
		Amount:       inv.Amount,
		CycleCount:   inv.CycleCount,
		ReturnRate:   inv.ReturnRate,
		Status:       api.InvestmentStatus(inv.Status),
		CreationDate: &inv.CreationDate,
		EndDate:      &inv.EndDate,
	}
}

// ToApiCycle converts a domain Cycle model to an API Cycle model.
func ToApiCycle(c *models.Cycle) *api.Cycle {
	materials := int64(c.MaterialsRecycled)
	return &api.Cycle{
		Id:                c.Id,
		InvestmentId:      c.InvestmentID,
		UserId:            c.UserID,
		CycleNumber:       c.CycleNumber,
		StartDate:         &c.StartDate,
		EndDate:           &c.EndDate,
		Amount:            c.Amount,
		Profit:            c.Profit,
		Status:            api.CycleStatus(c.Status),
		MaterialsRecycled: &materials,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:           tx.Id,
		UserId:       tx.UserID,
		Amount:       tx.Amount,
		Type:         api.TransactionType(tx.Type),
		Status:       api.TransactionStatus(tx.Status),
		InvestmentId: optional(tx.InvestmentID),
		CycleId:      optional(tx.CycleID),
		Description:  optional(tx.Description),
		CreatedAt:    &tx.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
