package models

import (
	"time"
)

// RequestStatus defines the lifecycle of a deposit or withdrawal request.
// Once a request leaves PENDING it is immutable.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// InvestmentStatus defines the possible states of an investment.
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentFailed    InvestmentStatus = "failed"
)

// CycleStatus defines the possible states of a settlement cycle.
type CycleStatus string

const (
	CycleUpcoming  CycleStatus = "upcoming"
	CycleActive    CycleStatus = "active"
	CycleCompleted CycleStatus = "completed"
)

// TransactionType tags a ledger transaction with its kind.
type TransactionType string

const (
	TxDeposit         TransactionType = "deposit"
	TxWithdrawal      TransactionType = "withdrawal"
	TxInvestment      TransactionType = "investment"
	TxProfit          TransactionType = "profit"
	TxPrincipalReturn TransactionType = "principal_return"
)

// TransactionStatus defines the possible states of a ledger transaction.
// Entries are append-only; only the status field is ever flipped, when an
// admin resolves the matching deposit request.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxRejected  TransactionStatus = "rejected"
)

// Profile is the per-user account record. The balance fields are display
// caches only; eligibility checks always go through the reconciled ledger
// figure. Version supports optimistic locking: every balance-affecting
// write bumps it.
type Profile struct {
	UserID          string    `json:"user_id" dynamodbav:"user_id"`
	DisplayName     string    `json:"display_name" dynamodbav:"display_name"`
	WalletAddress   string    `json:"wallet_address" dynamodbav:"wallet_address"`
	DepositBalance  int64     `json:"deposit_balance" dynamodbav:"deposit_balance"`
	WithdrawBalance int64     `json:"withdraw_balance" dynamodbav:"withdraw_balance"`
	Version         int64     `json:"version" dynamodbav:"version"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Deposit is a claimed external payment awaiting admin reconciliation.
// Amount is in cents.
type Deposit struct {
	Id          string        `dynamodbav:"id"`
	UserID      string        `dynamodbav:"user_id"`
	Amount      int64         `dynamodbav:"amount"`
	Currency    string        `dynamodbav:"currency"`
	ExternalRef string        `dynamodbav:"external_ref"`
	Status      RequestStatus `dynamodbav:"status"`
	CreatedAt   time.Time     `dynamodbav:"created_at"`
}

// WithdrawalRequest is a claimed payout request awaiting admin action.
type WithdrawalRequest struct {
	Id            string        `dynamodbav:"id"`
	UserID        string        `dynamodbav:"user_id"`
	Amount        int64         `dynamodbav:"amount"`
	WalletAddress string        `dynamodbav:"wallet_address"`
	Status        RequestStatus `dynamodbav:"status"`
	AdminNotes    string        `dynamodbav:"admin_notes"`
	CreatedAt     time.Time     `dynamodbav:"created_at"`
	ProcessedAt   *time.Time    `dynamodbav:"processed_at,omitempty"`
}

// Investment is a fixed-term commitment of principal, subdivided into
// CycleCount sequential cycles. ReturnRate is the integer percent return
// per two settlement cycles (see the rates package).
type Investment struct {
	Id           string           `dynamodbav:"id"`
	UserID       string           `dynamodbav:"user_id"`
	Amount       int64            `dynamodbav:"amount"`
	CycleCount   int              `dynamodbav:"cycle_count"`
	ReturnRate   int64            `dynamodbav:"return_rate"`
	Status       InvestmentStatus `dynamodbav:"status"`
	CreationDate time.Time        `dynamodbav:"creation_date"`
	EndDate      time.Time        `dynamodbav:"end_date"`
}

// Cycle is one settlement period within an investment. Amount is the base
// on which the cycle's profit is computed (the full principal by current
// policy, not a per-cycle slice). MaterialsRecycled is a display figure
// with no financial meaning.
type Cycle struct {
	Id                string      `dynamodbav:"id"`
	InvestmentID      string      `dynamodbav:"investment_id"`
	UserID            string      `dynamodbav:"user_id"`
	CycleNumber       int         `dynamodbav:"cycle_number"`
	StartDate         time.Time   `dynamodbav:"start_date"`
	EndDate           time.Time   `dynamodbav:"end_date"`
	Amount            int64       `dynamodbav:"amount"`
	Profit            int64       `dynamodbav:"profit"`
	Status            CycleStatus `dynamodbav:"status"`
	MaterialsRecycled int         `dynamodbav:"materials_recycled"`
}

// Transaction is an append-only ledger entry. The ledger is the
// authoritative record from which the spendable balance is reconstructed.
type Transaction struct {
	Id           string            `dynamodbav:"id"`
	UserID       string            `dynamodbav:"user_id"`
	Amount       int64             `dynamodbav:"amount"`
	Type         TransactionType   `dynamodbav:"type"`
	Status       TransactionStatus `dynamodbav:"status"`
	InvestmentID string            `dynamodbav:"investment_id,omitempty"`
	CycleID      string            `dynamodbav:"cycle_id,omitempty"`
	Description  string            `dynamodbav:"description"`
	CreatedAt    time.Time         `dynamodbav:"created_at"`
}
