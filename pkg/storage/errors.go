package storage

import "errors"

// ErrInsufficientBalance is returned when the reconciled spendable balance
// cannot cover a new investment or an approved withdrawal.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrProfileConflict is returned when a profile's version changed between
// the eligibility check and the conditioned write. Retryable.
var ErrProfileConflict = errors.New("profile modified concurrently")

// ErrCycleAlreadySettled is returned when a settlement write finds the
// cycle already marked completed by a concurrent sweep.
var ErrCycleAlreadySettled = errors.New("cycle already settled")

// ErrInvestmentAlreadyCompleted is returned when a principal-return write
// finds the investment no longer active.
var ErrInvestmentAlreadyCompleted = errors.New("investment already completed")

// ErrRequestNotPending is returned when an approval or rejection targets a
// deposit or withdrawal request that has already been resolved.
var ErrRequestNotPending = errors.New("request is not pending")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")
