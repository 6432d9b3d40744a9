package scheduler

import (
	"context"
	"time"
)

// SweepJob asks the settlement worker to sweep one user's due cycles.
type SweepJob struct {
	UserID string `json:"user_id"`
}

// Scheduler defines the interface for a component that enqueues a sweep
// for asynchronous processing.
type Scheduler interface {
	// ScheduleSweep enqueues a settlement sweep for the user, optionally
	// delayed.
	ScheduleSweep(ctx context.Context, job SweepJob, delay time.Duration) error
}
