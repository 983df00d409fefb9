package scheduler

import (
	"context"
	"time"
)

// SyncJob describes one automatic sync run: which user, which date window,
// and which FreeAgent bank account to upload into. Dates are YYYY-MM-DD.
type SyncJob struct {
	UserID        string `json:"user_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	BankAccountID string `json:"bank_account_id"`
}

// Scheduler defines the interface for a component that enqueues a sync job
// for asynchronous processing.
type Scheduler interface {
	// ScheduleSync enqueues a sync job, optionally delayed.
	ScheduleSync(ctx context.Context, job *SyncJob, delay time.Duration) error
}
