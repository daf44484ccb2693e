package persistence

import (
	"context"
	"time"
)

// Status of one processed file.
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records how one input file fared in one run. Pure bookkeeping:
// skip decisions are made from the filesystem, never from this store.
type Outcome struct {
	JobID      string
	RunID      string
	Input      string
	Status     Status
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store persists run outcomes.
type Store interface {
	RecordOutcome(ctx context.Context, outcome Outcome) error
	ListOutcomes(ctx context.Context, runID string) ([]Outcome, error)
	ListAll(ctx context.Context) ([]Outcome, error)
	Close() error
}
