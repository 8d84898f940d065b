package cron

import (
	"context"
	"time"
)

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

// Job is a recurring job driven by a 5-field cron expression evaluated
// in a named timezone. Jobs are registered by ID; registering the same
// ID again replaces the previous definition.
type Job struct {
	ID   string
	Expr string
	TZ   string
	Run  JobFunc

	nextRun    time.Time
	lastRun    time.Time
	lastStatus string // "ok" or "error"
	lastError  string
}

// NextRun returns the computed next firing time (zero if none).
func (j *Job) NextRun() time.Time { return j.nextRun }

// LastStatus returns "ok", "error", or "" if the job never ran.
func (j *Job) LastStatus() string { return j.lastStatus }
