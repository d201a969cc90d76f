package domain

import (
	"context"
	"time"
)

// Stage identifies a phase of a pipeline run.
type Stage string

const (
	// StageStaging covers writing counts.tsv and params.json.
	StageStaging Stage = "staging"
	// StageInvoke covers the blocking child process execution.
	StageInvoke Stage = "invoke"
	// StageParse covers reading the three output artifacts.
	StageParse Stage = "parse"
)

// RunEvent describes progress of a single pipeline run.
type RunEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	RunID     string        `json:"run_id"`
	Stage     Stage         `json:"stage,omitempty"` // empty on run-level events
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// Hooks defines callbacks for run observability. Any field may be nil.
type Hooks struct {
	OnStageStart func(context.Context, *RunEvent)
	OnStageEnd   func(context.Context, *RunEvent)
	OnRunEnd     func(context.Context, *RunEvent)
}
