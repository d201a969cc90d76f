package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyMatrix is returned when the count matrix has no cells or features.
var ErrEmptyMatrix = errors.New("count matrix is empty")

// ErrRaggedMatrix is returned when the count matrix is not rectangular.
var ErrRaggedMatrix = errors.New("count matrix is not rectangular")

// ErrStartCellNotFound is returned when the configured start cell does not
// name a row of the count matrix.
var ErrStartCellNotFound = errors.New("start cell not present in count matrix")

// ErrNoCommand is returned when no external pipeline command is configured.
var ErrNoCommand = errors.New("pipeline command not configured")

// PipelineError reports a failed external pipeline invocation. Output holds
// the child process's combined stdout/stderr for diagnosis.
type PipelineError struct {
	Err    error
	Output string
}

func (e *PipelineError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("pipeline execution failed: %v", e.Err)
	}
	return fmt.Sprintf("pipeline execution failed: %v\noutput:\n%s", e.Err, e.Output)
}

func (e *PipelineError) Unwrap() error { return e.Err }
