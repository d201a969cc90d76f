package ports

import "context"

// Invocation describes one external pipeline execution. The working directory
// is the contract surface: the pipeline reads counts.tsv and params.json from
// it and writes its artifacts back into it.
type Invocation struct {
	// Workdir is passed to the pipeline as its sole command-line argument.
	Workdir string
	// NumCores, when non-nil, is exported as MKL_NUM_THREADS,
	// NUMEXPR_NUM_THREADS and OMP_NUM_THREADS. When nil none of the three
	// variables is set.
	NumCores *int
	// Verbose requests that the child's combined output be streamed while it
	// runs, in addition to being captured.
	Verbose bool
}

// InvocationResult carries the child process's combined stdout/stderr.
type InvocationResult struct {
	Output string
}

// PipelineRunner executes the external trajectory pipeline against a staged
// working directory. Implementations block until the child process exits and
// must not retry on failure.
type PipelineRunner interface {
	Run(ctx context.Context, inv Invocation) (InvocationResult, error)
}
