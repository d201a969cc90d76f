// Package process runs the external Wishbone pipeline as a child process.
// The contract is one positional argument (the staged working directory) plus
// optional thread-count environment variables for the numeric backends.
package process

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/aretw0/wishbone/pkg/domain"
	"github.com/aretw0/wishbone/pkg/ports"
)

// threadEnvKeys are the backend-specific thread caps honored by the
// pipeline's numeric stack. All three are set to the same value, or none.
var threadEnvKeys = []string{"MKL_NUM_THREADS", "NUMEXPR_NUM_THREADS", "OMP_NUM_THREADS"}

// Runner implements ports.PipelineRunner over os/exec. One blocking child
// process per call; no retries, no timeout beyond the caller's context.
type Runner struct {
	command string
	args    []string
	env     map[string]string
	stream  io.Writer
	logger  *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithStream sets the writer that receives the child's combined output while
// it runs. Only used for verbose invocations.
func WithStream(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stream = w
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a runner for the pipeline described by cfg.
func NewRunner(cfg Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		command: cfg.Command,
		args:    cfg.Args,
		env:     cfg.Env,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the pipeline synchronously. The working directory is appended
// as the sole extra argument. A non-zero exit (or a launch failure) surfaces
// as a *domain.PipelineError carrying the combined output.
func (r *Runner) Run(ctx context.Context, inv ports.Invocation) (ports.InvocationResult, error) {
	if r.command == "" {
		return ports.InvocationResult{}, domain.ErrNoCommand
	}

	args := append(append([]string(nil), r.args...), inv.Workdir)
	cmd := exec.CommandContext(ctx, r.command, args...)

	env := cmd.Environ()
	for k, v := range r.env {
		env = append(env, k+"="+v)
	}
	if inv.NumCores != nil {
		n := strconv.Itoa(*inv.NumCores)
		for _, key := range threadEnvKeys {
			env = append(env, key+"="+n)
		}
	}
	cmd.Env = env

	var buf bytes.Buffer
	var out io.Writer = &buf
	if inv.Verbose && r.stream != nil {
		out = io.MultiWriter(&buf, r.stream)
	}
	cmd.Stdout = out
	cmd.Stderr = out

	r.logger.Debug("invoking pipeline", "command", r.command, "workdir", inv.Workdir)
	if err := cmd.Run(); err != nil {
		return ports.InvocationResult{Output: buf.String()}, &domain.PipelineError{Err: err, Output: buf.String()}
	}
	return ports.InvocationResult{Output: buf.String()}, nil
}
