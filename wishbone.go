package wishbone

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/wishbone/internal/codec"
	"github.com/aretw0/wishbone/internal/logging"
	"github.com/aretw0/wishbone/internal/workspace"
	"github.com/aretw0/wishbone/pkg/adapters/process"
	"github.com/aretw0/wishbone/pkg/domain"
	"github.com/aretw0/wishbone/pkg/ports"
)

// Version is the client library version.
const Version = "0.1.0"

// Client orchestrates pipeline runs: workspace lifecycle, input staging,
// invocation and artifact parsing.
type Client struct {
	runner        ports.PipelineRunner
	logger        *slog.Logger
	hooks         domain.Hooks
	workRoot      string
	keepOnFailure bool
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithRunner injects a custom PipelineRunner, bypassing the default process
// adapter.
func WithRunner(r ports.PipelineRunner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHooks registers run lifecycle callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithWorkRoot sets the parent directory for per-run workspaces
// (default: the system temp directory).
func WithWorkRoot(dir string) Option {
	return func(c *Client) {
		c.workRoot = dir
	}
}

// WithKeepOnFailure leaves the working directory behind when a run fails, for
// post-mortem inspection. Off by default: the normal contract is
// unconditional cleanup on every exit path.
func WithKeepOnFailure(keep bool) Option {
	return func(c *Client) {
		c.keepOnFailure = keep
	}
}

// New builds a Client around the external pipeline described by cfg.
// If WithRunner is provided, cfg may be the zero value.
func New(cfg process.Config, opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.runner == nil {
		if cfg.Command == "" {
			return nil, domain.ErrNoCommand
		}
		c.runner = process.NewRunner(cfg,
			process.WithLogger(c.logger),
			process.WithStream(os.Stderr),
		)
	}
	return c, nil
}

// Run executes one pipeline invocation: it validates the inputs, stages
// counts.tsv and params.json into a fresh working directory, runs the
// external program against it, and parses branch.json, trajectory.json and
// dm.csv into the result tables. The working directory is removed on every
// exit path; a cleanup failure is reported but never masks the run error.
// No partial result is returned on any failure.
func (c *Client) Run(ctx context.Context, m *domain.CountMatrix, cfg domain.RunConfig) (res *domain.Result, err error) {
	cfg = cfg.Normalized()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !m.HasCell(cfg.StartCell) {
		return nil, fmt.Errorf("%w: %q", domain.ErrStartCellNotFound, cfg.StartCell)
	}

	ws, err := workspace.Create(c.workRoot)
	if err != nil {
		return nil, err
	}
	started := time.Now()
	log := c.logger.With("run_id", ws.ID)

	// Registered before the cleanup guard so it observes the final outcome,
	// cleanup failures included.
	defer func() {
		if c.hooks.OnRunEnd != nil {
			c.hooks.OnRunEnd(ctx, &domain.RunEvent{
				Timestamp: time.Now(),
				RunID:     ws.ID,
				Duration:  time.Since(started),
				Err:       err,
			})
		}
	}()
	defer func() {
		if err != nil && c.keepOnFailure {
			log.Warn("keeping working directory for inspection", "path", ws.Path)
			return
		}
		if cerr := ws.Cleanup(); cerr != nil {
			log.Error("workspace cleanup failed", "error", cerr)
			if err == nil {
				err = cerr
				res = nil
			}
		}
	}()

	log.Debug("workspace created", "path", ws.Path, "cells", len(m.CellIDs), "features", len(m.Features))

	err = c.stage(ctx, ws.ID, domain.StageStaging, func() error {
		if werr := codec.WriteCounts(ws.CountsPath(), m); werr != nil {
			return werr
		}
		return codec.WriteParams(ws.ParamsPath(), cfg)
	})
	if err != nil {
		return nil, err
	}

	err = c.stage(ctx, ws.ID, domain.StageInvoke, func() error {
		out, rerr := c.runner.Run(ctx, ports.Invocation{
			Workdir:  ws.Path,
			NumCores: cfg.NumCores,
			Verbose:  cfg.Verbose,
		})
		if rerr != nil {
			return rerr
		}
		log.Debug("pipeline finished", "output_bytes", len(out.Output))
		return nil
	})
	if err != nil {
		return nil, err
	}

	var result domain.Result
	err = c.stage(ctx, ws.ID, domain.StageParse, func() error {
		var perr error
		if result.Branches, perr = codec.ReadBranches(ws.BranchPath()); perr != nil {
			return perr
		}
		if result.Trajectory, perr = codec.ReadTrajectory(ws.TrajectoryPath()); perr != nil {
			return perr
		}
		result.Embedding, perr = codec.ReadEmbedding(ws.EmbeddingPath())
		return perr
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// stage wraps one run phase with the lifecycle hooks.
func (c *Client) stage(ctx context.Context, runID string, s domain.Stage, fn func() error) error {
	if c.hooks.OnStageStart != nil {
		c.hooks.OnStageStart(ctx, &domain.RunEvent{Timestamp: time.Now(), RunID: runID, Stage: s})
	}
	start := time.Now()
	err := fn()
	if c.hooks.OnStageEnd != nil {
		c.hooks.OnStageEnd(ctx, &domain.RunEvent{
			Timestamp: time.Now(),
			RunID:     runID,
			Stage:     s,
			Duration:  time.Since(start),
			Err:       err,
		})
	}
	return err
}

// Run is a convenience wrapper that builds a Client for cfg and executes a
// single invocation.
func Run(ctx context.Context, m *domain.CountMatrix, runCfg domain.RunConfig, cfg process.Config, opts ...Option) (*domain.Result, error) {
	c, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, m, runCfg)
}
