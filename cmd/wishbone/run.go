package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/wishbone"
	"github.com/aretw0/wishbone/internal/codec"
	"github.com/aretw0/wishbone/internal/logging"
	"github.com/aretw0/wishbone/pkg/adapters/process"
	"github.com/aretw0/wishbone/pkg/domain"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the trajectory pipeline on a counts matrix",
	Long:  `Reads a tab-separated counts matrix, runs the external Wishbone pipeline against it, and writes the branch, trajectory and embedding tables into the output directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPipeline(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runPipeline(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	countsPath, _ := cmd.Flags().GetString("counts")
	outDir, _ := cmd.Flags().GetString("out")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	pcfg, err := process.Load(cfgPath)
	if err != nil {
		return err
	}

	matrix, err := codec.ReadCounts(countsPath)
	if err != nil {
		return err
	}

	runCfg, err := runConfigFromFlags(cmd, pcfg)
	if err != nil {
		return err
	}

	client, err := wishbone.New(pcfg, wishbone.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := client.Run(cmd.Context(), matrix, runCfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := codec.WriteBranches(filepath.Join(outDir, "branch.tsv"), res.Branches); err != nil {
		return err
	}
	if err := codec.WriteTrajectory(filepath.Join(outDir, "trajectory.tsv"), res.Trajectory); err != nil {
		return err
	}
	if err := codec.WriteEmbedding(filepath.Join(outDir, "embedding.csv"), res.Embedding); err != nil {
		return err
	}

	logger.Info("pipeline run complete",
		"cells", len(res.Trajectory),
		"branches", len(res.Branches),
		"components", len(res.Embedding.Columns)-1,
		"out", outDir,
	)
	return nil
}

// runConfigFromFlags builds the run configuration: pipeline config defaults
// first, then explicit command-line flags on top.
func runConfigFromFlags(cmd *cobra.Command, pcfg process.Config) (domain.RunConfig, error) {
	var cfg domain.RunConfig
	if err := pcfg.DecodeDefaults(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if s, _ := flags.GetString("start-cell"); flags.Changed("start-cell") || cfg.StartCell == "" {
		cfg.StartCell = s
	}
	if flags.Changed("k") {
		cfg.K, _ = flags.GetInt("k")
	}
	if flags.Changed("components") {
		cfg.NDiffusionComponents, _ = flags.GetInt("components")
	}
	if flags.Changed("pca-components") {
		cfg.NPCAComponents, _ = flags.GetInt("pca-components")
	}
	if flags.Changed("markers") {
		cfg.Markers, _ = flags.GetStringSlice("markers")
	}
	if flags.Changed("branch") {
		cfg.Branch, _ = flags.GetBool("branch")
	}
	if flags.Changed("waypoints") {
		cfg.NumWaypoints, _ = flags.GetInt("waypoints")
	}
	if flags.Changed("normalize") {
		cfg.Normalize, _ = flags.GetBool("normalize")
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon, _ = flags.GetFloat64("epsilon")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("cores") {
		n, _ := flags.GetInt("cores")
		cfg.NumCores = &n
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("counts", "counts.tsv", "Tab-separated counts matrix (header row, cell ids in the first column)")
	runCmd.Flags().String("out", ".", "Directory receiving branch.tsv, trajectory.tsv and embedding.csv")
	runCmd.Flags().String("start-cell", "", "Identifier of the trajectory start cell")
	runCmd.Flags().Int("k", domain.DefaultK, "Neighbor count for the diffusion graph")
	runCmd.Flags().Int("components", domain.DefaultNDiffusionComponents, "Number of diffusion components")
	runCmd.Flags().Int("pca-components", domain.DefaultNPCAComponents, "Number of PCA components")
	runCmd.Flags().StringSlice("markers", nil, "Restrict the run to these marker features")
	runCmd.Flags().Bool("branch", true, "Detect trajectory branches")
	runCmd.Flags().Int("waypoints", domain.DefaultNumWaypoints, "Number of waypoints anchoring the trajectory")
	runCmd.Flags().Bool("normalize", true, "Let the pipeline normalize the counts")
	runCmd.Flags().Float64("epsilon", domain.DefaultEpsilon, "Diffusion kernel epsilon")
	runCmd.Flags().BoolP("verbose", "v", false, "Stream pipeline output while it runs")
	runCmd.Flags().Int("cores", 0, "Cap the pipeline's thread count (0 = pipeline default)")
}
