package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wishbone",
	Short: "Wishbone is a client for the Wishbone trajectory pipeline",
	Long:  `Wishbone stages a single-cell counts matrix for the external Wishbone trajectory pipeline, runs it, and collects the branch, pseudo-time and embedding tables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "pipeline.yaml", "Pipeline config file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
