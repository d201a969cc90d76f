package main

import (
	"fmt"

	"github.com/aretw0/wishbone"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wishbone",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wishbone version %s\n", wishbone.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
