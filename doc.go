/*
Package wishbone is a Go client for the Wishbone single-cell trajectory
pipeline. It stages a counts matrix and a parameter document into a private
working directory, invokes the external pipeline as one blocking child
process, and parses the branch, pseudo-time and diffusion-map artifacts back
into typed tables.

The trajectory algorithm itself (diffusion-map embedding, waypoint selection,
branch detection) lives entirely in the external program. This package only
marshals data across the process boundary: every run owns a uniquely named
temporary directory that is removed when the call returns, whether it
succeeded or failed.

# Usage

Point a Client at the external pipeline via a process.Config (typically
loaded from pipeline.yaml), then call Run:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/wishbone"
		"github.com/aretw0/wishbone/pkg/adapters/process"
		"github.com/aretw0/wishbone/pkg/domain"
	)

	func main() {
		cfg, err := process.Load("pipeline.yaml")
		if err != nil {
			log.Fatal(err)
		}

		client, err := wishbone.New(cfg)
		if err != nil {
			log.Fatal(err)
		}

		matrix := &domain.CountMatrix{
			CellIDs:  []string{"C1", "C2"},
			Features: []string{"GeneA", "GeneB"},
			Values:   [][]float64{{3, 0}, {1, 7}},
		}

		res, err := client.Run(context.Background(), matrix, domain.RunConfig{
			StartCell: "C1",
			Branch:    true,
			Normalize: true,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d cells over %d branches", len(res.Trajectory), len(res.Branches))
	}

Concurrent calls are safe: runs share no mutable state, and each invocation
gets its own working directory.
*/
package wishbone
