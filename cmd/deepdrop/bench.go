// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/treelib/deepdrop"
	"github.com/treelib/deepdrop/internal/droptest"
	"golang.org/x/exp/rand"
)

var benchConfig struct {
	shape string
	nodes int
	depth int
	trees int
	seed  uint64
	graph bool
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "build trees and measure their destruction",
	Long: `
Builds trees of the requested shape and destroys them with
deepdrop.Destroy, reporting per-tree destruction latency.

Shapes:
  chain   a degenerate single-child chain of --nodes nodes; the worst
          case for recursive teardown
  fan     a complete binary tree of --depth levels
  random  a tree of --nodes nodes with random attachment (--seed)
`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(
		&benchConfig.shape, "shape", "chain", "tree shape: chain, fan, or random")
	benchCmd.Flags().IntVar(
		&benchConfig.nodes, "nodes", 1<<16, "nodes per tree (chain and random shapes)")
	benchCmd.Flags().IntVar(
		&benchConfig.depth, "depth", 16, "tree depth (fan shape)")
	benchCmd.Flags().IntVarP(
		&benchConfig.trees, "trees", "t", 32, "number of trees to build and destroy")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "seed for the random shape")
	benchCmd.Flags().BoolVar(
		&benchConfig.graph, "graph", false, "print a per-tree latency graph")
}

func runBench(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(benchConfig.seed))

	var nodesPerTree int
	var build func() *droptest.Node
	switch benchConfig.shape {
	case "chain":
		nodesPerTree = benchConfig.nodes
		build = func() *droptest.Node { return droptest.BuildChain(nil, benchConfig.nodes) }
	case "fan":
		nodesPerTree = 1<<(benchConfig.depth+1) - 1
		build = func() *droptest.Node { return droptest.BuildFan(nil, benchConfig.depth) }
	case "random":
		nodesPerTree = benchConfig.nodes
		build = func() *droptest.Node { return droptest.RandomTree(rng, nil, benchConfig.nodes) }
	default:
		return fmt.Errorf("unknown shape %q", benchConfig.shape)
	}

	hist := hdrhistogram.New(1, time.Minute.Nanoseconds(), 3)
	latencies := make([]float64, 0, benchConfig.trees)
	var total time.Duration
	for i := 0; i < benchConfig.trees; i++ {
		root := build()
		start := crtime.NowMono()
		deepdrop.Destroy(root)
		elapsed := start.Elapsed()
		if err := hist.RecordValue(elapsed.Nanoseconds()); err != nil {
			return err
		}
		total += elapsed
		latencies = append(latencies, float64(elapsed.Microseconds()))
	}

	nsPerNode := float64(total.Nanoseconds()) / float64(benchConfig.trees) / float64(nodesPerTree)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"shape", "nodes/tree", "trees", "p50", "p95", "max", "ns/node"})
	table.Append([]string{
		benchConfig.shape,
		fmt.Sprint(nodesPerTree),
		fmt.Sprint(benchConfig.trees),
		time.Duration(hist.ValueAtQuantile(50)).String(),
		time.Duration(hist.ValueAtQuantile(95)).String(),
		time.Duration(hist.Max()).String(),
		fmt.Sprintf("%.1f", nsPerNode),
	})
	table.Render()

	if benchConfig.graph {
		fmt.Println(asciigraph.Plot(latencies,
			asciigraph.Height(10),
			asciigraph.Caption("per-tree destroy latency (µs)")))
	}
	return nil
}
