package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefill/internal/curve"
	"github.com/vovakirdan/spacefill/internal/registry"
)

var (
	flagAll      bool
	flagMaxOrder int
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check curve invariants",
	Long: `Build a curve and check that it visits every cell exactly once, that
the backward table inverts the forward order, that consecutive steps are
adjacent and, for closed curves, that the last step touches the first.

With --all, check every registered kind from its minimum order up to
--max-order.

Examples:
  sfc verify --kind moore --order 6
  sfc verify --all --max-order 9`,
	Args: cobra.NoArgs,
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&flagAll, "all", false, "Verify every kind and order up to --max-order")
	verifyCmd.Flags().IntVar(&flagMaxOrder, "max-order", 8, "Highest order checked with --all")
}

func runVerify(cmd *cobra.Command, args []string) {
	if !flagAll {
		if !verifyOne(settings.Curve.Kind, settings.Curve.Order) {
			os.Exit(1)
		}
		return
	}

	failed := 0
	for _, info := range registry.List() {
		top := min(flagMaxOrder, info.MaxOrder)
		for order := info.MinOrder; order <= top; order++ {
			if !verifyOne(info.ID, order) {
				failed++
			}
		}
	}
	if failed > 0 {
		logger.Error("verification failed", "curves", failed)
		os.Exit(1)
	}
}

func verifyOne(kind string, order int) bool {
	c, err := buildCurve(kind, order)
	if err != nil {
		logger.Error("cannot build curve", "kind", kind, "order", order, "err", err)
		return false
	}
	if err := curve.Verify(c); err != nil {
		logger.Error("invariant violated", "kind", kind, "order", order, "err", err)
		return false
	}
	logger.Info("ok", "kind", kind, "order", order, "cells", c.Size(), "closed", c.Closed())
	return true
}
