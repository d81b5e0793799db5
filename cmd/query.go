// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/daveh07/gobmd/out"

	"github.com/spf13/cobra"
)

var queryPos []float64

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Evaluate moment and shear at a world position",
	Long: `Project a world position onto the nearest solved span and print the
bending moment and shear force at that point. Reports no match when the
position lies beyond the model's query distance threshold.

Examples:
  gobmd query -f examples/twospan.json --at 7.5,0.2,0`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().Float64SliceVar(&queryPos, "at", nil, "world position x,y,z [required]")
	queryCmd.MarkFlagRequired("at")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if len(queryPos) != 3 {
		return fmt.Errorf("--at needs three coordinates, got %v", queryPos)
	}
	mdl, err := loadModel()
	if err != nil {
		return err
	}
	res, err := out.Analyze(mdl)
	if err != nil {
		return err
	}

	smp, found := res.Query(queryPos)
	if !found {
		fmt.Printf("no span within %g of %v\n", res.QryTol, queryPos)
		return nil
	}
	fmt.Printf("span %v → %v  (L=%g, udl=%g)\n", smp.Span.X0, smp.Span.X1, smp.Span.L, smp.Span.W)
	fmt.Printf("  t        = %.4f (distance %.4g)\n", smp.T, smp.Dist)
	fmt.Printf("  moment   = %.6g\n", smp.M)
	fmt.Printf("  shear    = %.6g\n", smp.V)
	return nil
}
