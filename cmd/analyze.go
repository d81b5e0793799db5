// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/daveh07/gobmd/out"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve all chains and print support moments and span results",
	Long: `Group the model's members into chains, classify the boundary
conditions at the chain extremities and solve the support bending moments.

Examples:
  gobmd analyze -f examples/twospan.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel()
	if err != nil {
		return err
	}
	res, err := out.Analyze(mdl)
	if err != nil {
		return err
	}

	fmt.Printf("\nmodel: %v\n", mdl)
	if len(res.Chains) == 0 {
		fmt.Println("nothing to analyze: no loaded chains found")
		return nil
	}

	for i, cd := range res.Chains {
		fmt.Printf("\nchain %d: %d spans, %v at head, %v at tail\n", i, len(cd.Spans), cd.Lc, cd.Rc)
		fmt.Printf("support moments: %v\n\n", cd.M)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "span\tL\tudl\tM left\tM right\tV left\tV right\t")
		for k, sp := range cd.Spans {
			fmt.Fprintf(w, "%d\t%.3g\t%.3g\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
				k, sp.L, sp.W, sp.Ml, sp.Mr, sp.Shear(0), sp.Shear(1))
		}
		w.Flush()
	}
	fmt.Println()
	return nil
}
