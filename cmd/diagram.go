// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/daveh07/gobmd/out"

	"github.com/cpmech/gosl/plt"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	diagramShear  bool
	diagramHeight int
	diagramWidth  int
	diagramText   bool
	diagramSave   string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw moment or shear diagrams for all chains",
	Long: `Draw the bending moment (default) or shear force diagram of every
loaded chain in the terminal. With --save, matplotlib figures offset
normal to the span axes are written to the given directory instead;
all spans of a chain share one scale factor so relative magnitudes
stay comparable.

Examples:
  gobmd diagram -f examples/twospan.json
  gobmd diagram -f examples/twospan.json --shear --height 12
  gobmd diagram -f examples/twospan.json --save /tmp/gobmd`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	diagramCmd.Flags().BoolVar(&diagramShear, "shear", false, "draw shear force instead of bending moment")
	diagramCmd.Flags().IntVar(&diagramHeight, "height", 10, "terminal diagram height (rows)")
	diagramCmd.Flags().IntVar(&diagramWidth, "width", 72, "terminal diagram width (columns)")
	diagramCmd.Flags().BoolVar(&diagramText, "text", true, "label extrema in saved figures")
	diagramCmd.Flags().StringVar(&diagramSave, "save", "", "directory to save matplotlib figures (skips terminal output)")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel()
	if err != nil {
		return err
	}
	res, err := out.Analyze(mdl)
	if err != nil {
		return err
	}
	if len(res.Chains) == 0 {
		fmt.Println("nothing to draw: no loaded chains found")
		return nil
	}

	if diagramSave != "" {
		plt.Reset(false, nil)
		res.PlotGeometry()
		if diagramShear {
			res.PlotDiagShear(diagramText, "", 1e-10)
			plt.Save(diagramSave, "diag-shear")
		} else {
			res.PlotDiagMoment(diagramText, "", 1e-10)
			plt.Save(diagramSave, "diag-moment")
		}
		fmt.Printf("figure saved to %s\n", diagramSave)
		return nil
	}

	name := "bending moment"
	if diagramShear {
		name = "shear force"
	}
	for i, cd := range res.Chains {

		// one continuous series along the chain
		var data []float64
		for _, sp := range cd.Spans {
			if diagramShear {
				data = append(data, sp.SampleShear(res.Nstations)...)
			} else {
				data = append(data, sp.SampleMoment(res.Nstations)...)
			}
		}

		caption := fmt.Sprintf("chain %d %s  (%d spans, %v-%v)", i, name, len(cd.Spans), cd.Lc, cd.Rc)
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(diagramHeight),
			asciigraph.Width(diagramWidth),
			asciigraph.Caption(caption),
		))
	}
	fmt.Println()
	return nil
}
