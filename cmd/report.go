// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"time"

	"github.com/daveh07/gobmd/out"

	"github.com/phpdave11/gofpdf"
	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF summary of the analysis",
	Long: `Solve all chains and write a PDF report with the boundary conditions,
support moments and span extreme values.

Examples:
  gobmd report -f examples/twospan.json -o results.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "report.pdf", "output PDF file")
}

func runReport(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel()
	if err != nil {
		return err
	}
	res, err := out.Analyze(mdl)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Continuous Beam Analysis")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Model: %s", mdl.Desc))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if len(res.Chains) == 0 {
		pdf.Cell(0, 6, "No loaded chains found.")
	}
	for i, cd := range res.Chains {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Chain %d  (%d spans, %v-%v)", i, len(cd.Spans), cd.Lc, cd.Rc))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Support moments: %v", cd.M))
		pdf.Ln(6)
		for k, sp := range cd.Spans {
			pdf.Cell(0, 5, fmt.Sprintf("  span %d: L=%g udl=%g  Ml=%.6g Mr=%.6g  V0=%.6g V1=%.6g",
				k, sp.L, sp.W, sp.Ml, sp.Mr, sp.Shear(0), sp.Shear(1)))
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(reportOut); err != nil {
		return fmt.Errorf("report generation error: %v", err)
	}
	fmt.Printf("report written to %s\n", reportOut)
	return nil
}
