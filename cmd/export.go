// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/daveh07/gobmd/out"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export span results to an XLSX workbook",
	Long: `Solve all chains and write one row per span with geometry, load, end
moments and end shear forces.

Examples:
  gobmd export -f examples/twospan.json -o results.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "results.xlsx", "output XLSX file")
}

func runExport(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel()
	if err != nil {
		return err
	}
	res, err := out.Analyze(mdl)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Spans"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"chain", "span", "x0", "y0", "z0", "x1", "y1", "z1",
		"L", "udl", "M left", "M right", "V left", "V right"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, cd := range res.Chains {
		for k, sp := range cd.Spans {
			vals := []interface{}{i, k,
				sp.X0[0], sp.X0[1], sp.X0[2],
				sp.X1[0], sp.X1[1], sp.X1[2],
				sp.L, sp.W, sp.Ml, sp.Mr, sp.Shear(0), sp.Shear(1)}
			for j, v := range vals {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	if err := f.SaveAs(exportOut); err != nil {
		return fmt.Errorf("export error: %v", err)
	}
	fmt.Printf("results written to %s (%d spans)\n", exportOut, row-2)
	return nil
}
