// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/daveh07/gobmd/ana"

	"github.com/spf13/cobra"
)

var (
	beamType string
	beamL    float64
	beamW    float64
	beamEI   float64
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Print closed-form results for a single uniformly loaded beam",
	Long: `Quick hand checks against the classical closed-form solutions of a
single prismatic beam under uniform load. Types: cantilever, simple,
fixed, propped.

Examples:
  gobmd beam --type cantilever -L 4 -w 10
  gobmd beam --type fixed -L 6 -w 5 --ei 2e4`,
	RunE: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)
	beamCmd.Flags().StringVarP(&beamType, "type", "t", "simple", "beam type: cantilever, simple, fixed or propped")
	beamCmd.Flags().Float64VarP(&beamL, "length", "L", 0, "beam length [required]")
	beamCmd.Flags().Float64VarP(&beamW, "udl", "w", 0, "distributed load magnitude [required]")
	beamCmd.Flags().Float64Var(&beamEI, "ei", 0, "bending stiffness EI (enables deflection)")
	beamCmd.MarkFlagRequired("length")
	beamCmd.MarkFlagRequired("udl")
}

func runBeam(cmd *cobra.Command, args []string) error {
	switch beamType {
	case "cantilever":
		var sol ana.CantileverUDL
		sol.Init(beamL, beamW, beamEI)
		fmt.Println(ana.Report("cantilever", sol.Mmax, sol.Vmax, sol.Dmax))
	case "simple":
		var sol ana.SimpleUDL
		sol.Init(beamL, beamW, beamEI)
		fmt.Println(ana.Report("simple", sol.Mmax, sol.Vmax, sol.Dmax))
	case "fixed":
		var sol ana.FixedEndsUDL
		sol.Init(beamL, beamW, beamEI)
		fmt.Println(ana.Report("fixed-fixed", sol.Mend, sol.Vmax, sol.Dmax))
		fmt.Printf("%-16s Mmid=%g\n", "", sol.Mmid)
	case "propped":
		var sol ana.ProppedUDL
		sol.Init(beamL, beamW, beamEI)
		fmt.Println(ana.Report("propped", sol.Mend, sol.Rfix, sol.Dmax))
	default:
		return fmt.Errorf("unknown beam type %q", beamType)
	}
	return nil
}
