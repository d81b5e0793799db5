// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gobmd command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/daveh07/gobmd/inp"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var modelPath string

var rootCmd = &cobra.Command{
	Use:   "gobmd",
	Short: "Internal-force diagrams for continuous beam chains",
	Long: `gobmd - bending moment and shear force diagrams

Members of a frame model are grouped into continuous beam chains by
matching shared endpoints; each chain is solved with the boundary
conditions found in the model's support registry and the three-moment
compatibility equations, and the internal-force fields are evaluated
in closed form along every span.

Commands operate on a JSON model file holding members (endpoints and
uniformly distributed loads), supports and optional load factor
functions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  gobmd v%s - internal-force diagrams for beam chains\n", Version)
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Chain assembly from independently drawn members")
		fmt.Println("    • Fixed / pinned / free boundary classification")
		fmt.Println("    • Three-moment solution of multi-span chains")
		fmt.Println("    • Moment and shear diagrams (terminal and matplotlib)")
		fmt.Println("    • Field queries at arbitrary world positions")
		fmt.Println()
		fmt.Println("  Use 'gobmd --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	godotenv.Load() // optional .env with GOBMD_MODEL
	def := os.Getenv("GOBMD_MODEL")
	if def == "" {
		def = "model.json"
	}
	rootCmd.PersistentFlags().StringVarP(&modelPath, "file", "f", def, "model file (.json)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadModel reads the model given by the persistent --file flag
func loadModel() (*inp.Model, error) {
	return inp.ReadModel(modelPath)
}
