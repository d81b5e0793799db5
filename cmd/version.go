// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current release
const Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gobmd version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobmd v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
