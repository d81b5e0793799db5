// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/daveh07/gobmd/cmd"
)

func main() {
	cmd.Execute()
}
