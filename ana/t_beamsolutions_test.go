// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_beamsol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beamsol01. cantilever with uniform load")

	var sol CantileverUDL
	sol.Init(4, 10, 1e4)
	io.Pforan("%s\n", Report("cantilever", sol.Mmax, sol.Vmax, sol.Dmax))

	chk.Float64(tst, "Mmax", 1e-14, sol.Mmax, -80)
	chk.Float64(tst, "Vmax", 1e-14, sol.Vmax, 40)
	chk.Float64(tst, "Dmax", 1e-14, sol.Dmax, 10.0*256.0/(8.0*1e4))
	chk.Float64(tst, "M(0)", 1e-14, sol.Moment(0), sol.Mmax)
	chk.Float64(tst, "M(L)", 1e-17, sol.Moment(4), 0)
	chk.Float64(tst, "V(L)", 1e-17, sol.Shear(4), 0)

	// shear drop along the whole beam equals the total load
	chk.Float64(tst, "V(0)-V(L)", 1e-14, sol.Shear(0)-sol.Shear(4), 10.0*4.0)
}

func Test_beamsol02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beamsol02. simply supported beam with uniform load")

	var sol SimpleUDL
	sol.Init(6, 5, 2e4)

	chk.Float64(tst, "Mmax", 1e-14, sol.Mmax, 22.5)
	chk.Float64(tst, "M(L/2)", 1e-14, sol.Moment(3), 22.5)
	chk.Float64(tst, "M(0)", 1e-17, sol.Moment(0), 0)
	chk.Float64(tst, "M(L)", 1e-17, sol.Moment(6), 0)
	chk.Float64(tst, "V(0)", 1e-14, sol.Shear(0), 15)
	chk.Float64(tst, "V(L/2)", 1e-17, sol.Shear(3), 0)
	chk.Float64(tst, "Dmax", 1e-14, sol.Dmax, 5.0*5.0*1296.0/(384.0*2e4))
}

func Test_beamsol03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beamsol03. fixed-ends and propped beams")

	var fix FixedEndsUDL
	fix.Init(6, 5, 0)
	chk.Float64(tst, "fixed: Mend", 1e-14, fix.Mend, -15)
	chk.Float64(tst, "fixed: Mmid", 1e-14, fix.Mmid, 7.5)
	chk.Float64(tst, "fixed: M(0)", 1e-14, fix.Moment(0), -15)
	chk.Float64(tst, "fixed: M(L/2)", 1e-14, fix.Moment(3), 7.5)
	chk.Float64(tst, "fixed: Dmax", 1e-17, fix.Dmax, 0) // EI not given

	var prp ProppedUDL
	prp.Init(6, 5, 0)
	chk.Float64(tst, "propped: Mend", 1e-14, prp.Mend, -22.5)
	chk.Float64(tst, "propped: M(0)", 1e-14, prp.Moment(0), -22.5)
	chk.Float64(tst, "propped: M(L)", 1e-13, prp.Moment(6), 0)
	chk.Float64(tst, "propped: reactions", 1e-14, prp.Rfix+prp.Rpin, 5.0*6.0)
	chk.Float64(tst, "propped: V(0)", 1e-14, prp.Shear(0), prp.Rfix)
}
