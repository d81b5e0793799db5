// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. read model file")

	mdl, err := ReadModel("data/frame01.json")
	if err != nil {
		tst.Errorf("cannot read model:\n%v", err)
		return
	}
	io.Pforan("%v\n", mdl)

	// counts
	chk.IntAssert(len(mdl.Members), 3)
	chk.IntAssert(len(mdl.Supports), 4)
	chk.IntAssert(len(mdl.Functions), 1)

	// defaults
	chk.Float64(tst, "postol", 1e-17, mdl.PosTol, 0.01)
	chk.Float64(tst, "suptol", 1e-17, mdl.SupTol, 0.15)
	chk.Float64(tst, "qrytol", 1e-17, mdl.QryTol, 0.5)
	chk.IntAssert(mdl.Nstations, 21)
	chk.Float64(tst, "scalecoef", 1e-17, mdl.ScaleCoef, 0.25)

	// geometry
	chk.Array(tst, "member0: a", 1e-17, mdl.Members[0].A, []float64{0, 0, 0})
	chk.Array(tst, "member1: b", 1e-17, mdl.Members[1].B, []float64{10, 0, 0})
	if !mdl.Members[0].Ok(mdl.PosTol) {
		tst.Errorf("member 0 must have valid geometry")
	}
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. load factor functions")

	mdl, err := ReadModel("data/frame01.json")
	if err != nil {
		tst.Errorf("cannot read model:\n%v", err)
		return
	}

	// plain magnitude
	w0, err := mdl.Members[0].CalcLoad(0, mdl.Functions)
	if err != nil {
		tst.Errorf("CalcLoad failed:\n%v", err)
		return
	}
	chk.Float64(tst, "w0", 1e-17, w0, 8)

	// constant factor function
	w1, err := mdl.Members[1].CalcLoad(0, mdl.Functions)
	if err != nil {
		tst.Errorf("CalcLoad failed:\n%v", err)
		return
	}
	chk.Float64(tst, "w1", 1e-15, w1, 12)

	// all loads at once
	ws, err := mdl.CalcLoads()
	if err != nil {
		tst.Errorf("CalcLoads failed:\n%v", err)
		return
	}
	chk.Array(tst, "ws", 1e-15, ws, []float64{8, 12, 4})

	// unknown function name must result in error
	bad := &Member{Tag: 9, A: []float64{0, 0, 0}, B: []float64{1, 0, 0}, Udl: 1, LodFcn: "nosuch"}
	_, err = bad.CalcLoad(0, mdl.Functions)
	if err == nil {
		tst.Errorf("CalcLoad must fail with unknown function name")
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. degenerate members")

	// missing endpoint
	m := &Member{Tag: 0, A: []float64{0, 0, 0}, Udl: 1}
	if m.Ok(0.01) {
		tst.Errorf("member with missing endpoint must be invalid")
	}

	// zero length
	m = &Member{Tag: 1, A: []float64{1, 2, 0}, B: []float64{1, 2, 0}, Udl: 1}
	if m.Ok(0.01) {
		tst.Errorf("zero-length member must be invalid")
	}
}
