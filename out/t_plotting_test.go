// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/daveh07/gobmd/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func Test_plotting01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plotting01. diagram drawing plane")

	// span along x: normal points to +y
	sp := &SpanData{X0: []float64{0, 0, 0}, X1: []float64{4, 0, 0}, L: 4, W: 1}
	v, n, ok := diagPlane(sp)
	if !ok {
		tst.Errorf("x-axis span must have a drawing plane")
		return
	}
	chk.Array(tst, "v", 1e-17, v, []float64{1, 0, 0})
	chk.Array(tst, "n", 1e-17, n, []float64{0, 1, 0})

	// diagonal span in x-y: unit vectors, finite components
	sp = &SpanData{X0: []float64{0, 0, 0}, X1: []float64{3, 4, 0}, L: 5, W: 1}
	v, n, ok = diagPlane(sp)
	if !ok {
		tst.Errorf("x-y span must have a drawing plane")
		return
	}
	chk.Array(tst, "v", 1e-15, v, []float64{0.6, 0.8, 0})
	for j := 0; j < 2; j++ {
		if math.IsNaN(v[j]) || math.IsNaN(n[j]) {
			tst.Errorf("drawing plane vectors must be finite")
			return
		}
	}
}

func Test_plotting02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plotting02. spans parallel to the z axis are skipped")

	// zero x-y projection: no drawing plane
	sp := &SpanData{X0: []float64{1, 2, 0}, X1: []float64{1, 2, 4}, L: 4, W: 1}
	_, _, ok := diagPlane(sp)
	if ok {
		tst.Errorf("z-axis span must not have a drawing plane")
	}

	// plotting a model with a vertical loaded member must not blow up
	mdl := &inp.Model{
		Members: []*inp.Member{
			{Tag: 0, A: []float64{0, 0, 0}, B: []float64{0, 0, 4}, Udl: 3},
		},
		Supports: []*inp.Support{
			{At: []float64{0, 0, 0}, Type: "fixed"},
		},
	}
	res, err := Analyze(mdl)
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	chk.IntAssert(len(res.Chains), 1)
	plt.Reset(false, nil)
	res.PlotDiagMoment(true, "", 1e-10)
	res.PlotDiagShear(true, "", 1e-10)
}
