// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotDiagMoment plots the bending moment diagram of every chain, offset
// normal to each span in the x-y plane and scaled by the chain's shared
// factor so relative magnitudes stay comparable across spans
//  Input:
//   withtext -- show field values at extrema and span ends
//   numfmt   -- number format for values. use "" for default
//   tolF     -- tolerance to clip absolute values
func (o *Results) PlotDiagMoment(withtext bool, numfmt string, tolF float64) {
	for _, cd := range o.Chains {
		for _, sp := range cd.Spans {
			plotSpanDiag(sp, sp.SampleMoment(o.Nstations), withtext, numfmt, tolF, cd.SfM)
		}
	}
}

// PlotDiagShear plots the shear force diagram of every chain
func (o *Results) PlotDiagShear(withtext bool, numfmt string, tolF float64) {
	for _, cd := range o.Chains {
		for _, sp := range cd.Spans {
			plotSpanDiag(sp, sp.SampleShear(o.Nstations), withtext, numfmt, tolF, cd.SfV)
		}
	}
}

// PlotGeometry draws the chain axes
func (o *Results) PlotGeometry() {
	for _, cd := range o.Chains {
		for _, sp := range cd.Spans {
			plt.Plot([]float64{sp.X0[0], sp.X1[0]}, []float64{sp.X0[1], sp.X1[1]}, &plt.A{C: "k", Lw: 2, NoClip: true})
		}
	}
}

// diagPlane computes the x-y plane unit vector v along the span and the unit
// normal n offsetting diagram curves. ok is false when the span is parallel
// to the z axis; such spans have no drawing direction in the x-y plane and
// must be skipped
func diagPlane(sp *SpanData) (v, n []float64, ok bool) {
	v = make([]float64, 3)
	sum := 0.0
	for j := 0; j < 2; j++ {
		v[j] = sp.X1[j] - sp.X0[j]
		sum += v[j] * v[j]
	}
	sum = math.Sqrt(sum)
	if sum < 1e-10 {
		return nil, nil, false
	}
	for j := 0; j < 2; j++ {
		v[j] /= sum
	}

	// unit normal: out-of-plane vector cross span direction
	u := []float64{0, 0, 1}
	n = make([]float64, 3)
	utl.Cross3d(n, u, v) // n := u cross v
	return v, n, true
}

// plotSpanDiag draws one span's field diagram: hatching lines from the span
// axis to the offset curve, the offset polyline, and optional value labels
func plotSpanDiag(sp *SpanData, F []float64, withtext bool, numfmt string, tolF, sf float64) {

	// stations
	nstations := len(F)
	ds := 1.0 / float64(nstations-1)

	// drawing plane vectors
	_, n, ok := diagPlane(sp)
	if !ok {
		return
	}

	// auxiliary vectors
	x := make([]float64, 2) // station on the span axis
	m := make([]float64, 2) // station offset to the diagram side
	c := make([]float64, 2) // centre for text
	imin, imax := utl.ArgMinMax(F)

	// draw text function
	drawText := func(val float64) {
		if math.Abs(val) > tolF {
			α := math.Atan2(-n[1], -n[0]) * 180.0 / math.Pi
			str := io.Sf("%g", val)
			if numfmt != "" {
				str = io.Sf(numfmt, val)
			} else {
				if len(str) > 10 {
					str = io.Sf("%.8f", val) // truncate number
					str = io.Sf("%g", io.Atof(str))
				}
			}
			plt.Text(c[0], c[1], str, &plt.A{Ha: "center", Fsz: 7, Rot: α, NoClip: true})
		}
	}

	// draw
	pts := utl.Alloc(nstations, 2)
	xx, yy := make([]float64, 2), make([]float64, 2)
	for i := 0; i < nstations; i++ {

		// station
		s := float64(i) * ds
		for j := 0; j < 2; j++ {
			x[j] = (1.0-s)*sp.X0[j] + s*sp.X1[j]
			m[j] = x[j] - sf*F[i]*n[j]
			c[j] = (x[j] + m[j]) / 2.0
		}

		// points on diagram
		pts[i][0], pts[i][1] = m[0], m[1]
		xx[0], xx[1] = x[0], m[0]
		yy[0], yy[1] = x[1], m[1]

		// draw hatching line
		clr, lw := "#919191", 1.0
		if i == imin || i == imax {
			lw = 2
			if F[i] < 0 {
				clr = "#9f0000"
			} else {
				clr = "#109f24"
			}
		}
		plt.Plot(xx, yy, &plt.A{C: clr, Lw: lw, NoClip: true})
		if withtext {
			if i == imin || i == imax { // draw text @ min/max
				drawText(F[i])
			} else {
				if i == 0 || i == nstations-1 { // draw text @ extremities
					drawText(F[i])
				}
			}
		}
	}

	// draw polyline
	plt.Polyline(pts, &plt.A{Ec: "k", Fc: "none", Lw: 1})
}
