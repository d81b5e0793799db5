// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
)

// FieldSample holds the internal-force values at a point projected onto the
// nearest span, for hover read-outs
type FieldSample struct {
	Chain *ChainData // chain owning the matched span
	Span  *SpanData  // matched span
	T     float64    // clamped parametric position of the projection
	Dist  float64    // distance from the query point to the projection
	M     float64    // bending moment at T
	V     float64    // shear force at T
}

// Query projects a world position onto every span's line segment (clamped to
// [0,1]), picks the closest span and evaluates the fields at the projected
// parameter. found is false when no span lies within the distance threshold.
// This is a pure read over already-computed results; no new solving happens
func (o *Results) Query(x []float64) (smp FieldSample, found bool) {
	best := math.MaxFloat64
	for _, cd := range o.Chains {
		for _, sp := range cd.Spans {
			t, d := project(x, sp.X0, sp.X1)
			if d < best {
				best = d
				smp.Chain, smp.Span, smp.T, smp.Dist = cd, sp, t, d
			}
		}
	}
	if best > o.QryTol {
		return FieldSample{}, false
	}
	smp.M = smp.Span.Moment(smp.T)
	smp.V = smp.Span.Shear(smp.T)
	return smp, true
}

// project returns the clamped parametric position of x projected onto the
// segment a→b and the distance from x to the projected point
func project(x, a, b []float64) (t, d float64) {
	var dot, den float64
	for j := 0; j < 3; j++ {
		dj := b[j] - a[j]
		dot += (x[j] - a[j]) * dj
		den += dj * dj
	}
	t = dot / den
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var sum float64
	for j := 0; j < 3; j++ {
		pj := a[j] + t*(b[j]-a[j])
		sum += (x[j] - pj) * (x[j] - pj)
	}
	return t, math.Sqrt(sum)
}
