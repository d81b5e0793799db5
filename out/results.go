// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out evaluates internal-force fields over solved chains and holds
// the diagram data handed to rendering consumers. Results are an explicit
// per-run object: callers own the caching and must discard a Results
// whenever geometry, loads or supports change
package out

import (
	"github.com/daveh07/gobmd/chain"
	"github.com/daveh07/gobmd/inp"
	"github.com/daveh07/gobmd/mom"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// SpanData holds one span resolved for diagram rendering: geometry,
// distributed load and solved end moments
type SpanData struct {
	X0 []float64 // [3] start position
	X1 []float64 // [3] end position
	L  float64   // length
	W  float64   // distributed load magnitude
	Ml float64   // bending moment at the start end
	Mr float64   // bending moment at the end end
}

// Moment computes the bending moment at parametric position t ∈ [0,1]
//
//   M(t) = Ml·(1−t) + Mr·t + w·x·(L−x)/2     with x = t·L
//
func (o *SpanData) Moment(t float64) float64 {
	x := t * o.L
	return o.Ml*(1.0-t) + o.Mr*t + o.W*x*(o.L-x)/2.0
}

// Shear computes the shear force at parametric position t ∈ [0,1]. Shear
// varies linearly from (Mr−Ml)/L + wL/2 at the start to (Mr−Ml)/L − wL/2 at
// the end; the drop over the span equals the total distributed load w·L
func (o *SpanData) Shear(t float64) float64 {
	x := t * o.L
	return (o.Mr-o.Ml)/o.L + o.W*o.L/2.0 - o.W*x
}

// SampleMoment evaluates the moment at nstations equally spaced stations
func (o *SpanData) SampleMoment(nstations int) (M []float64) {
	M = make([]float64, nstations)
	dt := 1.0 / float64(nstations-1)
	for i := 0; i < nstations; i++ {
		M[i] = o.Moment(float64(i) * dt)
	}
	return
}

// SampleShear evaluates the shear at nstations equally spaced stations
func (o *SpanData) SampleShear(nstations int) (V []float64) {
	V = make([]float64, nstations)
	dt := 1.0 / float64(nstations-1)
	for i := 0; i < nstations; i++ {
		V[i] = o.Shear(float64(i) * dt)
	}
	return
}

// ChainData holds the solved diagram data of one chain. All spans share the
// same scale factors so the largest field value of the chain maps to the
// same visual amplitude on every span
type ChainData struct {
	Spans []*SpanData            // resolved spans, in chain order
	Lc    chain.SupportCondition // condition at the leading extremity
	Rc    chain.SupportCondition // condition at the trailing extremity
	M     []float64              // support moments M[0..n]
	SfM   float64                // shared scale factor for moment diagrams
	SfV   float64                // shared scale factor for shear diagrams
}

// String returns a short description of the solved chain
func (o *ChainData) String() string {
	return io.Sf("%d spans, %v-%v, M=%v", len(o.Spans), o.Lc, o.Rc, o.M)
}

// calcScales derives the shared diagram scale factors by sampling every span
// and mapping the chain-wide maximum absolute value to coef times the
// average span length
func (o *ChainData) calcScales(nstations int, coef float64) {
	allM := make([][]float64, len(o.Spans))
	allV := make([][]float64, len(o.Spans))
	avg := 0.0
	for i, sp := range o.Spans {
		allM[i] = sp.SampleMoment(nstations)
		allV[i] = sp.SampleShear(nstations)
		avg += sp.L
	}
	avg /= float64(len(o.Spans))
	maxM := la.NewMatrixDeep2(allM).Largest(1)
	maxV := la.NewMatrixDeep2(allV).Largest(1)
	o.SfM, o.SfV = 1.0, 1.0
	if maxM > 1e-7 {
		o.SfM = coef * avg / maxM
	}
	if maxV > 1e-7 {
		o.SfV = coef * avg / maxV
	}
}

// Results holds all diagram data computed by one analysis run over an
// immutable snapshot of geometry and support data
type Results struct {
	Chains    []*ChainData // solved chains carrying at least one loaded span
	Nstations int          // stations per span used for sampling and scaling
	QryTol    float64      // distance threshold for field queries
}

// Analyze runs the continuous-beam analysis: members are grouped into
// chains, chain extremities are classified against the support registry,
// support moments are solved and diagram scales are derived. Chains without
// any distributed load are skipped silently; an empty model yields an empty
// Results. Zero-valued model parameters are replaced by defaults; members
// and supports are never modified
func Analyze(mdl *inp.Model) (res *Results, err error) {
	mdl.SetDefaults()
	res = &Results{Nstations: mdl.Nstations, QryTol: mdl.QryTol}

	ws, err := mdl.CalcLoads()
	if err != nil {
		return nil, err
	}

	for _, c := range chain.Assemble(mdl.Members, ws, mdl.PosTol) {
		if !c.HasLoad() {
			continue
		}
		lc := chain.Classify(c.Head(), mdl.Supports, mdl.SupTol)
		rc := chain.Classify(c.Tail(), mdl.Supports, mdl.SupTol)
		M := mom.SolveChain(c, lc, rc)

		cd := &ChainData{Lc: lc, Rc: rc, M: M}
		cd.Spans = make([]*SpanData, len(c.Spans))
		for i, sp := range c.Spans {
			cd.Spans[i] = &SpanData{
				X0: sp.X0,
				X1: sp.X1,
				L:  sp.L,
				W:  sp.W,
				Ml: M[i],
				Mr: M[i+1],
			}
		}
		cd.calcScales(mdl.Nstations, mdl.ScaleCoef)
		res.Chains = append(res.Chains, cd)
	}
	return
}
