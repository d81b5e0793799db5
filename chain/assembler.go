// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chain groups straight members into ordered multi-span chains and
// classifies the support condition at chain extremities
package chain

import (
	"math"

	"github.com/daveh07/gobmd/inp"

	"github.com/cpmech/gosl/io"
)

// Span represents one member resolved into chain-local orientation, reading
// start→end along the chain direction
//
//       X0 o================o X1 ·· X0 o=========o X1
//            span i                      span i+1
//
type Span struct {
	Member *inp.Member // source member (referenced, never mutated)
	X0     []float64   // [3] start position
	X1     []float64   // [3] end position
	L      float64     // length
	W      float64     // resolved distributed load magnitude
}

// Chain is an ordered sequence of end-to-end connected spans treated as one
// continuous beam. Span[i].X1 coincides with Span[i+1].X0 within the
// assembly tolerance
type Chain struct {
	Spans []*Span
}

// Head returns the chain's leading extremity position
func (o *Chain) Head() []float64 { return o.Spans[0].X0 }

// Tail returns the chain's trailing extremity position
func (o *Chain) Tail() []float64 { return o.Spans[len(o.Spans)-1].X1 }

// Lengths collects span lengths
func (o *Chain) Lengths() (L []float64) {
	L = make([]float64, len(o.Spans))
	for i, s := range o.Spans {
		L[i] = s.L
	}
	return
}

// Loads collects span distributed load magnitudes
func (o *Chain) Loads() (w []float64) {
	w = make([]float64, len(o.Spans))
	for i, s := range o.Spans {
		w[i] = s.W
	}
	return
}

// HasLoad tells whether at least one span carries a distributed load
func (o *Chain) HasLoad() bool {
	for _, s := range o.Spans {
		if s.W != 0 {
			return true
		}
	}
	return false
}

// AvgLength returns the average span length
func (o *Chain) AvgLength() float64 {
	sum := 0.0
	for _, s := range o.Spans {
		sum += s.L
	}
	return sum / float64(len(o.Spans))
}

// String returns a short description of the chain
func (o *Chain) String() string {
	return io.Sf("chain with %d spans from %v to %v", len(o.Spans), o.Head(), o.Tail())
}

// Assemble groups members into chains by matching shared endpoints within
// tol. The search appends continuations at the trailing end first, then
// prepends continuations at the leading end, reversing member orientation as
// needed so spans read consistently start→end. A member with no endpoint
// match forms a single-span chain; members with degenerate geometry are
// skipped. When geometry branches, the first continuation in input order
// wins.
//  Input:
//   members -- snapshot of all members
//   ws      -- resolved load magnitudes, aligned with members
//   tol     -- endpoint matching tolerance
func Assemble(members []*inp.Member, ws []float64, tol float64) (chains []*Chain) {
	used := make([]bool, len(members))
	ok := func(j int) bool { return !used[j] && members[j].Ok(tol) }

	for i := range members {
		if used[i] || !members[i].Ok(tol) {
			continue
		}
		used[i] = true
		c := &Chain{Spans: []*Span{newSpan(members[i], ws[i], false)}}

		// grow forward from the trailing end
		for {
			found, reversed := -1, false
			for j := range members {
				if !ok(j) {
					continue
				}
				if dist(members[j].A, c.Tail()) <= tol {
					found, reversed = j, false
					break
				}
				if dist(members[j].B, c.Tail()) <= tol {
					found, reversed = j, true
					break
				}
			}
			if found < 0 {
				break
			}
			used[found] = true
			c.Spans = append(c.Spans, newSpan(members[found], ws[found], reversed))
		}

		// grow backward from the leading end
		for {
			found, reversed := -1, false
			for j := range members {
				if !ok(j) {
					continue
				}
				if dist(members[j].B, c.Head()) <= tol {
					found, reversed = j, false
					break
				}
				if dist(members[j].A, c.Head()) <= tol {
					found, reversed = j, true
					break
				}
			}
			if found < 0 {
				break
			}
			used[found] = true
			c.Spans = append([]*Span{newSpan(members[found], ws[found], reversed)}, c.Spans...)
		}

		chains = append(chains, c)
	}
	return
}

// newSpan resolves a member into chain-local orientation, copying positions
func newSpan(m *inp.Member, w float64, reversed bool) *Span {
	x0, x1 := make([]float64, 3), make([]float64, 3)
	copy(x0, m.A)
	copy(x1, m.B)
	if reversed {
		x0, x1 = x1, x0
	}
	return &Span{Member: m, X0: x0, X1: x1, L: dist(x0, x1), W: w}
}

// dist computes the distance between two 3D points
func dist(a, b []float64) float64 {
	var sum float64
	for j := 0; j < 3; j++ {
		d := b[j] - a[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}
