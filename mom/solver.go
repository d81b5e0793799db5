// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mom computes support bending moments for continuous beam chains.
// Interior joints are always continuous; extremities follow their support
// condition. Sign convention: negative moment = hogging (tension on the top
// fibre); distributed loads act downward with positive magnitude
package mom

import (
	"github.com/daveh07/gobmd/chain"
	"github.com/daveh07/gobmd/num"

	"github.com/cpmech/gosl/utl"
)

// EndMoments returns the closed-form end moments of a single uniformly
// loaded span
//
//   Lc      Rc      M_left    M_right
//   ─────────────────────────────────
//   fixed   free    −wL²/2    0        (cantilever)
//   free    fixed   0         −wL²/2
//   fixed   fixed   −wL²/12   −wL²/12
//   fixed   pinned  −wL²/8    0        (propped cantilever)
//   pinned  fixed   0         −wL²/8
//   other           0         0
//
func EndMoments(L, w float64, lc, rc chain.SupportCondition) (ml, mr float64) {
	ll := L * L
	switch {
	case lc == chain.Fixed && rc == chain.Free:
		ml = -w * ll / 2.0
	case lc == chain.Free && rc == chain.Fixed:
		mr = -w * ll / 2.0
	case lc == chain.Fixed && rc == chain.Fixed:
		ml = -w * ll / 12.0
		mr = ml
	case lc == chain.Fixed && rc == chain.Pinned:
		ml = -w * ll / 8.0
	case lc == chain.Pinned && rc == chain.Fixed:
		mr = -w * ll / 8.0
	}
	return
}

// Solve computes the n+1 support moments M[0..n] of a chain with n spans.
// M[i] is the bending moment at the boundary between span i-1 and span i;
// M[0] and M[n] belong to the chain extremities. Unknowns are the interior
// joint moments plus an extremity moment when that end is fixed; pinned and
// free extremities have known zero moments and are not system unknowns.
//  Input:
//   L      -- span lengths
//   w      -- span distributed load magnitudes, aligned with L
//   lc, rc -- support conditions at the leading and trailing extremities
func Solve(L, w []float64, lc, rc chain.SupportCondition) (M []float64) {

	// degenerate chain
	n := len(L)
	if n == 0 {
		return
	}
	M = make([]float64, n+1)

	// single span: closed-form table
	if n == 1 {
		M[0], M[1] = EndMoments(L[0], w[0], lc, rc)
		return
	}

	// collect unknowns. pos maps joint index to unknown index (-1 = known zero)
	pos := make([]int, n+1)
	for i := range pos {
		pos[i] = -1
	}
	m := 0
	if lc == chain.Fixed {
		pos[0] = m
		m++
	}
	for i := 1; i < n; i++ {
		pos[i] = m
		m++
	}
	if rc == chain.Fixed {
		pos[n] = m
		m++
	}

	// assemble the compatibility system
	A := utl.Alloc(m, m)
	b := make([]float64, m)
	row := 0

	// zero end-slope at a fixed leading extremity
	if lc == chain.Fixed {
		A[row][pos[0]] = 2.0 * L[0]
		if pos[1] >= 0 {
			A[row][pos[1]] = L[0]
		}
		b[row] = -w[0] * L[0] * L[0] * L[0] / 4.0
		row++
	}

	// three-moment equation at each interior joint
	for i := 1; i < n; i++ {
		ll, lr := L[i-1], L[i] // spans to the left and right of joint i
		if pos[i-1] >= 0 {
			A[row][pos[i-1]] = ll
		}
		A[row][pos[i]] = 2.0 * (ll + lr)
		if pos[i+1] >= 0 {
			A[row][pos[i+1]] = lr
		}
		b[row] = -(w[i-1]*ll*ll*ll + w[i]*lr*lr*lr) / 4.0
		row++
	}

	// zero end-slope at a fixed trailing extremity
	if rc == chain.Fixed {
		A[row][pos[n]] = 2.0 * L[n-1]
		if pos[n-1] >= 0 {
			A[row][pos[n-1]] = L[n-1]
		}
		b[row] = -w[n-1] * L[n-1] * L[n-1] * L[n-1] / 4.0
	}

	// solve and scatter back, leaving known-zero joints at zero
	x := num.GaussSolve(A, b)
	for i := 0; i <= n; i++ {
		if pos[i] >= 0 {
			M[i] = x[pos[i]]
		}
	}
	return
}

// SolveChain computes the support moments of an assembled chain
func SolveChain(c *chain.Chain, lc, rc chain.SupportCondition) []float64 {
	return Solve(c.Lengths(), c.Loads(), lc, rc)
}
