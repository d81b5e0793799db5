// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num implements the dense linear system solver used by the
// multi-span moment solver
package num

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// MinPivot is the smallest pivot magnitude considered usable during
// elimination and back-substitution. Columns with smaller pivots are treated
// as already reduced and their unknowns resolve to zero, so a structurally
// singular system degrades gracefully instead of failing
var MinPivot = 1e-10

// GaussSolve solves A·x = b by Gaussian elimination with partial pivoting.
// The input matrix and vector are copied, not modified. The systems here are
// small (chain span count plus up to two fixed-end unknowns) and typically
// well-conditioned; no iterative refinement is performed
func GaussSolve(A [][]float64, b []float64) (x []float64) {

	// local copies
	n := len(b)
	a := utl.Alloc(n, n)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(a[i], A[i])
		r[i] = b[i]
	}

	// forward elimination
	for k := 0; k < n; k++ {

		// partial pivoting: swap in the largest-magnitude pivot
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > math.Abs(a[p][k]) {
				p = i
			}
		}
		if p != k {
			a[k], a[p] = a[p], a[k]
			r[k], r[p] = r[p], r[k]
		}

		// near-zero pivot: skip this column
		if math.Abs(a[k][k]) < MinPivot {
			continue
		}

		// eliminate below
		for i := k + 1; i < n; i++ {
			f := a[i][k] / a[k][k]
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
			r[i] -= f * r[k]
		}
	}

	// back-substitution with the same near-zero guard
	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := r[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		if math.Abs(a[i][i]) < MinPivot {
			x[i] = 0
			continue
		}
		x[i] = sum / a[i][i]
	}
	return
}
