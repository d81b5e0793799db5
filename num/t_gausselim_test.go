// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_gauss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss01. well-conditioned 3x3 system")

	A := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	b := []float64{8, -11, -3}
	x := GaussSolve(A, b)
	io.Pforan("x = %v\n", x)
	chk.Array(tst, "x", 1e-14, x, []float64{2, 3, -1})

	// inputs must not be modified
	chk.Deep2(tst, "A", 1e-17, A, [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
	chk.Array(tst, "b", 1e-17, b, []float64{8, -11, -3})
}

func Test_gauss02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss02. zero diagonal entry needs pivoting")

	A := [][]float64{
		{0, 1, 1},
		{2, 0, 1},
		{1, 1, 0},
	}
	b := []float64{5, 5, 3}
	x := GaussSolve(A, b)
	chk.Array(tst, "x", 1e-14, x, []float64{1, 2, 3})
}

func Test_gauss03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss03. three-moment style tridiagonal system")

	// three interior joints of a four-equal-span chain: L=4, w=10
	L, w := 4.0, 10.0
	A := utl.Alloc(3, 3)
	b := make([]float64, 3)
	for i := 0; i < 3; i++ {
		A[i][i] = 2.0 * (L + L)
		if i > 0 {
			A[i][i-1] = L
		}
		if i < 2 {
			A[i][i+1] = L
		}
		b[i] = -(w*L*L*L + w*L*L*L) / 4.0
	}
	x := GaussSolve(A, b)
	io.Pforan("x = %v\n", x)

	// symmetry and known continuous-beam pattern: |M_mid| < |M_side|
	chk.Float64(tst, "x0 = x2", 1e-12, x[0], x[2])
	if x[1] >= 0 || x[0] >= 0 {
		tst.Errorf("support moments must be hogging (negative)")
	}
	if x[1] <= x[0] {
		tst.Errorf("middle support must hog less than outer interior supports")
	}

	// residual check
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += A[i][j] * x[j]
		}
		chk.Float64(tst, io.Sf("residual %d", i), 1e-11, sum, b[i])
	}
}

func Test_gauss04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss04. singular system degrades to zero unknowns")

	// second row is a multiple of the first
	A := [][]float64{
		{1, 2},
		{2, 4},
	}
	b := []float64{3, 6}
	x := GaussSolve(A, b)
	io.Pforan("x = %v\n", x)

	// the reduced column yields zero, the remaining equation is still honored
	chk.Float64(tst, "x1", 1e-14, x[1], 0)
	chk.Float64(tst, "x0", 1e-14, x[0], 3)

	// all-zero system
	x = GaussSolve([][]float64{{0, 0}, {0, 0}}, []float64{1, 2})
	chk.Array(tst, "x", 1e-17, x, []float64{0, 0})
}
