// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions of uniformly loaded prismatic
// beams for verification of the chain solver and for quick hand checks.
// Sign convention: negative moment = hogging (tension on the top fibre);
// x runs from the left end, 0 ≤ x ≤ L
package ana

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// CantileverUDL holds the solution of a cantilever with uniform load,
// fixed at the left end and free at the right end
//
//       w
//   ↓ ↓ ↓ ↓ ↓ ↓
//   ▓o============
//   ▓o          free
//
type CantileverUDL struct {

	// input
	L  float64 // length
	W  float64 // distributed load magnitude
	EI float64 // bending stiffness (for deflection; may be zero if unused)

	// derived
	Mmax float64 // support moment = -wL²/2
	Vmax float64 // support shear = wL
	Dmax float64 // free-end deflection = wL⁴/(8EI)
}

// Init initialises the solution
func (o *CantileverUDL) Init(L, w, EI float64) {
	o.L, o.W, o.EI = L, w, EI
	o.Mmax = -w * L * L / 2.0
	o.Vmax = w * L
	if EI > 0 {
		o.Dmax = w * math.Pow(L, 4) / (8.0 * EI)
	}
}

// Moment computes the bending moment at x
func (o *CantileverUDL) Moment(x float64) float64 {
	d := o.L - x
	return -o.W * d * d / 2.0
}

// Shear computes the shear force at x
func (o *CantileverUDL) Shear(x float64) float64 {
	return o.W * (o.L - x)
}

// SimpleUDL holds the solution of a simply supported beam with uniform load
//
//       w
//   ↓ ↓ ↓ ↓ ↓ ↓
//   o==========o
//   △          △
//
type SimpleUDL struct {

	// input
	L  float64 // length
	W  float64 // distributed load magnitude
	EI float64 // bending stiffness

	// derived
	Mmax float64 // midspan moment = wL²/8
	Vmax float64 // support shear = wL/2
	Dmax float64 // midspan deflection = 5wL⁴/(384EI)
}

// Init initialises the solution
func (o *SimpleUDL) Init(L, w, EI float64) {
	o.L, o.W, o.EI = L, w, EI
	o.Mmax = w * L * L / 8.0
	o.Vmax = w * L / 2.0
	if EI > 0 {
		o.Dmax = 5.0 * w * math.Pow(L, 4) / (384.0 * EI)
	}
}

// Moment computes the bending moment at x
func (o *SimpleUDL) Moment(x float64) float64 {
	return o.W * x * (o.L - x) / 2.0
}

// Shear computes the shear force at x
func (o *SimpleUDL) Shear(x float64) float64 {
	return o.W * (o.L/2.0 - x)
}

// FixedEndsUDL holds the solution of a beam with both ends fixed under
// uniform load
type FixedEndsUDL struct {

	// input
	L  float64 // length
	W  float64 // distributed load magnitude
	EI float64 // bending stiffness

	// derived
	Mend float64 // end moments = -wL²/12
	Mmid float64 // midspan moment = wL²/24
	Vmax float64 // support shear = wL/2
	Dmax float64 // midspan deflection = wL⁴/(384EI)
}

// Init initialises the solution
func (o *FixedEndsUDL) Init(L, w, EI float64) {
	o.L, o.W, o.EI = L, w, EI
	o.Mend = -w * L * L / 12.0
	o.Mmid = w * L * L / 24.0
	o.Vmax = w * L / 2.0
	if EI > 0 {
		o.Dmax = w * math.Pow(L, 4) / (384.0 * EI)
	}
}

// Moment computes the bending moment at x
func (o *FixedEndsUDL) Moment(x float64) float64 {
	return o.W*x*(o.L-x)/2.0 - o.W*o.L*o.L/12.0
}

// Shear computes the shear force at x
func (o *FixedEndsUDL) Shear(x float64) float64 {
	return o.W * (o.L/2.0 - x)
}

// ProppedUDL holds the solution of a propped cantilever under uniform load,
// fixed at the left end and pinned at the right end
type ProppedUDL struct {

	// input
	L  float64 // length
	W  float64 // distributed load magnitude
	EI float64 // bending stiffness

	// derived
	Mend float64 // fixed-end moment = -wL²/8
	Rfix float64 // fixed-end reaction = 5wL/8
	Rpin float64 // pinned-end reaction = 3wL/8
	Dmax float64 // maximum deflection = wL⁴/(185EI)
}

// Init initialises the solution
func (o *ProppedUDL) Init(L, w, EI float64) {
	o.L, o.W, o.EI = L, w, EI
	o.Mend = -w * L * L / 8.0
	o.Rfix = 5.0 * w * L / 8.0
	o.Rpin = 3.0 * w * L / 8.0
	if EI > 0 {
		o.Dmax = w * math.Pow(L, 4) / (185.0 * EI)
	}
}

// Moment computes the bending moment at x
func (o *ProppedUDL) Moment(x float64) float64 {
	return o.Mend + o.Rfix*x - o.W*x*x/2.0
}

// Shear computes the shear force at x
func (o *ProppedUDL) Shear(x float64) float64 {
	return o.Rfix - o.W*x
}

// Report returns a one-line summary of extreme values
func Report(name string, Mmax, Vmax, Dmax float64) string {
	return io.Sf("%-16s Mmax=%-12g Vmax=%-12g Dmax=%g", name, Mmax, Vmax, Dmax)
}
