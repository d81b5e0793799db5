// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/daveh07/gobmd/inp"
)

// SupportCondition defines the restraint at a chain extremity
type SupportCondition int

// supported conditions
const (
	Free   SupportCondition = iota // no restraint
	Pinned                         // translation restrained
	Fixed                          // translation and rotation restrained
)

// String returns the name of the support condition
func (o SupportCondition) String() string {
	switch o {
	case Pinned:
		return "pinned"
	case Fixed:
		return "fixed"
	}
	return "free"
}

// SupportFromString converts a registry type name into a SupportCondition.
// Unknown names map to Free
func SupportFromString(name string) SupportCondition {
	switch name {
	case "pinned":
		return Pinned
	case "fixed":
		return Fixed
	}
	return Free
}

// Classify returns the support condition at a chain extremity by scanning
// the support registry for records within tol of x. Fixed wins over Pinned
// when both lie within tolerance; with no match the extremity is Free.
// Interior joints are never classified: they are continuous by construction.
func Classify(x []float64, supports []*inp.Support, tol float64) SupportCondition {
	res := Free
	for _, s := range supports {
		if len(s.At) != 3 {
			continue
		}
		if dist(s.At, x) <= tol {
			switch SupportFromString(s.Type) {
			case Fixed:
				return Fixed
			case Pinned:
				res = Pinned
			}
		}
	}
	return res
}
