// Copyright 2026 The Gobmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input model read from a (.json) model file
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Member defines one straight structural member carrying a uniformly
// distributed load. Members are an immutable snapshot owned by the caller;
// the analysis only reads them.
//
//            w [force/length]
//      ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓
//      o=======================o
//      A                       B
//
type Member struct {
	Tag    int       `json:"tag"`    // identifier
	A      []float64 `json:"a"`      // [3] first endpoint
	B      []float64 `json:"b"`      // [3] second endpoint
	Udl    float64   `json:"udl"`    // distributed load magnitude (≥ 0, acting downward)
	LodFcn string    `json:"lodfcn"` // optional name of load factor function of time
}

// Ok tells whether the member has valid geometry: both endpoints present
// and a length above tol
func (o *Member) Ok(tol float64) bool {
	if len(o.A) != 3 || len(o.B) != 3 {
		return false
	}
	var sum float64
	for j := 0; j < 3; j++ {
		d := o.B[j] - o.A[j]
		sum += d * d
	}
	return math.Sqrt(sum) > tol
}

// CalcLoad returns the distributed load magnitude at given time, applying the
// named load factor function, if any
func (o *Member) CalcLoad(time float64, fcns FuncsData) (w float64, err error) {
	w = o.Udl
	if o.LodFcn == "" {
		return
	}
	fcn, err := fcns.Get(o.LodFcn)
	if err != nil {
		return 0, chk.Err("member %d: %v", o.Tag, err)
	}
	w *= fcn.F(time, nil)
	return
}

// Support associates a position with a support condition
type Support struct {
	At   []float64 `json:"at"`   // [3] position
	Type string    `json:"type"` // "fixed", "pinned" or "free"
}

// Model holds the complete input for one analysis run: geometry, loads,
// support registry and solver parameters
type Model struct {

	// essential
	Desc     string     `json:"desc"`     // description of model
	Members  []*Member  `json:"members"`  // all members
	Supports []*Support `json:"supports"` // support registry

	// optional
	Time      float64   `json:"time"`      // time at which load functions are evaluated
	Functions FuncsData `json:"functions"` // load factor functions

	// parameters; zero values are replaced by defaults
	PosTol    float64 `json:"postol"`    // tolerance for endpoint matching
	SupTol    float64 `json:"suptol"`    // tolerance for support lookup
	QryTol    float64 `json:"qrytol"`    // distance threshold for field queries
	Nstations int     `json:"nstations"` // number of sampling stations per span
	ScaleCoef float64 `json:"scalecoef"` // diagram amplitude as fraction of average span length
}

// default parameters
const (
	PosTolDefault    = 0.01
	SupTolDefault    = 0.15
	QryTolDefault    = 0.5
	NstationsDefault = 21
	ScaleCoefDefault = 0.25
)

// SetDefaults replaces zero-valued parameters by default values
func (o *Model) SetDefaults() {
	if o.PosTol <= 0 {
		o.PosTol = PosTolDefault
	}
	if o.SupTol <= 0 {
		o.SupTol = SupTolDefault
	}
	if o.QryTol <= 0 {
		o.QryTol = QryTolDefault
	}
	if o.Nstations < 2 {
		o.Nstations = NstationsDefault
	}
	if o.ScaleCoef <= 0 {
		o.ScaleCoef = ScaleCoefDefault
	}
}

// CalcLoads resolves the distributed load magnitude of every member at the
// model time. The returned slice is aligned with Members
func (o *Model) CalcLoads() (ws []float64, err error) {
	ws = make([]float64, len(o.Members))
	for i, m := range o.Members {
		ws[i], err = m.CalcLoad(o.Time, o.Functions)
		if err != nil {
			return nil, err
		}
	}
	return
}

// ReadModel reads a model from a JSON file and sets default parameters
func ReadModel(fnamepath string) (o *Model, err error) {
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fnamepath, err)
	}
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fnamepath, err)
	}
	o.SetDefaults()
	return
}

// String returns a short description of the model
func (o *Model) String() string {
	return io.Sf("%q: %d members, %d supports, %d functions", o.Desc, len(o.Members), len(o.Supports), len(o.Functions))
}
