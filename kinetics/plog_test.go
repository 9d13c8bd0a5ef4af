// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"math"
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
)

func plogEntries() []PlogEntry {
	return []PlogEntry{
		{P: 1e4, Arr: Arrhenius{A: 1e10, B: 0, Ea: 0}},
		{P: 1e6, Arr: Arrhenius{A: 1e13, B: 0, Ea: 0}},
	}
}

// PLOG below the lowest pressure node uses that node's Arrhenius rate
// directly (spec.md GLOSSARY "PLOG").
func TestPlogBelowRange(t *testing.T) {
	entries := plogEntries()
	T, lnT := 1000.0, math.Log(1000.0)
	got := evalPlog(entries, T, lnT, 1e3)
	want := entries[0].Arr.Eval(T, lnT)
	assert.RelScalar(t, "PLOG below range", 1e-12, got, want)
}

// PLOG above the highest pressure node uses that node's rate directly.
func TestPlogAboveRange(t *testing.T) {
	entries := plogEntries()
	T, lnT := 1000.0, math.Log(1000.0)
	got := evalPlog(entries, T, lnT, 1e8)
	want := entries[1].Arr.Eval(T, lnT)
	assert.RelScalar(t, "PLOG above range", 1e-12, got, want)
}

// At the geometric mean pressure, log-linear interpolation lands
// exactly halfway between the two bracketing log(k) values.
func TestPlogInterpolation(t *testing.T) {
	entries := plogEntries()
	T, lnT := 1000.0, math.Log(1000.0)
	Pmid := math.Sqrt(entries[0].P * entries[1].P)
	got := evalPlog(entries, T, lnT, Pmid)

	k1 := entries[0].Arr.Eval(T, lnT)
	k2 := entries[1].Arr.Eval(T, lnT)
	want := math.Exp(0.5 * (math.Log(k1) + math.Log(k2)))
	assert.RelScalar(t, "PLOG midpoint", 1e-9, got, want)
}

func TestPlogEmpty(t *testing.T) {
	got := evalPlog(nil, 1000, math.Log(1000), 1e5)
	assert.Scalar(t, "PLOG empty table", 0, got, 0)
}
