// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "math"

// RefTable implements C1: it evaluates h⁰/RT, s⁰/R, cp⁰/R and the
// derived g⁰/RT = h⁰/RT − s⁰/R for every species at a given T, caching
// the result under exact T equality so repeated queries at the same
// temperature (the common case inside a single updateROP pass) do not
// re-evaluate the polynomials.
type RefTable struct {
	species []Species

	// cache, valid iff lastT has been set at least once and equals the
	// most recently requested T exactly.
	haveCache bool
	lastT     float64
	hrt       []float64
	sr        []float64
	cpr       []float64
	grt       []float64
}

// NewRefTable builds a reference-thermo table over species.
func NewRefTable(species []Species) *RefTable {
	n := len(species)
	return &RefTable{
		species: species,
		hrt:     make([]float64, n),
		sr:      make([]float64, n),
		cpr:     make([]float64, n),
		grt:     make([]float64, n),
	}
}

// update recomputes the cached vectors at T, unless T is identical to
// the last cached T.
func (rt *RefTable) update(T float64) {
	if rt.haveCache && T == rt.lastT {
		return
	}
	lnT := math.Log(T)
	for i, s := range rt.species {
		p := s.pick(T)
		rt.hrt[i] = p.H_RT(T)
		rt.sr[i] = p.S_R(lnT, T)
		rt.cpr[i] = p.Cp_R(T)
		rt.grt[i] = rt.hrt[i] - rt.sr[i]
	}
	rt.haveCache = true
	rt.lastT = T
}

// H_RT returns h⁰/RT for every species at T.
func (rt *RefTable) H_RT(T float64) []float64 { rt.update(T); return rt.hrt }

// S_R returns s⁰/R for every species at T.
func (rt *RefTable) S_R(T float64) []float64 { rt.update(T); return rt.sr }

// Cp_R returns cp⁰/R for every species at T.
func (rt *RefTable) Cp_R(T float64) []float64 { rt.update(T); return rt.cpr }

// G_RT returns g⁰/RT = h⁰/RT − s⁰/R for every species at T.
func (rt *RefTable) G_RT(T float64) []float64 { rt.update(T); return rt.grt }
