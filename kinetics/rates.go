// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"math"

	"github.com/WangHan-combustion/cantera/thermo"
)

// Arrhenius is the modified Arrhenius rate expression
//
//	k(T) = A * T^B * exp(-Ea/(R*T))
//
// with Ea expressed in J/kmol (consistent with thermo.R), matching
// spec.md §3's "tagged... each carrying its specific rate parameters".
type Arrhenius struct {
	A, B, Ea float64
}

// Eval evaluates k(T) given T and ln(T) (precomputed by the caller to
// avoid repeated math.Log calls across a dense rate vector, per
// spec.md §4.4's update contract).
func (a Arrhenius) Eval(T, lnT float64) float64 {
	return a.A * math.Exp(a.B*lnT-a.Ea/(thermo.R*T))
}

// RateLib implements C4: it evaluates all per-kind rate expressions
// into dense per-reaction vectors k_high (which also holds the
// elementary, PLOG and Chebyshev rates) and k_low given T, lnT and
// (for PLOG/Chebyshev) the current pressure.
type RateLib struct {
	reactions []Reaction

	// per-kind local index lists (global reaction index -> ...)
	elemIdx []int // Elementary + the high-pressure limit for Falloff/ChemAct share this path for KHigh
	plogIdx []int
	chebIdx []int

	// dense outputs, length Nr
	kHigh []float64 // Arrhenius high / elementary rate
	kLow  []float64 // Arrhenius low (falloff/chemact only, 0 elsewhere)

	lastT    float64
	lastP    float64
	lastTP   float64 // T at which the PLOG/Chebyshev pass last ran
	haveT    bool
	haveP    bool
}

// NewRateLib builds a rate library over reactions.
func NewRateLib(reactions []Reaction) *RateLib {
	rl := &RateLib{
		reactions: reactions,
		kHigh:     make([]float64, len(reactions)),
		kLow:      make([]float64, len(reactions)),
	}
	for i, r := range reactions {
		switch r.Kind {
		case PLOG:
			rl.plogIdx = append(rl.plogIdx, i)
		case Chebyshev:
			rl.chebIdx = append(rl.chebIdx, i)
		default:
			rl.elemIdx = append(rl.elemIdx, i)
		}
	}
	return rl
}

// Grow appends room for one more reaction (called by Kinetics.AddReaction).
func (rl *RateLib) Grow(r Reaction, idx int) {
	rl.reactions = append(rl.reactions, r)
	rl.kHigh = append(rl.kHigh, 0)
	rl.kLow = append(rl.kLow, 0)
	switch r.Kind {
	case PLOG:
		rl.plogIdx = append(rl.plogIdx, idx)
	case Chebyshev:
		rl.chebIdx = append(rl.chebIdx, idx)
	default:
		rl.elemIdx = append(rl.elemIdx, idx)
	}
	rl.haveT, rl.haveP = false, false
}

// UpdateT refreshes every T-dependent (but not P-dependent) rate:
// elementary/three-body/falloff/chemact Arrhenius pairs.
func (rl *RateLib) UpdateT(T float64) {
	if rl.haveT && T == rl.lastT {
		return
	}
	lnT := math.Log(T)
	for _, i := range rl.elemIdx {
		r := rl.reactions[i]
		rl.kHigh[i] = r.Arr.Eval(T, lnT)
		if r.Kind == FalloffRxn || r.Kind == ChemActRxn {
			rl.kLow[i] = r.ArrLow.Eval(T, lnT)
		}
	}
	rl.lastT, rl.haveT = T, true
}

// UpdateTP refreshes PLOG and Chebyshev rates, which depend on both T
// and P (spec.md §4.7 "PLOG and Chebyshev are P-dependent and refresh
// on P change too").
func (rl *RateLib) UpdateTP(T, P float64) {
	rl.UpdateT(T)
	if rl.haveP && T == rl.lastTP && P == rl.lastP {
		return
	}
	lnT := math.Log(T)
	for _, i := range rl.plogIdx {
		rl.kHigh[i] = evalPlog(rl.reactions[i].Plog, T, lnT, P)
	}
	for _, i := range rl.chebIdx {
		rl.kHigh[i] = evalChebyshev(rl.reactions[i].Cheb, T, P)
	}
	rl.lastP, rl.lastTP, rl.haveP = P, T, true
}

// KHigh returns the dense k_high/elementary rate vector (read-only).
func (rl *RateLib) KHigh() []float64 { return rl.kHigh }

// KLow returns the dense k_low vector (read-only; zero for non-falloff/chemact).
func (rl *RateLib) KLow() []float64 { return rl.kLow }
