// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinetics implements the gas-phase rate-of-progress engine
// (C4-C7), its reduced-mask transformation (C8), the adaptive
// reaction activator (C9) and the quasi-steady-state closure (C10).
package kinetics

// Kind is the closed set of reaction tags supported by this engine
// (spec.md §3, Design Note "Heterogeneous reaction tags"). Per-kind
// data lives in separate parallel arrays indexed by a per-kind local
// index, avoiding virtual dispatch in the hot updateROP loop.
type Kind int

const (
	Elementary Kind = iota
	ThreeBody
	FalloffRxn
	ChemActRxn
	PLOG
	Chebyshev
)

func (k Kind) String() string {
	switch k {
	case Elementary:
		return "Elementary"
	case ThreeBody:
		return "ThreeBody"
	case FalloffRxn:
		return "Falloff"
	case ChemActRxn:
		return "ChemicallyActivated"
	case PLOG:
		return "PLOG"
	case Chebyshev:
		return "Chebyshev"
	}
	return "Unknown"
}

// StoichEntry is one (species, stoichiometric coefficient) pair on
// either side of a reaction.
type StoichEntry struct {
	Species int
	Coeff   float64
}

// ThirdBodyEff holds the sparse per-species efficiency overrides and
// the default efficiency used by C5 for three-body and falloff/chemact
// reactions.
type ThirdBodyEff struct {
	Default float64
	Eff     map[int]float64 // species index -> efficiency override
}

// FalloffKind selects the blending function applied by C4's
// pr_to_falloff (spec.md §4.4).
type FalloffKind int

const (
	Lindemann FalloffKind = iota
	Troe
	SRI
)

// FalloffParams carries the blending-function parameters for
// Falloff/ChemAct reactions.
type FalloffParams struct {
	Kind FalloffKind
	// Troe
	A, T3, T1, T2 float64
	// SRI
	SA, SB, SC, SD, SE float64
}

// PlogEntry is one (pressure, Arrhenius) pair of a PLOG rate expression.
type PlogEntry struct {
	P   float64 // Pa
	Arr Arrhenius
}

// ChebyshevData holds a bivariate Chebyshev rate expansion over
// (Tmin,Tmax) and (Pmin,Pmax), spec.md §3/§4.4.
type ChebyshevData struct {
	Tmin, Tmax float64
	Pmin, Pmax float64
	Coeffs     [][]float64 // [nT][nP]
}

// Reaction is the tagged-union reaction record from spec.md §3.
type Reaction struct {
	Kind       Kind
	Reversible bool
	Reactants  []StoichEntry
	Products   []StoichEntry // always the full product list
	ThirdBody  *ThirdBodyEff // non-nil for ThreeBody/Falloff/ChemAct

	Arr    Arrhenius // elementary rate, or the high-pressure limit for Falloff/ChemAct
	ArrLow Arrhenius // low-pressure limit, required for Falloff/ChemAct

	Falloff FalloffParams
	Plog    []PlogEntry
	Cheb    ChebyshevData
}
