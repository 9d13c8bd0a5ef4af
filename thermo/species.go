// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thermo implements the blended ideal-gas/Peng-Robinson equation
// of state and the species thermodynamic reference tables that feed it.
package thermo

import (
	"github.com/WangHan-combustion/cantera/cherr"
)

// R is the universal gas constant in J/(kmol.K), matching the mixed
// mass/mole unit convention used throughout this package.
const R = 8314.462618

// NASA7 holds a 7-coefficient NASA polynomial piece valid over one
// temperature range.
type NASA7 struct {
	A [7]float64 // a1..a7
}

// Cp_R evaluates cp⁰/R = a1 + a2*T + a3*T² + a4*T³ + a5*T⁴.
func (p NASA7) Cp_R(T float64) float64 {
	return p.A[0] + T*(p.A[1]+T*(p.A[2]+T*(p.A[3]+T*p.A[4])))
}

// H_RT evaluates h⁰/RT = a1 + a2*T/2 + a3*T²/3 + a4*T³/4 + a5*T⁴/5 + a6/T.
func (p NASA7) H_RT(T float64) float64 {
	return p.A[0] + T*(p.A[1]/2+T*(p.A[2]/3+T*(p.A[3]/4+T*p.A[4]/5))) + p.A[5]/T
}

// S_R evaluates s⁰/R = a1*lnT + a2*T + a3*T²/2 + a4*T³/3 + a5*T⁴/4 + a7.
func (p NASA7) S_R(lnT, T float64) float64 {
	return p.A[0]*lnT + T*(p.A[1]+T*(p.A[2]/2+T*(p.A[3]/3+T*p.A[4]/4))) + p.A[6]
}

// CriticalProps holds the per-species tuple of critical and acentric
// properties used by the Peng-Robinson departure function.
//
// NOTE: per spec.md Open Question 9.1, several OH/O/H/H2O2/HO2 entries
// in the built-in table (see critical.go) appear copied from other
// species. This is reproduced verbatim and flagged, not corrected.
type CriticalProps struct {
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	Vc    float64 // critical molar volume [m3/kmol]
	Zc    float64 // critical compressibility factor
	Omega float64 // acentric factor
	Sigma float64 // Lennard-Jones collision diameter [Å] (transport placeholder)
	Mu    float64 // dipole moment [Debye] (transport placeholder)
}

// Species is one phase constituent: its molecular weight, its NASA
// thermodynamic polynomial, and its critical-property tuple.
type Species struct {
	Name  string
	W     float64 // molecular weight [kg/kmol]
	Tmid  float64 // NASA polynomial switch temperature [K]
	Low   NASA7   // valid for T < Tmid
	High  NASA7   // valid for T >= Tmid
	Crit  CriticalProps
}

// pick returns the NASA7 piece valid at T.
func (s Species) pick(T float64) NASA7 {
	if T < s.Tmid {
		return s.Low
	}
	return s.High
}

// Index returns the position of name within species, or an error of
// kind UndeclaredSpecies.
func Index(species []Species, name string) (int, error) {
	for i, s := range species {
		if s.Name == name {
			return i, nil
		}
	}
	return -1, cherr.New(cherr.UndeclaredSpecies, "thermo.Index", "species %q is not declared in this phase", name)
}
