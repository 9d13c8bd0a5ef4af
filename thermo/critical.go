// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "math"

// BuiltinCriticalProps is the hard-coded critical-property table keyed
// by species name (spec.md §6: "currently a built-in hard-coded table
// keyed by species name -- open question 9.3"). Units: Tc [K], Pc [Pa],
// Vc [m3/kmol], dimensionless Zc/Omega.
//
// NOTE (spec.md §9 Open Question 9.1): the OH, O, H, H2O2 and HO2 rows
// below are copied verbatim from H2O/O2/H2 in the reference mechanism
// this table was distilled from. That is almost certainly a placeholder
// and is reproduced as-is, flagged, rather than silently "fixed".
var BuiltinCriticalProps = map[string]CriticalProps{
	"H2":  {Tc: 33.0, Pc: 1.284e6, Vc: 0.0650, Zc: 0.305, Omega: -0.216, Sigma: 2.92, Mu: 0.0},
	"O2":  {Tc: 154.6, Pc: 5.043e6, Vc: 0.0734, Zc: 0.288, Omega: 0.022, Sigma: 3.46, Mu: 0.0},
	"N2":  {Tc: 126.2, Pc: 3.396e6, Vc: 0.0895, Zc: 0.290, Omega: 0.037, Sigma: 3.62, Mu: 0.0},
	"H2O": {Tc: 647.1, Pc: 2.206e7, Vc: 0.0559, Zc: 0.229, Omega: 0.344, Sigma: 2.60, Mu: 1.85},
	"CO":  {Tc: 132.9, Pc: 3.496e6, Vc: 0.0930, Zc: 0.295, Omega: 0.066, Sigma: 3.65, Mu: 0.0},
	"CO2": {Tc: 304.1, Pc: 7.38e6, Vc: 0.0940, Zc: 0.274, Omega: 0.239, Sigma: 3.76, Mu: 0.0},
	"CH4": {Tc: 190.6, Pc: 4.60e6, Vc: 0.0990, Zc: 0.286, Omega: 0.011, Sigma: 3.75, Mu: 0.0},

	// placeholders copied from H2O/O2/H2 -- see Open Question 9.1 above.
	"OH":   {Tc: 647.1, Pc: 2.206e7, Vc: 0.0559, Zc: 0.229, Omega: 0.344, Sigma: 2.60, Mu: 1.85},
	"O":    {Tc: 154.6, Pc: 5.043e6, Vc: 0.0734, Zc: 0.288, Omega: 0.022, Sigma: 3.46, Mu: 0.0},
	"H":    {Tc: 33.0, Pc: 1.284e6, Vc: 0.0650, Zc: 0.305, Omega: -0.216, Sigma: 2.92, Mu: 0.0},
	"H2O2": {Tc: 647.1, Pc: 2.206e7, Vc: 0.0559, Zc: 0.229, Omega: 0.344, Sigma: 2.60, Mu: 1.85},
	"HO2":  {Tc: 154.6, Pc: 5.043e6, Vc: 0.0734, Zc: 0.288, Omega: 0.022, Sigma: 3.46, Mu: 0.0},
}

// defaultKij is the fixed implementation constant from spec.md §4.2 /
// §9 "Design Notes": 0.1 off-diagonal, 0 on the diagonal.
const defaultKij = 0.1

// BinaryKijTable is a configurable override for the binary interaction
// parameter k_ij, keyed by ordered species-name pairs. Design Note
// "Binary interaction k_ij... make it a configurable table keyed by
// species-pair names" (spec.md §9).
type BinaryKijTable struct {
	overrides map[[2]string]float64
}

// NewBinaryKijTable returns an empty override table; Kij falls back to
// defaultKij for any pair not explicitly set.
func NewBinaryKijTable() *BinaryKijTable {
	return &BinaryKijTable{overrides: make(map[[2]string]float64)}
}

// Set installs k_ij = k_ji = v for the named species pair.
func (t *BinaryKijTable) Set(ni, nj string, v float64) {
	t.overrides[[2]string{ni, nj}] = v
	t.overrides[[2]string{nj, ni}] = v
}

// Kij returns the binary interaction parameter for (i, j); 0 when i==j,
// an override when present, otherwise defaultKij.
func (t *BinaryKijTable) Kij(ni, nj string) float64 {
	if ni == nj {
		return 0
	}
	if t == nil || t.overrides == nil {
		return defaultKij
	}
	if v, ok := t.overrides[[2]string{ni, nj}]; ok {
		return v
	}
	return defaultKij
}

// BinaryMixing holds the per-pair Peng-Robinson mixing quantities
// derived in spec.md §4.2, for every (i,j) pair over a species list.
type BinaryMixing struct {
	n    int
	Tcij [][]float64
	Vcij [][]float64
	Zcij [][]float64
	Pcij [][]float64
	Wij  [][]float64 // omega_ij
	Aij  [][]float64 // a_ij = 0.457236*(R*Tc_ij)^2/Pc_ij
	Cij  [][]float64 // c_ij = 0.37464 + 1.54226*omega_ij - 0.26992*omega_ij^2
	Bi   []float64   // b_i = 0.077796*R*Tc_i/Pc_i
}

// NewBinaryMixing computes the full pairwise mixing-rule table for
// species, using kij for the binary interaction parameter.
func NewBinaryMixing(species []Species, kij *BinaryKijTable) *BinaryMixing {
	n := len(species)
	m := &BinaryMixing{
		n:    n,
		Tcij: alloc2(n, n),
		Vcij: alloc2(n, n),
		Zcij: alloc2(n, n),
		Pcij: alloc2(n, n),
		Wij:  alloc2(n, n),
		Aij:  alloc2(n, n),
		Cij:  alloc2(n, n),
		Bi:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		ci := species[i].Crit
		m.Bi[i] = 0.077796 * R * ci.Tc / ci.Pc
	}
	for i := 0; i < n; i++ {
		ci := species[i].Crit
		for j := 0; j < n; j++ {
			cj := species[j].Crit
			k := kij.Kij(species[i].Name, species[j].Name)
			m.Tcij[i][j] = math.Sqrt(ci.Tc*cj.Tc) * (1 - k)
			vc13 := math.Cbrt(ci.Vc) + math.Cbrt(cj.Vc)
			m.Vcij[i][j] = math.Pow(vc13/2, 3)
			m.Zcij[i][j] = 0.5 * (ci.Zc + cj.Zc)
			m.Pcij[i][j] = m.Zcij[i][j] * R * m.Tcij[i][j] / m.Vcij[i][j]
			m.Wij[i][j] = 0.5 * (ci.Omega + cj.Omega)
			m.Aij[i][j] = 0.457236 * (R * m.Tcij[i][j]) * (R * m.Tcij[i][j]) / m.Pcij[i][j]
			w := m.Wij[i][j]
			m.Cij[i][j] = 0.37464 + 1.54226*w - 0.26992*w*w
		}
	}
	return m
}

func alloc2(m, n int) [][]float64 {
	a := make([][]float64, m)
	buf := make([]float64, m*n)
	for i := range a {
		a[i] = buf[i*n : (i+1)*n]
	}
	return a
}
