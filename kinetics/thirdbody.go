// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/WangHan-combustion/cantera/cherr"

// ThirdBodySet implements C5: for every three-body or falloff/chemact
// reaction it holds the sparse (species, efficiency) overrides plus a
// default efficiency, and produces the enhanced "[M]" concentration as
// a weighted sum over actual species concentrations.
type ThirdBodySet struct {
	globalIdx []int // local -> global reaction index
	effs      []*ThirdBodyEff
	m         []float64 // dense [M] scratch, length = local count
}

// NewThirdBodySet scans reactions needing a third-body concentration:
// ThreeBody, Falloff and ChemAct all carry one (spec.md §3 invariant
// "Every reaction with a falloff/chemact tag has both low- and
// high-pressure Arrhenius rates present" implies a bath gas too).
func NewThirdBodySet(reactions []Reaction, nSpecies int, skipUndeclared bool) (*ThirdBodySet, error) {
	ts := &ThirdBodySet{}
	for i, r := range reactions {
		if r.Kind != ThreeBody && r.Kind != FalloffRxn && r.Kind != ChemActRxn {
			continue
		}
		eff := r.ThirdBody
		if eff == nil {
			eff = &ThirdBodyEff{Default: 1.0}
		}
		if !skipUndeclared {
			for sp := range eff.Eff {
				if sp < 0 || sp >= nSpecies {
					return nil, cherr.New(cherr.UndeclaredSpecies, "kinetics.NewThirdBodySet", "reaction %d: third-body species index %d is out of range", i, sp)
				}
			}
		}
		ts.globalIdx = append(ts.globalIdx, i)
		ts.effs = append(ts.effs, eff)
	}
	ts.m = make([]float64, len(ts.globalIdx))
	return ts, nil
}

// Grow appends one more reaction's third-body data at globalIdx, if
// any, enforcing the same skip_undeclared_third_bodies policy as
// NewThirdBodySet (spec.md §6/§7).
func (ts *ThirdBodySet) Grow(r Reaction, globalIdx, nSpecies int, skipUndeclared bool) error {
	if r.Kind != ThreeBody && r.Kind != FalloffRxn && r.Kind != ChemActRxn {
		return nil
	}
	eff := r.ThirdBody
	if eff == nil {
		eff = &ThirdBodyEff{Default: 1.0}
	}
	if !skipUndeclared {
		for sp := range eff.Eff {
			if sp < 0 || sp >= nSpecies {
				return cherr.New(cherr.UndeclaredSpecies, "kinetics.ThirdBodySet.Grow", "reaction %d: third-body species index %d is out of range", globalIdx, sp)
			}
		}
	}
	ts.globalIdx = append(ts.globalIdx, globalIdx)
	ts.effs = append(ts.effs, eff)
	ts.m = append(ts.m, 0)
	return nil
}

// Len returns the number of third-body reactions.
func (ts *ThirdBodySet) Len() int { return len(ts.globalIdx) }

// GlobalIndex returns the global reaction index of local index i.
func (ts *ThirdBodySet) GlobalIndex(i int) int { return ts.globalIdx[i] }

// Update recomputes [M]_i = Σ_k ε_{i,k}·c_k for every local reaction i
// given the current species concentration vector c.
func (ts *ThirdBodySet) Update(c []float64) {
	for i, eff := range ts.effs {
		sum := 0.0
		for k, ck := range c {
			e := eff.Default
			if v, ok := eff.Eff[k]; ok {
				e = v
			}
			sum += e * ck
		}
		ts.m[i] = sum
	}
}

// M returns the dense [M] vector (read-only), indexed locally.
func (ts *ThirdBodySet) M() []float64 { return ts.m }

// ApplyToRate multiplies rate[globalIdx] *= [M] for every local
// reaction whose kind is exactly ThreeBody -- falloff/chemact
// reactions apply [M] inside the falloff-blending pipeline instead
// (spec.md §4.7), so this helper takes an explicit filter.
func (ts *ThirdBodySet) ApplyToRate(rate []float64, kindOf func(global int) Kind, only Kind) {
	for i, g := range ts.globalIdx {
		if kindOf(g) != only {
			continue
		}
		rate[g] *= ts.m[i]
	}
}
