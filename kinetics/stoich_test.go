// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
)

// species order: 0=H2 1=OH 2=H2O 3=H
func massBalancedReaction() Reaction {
	return Reaction{
		Kind:       Elementary,
		Reversible: true,
		Reactants:  []StoichEntry{{Species: 0, Coeff: 1}, {Species: 1, Coeff: 1}},
		Products:   []StoichEntry{{Species: 2, Coeff: 1}, {Species: 3, Coeff: 1}},
		Arr:        Arrhenius{A: 1, B: 0, Ea: 0},
	}
}

// Testable property 5: stoichiometry conservation.
func TestStoichMassConservation(t *testing.T) {
	W := []float64{2.01588, 17.00734, 18.01528, 1.00794}
	s := NewStoichiometry([]Reaction{massBalancedReaction()}, 4)
	delta := s.CheckMassConservation(W)
	assert.Scalar(t, "mass balance", 1e-12, delta[0], 0)
}

func TestStoichConcentrationProducts(t *testing.T) {
	s := NewStoichiometry([]Reaction{massBalancedReaction()}, 4)
	c := []float64{2, 3, 5, 7}
	rate := []float64{10}
	s.MultiplyReactantProducts(rate, c)
	assert.Scalar(t, "reactant conc product", 1e-12, rate[0], 10*2*3)
}

func TestStoichDeltaN(t *testing.T) {
	s := NewStoichiometry([]Reaction{massBalancedReaction()}, 4)
	dn := s.DeltaN()
	assert.Scalar(t, "delta n", 1e-12, dn[0], 0) // 2 reactants -> 2 products
}
