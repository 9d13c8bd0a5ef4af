// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
	"github.com/WangHan-combustion/cantera/thermo"
)

// species order: 0=A 1=B 2=X(QSS) 3=C 4=D
func qssPhase(t *testing.T) *thermo.Phase {
	t.Helper()
	mk := func(name string, w float64) thermo.Species {
		return thermo.Species{
			Name: name, W: w, Tmid: 1000,
			Low:  thermo.NASA7{A: [7]float64{3, 0, 0, 0, 0, -900, 0}},
			High: thermo.NASA7{A: [7]float64{3, 0, 0, 0, 0, -900, 0}},
			Crit: thermo.CriticalProps{Tc: 300, Pc: 5e6, Vc: 0.0001, Zc: 0.3},
		}
	}
	species := []thermo.Species{mk("A", 10), mk("B", 20), mk("X", 15), mk("C", 12), mk("D", 18)}
	ph := thermo.NewPhase(species, 1e5, 0, nil)
	Y := []float64{0.2, 0.3, 0.01, 0.25, 0.24}
	if err := ph.SetState_TRY(1200, 0.6, Y); err != nil {
		t.Fatal(err)
	}
	return ph
}

// S6: A+B->X (k1), X->C+D (k2), X declared QSS; net production of X
// through ropnet must vanish.
func TestQSSSteadyStateResidual(t *testing.T) {
	ph := qssPhase(t)
	r1 := Reaction{
		Kind:      Elementary,
		Reactants: []StoichEntry{{Species: 0, Coeff: 1}, {Species: 1, Coeff: 1}},
		Products:  []StoichEntry{{Species: 2, Coeff: 1}},
		Arr:       Arrhenius{A: 5e6, B: 0, Ea: 0},
	}
	r2 := Reaction{
		Kind:      Elementary,
		Reactants: []StoichEntry{{Species: 2, Coeff: 1}},
		Products:  []StoichEntry{{Species: 3, Coeff: 1}, {Species: 4, Coeff: 1}},
		Arr:       Arrhenius{A: 8e7, B: 0, Ea: 0},
	}
	k, err := NewKineticsFromReactions(ph, []Reaction{r1, r2})
	if err != nil {
		t.Fatal(err)
	}
	qs, err := NewQSSSet(k, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	if err := qs.Resolve(k, DefaultActivatorConfig()); err != nil {
		t.Fatal(err)
	}

	net := k.NetROP()
	residual := net[0] - net[1] // X produced by r1, consumed by r2
	scale := net[0]
	if neg := -net[0]; neg > scale {
		scale = neg
	}
	assert.Scalar(t, "QSS residual for X", 1e-9*scale, residual, 0)
}

// The solved QSS concentration must not depend on the arbitrary
// relative_qss_density pin scale, since every A/b entry divides it
// back out (spec.md §6).
func TestQSSResolveIndependentOfPinScale(t *testing.T) {
	ph := qssPhase(t)
	r1 := Reaction{
		Kind:      Elementary,
		Reactants: []StoichEntry{{Species: 0, Coeff: 1}, {Species: 1, Coeff: 1}},
		Products:  []StoichEntry{{Species: 2, Coeff: 1}},
		Arr:       Arrhenius{A: 5e6, B: 0, Ea: 0},
	}
	r2 := Reaction{
		Kind:      Elementary,
		Reactants: []StoichEntry{{Species: 2, Coeff: 1}},
		Products:  []StoichEntry{{Species: 3, Coeff: 1}, {Species: 4, Coeff: 1}},
		Arr:       Arrhenius{A: 8e7, B: 0, Ea: 0},
	}

	resolveWith := func(density float64) float64 {
		k, err := NewKineticsFromReactions(ph, []Reaction{r1, r2})
		if err != nil {
			t.Fatal(err)
		}
		qs, err := NewQSSSet(k, []int{2})
		if err != nil {
			t.Fatal(err)
		}
		cfg := ActivatorConfig{RelativeQSSDensity: density}
		if err := qs.Resolve(k, cfg); err != nil {
			t.Fatal(err)
		}
		return qs.Concentrations()[2]
	}

	cSmall := resolveWith(1e-12)
	cLarge := resolveWith(1e-3)
	assert.RelScalar(t, "QSS concentration independent of pin scale", 1e-9, cLarge, cSmall)
}
