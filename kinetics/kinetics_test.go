// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"math"
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
	"github.com/WangHan-combustion/cantera/thermo"
)

// species order: 0=H2 1=OH 2=H2O 3=H
func demoPhase(t *testing.T) *thermo.Phase {
	t.Helper()
	species := []thermo.Species{
		{Name: "H2", W: 2.01588, Tmid: 1000,
			Low:  thermo.NASA7{A: [7]float64{3.3, 0, 0, 0, 0, -950, -3.2}},
			High: thermo.NASA7{A: [7]float64{2.9, 0, 0, 0, 0, -800, -1.4}},
			Crit: thermo.BuiltinCriticalProps["H2"]},
		{Name: "OH", W: 17.00734, Tmid: 1000,
			Low:  thermo.NASA7{A: [7]float64{3.4, 0, 0, 0, 0, 3500, 2.0}},
			High: thermo.NASA7{A: [7]float64{3.1, 0, 0, 0, 0, 3600, 4.4}},
			Crit: thermo.BuiltinCriticalProps["OH"]},
		{Name: "H2O", W: 18.01528, Tmid: 1000,
			Low:  thermo.NASA7{A: [7]float64{4.2, 0, 0, 0, 0, -30280, -0.8}},
			High: thermo.NASA7{A: [7]float64{2.7, 0, 0, 0, 0, -29900, 6.6}},
			Crit: thermo.BuiltinCriticalProps["H2O"]},
		{Name: "H", W: 1.00794, Tmid: 1000,
			Low:  thermo.NASA7{A: [7]float64{2.5, 0, 0, 0, 0, 25470, -0.45}},
			High: thermo.NASA7{A: [7]float64{2.5, 0, 0, 0, 0, 25470, -0.45}},
			Crit: thermo.BuiltinCriticalProps["H"]},
	}
	ph := thermo.NewPhase(species, 1e5, 0, nil)
	Y := []float64{0.1, 0.1, 0.7, 0.1}
	if err := ph.SetState_TRY(1500, 0.5, Y); err != nil {
		t.Fatal(err)
	}
	return ph
}

func elementaryHOHReaction() Reaction {
	return Reaction{
		Kind:       Elementary,
		Reversible: true,
		Reactants:  []StoichEntry{{Species: 0, Coeff: 1}, {Species: 1, Coeff: 1}},
		Products:   []StoichEntry{{Species: 2, Coeff: 1}, {Species: 3, Coeff: 1}},
		Arr:        Arrhenius{A: 2.16e8, B: 1.51, Ea: 3430 * 4184},
	}
}

// S3: elementary reaction forward rate matches the closed-form
// Arrhenius expression.
func TestElementaryForwardRate(t *testing.T) {
	ph := demoPhase(t)
	k, err := NewKineticsFromReactions(ph, []Reaction{elementaryHOHReaction()})
	if err != nil {
		t.Fatal(err)
	}
	if err := k.UpdateROP(); err != nil {
		t.Fatal(err)
	}
	arr := elementaryHOHReaction().Arr
	lnT := math.Log(ph.T)
	kExpected := arr.A * math.Exp(arr.B*lnT-arr.Ea/(thermo.R*ph.T))
	assert.RelScalar(t, "k_f", 1e-9, k.kf[0], kExpected)
}

// Testable property 9 (determinism): updateROP is deterministic across
// repeated calls.
func TestUpdateROPDeterministic(t *testing.T) {
	ph := demoPhase(t)
	k, err := NewKineticsFromReactions(ph, []Reaction{elementaryHOHReaction()})
	if err != nil {
		t.Fatal(err)
	}
	if err := k.UpdateROP(); err != nil {
		t.Fatal(err)
	}
	first := append([]float64(nil), k.NetROP()...)
	if err := k.UpdateROP(); err != nil {
		t.Fatal(err)
	}
	for i, v := range k.NetROP() {
		assert.Scalar(t, "determinism", 0, v, first[i])
	}
}

func TestAddReactionInvalidKind(t *testing.T) {
	ph := demoPhase(t)
	k := NewKinetics(ph)
	bad := elementaryHOHReaction()
	bad.Kind = Kind(99)
	if err := k.AddReaction(bad); err == nil {
		t.Fatal("expected InvalidKind error")
	}
}
