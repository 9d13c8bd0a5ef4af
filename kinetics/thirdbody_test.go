// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
)

func threeBodyReaction(eff *ThirdBodyEff) Reaction {
	return Reaction{
		Kind:       ThreeBody,
		Reversible: false,
		Reactants:  []StoichEntry{{Species: 3, Coeff: 1}, {Species: 3, Coeff: 1}},
		Products:   []StoichEntry{{Species: 0, Coeff: 1}},
		ThirdBody:  eff,
		Arr:        Arrhenius{A: 1e9, B: 0, Ea: 0},
	}
}

// [M] = Σ ε_k·c_k over the current concentration vector.
func TestThirdBodySetUpdate(t *testing.T) {
	eff := &ThirdBodyEff{Default: 1.0, Eff: map[int]float64{0: 2.5, 2: 12.0}}
	ts, err := NewThirdBodySet([]Reaction{threeBodyReaction(eff)}, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	c := []float64{1.0, 2.0, 0.5, 3.0}
	ts.Update(c)
	want := 2.5*c[0] + 1.0*c[1] + 12.0*c[2] + 1.0*c[3]
	assert.RelScalar(t, "[M]", 1e-12, ts.M()[0], want)
}

// ApplyToRate multiplies only reactions of the requested kind.
func TestThirdBodyApplyToRate(t *testing.T) {
	eff := &ThirdBodyEff{Default: 1.0}
	reactions := []Reaction{threeBodyReaction(eff), elementaryHOHReaction()}
	ts, err := NewThirdBodySet(reactions, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	ts.Update([]float64{1, 1, 1, 1})
	rate := []float64{10, 10}
	ts.ApplyToRate(rate, func(g int) Kind { return reactions[g].Kind }, ThreeBody)
	assert.Scalar(t, "three-body rate scaled", 1e-12, rate[0], 10*ts.M()[0])
	assert.Scalar(t, "elementary rate untouched", 0, rate[1], 10)
}

// An out-of-range third-body species index fails unless
// skip_undeclared_third_bodies is set.
func TestThirdBodyUndeclaredSpecies(t *testing.T) {
	eff := &ThirdBodyEff{Default: 1.0, Eff: map[int]float64{99: 1.0}}
	_, err := NewThirdBodySet([]Reaction{threeBodyReaction(eff)}, 4, false)
	if err == nil {
		t.Fatal("expected UndeclaredSpecies error")
	}
	_, err = NewThirdBodySet([]Reaction{threeBodyReaction(eff)}, 4, true)
	if err != nil {
		t.Fatalf("skip_undeclared_third_bodies should suppress the error, got %v", err)
	}
}

// AddReaction enforces the same policy as NewThirdBodySet, and honors
// SetSkipUndeclaredThirdBodies.
func TestAddReactionUndeclaredThirdBodySpecies(t *testing.T) {
	ph := demoPhase(t)
	eff := &ThirdBodyEff{Default: 1.0, Eff: map[int]float64{99: 1.0}}
	k := NewKinetics(ph)
	if err := k.AddReaction(threeBodyReaction(eff)); err == nil {
		t.Fatal("expected UndeclaredSpecies error from AddReaction")
	}
	if k.NReactions() != 0 {
		t.Fatalf("failed AddReaction must not leave a partial reaction installed, got %d", k.NReactions())
	}

	k2 := NewKinetics(ph)
	k2.SetSkipUndeclaredThirdBodies(true)
	if err := k2.AddReaction(threeBodyReaction(eff)); err != nil {
		t.Fatalf("skip_undeclared_third_bodies should suppress the error, got %v", err)
	}
}
