// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"math"

	"github.com/WangHan-combustion/cantera/cherr"
	"github.com/WangHan-combustion/cantera/thermo"
)

// Kinetics implements C7: it orchestrates the rate library (C4), the
// third-body (C5) and stoichiometry (C6) managers over a non-owning
// *thermo.Phase reference (spec.md §3/§5 "Kinetics holds a reference
// to, but does not own, a Phase").
type Kinetics struct {
	phase     *thermo.Phase
	reactions []Reaction

	rates     *RateLib
	falloff   *FalloffSet
	thirdBody *ThirdBodySet
	stoich    *Stoichiometry

	// perturbation multiplier applied to both ropf and ropr per
	// reaction, e.g. installed by the QSS closure (spec.md §4.10) or
	// left at 1 otherwise.
	perturb []float64

	kf     []float64 // effective forward rate constant, after [M]/falloff
	kc     []float64 // concentration-based equilibrium constant
	ropf   []float64
	ropr   []float64
	ropnet []float64

	ropOK bool // true once updateROP has run against the current state

	// concOverride, when non-nil, replaces thermo.MoleConcentrations()
	// for the duration of a single UpdateROP call; the QSS closure
	// (C10) installs it so ropf/ropr are evaluated with every QSS
	// species held at a fixed reference concentration, without
	// perturbing the owning Phase's state (spec.md §4.10).
	concOverride []float64

	// skipUndeclaredThirdBodies implements the skip_undeclared_third_bodies
	// policy (spec.md §6/§7): off by default, so a third-body efficiency
	// naming an out-of-range species fails with cherr.UndeclaredSpecies.
	skipUndeclaredThirdBodies bool
}

// SetSkipUndeclaredThirdBodies toggles the skip_undeclared_third_bodies
// policy: when true, AddReaction/ModifyReaction no longer validate
// third-body efficiency species indices against the bound Phase.
func (k *Kinetics) SetSkipUndeclaredThirdBodies(skip bool) {
	k.skipUndeclaredThirdBodies = skip
}

// concentrations returns the species concentration vector to use for
// this update: the override installed by QSS resolution, or the
// Phase's actual concentrations.
func (k *Kinetics) concentrations() []float64 {
	if k.concOverride != nil {
		return k.concOverride
	}
	return k.phase.MoleConcentrations()
}

// NewKinetics builds an empty Kinetics engine bound to phase.
func NewKinetics(phase *thermo.Phase) *Kinetics {
	return &Kinetics{
		phase:     phase,
		rates:     NewRateLib(nil),
		falloff:   NewFalloffSet(nil),
		thirdBody: &ThirdBodySet{},
		stoich:    NewStoichiometry(nil, phase.NSpecies()),
	}
}

// NewKineticsFromReactions builds a Kinetics engine preloaded with
// reactions, failing with cherr.InvalidKind on an unrecognised tag.
func NewKineticsFromReactions(phase *thermo.Phase, reactions []Reaction) (*Kinetics, error) {
	k := NewKinetics(phase)
	for _, r := range reactions {
		if err := k.AddReaction(r); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// NReactions returns the number of installed reactions.
func (k *Kinetics) NReactions() int { return len(k.reactions) }

// Phase returns the bound (non-owned) thermo.Phase.
func (k *Kinetics) Phase() *thermo.Phase { return k.phase }

func validKind(kind Kind) bool {
	switch kind {
	case Elementary, ThreeBody, FalloffRxn, ChemActRxn, PLOG, Chebyshev:
		return true
	}
	return false
}

// AddReaction appends one reaction, installing it into every
// subsystem and growing all dense per-reaction vectors.
func (k *Kinetics) AddReaction(r Reaction) error {
	if !validKind(r.Kind) {
		return cherr.New(cherr.InvalidKind, "kinetics.AddReaction", "unrecognised reaction kind %d", r.Kind)
	}
	idx := len(k.reactions)
	if err := k.thirdBody.Grow(r, idx, k.phase.NSpecies(), k.skipUndeclaredThirdBodies); err != nil {
		return err
	}
	k.reactions = append(k.reactions, r)
	k.rates.Grow(r, idx)
	k.falloff.Grow(r, idx)
	k.stoich.Grow(r)

	k.kf = append(k.kf, 0)
	k.kc = append(k.kc, 0)
	k.ropf = append(k.ropf, 0)
	k.ropr = append(k.ropr, 0)
	k.ropnet = append(k.ropnet, 0)
	k.perturb = append(k.perturb, 1)
	k.ropOK = false
	return nil
}

// ModifyReaction replaces reaction i in place and invalidates every
// cache that depends on the reaction set (spec.md §4.8 editor notes
// apply equally to single-reaction edits).
func (k *Kinetics) ModifyReaction(i int, r Reaction) error {
	if !validKind(r.Kind) {
		return cherr.New(cherr.InvalidKind, "kinetics.ModifyReaction", "unrecognised reaction kind %d", r.Kind)
	}
	if i < 0 || i >= len(k.reactions) {
		return cherr.New(cherr.NotReady, "kinetics.ModifyReaction", "reaction index %d out of range", i)
	}
	reactions := append([]Reaction(nil), k.reactions...)
	reactions[i] = r

	nSpecies := k.phase.NSpecies()
	k.reactions = reactions
	k.rates = NewRateLib(reactions)
	k.falloff = NewFalloffSet(reactions)
	ts, err := NewThirdBodySet(reactions, nSpecies, k.skipUndeclaredThirdBodies)
	if err != nil {
		return err
	}
	k.thirdBody = ts
	k.stoich = NewStoichiometry(reactions, nSpecies)
	k.ropOK = false
	return nil
}

// SetPerturbation installs a per-reaction multiplier applied to both
// ropf and ropr (spec.md §4.9's "multiply by per-reaction perturbation
// vector" step); pass nil to reset every entry to 1.
func (k *Kinetics) SetPerturbation(p []float64) {
	if p == nil {
		for i := range k.perturb {
			k.perturb[i] = 1
		}
		return
	}
	copy(k.perturb, p)
	k.ropOK = false
}

// getFwdRateConstants refreshes k_high/k_low from the current phase
// state, applies third-body enhancement to ThreeBody reactions, and
// blends Falloff/ChemAct reactions through their pr_to_falloff
// function, writing the final effective forward rate constant to k.kf.
func (k *Kinetics) getFwdRateConstants() {
	T := k.phase.T
	p := k.phase.Pressure()
	k.rates.UpdateTP(T, p)
	kHigh := k.rates.KHigh()
	kLow := k.rates.KLow()
	copy(k.kf, kHigh)

	c := k.concentrations()
	k.thirdBody.Update(c)
	k.thirdBody.ApplyToRate(k.kf, func(g int) Kind { return k.reactions[g].Kind }, ThreeBody)

	if k.falloff.Len() > 0 {
		pr := k.falloff.work
		for i := 0; i < k.falloff.Len(); i++ {
			g := k.falloff.GlobalIndex(i)
			m := thirdBodyMFor(k.thirdBody, g)
			pr[i] = reducedPressure(kLow[g]*m, kHigh[g])
		}
		k.falloff.Process(pr, T)
		for i := 0; i < k.falloff.Len(); i++ {
			g := k.falloff.GlobalIndex(i)
			switch k.reactions[g].Kind {
			case FalloffRxn:
				k.kf[g] = kHigh[g] * pr[i]
			case ChemActRxn:
				prOrig := reducedPressure(kLow[g]*thirdBodyMFor(k.thirdBody, g), kHigh[g])
				if prOrig > 0 {
					k.kf[g] = kLow[g] * pr[i] / prOrig
				} else {
					k.kf[g] = 0
				}
			}
		}
	}
}

// thirdBodyMFor returns the [M] value for global reaction index g, or
// 1 if g carries no third-body data (spec.md §4.7 treats a missing
// bath-gas mixture as unit concentration).
func thirdBodyMFor(ts *ThirdBodySet, g int) float64 {
	for i, gi := range ts.globalIdx {
		if gi == g {
			return ts.m[i]
		}
	}
	return 1
}

// getEquilibriumConstants computes the concentration-based equilibrium
// constant Kc_i = exp(-Δg°_i/RT) · (p0/(R·T))^Δn_i for every reaction
// (spec.md §4.9 GLOSSARY "Kc").
func (k *Kinetics) getEquilibriumConstants() {
	T := k.phase.T
	gRT := k.phase.SpeciesGRT()
	deltaG := k.stoich.DeltaAll(gRT)
	deltaN := k.stoich.DeltaN()
	standardConc := k.phase.P0() / (thermo.R * T)
	for j := range k.kc {
		k.kc[j] = math.Exp(-deltaG[j]) * math.Pow(standardConc, deltaN[j])
	}
}

// UpdateROP runs the full fixed rate-of-progress pipeline (spec.md
// §4.9): k_f -> ropf -> [M]/falloff already folded into k_f -> apply
// perturbation -> ropr = ropf/Kc (zeroed for irreversible) -> multiply
// by reactant/product concentration products -> ropnet = ropf - ropr.
// Every intermediate is checked finite, failing with cherr.NonFinite.
func (k *Kinetics) UpdateROP() error {
	k.getFwdRateConstants()
	k.getEquilibriumConstants()

	copy(k.ropf, k.kf)
	for j := range k.ropf {
		k.ropf[j] *= k.perturb[j]
	}
	copy(k.ropr, k.ropf)
	for j, r := range k.reactions {
		if !r.Reversible {
			k.ropr[j] = 0
			continue
		}
		k.ropr[j] /= k.kc[j]
	}

	c := k.concentrations()
	k.stoich.MultiplyReactantProducts(k.ropf, c)
	k.stoich.MultiplyRevProductProducts(k.ropr, c)

	for j := range k.ropnet {
		if !isFinite(k.ropf[j]) || !isFinite(k.ropr[j]) {
			return cherr.New(cherr.NonFinite, "kinetics.UpdateROP", "non-finite rate of progress at reaction %d", j)
		}
		k.ropnet[j] = k.ropf[j] - k.ropr[j]
	}
	k.ropOK = true
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ForwardROP returns the forward rate-of-progress vector (read-only,
// valid only after a successful UpdateROP).
func (k *Kinetics) ForwardROP() []float64 { return k.ropf }

// ReverseROP returns the reverse rate-of-progress vector.
func (k *Kinetics) ReverseROP() []float64 { return k.ropr }

// NetROP returns the net (forward - reverse) rate-of-progress vector.
func (k *Kinetics) NetROP() []float64 { return k.ropnet }

// EquilibriumConstants returns the concentration-based Kc vector
// computed by the most recent UpdateROP.
func (k *Kinetics) EquilibriumConstants() []float64 { return k.kc }

// Reactions returns the installed reaction set (read-only).
func (k *Kinetics) Reactions() []Reaction { return k.reactions }

// Stoichiometry returns the C6 sparse stoichiometry manager.
func (k *Kinetics) Stoichiometry() *Stoichiometry { return k.stoich }
