// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// sparseCol is one reaction's sparse (species, coefficient) column;
// Stoichiometry stores three such families per reaction, matching
// spec.md §4.6's "compressed sparse column by reaction" Design Note.
type sparseCol struct {
	Species []int
	Coeff   []float64
}

// Stoichiometry implements C6: sparse reactant / reversible-product /
// irreversible-product stoichiometry over (species x reaction), plus
// the signed Δ-property contractions.
type Stoichiometry struct {
	nSpecies int

	reactant     []sparseCol // every reaction's reactant side
	revProduct   []sparseCol // product side, populated only for reversible reactions
	irrevProduct []sparseCol // product side, populated only for irreversible reactions
	signedAll    []sparseCol // products - reactants, every reaction (for DeltaAll)
	signedRev    []sparseCol // products - reactants, reversible reactions only
}

// NewStoichiometry builds the sparse stoichiometry over reactions.
func NewStoichiometry(reactions []Reaction, nSpecies int) *Stoichiometry {
	s := &Stoichiometry{nSpecies: nSpecies}
	for _, r := range reactions {
		s.appendReaction(r)
	}
	return s
}

func toCol(entries []StoichEntry) sparseCol {
	c := sparseCol{Species: make([]int, len(entries)), Coeff: make([]float64, len(entries))}
	for i, e := range entries {
		c.Species[i] = e.Species
		c.Coeff[i] = e.Coeff
	}
	return c
}

func mergeSigned(reactants, products []StoichEntry) sparseCol {
	net := make(map[int]float64)
	for _, e := range reactants {
		net[e.Species] -= e.Coeff
	}
	for _, e := range products {
		net[e.Species] += e.Coeff
	}
	col := sparseCol{}
	for sp, v := range net {
		if v == 0 {
			continue
		}
		col.Species = append(col.Species, sp)
		col.Coeff = append(col.Coeff, v)
	}
	return col
}

func (s *Stoichiometry) appendReaction(r Reaction) {
	s.reactant = append(s.reactant, toCol(r.Reactants))
	if r.Reversible {
		s.revProduct = append(s.revProduct, toCol(r.Products))
		s.irrevProduct = append(s.irrevProduct, sparseCol{})
	} else {
		s.revProduct = append(s.revProduct, sparseCol{})
		s.irrevProduct = append(s.irrevProduct, toCol(r.Products))
	}
	signed := mergeSigned(r.Reactants, r.Products)
	s.signedAll = append(s.signedAll, signed)
	if r.Reversible {
		s.signedRev = append(s.signedRev, signed)
	} else {
		s.signedRev = append(s.signedRev, sparseCol{})
	}
}

// Grow appends one more reaction's stoichiometry.
func (s *Stoichiometry) Grow(r Reaction) { s.appendReaction(r) }

// NReactions returns the number of reactions.
func (s *Stoichiometry) NReactions() int { return len(s.reactant) }

// MultiplyReactantProducts multiplies rate[j] *= Π_i c_i^ν_ij over the
// reactant stoichiometry, for every reaction j.
func (s *Stoichiometry) MultiplyReactantProducts(rate []float64, c []float64) {
	multiplyConcProducts(rate, c, s.reactant)
}

// MultiplyRevProductProducts multiplies rate[j] *= Π_i c_i^ν_ij over
// the reversible-product stoichiometry (no-op for irreversible j,
// whose column is empty so the product is 1).
func (s *Stoichiometry) MultiplyRevProductProducts(rate []float64, c []float64) {
	multiplyConcProducts(rate, c, s.revProduct)
}

func multiplyConcProducts(rate, c []float64, cols []sparseCol) {
	for j, col := range cols {
		if len(col.Species) == 0 {
			continue
		}
		prod := 1.0
		for k, sp := range col.Species {
			prod *= intPow(c[sp], col.Coeff[k])
		}
		rate[j] *= prod
	}
}

// intPow computes c^nu efficiently for the common small-integer
// exponents while still supporting fractional orders.
func intPow(c, nu float64) float64 {
	if nu == 1 {
		return c
	}
	if nu == 2 {
		return c * c
	}
	if nu == 3 {
		return c * c * c
	}
	return mathPow(c, nu)
}

// DeltaAll computes Δf[j] = Σ_i ν_ij·f_i (signed, products minus
// reactants) over every reaction.
func (s *Stoichiometry) DeltaAll(f []float64) []float64 {
	return deltaContract(f, s.signedAll)
}

// DeltaReversible computes the same contraction restricted to
// reversible reactions (zero for irreversible j).
func (s *Stoichiometry) DeltaReversible(f []float64) []float64 {
	return deltaContract(f, s.signedRev)
}

func deltaContract(f []float64, cols []sparseCol) []float64 {
	out := make([]float64, len(cols))
	for j, col := range cols {
		sum := 0.0
		for k, sp := range col.Species {
			sum += col.Coeff[k] * f[sp]
		}
		out[j] = sum
	}
	return out
}

// DeltaN returns Δn_j = Σν_product − Σν_reactant for every reaction
// (spec.md §3), i.e. DeltaAll evaluated with f_i == 1 for all species.
func (s *Stoichiometry) DeltaN() []float64 {
	ones := make([]float64, s.nSpecies)
	for i := range ones {
		ones[i] = 1
	}
	return s.DeltaAll(ones)
}

// CheckMassConservation returns, for every reaction j,
// Σ_i ν_ij·W_i -- which must vanish within tolerance (spec.md §8
// Testable Property 5).
func (s *Stoichiometry) CheckMassConservation(W []float64) []float64 {
	return s.DeltaAll(W)
}

func mathPow(c, nu float64) float64 {
	if c == 0 {
		if nu == 0 {
			return 1
		}
		return 0
	}
	return math.Exp(nu * math.Log(c))
}
