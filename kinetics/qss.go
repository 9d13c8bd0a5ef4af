// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"github.com/WangHan-combustion/cantera/cherr"
	"github.com/WangHan-combustion/cantera/internal/splu"
)

// QSSSet implements C10: the quasi-steady-state closure over a
// designated species subset. It is installed once per reaction set
// and reused across state updates (the symbolic pattern never
// changes; only the numeric entries do).
type QSSSet struct {
	species   []int       // global species indices flagged QSS
	localOf   map[int]int // global species index -> local 0..n-1
	pattern   *splu.Pattern
	lastConcs []float64 // most recently solved QSS concentrations, local-indexed
}

// NewQSSSet declares species as quasi-steady-state and enforces the
// at-most-one-QSS-species-per-side assumption at install time. A
// violation is non-fatal: it is returned as an
// *cherr.Error{Kind: AssumptionViolated} alongside a usable QSSSet,
// since Resolve degrades gracefully by iterating over the set
// (spec.md §4.10, §9 Design Notes).
func NewQSSSet(k *Kinetics, species []int) (*QSSSet, error) {
	qs := &QSSSet{species: append([]int(nil), species...), localOf: make(map[int]int)}
	for i, sp := range qs.species {
		qs.localOf[sp] = i
	}

	var violation error
	for j, r := range k.reactions {
		if countQSSSide(r.Reactants, qs.localOf) > 1 {
			violation = cherr.New(cherr.AssumptionViolated, "kinetics.NewQSSSet", "reaction %d has more than one QSS reactant", j)
		}
		if countQSSSide(r.Products, qs.localOf) > 1 {
			violation = cherr.New(cherr.AssumptionViolated, "kinetics.NewQSSSet", "reaction %d has more than one QSS product", j)
		}
	}

	t := splu.NewTriplet(len(qs.species))
	for i := range qs.species {
		t.Put(i, i, 1) // diagonal always present: every QSS species is destroyed by something
	}
	qs.pattern = t.Analyze()
	return qs, violation
}

func countQSSSide(entries []StoichEntry, localOf map[int]int) int {
	n := 0
	for _, e := range entries {
		if _, ok := localOf[e.Species]; ok {
			n++
		}
	}
	return n
}

func qssMembers(entries []StoichEntry, localOf map[int]int) []int {
	var out []int
	for _, e := range entries {
		if _, ok := localOf[e.Species]; ok {
			out = append(out, e.Species)
		}
	}
	return out
}

// Resolve implements the C10 closure: evaluate ropf/ropr with every
// QSS species concentration pinned at a reference value `pin` (via
// Kinetics.concOverride), build and solve A·c=b, rescale ropf/ropr by
// the solved QSS concentrations, and recompute ropnet. The QSS
// species' own stoichiometric coefficient is assumed to be 1 on
// whichever side it appears, as is typical of combustion mechanisms
// that flag a species QSS-eligible in the first place.
//
// pin is cfg.RelativeQSSDensity times the current total molar
// concentration (spec.md §6: "relative_qss_density -- scale factor
// applied to total density when setting the QSS sub-phase density").
// Every A/b entry and the final rescale divide out pin where it was
// introduced, so the solved concentrations (and hence ropnet) do not
// depend on its value; it only keeps the intermediate "pinned" ROP
// evaluation at a representative physical scale instead of the
// arbitrary unit pin.
func (qs *QSSSet) Resolve(k *Kinetics, cfg ActivatorConfig) error {
	n := len(qs.species)
	if n == 0 {
		return k.UpdateROP()
	}

	real := k.phase.MoleConcentrations()
	ctot := 0.0
	for _, v := range real {
		ctot += v
	}
	pin := cfg.RelativeQSSDensity * ctot
	if pin <= 0 {
		pin = cfg.RelativeQSSDensity
	}
	if pin <= 0 {
		pin = 1
	}

	unit := append([]float64(nil), real...)
	for _, sp := range qs.species {
		unit[sp] = pin
	}
	k.concOverride = unit
	err := k.UpdateROP()
	k.concOverride = nil
	if err != nil {
		return err
	}

	ropf, ropr := k.ForwardROP(), k.ReverseROP()

	A := splu.NewTriplet(n)
	b := make([]float64, n)

	for j, r := range k.reactions {
		reactQSS := qssMembers(r.Reactants, qs.localOf)
		prodQSS := qssMembers(r.Products, qs.localOf)

		switch len(reactQSS) {
		case 0:
			for _, s := range prodQSS {
				b[qs.localOf[s]] += ropf[j]
			}
		default:
			rate := ropf[j] / pin
			for _, t := range reactQSS {
				tl := qs.localOf[t]
				A.Put(tl, tl, rate)
				for _, s := range prodQSS {
					A.Put(qs.localOf[s], tl, -rate)
				}
			}
		}

		if !r.Reversible {
			continue
		}
		switch len(prodQSS) {
		case 0:
			for _, s := range reactQSS {
				b[qs.localOf[s]] += ropr[j]
			}
		default:
			rate := ropr[j] / pin
			for _, t := range prodQSS {
				tl := qs.localOf[t]
				A.Put(tl, tl, rate)
				for _, s := range reactQSS {
					A.Put(qs.localOf[s], tl, -rate)
				}
			}
		}
	}

	solver := splu.NewSolver(qs.pattern)
	c, solveErr := solver.Solve(A, b)
	if solveErr != nil {
		return cherr.Wrap(cherr.NonFinite, "kinetics.QSSSet.Resolve", solveErr, "QSS linear solve failed")
	}
	qs.lastConcs = c

	for j, r := range k.reactions {
		for _, s := range qssMembers(r.Reactants, qs.localOf) {
			ropf[j] *= c[qs.localOf[s]] / pin
		}
		if r.Reversible {
			for _, s := range qssMembers(r.Products, qs.localOf) {
				ropr[j] *= c[qs.localOf[s]] / pin
			}
		}
	}

	for j := range k.ropnet {
		if !isFinite(ropf[j]) || !isFinite(ropr[j]) {
			return cherr.New(cherr.NonFinite, "kinetics.QSSSet.Resolve", "non-finite rate of progress at reaction %d after QSS rescale", j)
		}
		k.ropnet[j] = ropf[j] - ropr[j]
	}
	return nil
}

// Concentrations returns the most recently solved QSS concentrations
// keyed by global species index.
func (qs *QSSSet) Concentrations() map[int]float64 {
	out := make(map[int]float64, len(qs.species))
	for i, sp := range qs.species {
		out[sp] = qs.lastConcs[i]
	}
	return out
}
