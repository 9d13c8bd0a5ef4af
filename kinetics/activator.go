// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// dyEntry is one nonzero row of the per-reaction species-error column
// built by Activate.
type dyEntry struct {
	species int
	value   float64
}

// Activate implements C9: given tolerances and the current extensive
// state, it refreshes net ROP and greedily decides which reactions can
// be dropped without pushing either the temperature or any species
// error accumulator past unit budget (spec.md §4.9).
//
// u and W are the partial molar internal energies and molecular
// weights, indexed like Y. The returned mask is true for reactions
// that remain active. cfg.RelTol/cfg.AbsTol drive the error budget;
// cfg.RelativeQSSDensity is unused here (it only governs the QSS pin
// in QSSSet.Resolve) but cfg is threaded through as a whole so callers
// share one configuration record across the activator and the QSS
// closure (spec.md §6 "Configuration enumeration").
func Activate(k *Kinetics, rho, cv float64, Y, u, W []float64, cfg ActivatorConfig) ([]bool, error) {
	if err := k.UpdateROP(); err != nil {
		return nil, err
	}
	T := k.phase.T
	q := k.NetROP()
	nReactions := len(q)
	nSpecies := k.phase.NSpecies()

	relTol, absTol := cfg.RelTol, cfg.AbsTol
	tempDenom := rho * cv * (relTol*T + absTol)
	dTVec := make([]float64, nReactions)
	dYCols := make([][]dyEntry, nReactions)

	for j, col := range k.stoich.signedAll {
		sumUW := 0.0
		entries := make([]dyEntry, 0, len(col.Species))
		for idx, sp := range col.Species {
			Wij := col.Coeff[idx] * q[j]
			sumUW += u[sp] * Wij
			denomY := rho * (relTol*Y[sp] + absTol)
			entries = append(entries, dyEntry{sp, (W[sp] / denomY) * Wij})
		}
		dTVec[j] = -sumUW / tempDenom
		dYCols[j] = entries
	}

	mask := make([]bool, nReactions)
	for i := range mask {
		mask[i] = true
	}

	dTError := 0.0
	dYError := make([]float64, nSpecies)
	for j := 0; j < nReactions; j++ {
		candidateDT := dTError + dTVec[j]
		fits := math.Abs(candidateDT) <= 1
		if fits {
			for _, e := range dYCols[j] {
				if math.Abs(dYError[e.species]+e.value) > 1 {
					fits = false
					break
				}
			}
		}
		if !fits {
			continue
		}
		dTError = candidateDT
		for _, e := range dYCols[j] {
			dYError[e.species] += e.value
		}
		mask[j] = false
	}
	return mask, nil
}
