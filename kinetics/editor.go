// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/WangHan-combustion/cantera/cherr"

// ForwardIndexMap computes, for an active-mask vector a of length Nr,
// the active old-index list L and the forward index map M with
// M[i] = Σ_{k<i} a_k (spec.md §4.8's prefix sum). Inactive slots of M
// carry -1.
func ForwardIndexMap(active []bool) (L []int, M []int) {
	M = make([]int, len(active))
	running := 0
	for i, a := range active {
		if a {
			M[i] = running
			L = append(L, i)
			running++
		} else {
			M[i] = -1
		}
	}
	return L, M
}

// Reduce implements C8: it derives a reduced kinetics snapshot
// containing only the reactions selected by active, re-indexing every
// subcomponent consistently.
//
// Every per-kind subsystem (rate library, falloff set, third-body set,
// stoichiometry) is a pure function of the ordered reaction list, so
// rebuilding them from the gathered reaction list L reproduces exactly
// the gather-by-L/remap-by-M transformation described for each
// subsystem individually, without hand-maintaining four parallel
// remapping passes. The per-reaction perturbation vector is gathered
// by L, and the skip_undeclared_third_bodies policy is carried over.
func (k *Kinetics) Reduce(active []bool) (*Kinetics, error) {
	if len(active) != len(k.reactions) {
		return nil, cherr.New(cherr.NotReady, "kinetics.Reduce", "active mask length %d does not match %d reactions", len(active), len(k.reactions))
	}
	L, _ := ForwardIndexMap(active)
	snap := NewKinetics(k.phase)
	snap.skipUndeclaredThirdBodies = k.skipUndeclaredThirdBodies
	for _, old := range L {
		if err := snap.AddReaction(k.reactions[old]); err != nil {
			return nil, err
		}
	}
	for i, old := range L {
		snap.perturb[i] = k.perturb[old]
	}
	return snap, nil
}
