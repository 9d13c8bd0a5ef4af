// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// falloffEps guards the k_low/(k_high+eps) reduced-pressure division
// from division-by-zero (spec.md §4.7).
const falloffEps = 1e-300

// FalloffSet is C4's per-reaction falloff blending subsystem, indexed
// locally over just the Falloff/ChemAct reactions (spec.md §4.4
// "Falloff type carries its blending function (pr_to_falloff) with a
// pre-allocated work buffer").
type FalloffSet struct {
	globalIdx []int // local -> global reaction index
	kinds     []Kind
	params    []FalloffParams
	work      []float64 // pre-allocated pr/F scratch, length = local count
}

// NewFalloffSet scans reactions and builds the local falloff index.
func NewFalloffSet(reactions []Reaction) *FalloffSet {
	fs := &FalloffSet{}
	for i, r := range reactions {
		if r.Kind == FalloffRxn || r.Kind == ChemActRxn {
			fs.globalIdx = append(fs.globalIdx, i)
			fs.kinds = append(fs.kinds, r.Kind)
			fs.params = append(fs.params, r.Falloff)
		}
	}
	fs.work = make([]float64, len(fs.globalIdx))
	return fs
}

// Len returns the number of falloff/chemact reactions.
func (fs *FalloffSet) Len() int { return len(fs.globalIdx) }

// GlobalIndex returns the global reaction index of local falloff index i.
func (fs *FalloffSet) GlobalIndex(i int) int { return fs.globalIdx[i] }

// Grow appends one more falloff/chemact reaction at the given global index.
func (fs *FalloffSet) Grow(r Reaction, globalIdx int) {
	if r.Kind != FalloffRxn && r.Kind != ChemActRxn {
		return
	}
	fs.globalIdx = append(fs.globalIdx, globalIdx)
	fs.kinds = append(fs.kinds, r.Kind)
	fs.params = append(fs.params, r.Falloff)
	fs.work = append(fs.work, 0)
}

// blend applies the Lindemann/Troe/SRI blending function to reduced
// pressure pr at temperature T, returning F (spec.md §4.4/§4.7).
func blend(p FalloffParams, pr, T float64) float64 {
	if pr <= 0 {
		return 1
	}
	switch p.Kind {
	case Troe:
		Fcent := (1-p.A)*math.Exp(-T/p.T3) + p.A*math.Exp(-T/p.T1)
		if p.T2 != 0 {
			Fcent += math.Exp(-p.T2 / T)
		}
		if Fcent <= 0 {
			return 1
		}
		logFcent := math.Log10(Fcent)
		c := -0.4 - 0.67*logFcent
		n := 0.75 - 1.27*logFcent
		logPr := math.Log10(pr)
		f1 := (logPr + c) / (n - 0.14*(logPr+c))
		return math.Pow(10, logFcent/(1+f1*f1))
	case SRI:
		X := 1 / (1 + math.Log10(pr)*math.Log10(pr))
		base := p.SA*math.Exp(-p.SB/T) + math.Exp(-T/p.SC)
		F := math.Pow(base, X)
		if p.SD != 0 {
			F *= p.SD
		}
		if p.SE != 0 {
			F *= math.Pow(T, p.SE)
		}
		return F
	default: // Lindemann
		return 1
	}
}

// Process computes, for each local falloff/chemact reaction i, the
// blended expression F_i·pr_i/(1+pr_i) using the already-enhanced
// reduced pressure in prLocal[i] (spec.md §4.7's pr_to_falloff),
// writing the result back into prLocal in place.
func (fs *FalloffSet) Process(prLocal []float64, T float64) {
	for i, p := range fs.params {
		pr := prLocal[i]
		F := blend(p, pr, T)
		prLocal[i] = F * pr / (1 + pr)
	}
}

// reducedPressure computes pr = k_low/(k_high+eps).
func reducedPressure(kLow, kHigh float64) float64 {
	return kLow / (kHigh + falloffEps)
}
