// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// evalPlog evaluates a pressure-logarithm rate expression by
// log-linear interpolation between the two bracketing pressure nodes
// (spec.md §3 GLOSSARY "PLOG"). entries must be sorted ascending by P.
// Outside the table's pressure range, the nearest endpoint's Arrhenius
// expression is used directly (no extrapolation in log-k/log-P).
func evalPlog(entries []PlogEntry, T, lnT, P float64) float64 {
	if len(entries) == 0 {
		return 0
	}
	if len(entries) == 1 || P <= entries[0].P {
		return entries[0].Arr.Eval(T, lnT)
	}
	last := len(entries) - 1
	if P >= entries[last].P {
		return entries[last].Arr.Eval(T, lnT)
	}
	lo := 0
	for i := 0; i < last; i++ {
		if entries[i].P <= P && P <= entries[i+1].P {
			lo = i
			break
		}
	}
	k1 := entries[lo].Arr.Eval(T, lnT)
	k2 := entries[lo+1].Arr.Eval(T, lnT)
	logP1 := math.Log(entries[lo].P)
	logP2 := math.Log(entries[lo+1].P)
	logP := math.Log(P)
	frac := (logP - logP1) / (logP2 - logP1)
	logK := math.Log(k1) + frac*(math.Log(k2)-math.Log(k1))
	return math.Exp(logK)
}
