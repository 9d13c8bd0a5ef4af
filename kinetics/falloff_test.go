// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"math"
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
)

// S5: Troe blending matches the closed-form F(pr,T) expression.
func TestBlendTroe(t *testing.T) {
	p := FalloffParams{Kind: Troe, A: 0.6, T3: 100, T1: 2000, T2: 1000}
	T := 1200.0
	pr := 0.8

	Fcent := (1-p.A)*math.Exp(-T/p.T3) + p.A*math.Exp(-T/p.T1) + math.Exp(-p.T2/T)
	logFcent := math.Log10(Fcent)
	c := -0.4 - 0.67*logFcent
	n := 0.75 - 1.27*logFcent
	logPr := math.Log10(pr)
	f1 := (logPr + c) / (n - 0.14*(logPr+c))
	want := math.Pow(10, logFcent/(1+f1*f1))

	got := blend(p, pr, T)
	assert.RelScalar(t, "Troe F", 1e-12, got, want)
}

// SRI blending matches the closed-form expression (spec.md GLOSSARY "SRI").
func TestBlendSRI(t *testing.T) {
	p := FalloffParams{Kind: SRI, SA: 1.1, SB: 700, SC: 1300, SD: 1.2, SE: 0.1}
	T := 1500.0
	pr := 2.0

	X := 1 / (1 + math.Log10(pr)*math.Log10(pr))
	base := p.SA*math.Exp(-p.SB/T) + math.Exp(-T/p.SC)
	want := math.Pow(base, X) * p.SD * math.Pow(T, p.SE)

	got := blend(p, pr, T)
	assert.RelScalar(t, "SRI F", 1e-12, got, want)
}

// blend must return 1 (no falloff correction) at pr<=0, independent of kind.
func TestBlendZeroReducedPressure(t *testing.T) {
	p := FalloffParams{Kind: Troe, A: 0.6, T3: 100, T1: 2000}
	assert.Scalar(t, "blend at pr=0", 0, blend(p, 0, 1000), 1)
}

// Process writes F*pr/(1+pr) back into prLocal in place.
func TestFalloffSetProcess(t *testing.T) {
	fs := NewFalloffSet([]Reaction{
		{Kind: FalloffRxn, Falloff: FalloffParams{Kind: Lindemann}},
	})
	pr := []float64{3.0}
	fs.Process(pr, 1000)
	want := blend(FalloffParams{Kind: Lindemann}, 3.0, 1000) * 3.0 / (1 + 3.0)
	assert.Scalar(t, "falloff blended pr", 1e-12, pr[0], want)
}

func TestReducedPressure(t *testing.T) {
	got := reducedPressure(2.0, 4.0)
	assert.RelScalar(t, "reduced pressure", 1e-12, got, 2.0/4.0)
}
