// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"

	"github.com/WangHan-combustion/cantera/cherr"
)

// degenerateEps is the discriminant tolerance below which the cubic
// solver reports a CubicSolveDegenerate double root (spec.md §4.3).
const degenerateEps = 1e-12

// CubicResult carries the real roots found by solveDepressedCubic, in
// no particular order, plus whether the discriminant fell in the
// degenerate (double-root) branch.
type CubicResult struct {
	Roots      []float64
	Degenerate bool
}

// solveDepressedCubic solves t^3 + p*t + q = 0 for its real roots,
// using the explicit three-branch selection required by spec.md §4.3
// and Design Note "Cubic solver branching": never silently fall
// through between the unique-root, double-root and three-root cases.
func solveDepressedCubic(p, q float64) CubicResult {
	disc := (q/2)*(q/2) + (p/3)*(p/3)*(p/3)

	switch {
	case disc > degenerateEps:
		// Δ>0: unique real root via Cardano.
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		return CubicResult{Roots: []float64{u + v}}

	case math.Abs(disc) <= degenerateEps:
		// |Δ|<=ε: double root.
		u := math.Cbrt(-q / 2)
		return CubicResult{Roots: []float64{2 * u, -u, -u}, Degenerate: true}

	default:
		// Δ<0: three real roots via trigonometric form.
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(clamp(-q/(2*r), -1, 1))
		t0 := 2 * math.Sqrt(-p/3)
		roots := make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = t0 * math.Cos((phi-2*math.Pi*float64(k))/3)
		}
		return CubicResult{Roots: roots}
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// selectZRoot applies spec.md §4.3's root-selection rule to a cubic
// result already shifted back from the depressed form: pick the
// smallest non-negative root; if none are non-negative, pick the
// largest (the liquid-like branch fallback from Design Notes §9).
func selectZRoot(roots []float64) float64 {
	best := math.Inf(1)
	haveNonNeg := false
	largest := math.Inf(-1)
	for _, z := range roots {
		if z > largest {
			largest = z
		}
		if z >= 0 && z < best {
			best = z
			haveNonNeg = true
		}
	}
	if haveNonNeg {
		return best
	}
	return largest
}

// SolveCubicZ solves the Peng-Robinson compressibility-factor cubic
//
//	Z^3 - (1-B)Z^2 + (A-3B^2-2B)Z - (AB-B^2-B^3) = 0
//
// for the reduced coefficients A, B, returning the selected Z root. A
// non-nil CubicSolveDegenerate error is returned alongside a valid Z
// when the discriminant fell in the degenerate branch; it is
// informational, not fatal (spec.md §7).
func SolveCubicZ(A, B float64) (float64, error) {
	// standard-form coefficients: Z^3 + c2*Z^2 + c1*Z + c0 = 0
	c2 := -(1 - B)
	c1 := A - 3*B*B - 2*B
	c0 := -(A*B - B*B - B*B*B)

	// depress: Z = t - c2/3
	p := c1 - c2*c2/3
	q := 2*c2*c2*c2/27 - c2*c1/3 + c0

	res := solveDepressedCubic(p, q)
	shift := -c2 / 3
	roots := make([]float64, len(res.Roots))
	for i, t := range res.Roots {
		roots[i] = t + shift
	}
	Z := selectZRoot(roots)
	if res.Degenerate {
		return Z, cherr.New(cherr.CubicSolveDegenerate, "thermo.SolveCubicZ", "discriminant within tolerance of zero; returning double root")
	}
	return Z, nil
}
