// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// chebyshevPolys fills out[0..n-1] with T_0(x)..T_{n-1}(x), the
// Chebyshev polynomials of the first kind, via the standard recurrence
// T_0=1, T_1=x, T_k=2x*T_{k-1}-T_{k-2}.
func chebyshevPolys(x float64, n int, out []float64) {
	if n == 0 {
		return
	}
	out[0] = 1
	if n == 1 {
		return
	}
	out[1] = x
	for k := 2; k < n; k++ {
		out[k] = 2*x*out[k-1] - out[k-2]
	}
}

// evalChebyshev evaluates a bivariate Chebyshev rate expansion
// (spec.md GLOSSARY "Chebyshev"), mapping T via 1/T and P via log10(P)
// onto [-1,1] as is conventional for this rate form.
func evalChebyshev(c ChebyshevData, T, P float64) float64 {
	nT := len(c.Coeffs)
	if nT == 0 {
		return 0
	}
	nP := len(c.Coeffs[0])

	invT := 1 / T
	invTmin := 1 / c.Tmin
	invTmax := 1 / c.Tmax
	Tt := (2*invT - invTmin - invTmax) / (invTmax - invTmin)

	logP := math.Log10(P)
	logPmin := math.Log10(c.Pmin)
	logPmax := math.Log10(c.Pmax)
	Pt := (2*logP - logPmin - logPmax) / (logPmax - logPmin)

	Tt = clampUnit(Tt)
	Pt = clampUnit(Pt)

	phiT := make([]float64, nT)
	phiP := make([]float64, nP)
	chebyshevPolys(Tt, nT, phiT)
	chebyshevPolys(Pt, nP, phiP)

	log10k := 0.0
	for i := 0; i < nT; i++ {
		for j := 0; j < nP; j++ {
			log10k += c.Coeffs[i][j] * phiT[i] * phiP[j]
		}
	}
	return math.Pow(10, log10k)
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
