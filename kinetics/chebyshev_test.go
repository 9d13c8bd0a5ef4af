// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
)

// evalChebyshev must map T=Tmin to the reduced coordinate Tt=-1 and
// T=Tmax to Tt=+1, matching the pressure mapping's convention
// (logP=logPmin -> Pt=-1, logP=logPmax -> Pt=+1). A single linear-in-T
// coefficient then pins down both the sign and the magnitude.
func TestChebyshevTemperatureMapping(t *testing.T) {
	c := ChebyshevData{
		Tmin: 300, Tmax: 3000,
		Pmin: 1e5, Pmax: 1e6,
		Coeffs: [][]float64{
			{0}, // T_0 * P_0
			{1}, // T_1 * P_0
		},
	}
	Pgeo := 316227.766016838 // sqrt(Pmin*Pmax), lands Pt at 0

	kAtTmin := evalChebyshev(c, c.Tmin, Pgeo)
	kAtTmax := evalChebyshev(c, c.Tmax, Pgeo)

	assert.RelScalar(t, "k(Tmin)", 1e-6, kAtTmin, 0.1)
	assert.RelScalar(t, "k(Tmax)", 1e-6, kAtTmax, 10)
	assert.True(t, "k must increase with T for a positive linear coefficient", kAtTmax > kAtTmin)
}

// clampUnit must saturate outside [-1,1] rather than extrapolate.
func TestClampUnit(t *testing.T) {
	assert.Scalar(t, "clamp low", 0, clampUnit(-5), -1)
	assert.Scalar(t, "clamp high", 0, clampUnit(5), 1)
	assert.Scalar(t, "clamp identity", 0, clampUnit(0.3), 0.3)
}

// chebyshevPolys reproduces the standard recurrence T_0=1, T_1=x.
func TestChebyshevPolysBase(t *testing.T) {
	out := make([]float64, 3)
	chebyshevPolys(0.5, 3, out)
	assert.Scalar(t, "T_0(0.5)", 0, out[0], 1)
	assert.Scalar(t, "T_1(0.5)", 0, out[1], 0.5)
	assert.Scalar(t, "T_2(0.5)", 1e-12, out[2], 2*0.5*0.5-1)
}
