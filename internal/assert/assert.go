// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assert is a small numeric-comparison test helper modeled on
// gosl/chk's Scalar/AnaNum call-site idiom.
package assert

import (
	"math"
	"testing"
)

// Scalar fails tst if |val-expected| exceeds tol, reporting msg.
func Scalar(tst *testing.T, msg string, tol, val, expected float64) {
	tst.Helper()
	if math.Abs(val-expected) > tol {
		tst.Errorf("%s: |%g - %g| = %g > tol = %g", msg, val, expected, math.Abs(val-expected), tol)
	}
}

// RelScalar fails tst if the relative difference between val and
// expected exceeds tol (absolute comparison when expected is zero).
func RelScalar(tst *testing.T, msg string, tol, val, expected float64) {
	tst.Helper()
	denom := math.Abs(expected)
	if denom == 0 {
		Scalar(tst, msg, tol, val, expected)
		return
	}
	rel := math.Abs(val-expected) / denom
	if rel > tol {
		tst.Errorf("%s: relative error %g > tol = %g (val=%g expected=%g)", msg, rel, tol, val, expected)
	}
}

// AnaNum compares an analytical and a numerical value, failing tst if
// their absolute difference exceeds tol; verbose prints both values
// regardless of pass/fail, mirroring gosl/chk.AnaNum's diagnostic use
// in derivative-check tests.
func AnaNum(tst *testing.T, msg string, tol, ana, num float64, verbose bool) {
	tst.Helper()
	diff := math.Abs(ana - num)
	if verbose {
		tst.Logf("%s: ana=%g num=%g diff=%g", msg, ana, num, diff)
	}
	if diff > tol {
		tst.Errorf("%s: ana=%g num=%g diff=%g > tol=%g", msg, ana, num, diff, tol)
	}
}

// True fails tst with msg if cond is false.
func True(tst *testing.T, msg string, cond bool) {
	tst.Helper()
	if !cond {
		tst.Error(msg)
	}
}
