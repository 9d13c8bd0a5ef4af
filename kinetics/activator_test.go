// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "testing"

// Testable property 6: activation monotonicity in the tolerances.
func TestActivationMonotonicity(t *testing.T) {
	ph := demoPhase(t)
	k, err := NewKineticsFromReactions(ph, []Reaction{elementaryHOHReaction()})
	if err != nil {
		t.Fatal(err)
	}
	rho := ph.Rho()
	cv := 25000.0 // J/kmol/K, illustrative
	Y := []float64{0.1, 0.1, 0.7, 0.1}
	u := []float64{-5e6, 2e6, -2.4e8, 2.1e5}
	W := []float64{2.01588, 17.00734, 18.01528, 1.00794}

	tightCfg := ActivatorConfig{RelTol: 1e-12, AbsTol: 1e-15}
	maskTight, err := Activate(k, rho, cv, Y, u, W, tightCfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range maskTight {
		if !a {
			t.Errorf("tight tolerances: reaction %d unexpectedly deactivated", i)
		}
	}

	looseCfg := ActivatorConfig{RelTol: 1e12, AbsTol: 1e12}
	maskLoose, err := Activate(k, rho, cv, Y, u, W, looseCfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range maskLoose {
		if a {
			t.Errorf("loose tolerances: reaction %d unexpectedly left active", i)
		}
	}
}
