// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"testing"

	"github.com/cpmech/gosl/fun"
)

func TestConfigInitFromPrms(t *testing.T) {
	c := DefaultConfig()
	c.InitFromPrms(fun.Prms{
		{N: "p0", V: 2e5},
		{N: "blend_factor", V: 0.7},
	})
	if c.P0 != 2e5 {
		t.Errorf("P0 = %g, want 2e5", c.P0)
	}
	if c.Beta != 0.7 {
		t.Errorf("Beta = %g, want 0.7", c.Beta)
	}
}

func TestKijFromPrms(t *testing.T) {
	species := demoSpecies()
	prms := fun.Prms{
		{N: "kij_H2_O2", V: 0.12},
		{N: "unrelated", V: 1.0},
	}
	kij := KijFromPrms(species, prms)
	if v := kij.Kij("H2", "O2"); v != 0.12 {
		t.Errorf("kij(H2,O2) = %g, want 0.12", v)
	}
}

func TestNewPhaseFromConfig(t *testing.T) {
	species := demoSpecies()
	cfg := Config{P0: 1.5e5, Beta: 0.3}
	ph := NewPhaseFromConfig(species, cfg, nil)
	if ph.P0() != cfg.P0 {
		t.Errorf("P0 = %g, want %g", ph.P0(), cfg.P0)
	}
	if ph.Beta() != cfg.Beta {
		t.Errorf("Beta = %g, want %g", ph.Beta(), cfg.Beta)
	}
}
