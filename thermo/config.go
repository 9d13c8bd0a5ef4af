// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "github.com/cpmech/gosl/fun"

// Config holds the Phase construction knobs a host may want to set
// from an input deck, read via fun.Prm (spec.md §6 "Configuration
// enumeration": blend_factor, binary_k_ij).
type Config struct {
	P0   float64 // reference pressure, Pa
	Beta float64 // PR blend factor in [0,1]
}

// DefaultConfig returns p0=1atm, beta=0 (pure ideal gas).
func DefaultConfig() Config {
	return Config{P0: 101325, Beta: 0}
}

// NewPhaseFromConfig builds a Phase using cfg's P0/Beta in place of
// passing them positionally, so a host driven entirely off an input
// deck's fun.Prms (via InitFromPrms) never touches NewPhase directly.
func NewPhaseFromConfig(species []Species, cfg Config, kij *BinaryKijTable) *Phase {
	return NewPhase(species, cfg.P0, cfg.Beta, kij)
}

// InitFromPrms reads "p0" and "blend_factor" from prms, following the
// teacher's Init(ndim, pstress, prms)-by-named-switch idiom
// (mdl/sld's elasticity Init loop).
func (c *Config) InitFromPrms(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "p0":
			c.P0 = p.V
		case "blend_factor":
			c.Beta = p.V
		}
	}
}

// KijFromPrms builds a BinaryKijTable from a flat parameter list,
// where each override entry is named "kij_<species-i>_<species-j>".
// Any entries not following that convention are ignored here (a host
// is free to also set overrides directly via BinaryKijTable.Set).
func KijFromPrms(species []Species, prms fun.Prms) *BinaryKijTable {
	t := NewBinaryKijTable()
	names := make(map[string]bool, len(species))
	for _, s := range species {
		names[s.Name] = true
	}
	for _, p := range prms {
		ni, nj, ok := splitKijName(p.N, names)
		if ok {
			t.Set(ni, nj, p.V)
		}
	}
	return t
}

func splitKijName(n string, names map[string]bool) (ni, nj string, ok bool) {
	const prefix = "kij_"
	if len(n) <= len(prefix) || n[:len(prefix)] != prefix {
		return "", "", false
	}
	rest := n[len(prefix):]
	for i := range rest {
		a, b := rest[:i], rest[i+1:]
		if i > 0 && rest[i] == '_' && names[a] && names[b] {
			return a, b, true
		}
	}
	return "", "", false
}
