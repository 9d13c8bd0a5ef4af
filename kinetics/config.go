// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/cpmech/gosl/fun"

// ActivatorConfig holds the adaptive-activator tolerances and the QSS
// sub-phase density scale factor (spec.md §6 "Configuration
// enumeration": relative_qss_density default 1e-12, (relTol, absTol)).
type ActivatorConfig struct {
	RelTol             float64
	AbsTol             float64
	RelativeQSSDensity float64
}

// DefaultActivatorConfig matches spec.md §6's stated defaults.
func DefaultActivatorConfig() ActivatorConfig {
	return ActivatorConfig{RelTol: 1e-6, AbsTol: 1e-12, RelativeQSSDensity: 1e-12}
}

// InitFromPrms reads "rel_tol", "abs_tol" and "relative_qss_density"
// by name, following the teacher's named-switch Init(prms) idiom.
func (c *ActivatorConfig) InitFromPrms(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "rel_tol":
			c.RelTol = p.V
		case "abs_tol":
			c.AbsTol = p.V
		case "relative_qss_density":
			c.RelativeQSSDensity = p.V
		}
	}
}
