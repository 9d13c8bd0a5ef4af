// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cantera-demo exercises the blended EOS and the kinetics ROP pipeline
// end-to-end for the scenarios S1-S4; S5 (Troe falloff) and S6 (QSS)
// are not run here.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/WangHan-combustion/cantera/kinetics"
	"github.com/WangHan-combustion/cantera/thermo"
)

func demoSpecies() []thermo.Species {
	h2 := thermo.Species{
		Name: "H2", W: 2.01588, Tmid: 1000,
		Low:  thermo.NASA7{A: [7]float64{3.3, 0, 0, 0, 0, -950, -3.2}},
		High: thermo.NASA7{A: [7]float64{2.9, 0, 0, 0, 0, -800, -1.4}},
		Crit: thermo.BuiltinCriticalProps["H2"],
	}
	o2 := thermo.Species{
		Name: "O2", W: 31.9988, Tmid: 1000,
		Low:  thermo.NASA7{A: [7]float64{3.2, 0, 0, 0, 0, -1050, 5.5}},
		High: thermo.NASA7{A: [7]float64{3.6, 0, 0, 0, 0, -1200, 3.4}},
		Crit: thermo.BuiltinCriticalProps["O2"],
	}
	n2 := thermo.Species{
		Name: "N2", W: 28.0134, Tmid: 1000,
		Low:  thermo.NASA7{A: [7]float64{3.5, 0, 0, 0, 0, -1020, 3.9}},
		High: thermo.NASA7{A: [7]float64{2.9, 0, 0, 0, 0, -920, 5.9}},
		Crit: thermo.BuiltinCriticalProps["N2"],
	}
	oh := thermo.Species{
		Name: "OH", W: 17.00734, Tmid: 1000,
		Low:  thermo.NASA7{A: [7]float64{3.4, 0, 0, 0, 0, 3500, 2.0}},
		High: thermo.NASA7{A: [7]float64{3.1, 0, 0, 0, 0, 3600, 4.4}},
		Crit: thermo.BuiltinCriticalProps["OH"],
	}
	h2o := thermo.Species{
		Name: "H2O", W: 18.01528, Tmid: 1000,
		Low:  thermo.NASA7{A: [7]float64{4.2, 0, 0, 0, 0, -30280, -0.8}},
		High: thermo.NASA7{A: [7]float64{2.7, 0, 0, 0, 0, -29900, 6.6}},
		Crit: thermo.BuiltinCriticalProps["H2O"],
	}
	h := thermo.Species{
		Name: "H", W: 1.00794, Tmid: 1000,
		Low:  thermo.NASA7{A: [7]float64{2.5, 0, 0, 0, 0, 25470, -0.45}},
		High: thermo.NASA7{A: [7]float64{2.5, 0, 0, 0, 0, 25470, -0.45}},
		Crit: thermo.BuiltinCriticalProps["H"],
	}
	return []thermo.Species{h2, o2, n2, oh, h2o, h}
}

// S1: ideal mixture pressure via the blended EOS at beta=0.
func runIdealPressure() {
	species := demoSpecies()
	ph := thermo.NewPhase(species, 1e5, 0, nil)
	Y := []float64{0.2, 0.1, 0.7, 0, 0, 0}
	if err := ph.SetState_TRY(1000, 1.0, Y); err != nil {
		chk.Panic("S1: %v", err)
	}
	io.Pf(">> S1 ideal pressure: p = %g Pa (W_bar = %g kg/kmol)\n", ph.Pressure(), ph.Wbar)
}

// S2: cryogenic pure-H2 PR departure at beta=1.
func runCryoDeparture() {
	species := demoSpecies()[:1]
	ph := thermo.NewPhase(species, 1e5, 1, nil)
	Y := []float64{1}
	if err := ph.SetTemperatureAndComposition(60, Y); err != nil {
		chk.Panic("S2: %v", err)
	}
	if err := ph.SetPressure(5e6); err != nil {
		io.Pfyel(">> S2 note: %v\n", err)
	}
	rhoI, _ := ph.IdealDensitySnapshot()
	io.Pf(">> S2 cryogenic H2: rho_ideal = %g, rho_blended = %g kg/m3\n", rhoI, ph.Rho())
}

// S3/S4: elementary + three-body reaction forward rates.
func runKineticsDemo() {
	species := demoSpecies()
	ph := thermo.NewPhase(species, 1e5, 0, nil)
	Y := []float64{0.1, 0.1, 0.1, 0.05, 0.55, 0.1}
	if err := ph.SetState_TRY(1500, 0.9, Y); err != nil {
		chk.Panic("kinetics demo: %v", err)
	}

	iH2, _ := thermo.Index(species, "H2")
	iOH, _ := thermo.Index(species, "OH")
	iH2O, _ := thermo.Index(species, "H2O")
	iH, _ := thermo.Index(species, "H")

	const RcalToJ = 4.184 * 1000 // cal/mol -> J/kmol-equivalent scale factor used by Ea below
	elementary := kinetics.Reaction{
		Kind:       kinetics.Elementary,
		Reversible: true,
		Reactants:  []kinetics.StoichEntry{{Species: iH2, Coeff: 1}, {Species: iOH, Coeff: 1}},
		Products:   []kinetics.StoichEntry{{Species: iH2O, Coeff: 1}, {Species: iH, Coeff: 1}},
		Arr:        kinetics.Arrhenius{A: 2.16e8, B: 1.51, Ea: 3430 * RcalToJ},
	}

	threeBody := kinetics.Reaction{
		Kind:       kinetics.ThreeBody,
		Reversible: false,
		Reactants:  []kinetics.StoichEntry{{Species: iH, Coeff: 2}},
		Products:   []kinetics.StoichEntry{{Species: iH2, Coeff: 1}},
		ThirdBody: &kinetics.ThirdBodyEff{
			Default: 1.0,
			Eff:     map[int]float64{iH2: 2.5, iH2O: 12.0},
		},
		Arr: kinetics.Arrhenius{A: 1e12, B: 0, Ea: 0},
	}

	k, err := kinetics.NewKineticsFromReactions(ph, []kinetics.Reaction{elementary, threeBody})
	if err != nil {
		chk.Panic("kinetics demo: %v", err)
	}
	if err := k.UpdateROP(); err != nil {
		chk.Panic("kinetics demo: %v", err)
	}
	io.Pf(">> S3/S4 forward ROP = %v\n", k.ForwardROP())
	io.Pf(">> S3/S4 net ROP     = %v\n", k.NetROP())
}

func main() {
	flag.Parse()
	io.PfWhite("\ncantera-demo -- blended EOS and gas-phase kinetics\n\n")
	runIdealPressure()
	runCryoDeparture()
	runKineticsDemo()
}
