// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adsorbent implements interaction constants of adsorbent surfaces
// for micropore potential models
//  References:
//   [1] Horvath G and Kawazoe K (1983) Method for the calculation of effective
//       pore size distribution in molecular sieve carbon, J. Chem. Eng. Japan,
//       16(6), 470-475
//   [2] Saito A and Foley HC (1991) Curvature and parametric sensitivity in
//       models for adsorption in micropores, AIChE J., 37(3), 429-436
package adsorbent

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Props holds the interaction constants of one adsorbent surface
type Props struct {
	Name  string  // name of property set
	Dmol  float64 // diameter of surface atom/ion [nm]
	Alpha float64 // polarizability [nm³]
	Chi   float64 // magnetic susceptibility [nm³]
	Nsurf float64 // surface density [atoms/m²]
}

// Prms returns the constants as a named parameter set
func (o Props) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "dmol", V: o.Dmol},
		&dbf.P{N: "alpha", V: o.Alpha},
		&dbf.P{N: "chi", V: o.Chi},
		&dbf.P{N: "nsurf", V: o.Nsurf},
	}
}

// New returns a registered adsorbent property set
func New(name string) (Props, error) {
	props, ok := sets[name]
	if !ok {
		return Props{}, chk.Err("adsorbent model %q is not available in database. registered models are %v", name, Names())
	}
	return props, nil
}

// Names returns the names of all registered adsorbent property sets
func Names() (names []string) {
	for name := range sets {
		names = append(names, name)
	}
	return
}

// sets holds all available adsorbent property sets
var sets = map[string]Props{

	// graphitic carbon slab of Horvath and Kawazoe [1]
	"Carbon(HK)": {
		Name:  "Carbon(HK)",
		Dmol:  0.34,
		Alpha: 1.02e-3,
		Chi:   1.35e-7,
		Nsurf: 3.845e19,
	},

	// zeolitic oxide ion of Saito and Foley [2]
	"OxideIon(SF)": {
		Name:  "OxideIon(SF)",
		Dmol:  0.276,
		Alpha: 2.5e-3,
		Chi:   1.3e-8,
		Nsurf: 1.315e19,
	},
}
