// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adsorbate

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Nitrogen implements properties of N2, the standard probe gas at 77 K
type Nitrogen struct{}

// add adsorbate to database
func init() {
	allocators["N2"] = func() Model { return Nitrogen{} }
}

// Name returns "N2"
func (o Nitrogen) Name() string { return "N2" }

// MolarMass returns the molar mass [g/mol]
func (o Nitrogen) MolarMass() float64 { return 28.0134 }

// LiquidDensity computes the saturated liquid density [g/cm³].
// Linear fit around the normal boiling point; valid for 63 K < T < 90 K
func (o Nitrogen) LiquidDensity(T float64) float64 {
	return 0.8075 - 0.00435*(T-77.355)
}

// SurfaceTension computes the liquid-vapour surface tension [mN/m].
// Corresponding-states correlation σ = σ0・(1-T/Tc)^n with Tc = 126.21 K [2]
func (o Nitrogen) SurfaceTension(T float64) float64 {
	return 28.91 * math.Pow(1.0-T/126.21, 1.231)
}

// Props returns the scalar interaction properties [1]
func (o Nitrogen) Props() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "dmol", V: 0.30},     // [nm]
		&dbf.P{N: "alpha", V: 1.74e-3}, // [nm³]
		&dbf.P{N: "chi", V: 3.6e-8},    // [nm³]
		&dbf.P{N: "nsurf", V: 6.71e18}, // [molecules/m²]
	}
}
