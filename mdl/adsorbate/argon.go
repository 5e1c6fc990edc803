// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adsorbate

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Argon implements properties of Ar, probe gas for 87 K analyses
type Argon struct{}

// add adsorbate to database
func init() {
	allocators["Ar"] = func() Model { return Argon{} }
}

// Name returns "Ar"
func (o Argon) Name() string { return "Ar" }

// MolarMass returns the molar mass [g/mol]
func (o Argon) MolarMass() float64 { return 39.948 }

// LiquidDensity computes the saturated liquid density [g/cm³].
// Linear fit around the normal boiling point; valid for 84 K < T < 100 K
func (o Argon) LiquidDensity(T float64) float64 {
	return 1.3963 - 0.00584*(T-87.30)
}

// SurfaceTension computes the liquid-vapour surface tension [mN/m].
// Corresponding-states correlation with Tc = 150.69 K
func (o Argon) SurfaceTension(T float64) float64 {
	return 37.78 * math.Pow(1.0-T/150.69, 1.277)
}

// Props returns the scalar interaction properties [1]
func (o Argon) Props() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "dmol", V: 0.336},    // [nm]
		&dbf.P{N: "alpha", V: 1.63e-3}, // [nm³]
		&dbf.P{N: "chi", V: 3.25e-8},   // [nm³]
		&dbf.P{N: "nsurf", V: 8.52e18}, // [molecules/m²]
	}
}
