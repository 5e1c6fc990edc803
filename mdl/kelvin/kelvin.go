// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kelvin implements the Kelvin equation relating capillary
// condensation pressure to the critical radius of curvature
//  References:
//   [1] Thomson W (1871) On the equilibrium of vapour at a curved surface of
//       liquid, Phil. Mag., 42(282), 448-452
//   [2] Rouquerol F, Rouquerol J and Sing K (1999) Adsorption by Powders and
//       Porous Solids, Academic Press
package kelvin

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Rgas is the universal gas constant [J/(mol・K)]
const Rgas = 8.3144621

// meniscus geometries
const (
	Cylindrical     = "cylindrical"     // one curvature radius acts; condensation in cylinders
	Hemispherical   = "hemispherical"   // two curvature radii act; evaporation
	Hemicylindrical = "hemicylindrical" // one curvature radius acts; slit-shaped pores
)

// Geometry selects the meniscus geometry given branch and pore geometry [2].
// During adsorption in a cylinder the meniscus is cylindrical (radial
// condensation on the film); on desorption it is hemispherical. Slit pores
// always have a hemicylindrical meniscus; spherical pores a hemispherical one
func Geometry(branch, poreGeometry string) (string, error) {
	switch poreGeometry {
	case "slit":
		return Hemicylindrical, nil
	case "sphere":
		return Hemispherical, nil
	case "cylinder":
		if branch == "adsorption" {
			return Cylindrical, nil
		}
		return Hemispherical, nil
	}
	return "", chk.Err("pore geometry %q is invalid for meniscus selection. valid geometries are [slit cylinder sphere]", poreGeometry)
}

// Factor returns the number of principal curvature radii acting in the
// Kelvin equation for a meniscus geometry
func Factor(meniscusGeometry string) (float64, error) {
	switch meniscusGeometry {
	case Cylindrical, Hemicylindrical:
		return 1, nil
	case Hemispherical:
		return 2, nil
	}
	return 0, chk.Err("meniscus geometry %q is invalid. valid geometries are [%s %s %s]", meniscusGeometry, Cylindrical, Hemispherical, Hemicylindrical)
}

// Radius computes the critical Kelvin radius from relative pressure for a
// fixed set of fluid properties and meniscus geometry
type Radius struct {
	coeff float64 // f・γ・Vm/(R・T) [nm]
}

// Init initialises the model
//  meniscusGeometry -- one of Cylindrical, Hemispherical, Hemicylindrical
//  T                -- temperature [K]
//  liqDensity       -- adsorbate liquid density [g/cm³]
//  molarMass        -- adsorbate molar mass [g/mol]
//  surfTension      -- adsorbate surface tension [mN/m]
func (o *Radius) Init(meniscusGeometry string, T, liqDensity, molarMass, surfTension float64) error {
	factor, err := Factor(meniscusGeometry)
	if err != nil {
		return err
	}
	if liqDensity <= 0 {
		return chk.Err("liquid density must be positive. %g is invalid", liqDensity)
	}
	molarVolume := molarMass / liqDensity // [cm³/mol]
	// mN/m times cm³/mol over J/mol gives 1e-9 m, i.e. nm
	o.coeff = factor * surfTension * molarVolume / (Rgas * T)
	return nil
}

// Rk computes the critical radius [nm] at relative pressure p.
// Diverges as p approaches 1; callers must keep p inside (0,1)
func (o *Radius) Rk(p float64) float64 {
	return -o.coeff / math.Log(p)
}
