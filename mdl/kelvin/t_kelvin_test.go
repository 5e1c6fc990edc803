// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kelvin

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// nitrogen at its normal boiling point
const (
	tN2   = 77.355  // [K]
	rhoN2 = 0.8075  // [g/cm³]
	mmN2  = 28.0134 // [g/mol]
	stN2  = 8.98    // [mN/m]
)

func Test_kelvin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvin01. meniscus selection")

	for _, test := range []struct {
		branch, pore, meniscus string
	}{
		{"adsorption", "cylinder", Cylindrical},
		{"desorption", "cylinder", Hemispherical},
		{"adsorption", "slit", Hemicylindrical},
		{"desorption", "slit", Hemicylindrical},
		{"adsorption", "sphere", Hemispherical},
		{"desorption", "sphere", Hemispherical},
	} {
		m, err := Geometry(test.branch, test.pore)
		if err != nil {
			tst.Errorf("Geometry failed: %v\n", err)
			return
		}
		chk.StrAssert(m, test.meniscus)
	}

	_, err := Geometry("adsorption", "cone")
	if err == nil {
		tst.Errorf("invalid pore geometry must fail\n")
	}
	_, err = Factor("flat")
	if err == nil {
		tst.Errorf("invalid meniscus geometry must fail\n")
	}
}

func Test_kelvin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvin02. radius and curvature factor")

	var hemi, cyl Radius
	err := hemi.Init(Hemispherical, tN2, rhoN2, mmN2, stN2)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	err = cyl.Init(Cylindrical, tN2, rhoN2, mmN2, stN2)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// textbook value for nitrogen at 77 K and p/p0 = 0.5
	chk.Scalar(tst, "rk(0.5) hemi", 1e-2, hemi.Rk(0.5), 1.398)

	// two curvature radii act for a hemispherical meniscus, one for a
	// cylindrical one
	for _, p := range []float64{0.1, 0.5, 0.9, 0.99} {
		chk.Scalar(tst, "factor ratio", 1e-14, hemi.Rk(p)/cyl.Rk(p), 2.0)
	}
}

func Test_kelvin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvin03. monotonicity below saturation")

	var mdl Radius
	err := mdl.Init(Hemispherical, tN2, rhoN2, mmN2, stN2)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	P := utl.LinSpace(0.01, 0.999, 200)
	rprev := 0.0
	for _, p := range P {
		r := mdl.Rk(p)
		if r <= rprev {
			tst.Errorf("kelvin radius is not increasing with pressure at p=%g\n", p)
			return
		}
		rprev = r
	}
}
