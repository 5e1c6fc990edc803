// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psd

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosorb/mdl/kelvin"
	"github.com/cpmech/gosorb/mdl/thickness"
)

// numerical tolerances of the mesopore engine
const (
	mesoPmax = 0.9995 // pressures at or above this are saturation points and are dropped
	mesoWtol = 1e-12  // widths below this are degenerate
)

// mesoEngine runs the stepwise pore emptying algorithm of Barrett, Joyner
// and Halenda [1], optionally with the film curvature correction of
// Dollimore and Heal [2] (useDH).
//
// Input arrays must be ordered from high to low pressure. At each step the
// volume change between consecutive points is split into evaporation from
// the cores emptying at this pressure and thinning of the film left on the
// walls of previously emptied pores; the film part is subtracted and the
// remainder converted to pore volume through the core-to-pore ratio of the
// selected geometry.
//
//  loading    -- [mmol/g]
//  liqDensity -- [g/cm³]
//  molarMass  -- [g/mol]
func mesoEngine(loading, pressure []float64, geometry string, tm thickness.Model, km *kelvin.Radius, liqDensity, molarMass float64, useDH bool) (*Result, error) {

	if len(loading) != len(pressure) {
		return nil, chk.Err("loading and pressure arrays must have the same length. %d != %d", len(loading), len(pressure))
	}

	// drop saturation points where the Kelvin equation diverges
	res := new(Result)
	for len(pressure) > 0 && pressure[0] >= mesoPmax {
		res.Skipped = append(res.Skipped, pressure[0])
		pressure = pressure[1:]
		loading = loading[1:]
	}
	n := len(pressure)
	if n < 2 {
		return nil, chk.Err("mesopore analysis needs at least two points below p/p0=%g. %d available", mesoPmax, n)
	}

	// point-level curves: liquid volume, film thickness, kelvin radius and
	// the geometry-dependent pore width
	vol := make([]float64, n) // [cm³/g]
	t := make([]float64, n)   // [nm]
	rk := make([]float64, n)  // [nm]
	w := make([]float64, n)   // [nm]
	for i, p := range pressure {
		vol[i] = loading[i] * molarMass / liqDensity / 1000.0
		t[i] = tm.Thickness(p)
		rk[i] = km.Rk(p)
		switch geometry {
		case "slit":
			w[i] = rk[i] + 2.0*t[i]
		default: // cylinder, sphere
			w[i] = 2.0 * (rk[i] + t[i])
		}
	}

	// stepwise emptying. sumA is the cumulated film area of emptied pores;
	// sumL the cumulated core length used by the Dollimore-Heal correction
	var sumA, sumL float64
	for i := 0; i < n-1; i++ {

		dv := vol[i] - vol[i+1]
		dt := t[i] - t[i+1]
		dw := w[i] - w[i+1]
		tb := (t[i] + t[i+1]) / 2.0
		rkb := (rk[i] + rk[i+1]) / 2.0
		wb := (w[i] + w[i+1]) / 2.0

		// degenerate step: no width increment, or film change swallowing
		// the whole core
		if wb <= mesoWtol || dw <= mesoWtol || rkb <= dt {
			res.Skipped = append(res.Skipped, pressure[i+1])
			continue
		}

		// core volume to pore volume ratio
		var rfactor float64
		rpb := wb / 2.0 // pore radius (half width for slits)
		switch geometry {
		case "slit":
			rfactor = wb / (rkb + 2.0*dt)
		case "sphere":
			rfactor = math.Pow(rpb/(rkb+dt), 3.0)
		default: // cylinder
			rfactor = math.Pow(rpb/(rkb+dt), 2.0)
		}

		// film thinning on previously emptied pores
		film := dt * sumA
		if useDH && geometry == "cylinder" {
			// curvature of the annular film: the thinning layer sits on
			// cores of finite radius, not on a flat wall
			film -= 2.0 * math.Pi * dt * tb * sumL
		}

		vp := (dv - film) * rfactor
		if vp < 0 {
			vp = 0 // numerical noise in flat isotherm regions
		}

		// cumulate area (and length) freed by this step
		var da float64
		switch geometry {
		case "slit":
			da = 2.0 * vp / wb
		case "sphere":
			da = 3.0 * vp / rpb
		default: // cylinder
			da = 2.0 * vp / rpb
		}
		sumA += da
		sumL += da / (2.0 * math.Pi * rpb)

		res.PoreWidths = append(res.PoreWidths, wb)
		res.PoreDist = append(res.PoreDist, vp/dw)
	}

	if len(res.PoreWidths) == 0 {
		return nil, chk.Err("all %d mesopore steps are degenerate; isotherm is outside the validity range of the method", n-1)
	}
	return res, nil
}
