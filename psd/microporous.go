// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/gosorb/mdl/adsorbent"
)

// physical constants
const (
	navo   = 6.02214129e23  // Avogadro constant [1/mol]
	rgas   = 8.3144621      // universal gas constant [J/(mol・K)]
	emass  = 9.10938291e-31 // electron rest mass [kg]
	clight = 2.99792458e8   // speed of light [m/s]
)

// limits of the Horvath-Kawazoe engine
const (
	hkPmax   = 0.9  // the model is not considered valid above this relative pressure
	hkWmax   = 10.0 // upper root bracket [nm]
	hkNscan  = 400  // grid points of the bracket scan
	hkSFkmax = 30   // truncation of the Saito-Foley ring sum
)

// horvathKawazoe computes the micropore size distribution by solving, point
// by point, the adsorption potential equation of Horvath and Kawazoe [3]
//  Φ(w) = ln(p/p0)
// for the pore width w. Slit pores use the original slab potential; cylinder
// pores the ring sum of Saito and Foley; spherical pores a shell-integrated
// Lennard-Jones potential after Cheng and Yang. Points whose potential
// equation has no root inside the physical bracket are skipped.
//
//  loading     -- [mmol/g], adsorption branch, ascending pressure
//  maxAdsorbed -- loading at p/p0 = 0.9, normalising the pore filling fraction
func horvathKawazoe(loading, pressure []float64, T float64, geometry string, maxAdsorbed float64, gasPrms dbf.Params, mat adsorbent.Props) (*Result, error) {

	if len(loading) != len(pressure) {
		return nil, chk.Err("loading and pressure arrays must have the same length. %d != %d", len(loading), len(pressure))
	}
	if maxAdsorbed <= 0 {
		return nil, chk.Err("loading at the p/p0=%g cutoff must be positive. %g is invalid", hkPmax, maxAdsorbed)
	}

	// adsorbate interaction properties
	dGas, err := findPrm(gasPrms, "dmol")
	if err != nil {
		return nil, err
	}
	aGas, err := findPrm(gasPrms, "alpha")
	if err != nil {
		return nil, err
	}
	xGas, err := findPrm(gasPrms, "chi")
	if err != nil {
		return nil, err
	}
	nGas, err := findPrm(gasPrms, "nsurf")
	if err != nil {
		return nil, err
	}

	// dispersion constants of Kirkwood and Muller [J・m⁶]
	aG := aGas * 1e-27 // nm³ to m³
	xG := xGas * 1e-27
	aM := mat.Alpha * 1e-27
	xM := mat.Chi * 1e-27
	dispMat := 6.0 * emass * clight * clight * aG * aM / (aG/xG + aM/xM)
	dispGas := 3.0 * emass * clight * clight * aG * xG / 2.0
	interact := nGas*dispGas + mat.Nsurf*dispMat // [J・m⁴]

	// potential as a function of the internal pore dimension [nm]
	var potential func(l float64) float64
	var lmin, lmax float64  // root bracket for the internal dimension
	var width func(l float64) float64

	switch geometry {

	case "slit":
		// slab potential of Horvath and Kawazoe; l is the distance between
		// the nuclei of the two walls
		d0 := dGas + mat.Dmol
		sigma := math.Pow(2.0/5.0, 1.0/6.0) * d0 / 2.0
		sigmaSI := sigma * 1e-9
		coeff := navo / (rgas * T) * interact / math.Pow(sigmaSI, 4.0)
		s4 := math.Pow(sigma, 4.0) / 3.0
		s10 := math.Pow(sigma, 10.0) / 9.0
		tint := -(s4/math.Pow(d0/2.0, 3.0) - s10/math.Pow(d0/2.0, 9.0))
		potential = func(l float64) float64 {
			return coeff / (l - d0) * (s4/math.Pow(l-d0/2.0, 3.0) - s10/math.Pow(l-d0/2.0, 9.0) + tint)
		}
		lmin, lmax = d0*(1.0+1e-4), hkWmax
		width = func(l float64) float64 { return l - mat.Dmol }

	case "cylinder":
		// ring sum of Saito and Foley; l is the pore radius
		d0 := (dGas + mat.Dmol) / 2.0
		d0SI := d0 * 1e-9
		coeff := 0.75 * math.Pi * navo / (rgas * T) * interact / math.Pow(d0SI, 4.0)
		potential = func(l float64) float64 {
			x := d0 / l
			ak, bk := 1.0, 1.0
			sum := 0.0
			for k := 0; k <= hkSFkmax; k++ {
				if k > 0 {
					fa := (-4.5 - float64(k) + 1.0) / float64(k)
					fb := (-1.5 - float64(k) + 1.0) / float64(k)
					ak *= fa * fa
					bk *= fb * fb
				}
				sum += 1.0 / float64(k+1) * math.Pow(1.0-x, 2.0*float64(k)) *
					(21.0/32.0*ak*math.Pow(x, 10.0) - bk*math.Pow(x, 4.0))
			}
			return coeff * sum
		}
		lmin, lmax = (dGas+mat.Dmol)/2.0*(1.0+1e-4), hkWmax/2.0
		width = func(l float64) float64 { return 2.0*l - mat.Dmol }

	case "sphere":
		// Lennard-Jones shell potential of the cavity wall after Cheng and
		// Yang, averaged over the accessible volume; l is the cavity radius.
		// the 6-12 pair potential has its minimum at the contact distance d0
		d0 := (dGas + mat.Dmol) / 2.0
		d0SI := d0 * 1e-9
		b6 := math.Pow(d0SI, 6.0) / 2.0 // repulsive coefficient
		potential = func(l float64) float64 {
			a := l * 1e-9
			rs := (l - d0) * 1e-9 // radius of the accessible sphere
			far := a + rs
			// ∫ r・(a-r)^-k dr and ∫ r・(a+r)^-k dr over r in [0,rs]
			im := func(k float64) float64 {
				f := func(u float64) float64 {
					return a*math.Pow(u, 1.0-k)/(1.0-k) - math.Pow(u, 2.0-k)/(2.0-k)
				}
				return f(a) - f(d0SI)
			}
			ip := func(k float64) float64 {
				f := func(v float64) float64 {
					return math.Pow(v, 2.0-k)/(2.0-k) - a*math.Pow(v, 1.0-k)/(1.0-k)
				}
				return f(far) - f(a)
			}
			brkt := b6/10.0*(im(10)-ip(10)) - 0.25*(im(4)-ip(4))
			return navo / (rgas * T) * 2.0 * math.Pi * interact * a * 3.0 / math.Pow(rs, 3.0) * brkt
		}
		lmin, lmax = d0*(1.0+1e-3), hkWmax/2.0
		width = func(l float64) float64 { return 2.0*l - mat.Dmol }
	}

	// per point root solve. widths come out ascending because both the
	// pressure array and the potential are monotone
	res := new(Result)
	var ws, fs []float64 // solved widths and filling fractions
	for i, p := range pressure {
		if p <= 0 || p > hkPmax {
			res.Skipped = append(res.Skipped, p)
			continue
		}
		target := math.Log(p)
		l, found, err := solveBracketed(func(l float64) float64 { return potential(l) - target }, lmin, lmax)
		if err != nil {
			return nil, err
		}
		if !found {
			res.Skipped = append(res.Skipped, p)
			continue
		}
		ws = append(ws, width(l))
		fs = append(fs, loading[i]/maxAdsorbed)
	}
	if len(ws) < 2 {
		return nil, chk.Err("fewer than two isotherm points have a pore width solution; isotherm is outside the validity range of the method")
	}

	// distribution as the derivative of pore filling with respect to width
	for j := 0; j < len(ws)-1; j++ {
		dw := ws[j+1] - ws[j]
		if dw <= mesoWtol {
			continue
		}
		dist := (fs[j+1] - fs[j]) / dw
		if dist < 0 {
			dist = 0
		}
		res.PoreWidths = append(res.PoreWidths, (ws[j]+ws[j+1])/2.0)
		res.PoreDist = append(res.PoreDist, dist)
	}
	return res, nil
}

// solveBracketed finds the outermost root of f inside [lmin,lmax] by
// scanning for a sign change from the large end and polishing with Brent's
// method. found==false when f does not change sign anywhere in the bracket
func solveBracketed(f func(l float64) float64, lmin, lmax float64) (root float64, found bool, err error) {
	dl := (lmax - lmin) / float64(hkNscan)
	hi := lmax
	fhi := f(hi)
	for i := 1; i <= hkNscan; i++ {
		lo := lmax - float64(i)*dl
		flo := f(lo)
		if flo == 0 {
			return lo, true, nil
		}
		if flo*fhi < 0 {
			var bre num.Brent
			bre.Init(func(x float64) (float64, error) { return f(x), nil })
			root, err = bre.Solve(lo, hi, true)
			if err != nil {
				return 0, false, chk.Err("root polishing failed in [%g,%g]: %v", lo, hi, err)
			}
			return root, true, nil
		}
		hi, fhi = lo, flo
	}
	return 0, false, nil
}

// findPrm returns the value of a named parameter
func findPrm(prms dbf.Params, name string) (float64, error) {
	prm := prms.Find(name)
	if prm == nil {
		return 0, chk.Err("adsorbate property %q is missing from the property set", name)
	}
	return prm.V, nil
}
