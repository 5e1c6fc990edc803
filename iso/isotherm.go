// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package iso provides access to gas adsorption isotherm data
package iso

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// branches of an isotherm
const (
	Adsorption = "adsorption" // increasing pressure branch
	Desorption = "desorption" // decreasing pressure branch
)

// loading basis flags
const (
	BasisMass  = "mass"  // loading per mass of adsorbent [mmol/g]
	BasisVol   = "vol"   // loading per volume of adsorbent
	BasisMolar = "molar" // loading per molar amount of adsorbent
)

// pressure mode flags
const (
	PressureRelative = "relative" // p/p0
	PressureAbsolute = "absolute" // p in pressure units
)

// Isotherm gives read access to one measured adsorption isotherm.
// Implementations must return branch-filtered slices with pressures in
// ascending order for the adsorption branch and descending order for the
// desorption branch; i.e. in the order the experiment was run.
type Isotherm interface {
	Adsorbate() string                // identity of the adsorbed gas; e.g. "N2"
	Temp() float64                    // experiment temperature [K]
	LoadingBasis() string             // one of BasisMass, BasisVol, BasisMolar
	PressureMode() string             // one of PressureRelative, PressureAbsolute
	Pressure(branch string) []float64 // pressures of branch; nil if branch has no data
	Loading(branch string) []float64  // loadings of branch; nil if branch has no data
	LoadingAt(p float64) float64      // loading interpolated at pressure p (adsorption branch)
}

// Data is a point-by-point isotherm; it implements Isotherm
type Data struct {

	// metadata
	Gas   string  // adsorbate identity
	T     float64 // experiment temperature [K]
	Basis string  // loading basis
	Pmode string  // pressure mode

	// measured points
	P []float64 // pressures; adsorption branch first, ascending
	N []float64 // loadings corresponding to P

	// branch split
	nads int // number of points in the adsorption branch
}

// NewData checks and wraps measured points into a Data isotherm.
//  nads -- number of leading points belonging to the adsorption branch;
//          the remaining points form the desorption branch
func NewData(gas string, temp float64, basis, pmode string, p, n []float64, nads int) (*Data, error) {
	if len(p) != len(n) {
		return nil, chk.Err("pressure and loading arrays must have the same length. %d != %d", len(p), len(n))
	}
	if nads < 0 || nads > len(p) {
		return nil, chk.Err("adsorption branch size %d is outside [0,%d]", nads, len(p))
	}
	if !sort.Float64sAreSorted(p[:nads]) {
		return nil, chk.Err("adsorption branch pressures must be in ascending order")
	}
	for i := nads + 1; i < len(p); i++ {
		if p[i] > p[i-1] {
			return nil, chk.Err("desorption branch pressures must be in descending order")
		}
	}
	return &Data{Gas: gas, T: temp, Basis: basis, Pmode: pmode, P: p, N: n, nads: nads}, nil
}

// Adsorbate returns the adsorbate identity
func (o *Data) Adsorbate() string { return o.Gas }

// Temp returns the experiment temperature [K]
func (o *Data) Temp() float64 { return o.T }

// LoadingBasis returns the loading basis flag
func (o *Data) LoadingBasis() string { return o.Basis }

// PressureMode returns the pressure mode flag
func (o *Data) PressureMode() string { return o.Pmode }

// Pressure returns the pressures of one branch; nil if the branch is empty
func (o *Data) Pressure(branch string) []float64 {
	switch branch {
	case Adsorption:
		if o.nads == 0 {
			return nil
		}
		return o.P[:o.nads]
	case Desorption:
		if o.nads == len(o.P) {
			return nil
		}
		return o.P[o.nads:]
	}
	return nil
}

// Loading returns the loadings of one branch; nil if the branch is empty
func (o *Data) Loading(branch string) []float64 {
	switch branch {
	case Adsorption:
		if o.nads == 0 {
			return nil
		}
		return o.N[:o.nads]
	case Desorption:
		if o.nads == len(o.P) {
			return nil
		}
		return o.N[o.nads:]
	}
	return nil
}

// LoadingAt returns the loading at pressure p, linearly interpolated over the
// adsorption branch. Outside the measured range the closest endpoint is used.
func (o *Data) LoadingAt(p float64) float64 {
	pp := o.P[:o.nads]
	nn := o.N[:o.nads]
	if len(pp) == 0 {
		return 0
	}
	if p <= pp[0] {
		return nn[0]
	}
	if p >= pp[len(pp)-1] {
		return nn[len(nn)-1]
	}
	i := sort.SearchFloat64s(pp, p)
	f := (p - pp[i-1]) / (pp[i] - pp[i-1])
	return nn[i-1] + f*(nn[i]-nn[i-1])
}
