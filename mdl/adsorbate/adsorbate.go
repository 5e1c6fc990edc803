// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adsorbate implements physical property models for adsorptive gases
//  References:
//   [1] Horvath G and Kawazoe K (1983) Method for the calculation of effective
//       pore size distribution in molecular sieve carbon, J. Chem. Eng. Japan,
//       16(6), 470-475
//   [2] Lemmon EW and Penoncello SG (1994) The surface tension of air and air
//       component mixtures, Adv. Cryogenic Eng., 39, 1927-1934
package adsorbate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model computes the physical properties of one adsorptive gas.
// Scalar interaction properties returned by Props are:
//  "dmol"  -- molecular diameter [nm]
//  "alpha" -- polarizability [nm³]
//  "chi"   -- magnetic susceptibility [nm³]
//  "nsurf" -- liquid surface density [molecules/m²]
type Model interface {
	Name() string                     // name of adsorbate; e.g. "N2"
	MolarMass() float64               // molar mass [g/mol]
	LiquidDensity(T float64) float64  // saturated liquid density [g/cm³] at temperature T [K]
	SurfaceTension(T float64) float64 // liquid-vapour surface tension [mN/m] at temperature T [K]
	Props() dbf.Params                // scalar interaction properties
}

// Provider resolves an adsorbate identity into a property model. The default
// provider is the built-in table; callers with their own property database
// can substitute an implementation of this interface.
type Provider interface {
	Get(name string) (Model, error)
}

// New returns the property model of a registered adsorbate
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("adsorbate %q is not available in database. registered adsorbates are %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the names of all registered adsorbates
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// Table is the built-in Provider backed by the registered adsorbates
type Table struct{}

// Get resolves name using the built-in registry
func (o Table) Get(name string) (Model, error) { return New(name) }

// allocators holds all available adsorbates
var allocators = map[string]func() Model{}
