// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package psd computes pore size distributions of porous adsorbents from
// measured gas adsorption isotherms. Three families of methods are provided:
// classical mesopore methods (BJH, Dollimore-Heal), the micropore method of
// Horvath and Kawazoe, and deconvolution against a DFT kernel
//  References:
//   [1] Barrett EP, Joyner LG and Halenda PP (1951) The determination of pore
//       volume and area distributions in porous substances, J. Am. Chem.
//       Soc., 73(1), 373-380
//   [2] Dollimore D and Heal GR (1964) An improved method for the calculation
//       of pore size distribution from adsorption data, J. Appl. Chem., 14,
//       109-114
//   [3] Horvath G and Kawazoe K (1983) Method for the calculation of
//       effective pore size distribution in molecular sieve carbon,
//       J. Chem. Eng. Japan, 16(6), 470-475
package psd

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosorb/iso"
	"github.com/cpmech/gosorb/mdl/adsorbate"
	"github.com/cpmech/gosorb/mdl/adsorbent"
	"github.com/cpmech/gosorb/mdl/kelvin"
	"github.com/cpmech/gosorb/mdl/thickness"
)

// model registries. immutable; dispatch is by exhaustive switch and these
// sets exist for validation and error reporting only
var (
	MesoModels     = []string{"BJH", "DH"}                  // mesopore methods
	MicroModels    = []string{"HK"}                         // micropore methods
	PoreGeometries = []string{"slit", "cylinder", "sphere"} // pore geometries
)

// Result holds a computed pore size distribution. PoreWidths and PoreDist
// have the same length; PoreDist entries are non-negative pore volume
// densities dV/dw. Skipped lists the relative pressures of isotherm points
// the engine had to leave out (degenerate step or no root in bracket)
type Result struct {
	PoreWidths []float64 // pore widths [nm]
	PoreDist   []float64 // pore volume density [cm³/(g・nm)]
	Skipped    []float64 // relative pressures of skipped points
}

// MesoOptions holds the configuration of a mesopore calculation
type MesoOptions struct {
	Branch         string // mandatory: "adsorption" or "desorption"
	ThicknessModel string // thickness model override; default is "Harkins/Jura"
}

// MicroOptions holds the configuration of a micropore calculation
type MicroOptions struct {
	AdsorbentModel string // adsorbent property set override; default is "Carbon(HK)"
}

// DFTOptions holds the configuration of a DFT kernel fit
type DFTOptions struct {
	Lambda float64 // Tikhonov smoothing strength; 0 disables smoothing (default)
}

// Gases resolves adsorbate identities to property models. Replaceable by
// callers with their own property database
var Gases adsorbate.Provider = adsorbate.Table{}

// Mesoporous computes the pore size distribution with a classical mesopore
// method (Kelvin condensation plus statistical film)
//  model    -- one of MesoModels
//  geometry -- one of PoreGeometries; "" means "cylinder"
//  verbose  -- plot the resulting distribution
func Mesoporous(isotherm iso.Isotherm, model, geometry string, opts MesoOptions, verbose bool) (*Result, error) {

	// parameter checks
	geometry, err := checkCommon(isotherm, model, geometry, MesoModels)
	if err != nil {
		return nil, err
	}
	switch opts.Branch {
	case iso.Adsorption, iso.Desorption:
	case "":
		return nil, chk.Err("branch must be specified for mesopore analysis. select either %q or %q", iso.Adsorption, iso.Desorption)
	default:
		return nil, chk.Err("branch %q is invalid. select either %q or %q", opts.Branch, iso.Adsorption, iso.Desorption)
	}
	tname := opts.ThicknessModel
	if tname == "" {
		tname = "Harkins/Jura"
	}
	tmodel, err := thickness.New(tname)
	if err != nil {
		return nil, err
	}

	// adsorbate properties
	gas, err := Gases.Get(isotherm.Adsorbate())
	if err != nil {
		return nil, err
	}
	T := isotherm.Temp()
	liqDensity := gas.LiquidDensity(T)
	molarMass := gas.MolarMass()
	surfTension := gas.SurfaceTension(T)

	// branch data; adsorption runs are reversed so that both branches are
	// processed from high to low pressure (pore emptying order)
	pressure := isotherm.Pressure(opts.Branch)
	loading := isotherm.Loading(opts.Branch)
	if len(pressure) == 0 {
		return nil, chk.Err("isotherm has no data on the %q branch", opts.Branch)
	}
	if opts.Branch == iso.Adsorption {
		pressure = reversed(pressure)
		loading = reversed(loading)
	}

	// kelvin model
	mgeom, err := kelvin.Geometry(opts.Branch, geometry)
	if err != nil {
		return nil, err
	}
	var kmodel kelvin.Radius
	err = kmodel.Init(mgeom, T, liqDensity, molarMass, surfTension)
	if err != nil {
		return nil, err
	}

	// engine
	var res *Result
	switch model {
	case "BJH":
		res, err = mesoEngine(loading, pressure, geometry, tmodel, &kmodel, liqDensity, molarMass, false)
	case "DH":
		res, err = mesoEngine(loading, pressure, geometry, tmodel, &kmodel, liqDensity, molarMass, true)
	}
	if err != nil {
		return nil, err
	}

	if verbose {
		plotResult(res, model, true)
	}
	return res, nil
}

// Microporous computes the pore size distribution with a micropore
// adsorption-potential method
//  model    -- one of MicroModels
//  geometry -- one of PoreGeometries; "" means "cylinder"
//  verbose  -- plot the resulting distribution
func Microporous(isotherm iso.Isotherm, model, geometry string, opts MicroOptions, verbose bool) (*Result, error) {

	// parameter checks
	geometry, err := checkCommon(isotherm, model, geometry, MicroModels)
	if err != nil {
		return nil, err
	}
	mname := opts.AdsorbentModel
	if mname == "" {
		mname = "Carbon(HK)"
	}
	material, err := adsorbent.New(mname)
	if err != nil {
		return nil, err
	}

	// adsorbate properties
	gas, err := Gases.Get(isotherm.Adsorbate())
	if err != nil {
		return nil, err
	}

	// micropore methods always use the adsorption branch
	pressure := isotherm.Pressure(iso.Adsorption)
	loading := isotherm.Loading(iso.Adsorption)
	if len(pressure) == 0 {
		return nil, chk.Err("isotherm has no data on the %q branch", iso.Adsorption)
	}
	maxAdsorbed := isotherm.LoadingAt(0.9)

	// engine
	var res *Result
	switch model {
	case "HK":
		res, err = horvathKawazoe(loading, pressure, isotherm.Temp(), geometry, maxAdsorbed, gas.Props(), material)
	}
	if err != nil {
		return nil, err
	}

	if verbose {
		plotResult(res, model, false)
	}
	return res, nil
}

// DFT computes the pore size distribution by deconvolving the isotherm
// against a pre-computed theoretical kernel
//  verbose -- plot the resulting distribution
func DFT(isotherm iso.Isotherm, kernel *Kernel, opts DFTOptions, verbose bool) (*Result, error) {
	pressure := isotherm.Pressure(iso.Adsorption)
	loading := isotherm.Loading(iso.Adsorption)
	if len(pressure) == 0 {
		return nil, chk.Err("isotherm has no data on the %q branch", iso.Adsorption)
	}
	res, err := kernelFit(pressure, loading, kernel, opts.Lambda)
	if err != nil {
		return nil, err
	}
	if verbose {
		plotResult(res, "DFT", true)
	}
	return res, nil
}

// checkCommon runs the precondition checks shared by the classical methods
// and applies the default pore geometry. Order matters: loading basis, then
// pressure mode, then model, then geometry
func checkCommon(isotherm iso.Isotherm, model, geometry string, registry []string) (string, error) {
	if isotherm.LoadingBasis() != iso.BasisMass {
		return "", chk.Err("isotherm loading must be per mass of adsorbent. basis %q is invalid; convert the isotherm first", isotherm.LoadingBasis())
	}
	if isotherm.PressureMode() != iso.PressureRelative {
		return "", chk.Err("isotherm pressure must be in relative mode. mode %q is invalid; convert the isotherm first", isotherm.PressureMode())
	}
	if model == "" {
		return "", chk.Err("a pore size distribution model must be specified. available models are %v", registry)
	}
	if !contains(registry, model) {
		return "", chk.Err("model %q is not available for pore size distribution. available models are %v", model, registry)
	}
	if geometry == "" {
		geometry = "cylinder"
	}
	if !contains(PoreGeometries, geometry) {
		return "", chk.Err("pore geometry %q is not available. available geometries are %v", geometry, PoreGeometries)
	}
	return geometry, nil
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func reversed(v []float64) []float64 {
	r := make([]float64, len(v))
	for i, x := range v {
		r[len(v)-1-i] = x
	}
	return r
}
