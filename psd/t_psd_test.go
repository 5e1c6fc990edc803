// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psd

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosorb/iso"
)

// nitrogen test isotherm with an adsorption branch only
func n2ads(tst *testing.T, basis, pmode string) *iso.Data {
	data, err := iso.NewData("N2", 77.355, basis, pmode,
		[]float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99},
		[]float64{10, 12, 14, 16, 18, 20}, 6)
	if err != nil {
		tst.Fatalf("NewData failed: %v\n", err)
	}
	return data
}

func Test_check01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check01. loading basis and pressure mode")

	opts := MesoOptions{Branch: iso.Adsorption}

	_, err := Mesoporous(n2ads(tst, iso.BasisMolar, iso.PressureRelative), "BJH", "", opts, false)
	if err == nil {
		tst.Errorf("molar loading basis must fail\n")
		return
	}
	if !strings.Contains(err.Error(), "mass") {
		tst.Errorf("error must name the required basis: %v\n", err)
		return
	}

	_, err = Mesoporous(n2ads(tst, iso.BasisMass, iso.PressureAbsolute), "BJH", "", opts, false)
	if err == nil {
		tst.Errorf("absolute pressure mode must fail\n")
		return
	}
	if !strings.Contains(err.Error(), "relative") {
		tst.Errorf("error must name the required mode: %v\n", err)
		return
	}

	_, err = Microporous(n2ads(tst, iso.BasisMolar, iso.PressureRelative), "HK", "", MicroOptions{}, false)
	if err == nil {
		tst.Errorf("molar loading basis must fail for micropore analysis\n")
	}
}

func Test_check02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check02. model and geometry registries")

	data := n2ads(tst, iso.BasisMass, iso.PressureRelative)
	opts := MesoOptions{Branch: iso.Adsorption}

	_, err := Mesoporous(data, "", "", opts, false)
	if err == nil {
		tst.Errorf("empty model name must fail\n")
		return
	}

	_, err = Mesoporous(data, "XYZ", "", opts, false)
	if err == nil {
		tst.Errorf("unregistered model must fail\n")
		return
	}
	for _, name := range MesoModels {
		if !strings.Contains(err.Error(), name) {
			tst.Errorf("error must enumerate the registry: %v\n", err)
			return
		}
	}

	_, err = Mesoporous(data, "BJH", "cone", opts, false)
	if err == nil {
		tst.Errorf("unregistered geometry must fail\n")
		return
	}

	_, err = Microporous(data, "BJH", "", MicroOptions{}, false)
	if err == nil {
		tst.Errorf("meso model must not be accepted by the micropore registry\n")
		return
	}
	if !strings.Contains(err.Error(), "HK") {
		tst.Errorf("error must enumerate the registry: %v\n", err)
	}
}

func Test_check03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check03. branch and sub-model overrides")

	data := n2ads(tst, iso.BasisMass, iso.PressureRelative)

	_, err := Mesoporous(data, "BJH", "", MesoOptions{}, false)
	if err == nil {
		tst.Errorf("missing branch must fail\n")
		return
	}
	if !strings.Contains(err.Error(), "adsorption") || !strings.Contains(err.Error(), "desorption") {
		tst.Errorf("error must name the valid branches: %v\n", err)
		return
	}

	_, err = Mesoporous(data, "BJH", "", MesoOptions{Branch: "scanning"}, false)
	if err == nil {
		tst.Errorf("invalid branch must fail\n")
		return
	}

	_, err = Mesoporous(data, "BJH", "", MesoOptions{Branch: iso.Adsorption, ThicknessModel: "XYZ"}, false)
	if err == nil {
		tst.Errorf("unregistered thickness model must fail\n")
		return
	}

	_, err = Microporous(data, "HK", "slit", MicroOptions{AdsorbentModel: "Diamond"}, false)
	if err == nil {
		tst.Errorf("unregistered adsorbent model must fail\n")
		return
	}

	_, err = Mesoporous(data, "BJH", "", MesoOptions{Branch: iso.Desorption}, false)
	if err == nil {
		tst.Errorf("empty desorption branch must fail\n")
	}
}

func Test_check04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check04. unknown adsorbate")

	data, err := iso.NewData("Kr", 77.355, iso.BasisMass, iso.PressureRelative,
		[]float64{0.1, 0.5, 0.9}, []float64{1, 2, 3}, 3)
	if err != nil {
		tst.Errorf("NewData failed: %v\n", err)
		return
	}
	_, err = Mesoporous(data, "BJH", "", MesoOptions{Branch: iso.Adsorption}, false)
	if err == nil {
		tst.Errorf("adsorbate missing from the property database must fail\n")
	}
}
