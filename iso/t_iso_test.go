// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_iso01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso01. branch filtering and interpolation")

	p := []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.8, 0.4, 0.2}
	n := []float64{1, 2, 3, 4, 5, 4.8, 2.9, 1.6}
	data, err := NewData("N2", 77.355, BasisMass, PressureRelative, p, n, 5)
	if err != nil {
		tst.Errorf("NewData failed: %v\n", err)
		return
	}

	chk.Vector(tst, "P ads", 1e-17, data.Pressure(Adsorption), []float64{0.1, 0.3, 0.5, 0.7, 0.9})
	chk.Vector(tst, "N ads", 1e-17, data.Loading(Adsorption), []float64{1, 2, 3, 4, 5})
	chk.Vector(tst, "P des", 1e-17, data.Pressure(Desorption), []float64{0.8, 0.4, 0.2})
	chk.Vector(tst, "N des", 1e-17, data.Loading(Desorption), []float64{4.8, 2.9, 1.6})

	chk.Scalar(tst, "N(0.5)", 1e-15, data.LoadingAt(0.5), 3.0)
	chk.Scalar(tst, "N(0.4)", 1e-15, data.LoadingAt(0.4), 2.5)
	chk.Scalar(tst, "N(0.05)", 1e-15, data.LoadingAt(0.05), 1.0)
	chk.Scalar(tst, "N(0.95)", 1e-15, data.LoadingAt(0.95), 5.0)

	chk.StrAssert(data.Adsorbate(), "N2")
	chk.Scalar(tst, "T", 1e-17, data.Temp(), 77.355)
}

func Test_iso02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso02. construction errors")

	_, err := NewData("N2", 77.355, BasisMass, PressureRelative, []float64{0.1, 0.2}, []float64{1}, 2)
	if err == nil {
		tst.Errorf("mismatched lengths must fail\n")
		return
	}

	_, err = NewData("N2", 77.355, BasisMass, PressureRelative, []float64{0.3, 0.1}, []float64{1, 2}, 2)
	if err == nil {
		tst.Errorf("unsorted adsorption branch must fail\n")
		return
	}

	_, err = NewData("N2", 77.355, BasisMass, PressureRelative, []float64{0.1, 0.3, 0.5, 0.7}, []float64{1, 2, 3, 4}, 2)
	if err == nil {
		tst.Errorf("ascending desorption branch must fail\n")
		return
	}
}

func Test_iso03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso03. empty branches return nil")

	data, err := NewData("N2", 77.355, BasisMass, PressureRelative, []float64{0.1, 0.5}, []float64{1, 2}, 2)
	if err != nil {
		tst.Errorf("NewData failed: %v\n", err)
		return
	}
	if data.Pressure(Desorption) != nil {
		tst.Errorf("empty desorption branch must return nil\n")
	}
	if data.Loading(Desorption) != nil {
		tst.Errorf("empty desorption branch must return nil\n")
	}
}
