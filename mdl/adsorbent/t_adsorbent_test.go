// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adsorbent

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. registered property sets")

	carbon, err := New("Carbon(HK)")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "carbon dmol", 1e-17, carbon.Dmol, 0.34)
	chk.Scalar(tst, "carbon nsurf", 1e10, carbon.Nsurf, 3.845e19)

	oxide, err := New("OxideIon(SF)")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "oxide dmol", 1e-17, oxide.Dmol, 0.276)

	prms := carbon.Prms()
	for _, name := range []string{"dmol", "alpha", "chi", "nsurf"} {
		if prms.Find(name) == nil {
			tst.Errorf("parameter %q is missing\n", name)
			return
		}
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. unregistered property set")

	_, err := New("Diamond")
	if err == nil {
		tst.Errorf("unregistered adsorbent must fail\n")
	}
}
