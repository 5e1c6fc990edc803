// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psd

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// plotResult renders a pore size distribution. Pure side effect: the result
// is never modified. Mesopore and DFT distributions span decades of width
// and are drawn against log10(w); micropore ones on a linear axis
func plotResult(res *Result, label string, logx bool) {
	plt.Reset(false, nil)
	x := res.PoreWidths
	xlabel := "$w$ [nm]"
	if logx {
		x = make([]float64, len(res.PoreWidths))
		for i, w := range res.PoreWidths {
			x[i] = math.Log10(w)
		}
		xlabel = "$\\log_{10}(w)$ [nm]"
	}
	plt.Plot(x, res.PoreDist, &plt.A{C: "b", M: ".", L: label, NoClip: true})
	plt.Gll(xlabel, "$dV/dw$ [cm$^3$/(g$\\cdot$nm)]", nil)
	plt.Save("/tmp/gosorb", io.Sf("psd_%s", label))
}
