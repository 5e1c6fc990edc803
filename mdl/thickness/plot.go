// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thickness

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots a thickness curve over relative pressures [pmin,pmax]
//  args -- plot arguments; may be nil
func Plot(mdl Model, pmin, pmax float64, npts int, args *plt.A) (P, T []float64) {
	P = utl.LinSpace(pmin, pmax, npts)
	T = make([]float64, npts)
	for i, p := range P {
		T[i] = mdl.Thickness(p)
	}
	if args == nil {
		args = &plt.A{}
	}
	args.L = mdl.Name()
	args.NoClip = true
	plt.Plot(P, T, args)
	return
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.Gll("$p/p_0$", "$t$ [nm]", nil)
	if show {
		plt.Show()
	}
}
