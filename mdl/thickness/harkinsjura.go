// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thickness

import "math"

// HarkinsJura implements the Harkins and Jura thickness curve [2]
// for nitrogen at 77 K
type HarkinsJura struct{}

// add model to factory
func init() {
	allocators["Harkins/Jura"] = func() Model { return HarkinsJura{} }
}

// Name returns the name of this model
func (o HarkinsJura) Name() string { return "Harkins/Jura" }

// Thickness computes t = (0.1399/(0.034 - log10(p)))^(1/2) [nm]
func (o HarkinsJura) Thickness(p float64) float64 {
	return math.Sqrt(0.1399 / (0.034 - math.Log10(p)))
}
