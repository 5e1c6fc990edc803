// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thickness

import "math"

// Halsey implements the Halsey thickness curve [1] for nitrogen at 77 K
type Halsey struct{}

// add model to factory
func init() {
	allocators["Halsey"] = func() Model { return Halsey{} }
}

// Name returns the name of this model
func (o Halsey) Name() string { return "Halsey" }

// Thickness computes t = 0.354・(-5/ln(p))^(1/3) [nm]
func (o Halsey) Thickness(p float64) float64 {
	return 0.354 * math.Pow(-5.0/math.Log(p), 0.333)
}
