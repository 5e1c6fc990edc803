// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thickness implements statistical film thickness models
//  References:
//   [1] Halsey G (1948) Physical adsorption on non-uniform surfaces,
//       J. Chem. Phys., 16(10), 931-937
//   [2] Harkins WD and Jura G (1944) Surfaces of solids XIII, J. Am. Chem.
//       Soc., 66(8), 1366-1373
package thickness

import "github.com/cpmech/gosl/chk"

// Model computes the statistical thickness of the adsorbed multilayer film.
// Thickness must be monotonically increasing with pressure over (0,1);
// callers are responsible for keeping p inside (0,1)
type Model interface {
	Name() string                // name of thickness model
	Thickness(p float64) float64 // film thickness [nm] at relative pressure p
}

// New returns a registered thickness model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("thickness model %q is not available in database. registered models are %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the names of all registered thickness models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
