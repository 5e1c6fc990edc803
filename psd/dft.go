// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psd

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosorb/iso"
)

// Kernel holds a pre-computed matrix of theoretical isotherms.
// K[i][j] is the loading at Pressures[i] contributed by a unit pore volume
// of width Widths[j]. Both axes must be ascending
type Kernel struct {
	Pressures []float64   // relative pressure axis
	Widths    []float64   // pore width axis [nm]
	K         [][]float64 // len(Pressures) by len(Widths)
}

// KernelProvider loads a kernel from an external resource. The DFT engine is
// the sole consumer; how the resource is stored is not this package's concern
type KernelProvider interface {
	Load(ref string) (*Kernel, error)
}

// limits of the kernel fit
const (
	nnlsTol   = 1e-11 // tolerance on the optimality of the active set
	nnlsMaxit = 3 * 1000
)

// DFTRef loads a kernel through the given provider and runs DFT on it
func DFTRef(isotherm iso.Isotherm, ref string, kernels KernelProvider, opts DFTOptions, verbose bool) (*Result, error) {
	if kernels == nil {
		return nil, chk.Err("a kernel provider must be supplied to resolve kernel %q", ref)
	}
	kernel, err := kernels.Load(ref)
	if err != nil {
		return nil, err
	}
	return DFT(isotherm, kernel, opts, verbose)
}

// kernelFit solves the regularised non-negative deconvolution
//  min ‖K・x - loading‖²  subject to  x ≥ 0
// for the pore volume vector x over the kernel's width axis. The kernel rows
// are interpolated onto the measured pressure grid first; measured pressures
// outside the kernel's pressure range are an error, not truncated. lambda>0
// adds Tikhonov smoothing on the second differences of x
func kernelFit(pressure, loading []float64, kernel *Kernel, lambda float64) (*Result, error) {

	// kernel consistency
	if kernel == nil {
		return nil, chk.Err("a kernel is required for DFT pore size distribution")
	}
	np, nw := len(kernel.Pressures), len(kernel.Widths)
	if np < 2 || nw < 1 {
		return nil, chk.Err("kernel must have at least two pressures and one width. %d x %d is invalid", np, nw)
	}
	if len(kernel.K) != np {
		return nil, chk.Err("kernel matrix has %d rows but %d pressures", len(kernel.K), np)
	}
	for i := range kernel.K {
		if len(kernel.K[i]) != nw {
			return nil, chk.Err("kernel matrix row %d has %d columns but %d widths", i, len(kernel.K[i]), nw)
		}
	}
	if len(pressure) != len(loading) {
		return nil, chk.Err("loading and pressure arrays must have the same length. %d != %d", len(loading), len(pressure))
	}

	// interpolate kernel rows onto the measured pressures
	m := len(pressure)
	A := la.MatAlloc(m, nw)
	for i, p := range pressure {
		if p < kernel.Pressures[0] || p > kernel.Pressures[np-1] {
			return nil, chk.Err("measured pressure %g is outside the kernel pressure range [%g,%g]; pressure grids are mismatched", p, kernel.Pressures[0], kernel.Pressures[np-1])
		}
		k := sort.SearchFloat64s(kernel.Pressures, p)
		if k == 0 {
			k = 1
		}
		f := (p - kernel.Pressures[k-1]) / (kernel.Pressures[k] - kernel.Pressures[k-1])
		for j := 0; j < nw; j++ {
			A[i][j] = kernel.K[k-1][j] + f*(kernel.K[k][j]-kernel.K[k-1][j])
		}
	}
	b := loading

	// smoothing rows: sqrt(lambda) times the second difference operator
	if lambda > 0 && nw > 2 {
		s := math.Sqrt(lambda)
		bb := make([]float64, m, m+nw-2)
		copy(bb, b)
		for j := 1; j < nw-1; j++ {
			row := make([]float64, nw)
			row[j-1], row[j], row[j+1] = s, -2.0*s, s
			A = append(A, row)
			bb = append(bb, 0)
		}
		b = bb
	}

	x, err := nnls(A, b)
	if err != nil {
		return nil, err
	}

	// density over a copy of the kernel's width axis; the result must not
	// share storage with the caller's kernel
	res := &Result{PoreWidths: append([]float64(nil), kernel.Widths...), PoreDist: make([]float64, nw)}
	for j := 0; j < nw; j++ {
		res.PoreDist[j] = x[j] / binWidth(kernel.Widths, j)
	}
	return res, nil
}

// binWidth returns the width increment represented by axis entry j
func binWidth(widths []float64, j int) float64 {
	n := len(widths)
	if n == 1 {
		return 1
	}
	switch j {
	case 0:
		return widths[1] - widths[0]
	case n - 1:
		return widths[n-1] - widths[n-2]
	}
	return (widths[j+1] - widths[j-1]) / 2.0
}

// nnls solves min ‖A・x - b‖² subject to x ≥ 0 with the active set method of
// Lawson and Hanson. The unconstrained subproblems are solved through the
// normal equations, which are symmetric positive definite for any passive
// set of independent columns; a singular subproblem means the kernel is
// ill-conditioned and is reported as such
func nnls(A [][]float64, b []float64) ([]float64, error) {

	m, n := len(A), len(A[0])

	// normal matrix and right hand side
	AtA := la.MatAlloc(n, n)
	Atb := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s float64
			for k := 0; k < m; k++ {
				s += A[k][i] * A[k][j]
			}
			AtA[i][j], AtA[j][i] = s, s
		}
		for k := 0; k < m; k++ {
			Atb[i] += A[k][i] * b[k]
		}
	}

	x := make([]float64, n)
	passive := make([]bool, n)
	grad := make([]float64, n)

	for it := 0; it < nnlsMaxit; it++ {

		// gradient of the objective: Atb - AtA・x
		for i := 0; i < n; i++ {
			grad[i] = Atb[i]
			for j := 0; j < n; j++ {
				grad[i] -= AtA[i][j] * x[j]
			}
		}

		// most violated constraint among the free variables
		jmax, wmax := -1, nnlsTol
		for j := 0; j < n; j++ {
			if !passive[j] && grad[j] > wmax {
				jmax, wmax = j, grad[j]
			}
		}
		if jmax < 0 {
			return x, nil // optimal
		}
		passive[jmax] = true

		// inner loop: solve on the passive set and clip until feasible
		for {
			idx := passiveIndices(passive)
			z, err := solvePassive(AtA, Atb, idx)
			if err != nil {
				return nil, err
			}
			neg := false
			for k := range idx {
				if z[k] <= 0 {
					neg = true
				}
			}
			if !neg {
				for i := range x {
					x[i] = 0
				}
				for k, j := range idx {
					x[j] = z[k]
				}
				break
			}
			alpha := 1.0
			for k, j := range idx {
				if z[k] <= 0 {
					a := x[j] / (x[j] - z[k])
					if a < alpha {
						alpha = a
					}
				}
			}
			for k, j := range idx {
				x[j] += alpha * (z[k] - x[j])
				if x[j] <= nnlsTol {
					x[j] = 0
					passive[j] = false
				}
			}
		}
	}
	return nil, chk.Err("non-negative least squares did not converge after %d iterations; kernel is ill-conditioned", nnlsMaxit)
}

// solvePassive solves the normal equations restricted to the passive columns
func solvePassive(AtA [][]float64, Atb []float64, idx []int) ([]float64, error) {
	ns := len(idx)
	As := la.MatAlloc(ns, ns)
	bs := make([]float64, ns)
	for k, i := range idx {
		for l, j := range idx {
			As[k][l] = AtA[i][j]
		}
		bs[k] = Atb[i]
	}
	z := make([]float64, ns)
	err := la.SPDsolve(z, As, bs)
	if err != nil {
		return nil, chk.Err("normal equations of the kernel fit are singular; kernel is ill-conditioned: %v", err)
	}
	return z, nil
}

func passiveIndices(passive []bool) (idx []int) {
	for j, on := range passive {
		if on {
			idx = append(idx, j)
		}
	}
	return
}
