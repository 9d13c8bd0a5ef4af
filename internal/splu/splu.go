// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splu is a small sparse-matrix triplet and LU-solve facade,
// grounded on gosl/la's Triplet.Put(i,j,v) idiom but implemented with
// the standard library only: the QSS systems this package serves are
// sized by the number of declared QSS species, always small, so a
// dense partial-pivoting solve over the triplet's nonzero pattern is
// adequate without pulling in a cgo-bound sparse factorization.
package splu

import (
	"errors"
	"math"
)

// Triplet is a sparse matrix built by repeated (i, j, value) inserts,
// mirroring gosl/la's Triplet.Put accumulate-on-duplicate semantics.
type Triplet struct {
	n       int
	entries map[[2]int]float64
}

// NewTriplet allocates an n x n triplet.
func NewTriplet(n int) *Triplet {
	return &Triplet{n: n, entries: make(map[[2]int]float64)}
}

// Put adds v to the (i,j) entry, accumulating on repeated calls.
func (t *Triplet) Put(i, j int, v float64) {
	t.entries[[2]int{i, j}] += v
}

// Size returns the matrix dimension.
func (t *Triplet) Size() int { return t.n }

// Pattern is the symbolic nonzero structure of a Triplet, computed
// once and reusable across numeric refactorizations that share the
// same connectivity (spec.md §9 "Sparse LU for QSS: reuse symbolic
// factorization across state updates; re-factor numerically each
// call").
type Pattern struct {
	n        int
	nonzeros [][2]int
}

// Analyze extracts the symbolic nonzero pattern from t.
func (t *Triplet) Analyze() *Pattern {
	p := &Pattern{n: t.n}
	for k := range t.entries {
		p.nonzeros = append(p.nonzeros, k)
	}
	return p
}

// Solver performs a numeric LU factorization and solve against a
// Triplet sharing pattern's dimension.
type Solver struct {
	pattern *Pattern
}

// NewSolver binds a solver to a previously analyzed pattern.
func NewSolver(pattern *Pattern) *Solver { return &Solver{pattern: pattern} }

// Solve factors t (partial-pivoted Gaussian elimination over its
// dense expansion) and solves A·x = b, returning x.
func (s *Solver) Solve(t *Triplet, b []float64) ([]float64, error) {
	n := t.n
	if n != s.pattern.n || n != len(b) {
		return nil, errors.New("splu: dimension mismatch")
	}
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
	}
	for k, v := range t.entries {
		A[k[0]][k[1]] += v
	}
	x := append([]float64(nil), b...)

	for col := 0; col < n; col++ {
		piv := col
		maxAbs := math.Abs(A[col][col])
		for r := col + 1; r < n; r++ {
			if math.Abs(A[r][col]) > maxAbs {
				maxAbs = math.Abs(A[r][col])
				piv = r
			}
		}
		if maxAbs == 0 {
			return nil, errors.New("splu: singular matrix")
		}
		if piv != col {
			A[col], A[piv] = A[piv], A[col]
			x[col], x[piv] = x[piv], x[col]
		}
		for r := col + 1; r < n; r++ {
			factor := A[r][col] / A[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				A[r][c] -= factor * A[col][c]
			}
			x[r] -= factor * x[col]
		}
	}

	for row := n - 1; row >= 0; row-- {
		sum := x[row]
		for c := row + 1; c < n; c++ {
			sum -= A[row][c] * x[c]
		}
		x[row] = sum / A[row][row]
	}
	return x, nil
}
