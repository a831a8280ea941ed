// SPDX-License-Identifier: MIT

// Package qobj: dense complex LU kernel.
// In-place LU factorization with partial pivoting, a multi-RHS solver and
// the inverse built on top. The pivoting is not optional here: ladder-like
// operators carry exact zeros on the diagonal and a non-pivoting scheme
// would declare them singular immediately.
//
// All kernels work on *denseMat and are internal: facades (Pow, ExpM)
// validate, densify and wrap errors.
package qobj

import "math/cmplx"

// luFactor factorizes a copy of a into a packed LU form (unit lower / upper
// in one matrix) plus the row permutation. Returns ErrSingular when no
// usable pivot remains in a column.
//
// Steps:
//  1. Clone a (inputs are immutable everywhere in this package).
//  2. For each column k: pick the row with the largest |pivot|, swap,
//     record the permutation.
//  3. Eliminate below the pivot, storing multipliers in place.
//
// Complexity: O(n³) time, O(n²) space for the clone.
func luFactor(a *denseMat) (*denseMat, []int, error) {
	n := a.Rows()
	lu := a.clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// Partial pivot: largest modulus in column k at or below the diagonal.
		p := k
		best := cmplx.Abs(lu.at(k, k))
		for i := k + 1; i < n; i++ {
			if m := cmplx.Abs(lu.at(i, k)); m > best {
				best, p = m, i
			}
		}
		if best == 0 {
			return nil, nil, ErrSingular
		}
		if p != k {
			for j := 0; j < n; j++ {
				tmp := lu.at(k, j)
				lu.set(k, j, lu.at(p, j))
				lu.set(p, j, tmp)
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		piv := lu.at(k, k)
		for i := k + 1; i < n; i++ {
			m := lu.at(i, k) / piv
			lu.set(i, k, m)
			for j := k + 1; j < n; j++ {
				lu.set(i, j, lu.at(i, j)-m*lu.at(k, j))
			}
		}
	}

	return lu, perm, nil
}

// luSolve solves A·X = B given the packed factorization of A. B is not
// mutated; X is freshly allocated with B's shape.
func luSolve(lu *denseMat, perm []int, b *denseMat) *denseMat {
	n, cols := lu.Rows(), b.Cols()
	x := newDense(n, cols)

	for c := 0; c < cols; c++ {
		// Forward substitution on the permuted RHS (unit lower triangle).
		for i := 0; i < n; i++ {
			sum := b.at(perm[i], c)
			for j := 0; j < i; j++ {
				sum -= lu.at(i, j) * x.at(j, c)
			}
			x.set(i, c, sum)
		}
		// Back substitution (upper triangle).
		for i := n - 1; i >= 0; i-- {
			sum := x.at(i, c)
			for j := i + 1; j < n; j++ {
				sum -= lu.at(i, j) * x.at(j, c)
			}
			x.set(i, c, sum/lu.at(i, i))
		}
	}

	return x
}

// invDense inverts a square dense matrix by solving A·X = I.
func invDense(a *denseMat) (*denseMat, error) {
	lu, perm, err := luFactor(a)
	if err != nil {
		return nil, err
	}
	n := a.Rows()
	eye := newDense(n, n)
	for i := 0; i < n; i++ {
		eye.set(i, i, 1)
	}

	return luSolve(lu, perm, eye), nil
}
