// SPDX-License-Identifier: MIT

// Package qobj: complex Hermitian Jacobi eigen kernel.
// Classical two-sided Jacobi with unitary plane rotations. Hermiticity is a
// precondition asserted by the caller (the hint gates every facade); the
// kernel reads the diagonal as real and keeps it real by construction.
//
// Determinism: pivot search scans the strict upper triangle in fixed i→j
// order and ties keep the first maximum; eigenpairs are sorted ascending by
// eigenvalue before returning.
package qobj

import (
	"math"
	"math/cmplx"
	"sort"
)

// hermEigen diagonalizes a Hermitian dense matrix: a = V·diag(vals)·V†.
// vals come back ascending, V holds the matching orthonormal eigenvectors
// as columns. The input is not mutated.
//
// Steps (one rotation per iteration, classical Jacobi):
//
//	J.1  Find pivot (p,q) maximizing |A[p,q]| over the upper triangle.
//	J.2  Converged when the maximum is below tol.
//	J.3  Rotation parameters: with m=|A[p,q]|, φ=A[p,q]/m and
//	     τ=(A[q,q]−A[p,p])/(2m), take t=sign(τ)/(|τ|+hypot(τ,1)),
//	     c=1/sqrt(t²+1), s=t·c, σ=s·φ.
//	J.4  Apply the unitary rotation to A, zeroing A[p,q] exactly.
//	J.5  Accumulate the rotation into V.
//
// Complexity: O(n) per rotation for the update, O(n²) for the pivot scan;
// rotations are capped at maxIter before ErrEigenFailed.
func hermEigen(a *denseMat, tol float64, maxIter int) ([]float64, *denseMat, error) {
	n := a.Rows()
	work := a.clone()
	vecs := newDense(n, n)
	for i := 0; i < n; i++ {
		vecs.set(i, i, 1)
	}

	var p, q int
	for iter := 0; iter < maxIter; iter++ {
		// J.1: pivot search over the strict upper triangle.
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := cmplx.Abs(work.at(i, j)); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}

		// J.2: convergence.
		if maxOff < tol {
			break
		}

		// J.3: rotation parameters.
		app := real(work.at(p, p))
		aqq := real(work.at(q, q))
		apq := work.at(p, q)
		m := cmplx.Abs(apq)
		phi := apq / complex(m, 0)
		tau := (aqq - app) / (2 * m)
		t := math.Copysign(1.0/(math.Abs(tau)+math.Hypot(tau, 1)), tau)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c
		sigma := complex(s, 0) * phi

		// J.4: rotate A. Off-pivot rows/columns first, by Hermiticity in
		// mirrored pairs.
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip := work.at(i, p)
			aiq := work.at(i, q)
			newIP := complex(c, 0)*aip - cmplx.Conj(sigma)*aiq
			newIQ := sigma*aip + complex(c, 0)*aiq
			work.set(i, p, newIP)
			work.set(p, i, cmplx.Conj(newIP))
			work.set(i, q, newIQ)
			work.set(q, i, cmplx.Conj(newIQ))
		}
		// Pivot block: diagonals stay real, off-diagonal vanishes.
		work.set(p, p, complex(c*c*app-2*c*s*m+s*s*aqq, 0))
		work.set(q, q, complex(s*s*app+2*c*s*m+c*c*aqq, 0))
		work.set(p, q, 0)
		work.set(q, p, 0)

		// J.5: accumulate into the eigenvector matrix.
		for i := 0; i < n; i++ {
			vip := vecs.at(i, p)
			viq := vecs.at(i, q)
			vecs.set(i, p, complex(c, 0)*vip-cmplx.Conj(sigma)*viq)
			vecs.set(i, q, sigma*vip+complex(c, 0)*viq)
		}
	}

	// Final convergence check: the budget must have sufficed.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cmplx.Abs(work.at(i, j)) >= tol {
				return nil, nil, ErrEigenFailed
			}
		}
	}

	// Sort eigenpairs ascending for a deterministic spectral order.
	vals := make([]float64, n)
	order := make([]int, n)
	for i := range vals {
		vals[i] = real(work.at(i, i))
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	sorted := make([]float64, n)
	perm := newDense(n, n)
	for k, idx := range order {
		sorted[k] = vals[idx]
		for i := 0; i < n; i++ {
			perm.set(i, k, vecs.at(i, idx))
		}
	}

	return sorted, perm, nil
}
