// SPDX-License-Identifier: MIT

// Package operators: qubit Pauli family and its qudit generalization.
package operators

import (
	"math"
	"math/cmplx"

	"github.com/bundseth/schrodinger/qobj"
)

const (
	opSigma = "Sigma"
	opShift = "Shift"
	opClock = "Clock"
)

// sigma builds a 2×2 operator, panicking never: the inputs are fixed.
func sigma(rows [][]complex128, herm bool) qobj.QObj {
	var opts []qobj.Option
	if herm {
		opts = append(opts, qobj.WithHermitian())
	}
	out, err := qobj.NewOperator(rows, opts...)
	if err != nil {
		// 2×2 literals cannot fail validation; a failure here is a bug.
		panic(opErrorf(opSigma, err))
	}

	return out
}

// SigmaX returns the Pauli X (bit flip) operator. Hermitian.
func SigmaX() qobj.QObj {
	return sigma([][]complex128{{0, 1}, {1, 0}}, true)
}

// SigmaY returns the Pauli Y operator. Hermitian: the diagonal is real
// (zero) and the off-diagonal entries are conjugate mirrors.
func SigmaY() qobj.QObj {
	return sigma([][]complex128{{0, -1i}, {1i, 0}}, true)
}

// SigmaZ returns the Pauli Z (phase flip) operator. Hermitian.
func SigmaZ() qobj.QObj {
	return sigma([][]complex128{{1, 0}, {0, -1}}, true)
}

// SigmaP returns the qubit raising operator σ+ = (σx + i·σy)/2.
func SigmaP() qobj.QObj {
	return sigma([][]complex128{{0, 1}, {0, 0}}, false)
}

// SigmaM returns the qubit lowering operator σ− = (σx − i·σy)/2.
func SigmaM() qobj.QObj {
	return sigma([][]complex128{{0, 0}, {1, 0}}, false)
}

// Shift returns the generalized Pauli X of order n: the cyclic shift
// X|j⟩ = |j+1 mod n⟩. Sparse, not Hermitian for n > 2.
func Shift(n int) (qobj.QObj, error) {
	if n <= 0 {
		return qobj.QObj{}, opErrorf(opShift, qobj.ErrBadShape)
	}
	entries := make([]qobj.Entry, 0, n)
	for j := 0; j < n; j++ {
		entries = append(entries, qobj.Entry{Row: (j + 1) % n, Col: j, Val: 1})
	}
	out, err := qobj.NewSparseOperator(n, entries)
	if err != nil {
		return qobj.QObj{}, opErrorf(opShift, err)
	}

	return out, nil
}

// Clock returns the generalized Pauli Z of order n: the diagonal phase
// operator Z|j⟩ = ω^j·|j⟩ with ω = exp(2πi/n). Sparse, not Hermitian for
// n > 2.
func Clock(n int) (qobj.QObj, error) {
	if n <= 0 {
		return qobj.QObj{}, opErrorf(opClock, qobj.ErrBadShape)
	}
	omega := cmplx.Exp(complex(0, 2*math.Pi/float64(n)))
	entries := make([]qobj.Entry, 0, n)
	phase := complex128(1)
	for j := 0; j < n; j++ {
		entries = append(entries, qobj.Entry{Row: j, Col: j, Val: phase})
		phase *= omega
	}
	out, err := qobj.NewSparseOperator(n, entries)
	if err != nil {
		return qobj.QObj{}, opErrorf(opClock, err)
	}

	return out, nil
}
