// SPDX-License-Identifier: MIT

// Package operators: oscillator and structural producers.
package operators

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/bundseth/schrodinger/qobj"
)

// Operation name constants for unified error wrapping.
const (
	opZero      = "Zero"
	opEye       = "Eye"
	opDestroy   = "Destroy"
	opCreate    = "Create"
	opNumberOp  = "NumberOp"
	opProjector = "Projector"
	opDisplace  = "Displace"
	opSqueeze   = "Squeeze"
)

// opErrorf wraps err with the producer name so failures read
// "Destroy: qobj: ...". Sentinels stay matchable through errors.Is.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Zero returns the n×n zero Operator with sparse storage and the Hermitian
// hint set (an empty matrix is trivially Hermitian).
func Zero(n int, opts ...qobj.Option) (qobj.QObj, error) {
	out, err := qobj.NewSparseOperator(n, nil, append(opts, qobj.WithHermitian())...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opZero, err)
	}

	return out, nil
}

// Eye returns the n×n identity Operator with sparse storage, Hermitian.
func Eye(n int, opts ...qobj.Option) (qobj.QObj, error) {
	if n <= 0 {
		return qobj.QObj{}, opErrorf(opEye, qobj.ErrBadShape)
	}
	entries := make([]qobj.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, qobj.Entry{Row: i, Col: i, Val: 1})
	}
	out, err := qobj.NewSparseOperator(n, entries, append(opts, qobj.WithHermitian())...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opEye, err)
	}

	return out, nil
}

// Destroy returns the truncated annihilation operator a of order n:
// a|k⟩ = √k·|k-1⟩, a single superdiagonal of square roots. Sparse, not
// Hermitian.
func Destroy(n int, opts ...qobj.Option) (qobj.QObj, error) {
	if n <= 0 {
		return qobj.QObj{}, opErrorf(opDestroy, qobj.ErrBadShape)
	}
	entries := make([]qobj.Entry, 0, n-1)
	for k := 1; k < n; k++ {
		entries = append(entries, qobj.Entry{Row: k - 1, Col: k, Val: complex(math.Sqrt(float64(k)), 0)})
	}
	out, err := qobj.NewSparseOperator(n, entries, opts...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opDestroy, err)
	}

	return out, nil
}

// Create returns the truncated creation operator a† of order n:
// a†|k⟩ = √(k+1)·|k+1⟩, the subdiagonal mirror of Destroy. Sparse, not
// Hermitian.
func Create(n int, opts ...qobj.Option) (qobj.QObj, error) {
	if n <= 0 {
		return qobj.QObj{}, opErrorf(opCreate, qobj.ErrBadShape)
	}
	entries := make([]qobj.Entry, 0, n-1)
	for k := 1; k < n; k++ {
		entries = append(entries, qobj.Entry{Row: k, Col: k - 1, Val: complex(math.Sqrt(float64(k)), 0)})
	}
	out, err := qobj.NewSparseOperator(n, entries, opts...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opCreate, err)
	}

	return out, nil
}

// NumberOp returns the number operator a†a of order n: diag(0, 1, ..., n-1).
// Sparse, Hermitian.
func NumberOp(n int, opts ...qobj.Option) (qobj.QObj, error) {
	if n <= 0 {
		return qobj.QObj{}, opErrorf(opNumberOp, qobj.ErrBadShape)
	}
	entries := make([]qobj.Entry, 0, n-1)
	for k := 1; k < n; k++ {
		entries = append(entries, qobj.Entry{Row: k, Col: k, Val: complex(float64(k), 0)})
	}
	out, err := qobj.NewSparseOperator(n, entries, append(opts, qobj.WithHermitian())...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opNumberOp, err)
	}

	return out, nil
}

// Projector returns the n×n diagonal projector onto the basis states named
// by idx (0-based). Repeated indices are counted once. Sparse, Hermitian.
func Projector(n int, idx ...int) (qobj.QObj, error) {
	seen := make(map[int]bool, len(idx))
	entries := make([]qobj.Entry, 0, len(idx))
	for _, i := range idx {
		if seen[i] {
			continue
		}
		seen[i] = true
		entries = append(entries, qobj.Entry{Row: i, Col: i, Val: 1})
	}
	out, err := qobj.NewSparseOperator(n, entries, qobj.WithHermitian())
	if err != nil {
		return qobj.QObj{}, opErrorf(opProjector, err)
	}

	return out, nil
}

// Displace returns the truncated displacement operator
// D(α) = exp(α·a† − conj(α)·a) of order n, built by exponentiating the
// anti-Hermitian generator. Dense, not Hermitian (unitary for |α|>0).
//
// Truncation caveat: D(α) is exactly unitary only in the infinite-dimensional
// limit; pick n well above |α|² to keep the defect negligible.
func Displace(n int, alpha complex128) (qobj.QObj, error) {
	ad, err := Create(n)
	if err != nil {
		return qobj.QObj{}, opErrorf(opDisplace, err)
	}
	a, err := Destroy(n)
	if err != nil {
		return qobj.QObj{}, opErrorf(opDisplace, err)
	}
	gen, err := ad.Scale(alpha).Sub(a.Scale(cmplx.Conj(alpha)))
	if err != nil {
		return qobj.QObj{}, opErrorf(opDisplace, err)
	}
	out, err := gen.Dense().ExpM()
	if err != nil {
		return qobj.QObj{}, opErrorf(opDisplace, err)
	}

	return out, nil
}

// Squeeze returns the truncated squeezing operator
// S(z) = exp((conj(z)·a² − z·a†²)/2) of order n. Dense, not Hermitian.
func Squeeze(n int, z complex128) (qobj.QObj, error) {
	ad, err := Create(n)
	if err != nil {
		return qobj.QObj{}, opErrorf(opSqueeze, err)
	}
	a, err := Destroy(n)
	if err != nil {
		return qobj.QObj{}, opErrorf(opSqueeze, err)
	}
	a2, err := a.Mul(a)
	if err != nil {
		return qobj.QObj{}, opErrorf(opSqueeze, err)
	}
	ad2, err := ad.Mul(ad)
	if err != nil {
		return qobj.QObj{}, opErrorf(opSqueeze, err)
	}
	gen, err := a2.Scale(cmplx.Conj(z) / 2).Sub(ad2.Scale(z / 2))
	if err != nil {
		return qobj.QObj{}, opErrorf(opSqueeze, err)
	}
	out, err := gen.Dense().ExpM()
	if err != nil {
		return qobj.QObj{}, opErrorf(opSqueeze, err)
	}

	return out, nil
}
