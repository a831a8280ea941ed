// SPDX-License-Identifier: MIT

// Package qobj: normalization and elementwise reductions.
package qobj

import (
	"math/cmplx"
)

// Operation name constants for unified error wrapping (reductions).
const (
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opTrace     = "Trace"
	opDiag      = "Diag"
)

// Norm returns the Euclidean norm of a Ket or Bra. Operators are rejected
// with ErrKindMismatch — this reduction is a state-vector concept here.
func (x QObj) Norm() (float64, error) {
	if err := validateVector(x); err != nil {
		return 0, opErrorf(opNorm, err)
	}

	return stNorm2(x.data), nil
}

// Normalize rescales the receiver in place by 1/Norm(x) and is the single
// sanctioned mutation in the package: the same logical object comes out
// with unit norm. A zero-norm state reports ErrZeroNorm and is untouched.
func (x *QObj) Normalize() error {
	if err := validateVector(*x); err != nil {
		return opErrorf(opNormalize, err)
	}
	n := stNorm2(x.data)
	if n == 0 {
		return opErrorf(opNormalize, ErrZeroNorm)
	}
	stScaleInPlace(x.data, complex(1/n, 0))

	return nil
}

// reduce applies f elementwise, preserving variant, Dims and storage kind
// (every f here fixes zero). The Hermitian hint is discarded: the result's
// structure is not guaranteed by the input's.
func (x QObj) reduce(f func(complex128) complex128) QObj {
	if x.data == nil {
		return x
	}

	return wrap(x.kind, x.dims.Clone(), stMap(x.data, f, true), false)
}

// Real keeps the elementwise real part.
func (x QObj) Real() QObj {
	return x.reduce(func(v complex128) complex128 { return complex(real(v), 0) })
}

// Imag keeps the elementwise imaginary part (as a real value).
func (x QObj) Imag() QObj {
	return x.reduce(func(v complex128) complex128 { return complex(imag(v), 0) })
}

// Abs keeps the elementwise modulus |v|.
func (x QObj) Abs() QObj {
	return x.reduce(func(v complex128) complex128 { return complex(cmplx.Abs(v), 0) })
}

// Abs2 keeps the elementwise squared magnitude |v|².
func (x QObj) Abs2() QObj {
	return x.reduce(func(v complex128) complex128 {
		re, im := real(v), imag(v)

		return complex(re*re+im*im, 0)
	})
}

// Trace returns the diagonal sum of an Operator.
func (x QObj) Trace() (complex128, error) {
	if err := validateOperator(x); err != nil {
		return 0, opErrorf(opTrace, err)
	}

	return stTrace(x.data), nil
}

// Diag returns the main diagonal of an Operator as a fresh slice.
func (x QObj) Diag() ([]complex128, error) {
	if err := validateOperator(x); err != nil {
		return nil, opErrorf(opDiag, err)
	}
	n := x.Size()
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = atu(x.data, i, i)
	}

	return out, nil
}
