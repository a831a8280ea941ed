// SPDX-License-Identifier: MIT

// Package qobj: inner products.
package qobj

import "math/cmplx"

// Operation name constants for unified error wrapping (inner products).
const (
	opInner = "Inner"
	opDot   = "Dot"
)

// Inner computes the inner product of two same-kind objects of identical
// Dims:
//
//	Ket/Bra pairs:  ⟨x|o⟩ = Σ conj(x_i)·o_i — conjugate-linear in the
//	                first argument, matching Dot.
//	Operator pairs: the Hilbert–Schmidt product Tr(x† o) = Σ conj(x_ij)·o_ij,
//	                accumulated directly over stored entries without forming
//	                the full product and then tracing it.
//
// Mismatched Dims fail with ErrDimsMismatch even when the total sizes
// coincide; mismatched kinds fail with ErrKindMismatch.
func (x QObj) Inner(o QObj) (complex128, error) {
	return inner(x, o, opInner)
}

// Dot is the vector synonym for Inner: the conjugate-linear Ket/Bra
// pairing. Operators are rejected with ErrKindMismatch — use Inner for the
// Hilbert–Schmidt form.
func Dot(a, b QObj) (complex128, error) {
	if err := validatePair(a, b); err != nil {
		return 0, opErrorf(opDot, err)
	}
	if a.kind == KindOperator {
		return 0, opErrorf(opDot, ErrKindMismatch)
	}

	return inner(a, b, opDot)
}

// inner is the shared kernel: conjugate-linear first argument over the
// flattened storage, which covers both the vector pairing and the
// Hilbert–Schmidt sum. Walks the first operand's stored entries only, so
// sparse×anything costs O(nnz).
func inner(x, o QObj, opTag string) (complex128, error) {
	if err := validatePair(x, o); err != nil {
		return 0, opErrorf(opTag, err)
	}
	if err := validateSameKind(x, o); err != nil {
		return 0, opErrorf(opTag, err)
	}
	if err := validateSameDims(x, o); err != nil {
		return 0, opErrorf(opTag, err)
	}

	var sum complex128
	forEachNonzero(x.data, func(i, j int, v complex128) {
		sum += cmplx.Conj(v) * atu(o.data, i, j)
	})

	return sum, nil
}
