// SPDX-License-Identifier: MIT

// Package qobj: object products and operator powers.
// Mul enumerates the legal (variant, variant) → result mappings explicitly;
// every other pairing lands in the default branch with ErrKindMismatch.
// Bra·Ket is mathematically a scalar, which Go cannot overload into the
// same method — that single pairing is routed to BraKet and Mul reports
// ErrScalarResult to point callers there.
package qobj

import "math"

// Operation name constants for unified error wrapping (products).
const (
	opMul    = "Mul"
	opBraKet = "BraKet"
	opPow    = "Pow"
)

// Mul returns the object-valued product x·o. Legal pairings, all requiring
// identical Dims:
//
//	Ket * Bra       → Operator (outer product)
//	Operator * Ket  → Ket
//	Bra * Operator  → Bra
//	Operator * Op.  → Operator
//
// Bra * Ket is a scalar: Mul returns ErrScalarResult, compute it with
// BraKet (or Inner for the conjugate-linear pairing). Any other pairing is
// ErrKindMismatch. Result storage: sparse·sparse stays sparse; any dense
// operand promotes to dense. The Hermitian hint never survives a product.
func (x QObj) Mul(o QObj) (QObj, error) {
	if err := validatePair(x, o); err != nil {
		return QObj{}, opErrorf(opMul, err)
	}
	if err := validateSameDims(x, o); err != nil {
		return QObj{}, opErrorf(opMul, err)
	}

	var kind Kind
	switch {
	case x.kind == KindKet && o.kind == KindBra:
		kind = KindOperator
	case x.kind == KindOperator && o.kind == KindKet:
		kind = KindKet
	case x.kind == KindBra && o.kind == KindOperator:
		kind = KindBra
	case x.kind == KindOperator && o.kind == KindOperator:
		kind = KindOperator
	case x.kind == KindBra && o.kind == KindKet:
		return QObj{}, opErrorf(opMul, ErrScalarResult)
	default:
		// Ket*Ket, Bra*Bra, Ket*Operator, Operator*Bra: no such product.
		return QObj{}, opErrorf(opMul, ErrKindMismatch)
	}

	return wrap(kind, x.dims.Clone(), stMul(x.data, o.data), false), nil
}

// BraKet computes the scalar product bra·ket = Σ bra_i·ket_i, unconjugated:
// a Bra already encodes the dual/conjugate form at construction. Operands
// must be exactly (Bra, Ket) with identical Dims.
func BraKet(bra, ket QObj) (complex128, error) {
	if err := validatePair(bra, ket); err != nil {
		return 0, opErrorf(opBraKet, err)
	}
	if bra.kind != KindBra || ket.kind != KindKet {
		return 0, opErrorf(opBraKet, ErrKindMismatch)
	}
	if err := validateSameDims(bra, ket); err != nil {
		return 0, opErrorf(opBraKet, err)
	}

	// Walk the sparser operand's stored entries only.
	var sum complex128
	if bra.data.NNZ() <= ket.data.NNZ() {
		forEachNonzero(bra.data, func(_, j int, v complex128) {
			sum += v * atu(ket.data, j, 0)
		})
	} else {
		forEachNonzero(ket.data, func(i, _ int, v complex128) {
			sum += atu(bra.data, 0, i) * v
		})
	}

	return sum, nil
}

// Pow returns the operator power x^p.
//
// Dispatch:
//   - p a non-negative integer: repeated multiplication on the native
//     storage kind (p == 0 yields the identity, Hermitian by construction).
//   - p a negative integer: dense-only — LU inversion then repeated
//     multiplication; sparse storage reports ErrSparsePower.
//   - p non-integer: dense-only spectral power through the Hermitian eigen
//     kernel; sparse storage reports ErrSparsePower and operators not
//     flagged Hermitian report ErrNotHermitian. Densify explicitly with
//     Dense() to opt in.
//
// Kets and bras have no exponentiation: always ErrKindMismatch.
func (x QObj) Pow(p float64) (QObj, error) {
	if err := validateOperator(x); err != nil {
		return QObj{}, opErrorf(opPow, err)
	}
	rounded := math.Round(p)
	if p != rounded || math.IsNaN(p) || math.IsInf(p, 0) {
		return x.powSpectral(p, opPow)
	}

	k := int(rounded)
	base := x.data
	herm := x.herm
	if k < 0 {
		if x.IsSparse() {
			return QObj{}, opErrorf(opPow, ErrSparsePower)
		}
		inv, err := invDense(toDense(x.data))
		if err != nil {
			return QObj{}, opErrorf(opPow, err)
		}
		base = inv
		k = -k
	}

	// k-fold self-multiplication, k >= 0; A^0 is the identity.
	out := identityStorage(x.Size(), base.IsSparse())
	for i := 0; i < k; i++ {
		out = stMul(out, base)
	}
	if k == 0 {
		herm = true // the identity is Hermitian regardless of x
	}

	return wrap(KindOperator, x.dims.Clone(), out, herm), nil
}
