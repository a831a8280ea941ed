// SPDX-License-Identifier: MIT

// Package qobj: object/number arithmetic.
// This file implements unary sign, object+object addition and the
// scalar-broadcast conventions. One convention deserves a loud note:
//
//	scalar + Ket/Bra  adds the scalar to EVERY element (all-ones offset),
//	scalar + Operator adds scalar·Identity (true operator offset).
//
// The asymmetry is a deliberate domain convention — do not "fix" it.
package qobj

// Operation name constants for unified error wrapping (arithmetic).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScalarSub = "ScalarSub"
	opDivScalar = "DivScalar"
	opScalarDiv = "ScalarDiv"
)

// Pos is the unary-plus identity: it returns x unchanged.
func (x QObj) Pos() QObj { return x }

// Neg returns x scaled by −1. Hermiticity survives: −H is Hermitian and a
// real diagonal stays real under negation.
func (x QObj) Neg() QObj { return x.Scale(-1) }

// Scale returns s·x with every stored element multiplied, any variant.
// Scalar multiplication commutes by construction, so there is no mirrored
// form. The Hermitian hint survives only real factors.
func (x QObj) Scale(s complex128) QObj {
	if x.data == nil {
		return x
	}

	return wrap(x.kind, x.dims.Clone(), stScale(x.data, s), x.herm && imag(s) == 0)
}

// addSub computes x ± o for identical variant and identical Dims.
// Result storage: sparse±sparse stays sparse; any dense operand wins.
// Internal helper for Add/Sub to share validation and hint logic.
func addSub(x, o QObj, sign complex128, opTag string) (QObj, error) {
	if err := validatePair(x, o); err != nil {
		return QObj{}, opErrorf(opTag, err)
	}
	if err := validateSameKind(x, o); err != nil {
		return QObj{}, opErrorf(opTag, err)
	}
	if err := validateSameDims(x, o); err != nil {
		return QObj{}, opErrorf(opTag, err)
	}
	rhs := o.data
	if sign != 1 {
		rhs = stScale(rhs, sign)
	}

	return wrap(x.kind, x.dims.Clone(), stAdd(x.data, rhs), x.herm && o.herm), nil
}

// Add returns x + o. Requires identical variant and identical Dims — equal
// total sizes are not enough, and Ket never mixes with Bra or Operator.
func (x QObj) Add(o QObj) (QObj, error) { return addSub(x, o, 1, opAdd) }

// Sub returns x − o under the same compatibility rules as Add.
func (x QObj) Sub(o QObj) (QObj, error) { return addSub(x, o, -1, opSub) }

// AddScalar returns x + s under the broadcast convention: elementwise for
// kets and bras (result densifies — implicit zeros become s), s·Identity
// for operators (storage kind preserved).
func (x QObj) AddScalar(s complex128) (QObj, error) {
	if err := validateObject(x); err != nil {
		return QObj{}, opErrorf(opAddScalar, err)
	}
	if x.kind == KindOperator {
		return wrap(x.kind, x.dims.Clone(), stAddScalarDiag(x.data, s), x.herm && imag(s) == 0), nil
	}

	return wrap(x.kind, x.dims.Clone(), stAddScalarAll(x.data, s), false), nil
}

// SubScalar returns x − s, following the AddScalar convention with sign.
func (x QObj) SubScalar(s complex128) (QObj, error) {
	if err := validateObject(x); err != nil {
		return QObj{}, opErrorf(opSubScalar, err)
	}

	return x.AddScalar(-s)
}

// ScalarSub returns s − x: the broadcast of s minus the object, i.e.
// (−x) + s under the same Ket/Bra-elementwise, Operator-identity rule.
func ScalarSub(s complex128, x QObj) (QObj, error) {
	if err := validateObject(x); err != nil {
		return QObj{}, opErrorf(opScalarSub, err)
	}

	return x.Neg().AddScalar(s)
}

// DivScalar returns x / s. A zero divisor is NOT an error: division
// propagates IEEE NaN/Inf through the elements, exactly as the underlying
// float semantics dictate. Sparse storage densifies for s == 0 so implicit
// zeros produce 0/0 = NaN faithfully.
func (x QObj) DivScalar(s complex128) (QObj, error) {
	if err := validateObject(x); err != nil {
		return QObj{}, opErrorf(opDivScalar, err)
	}
	if s == 0 {
		out := toDense(x.data)
		out.apply(func(_, _ int, v complex128) complex128 { return v / s })

		return wrap(x.kind, x.dims.Clone(), out, false), nil
	}

	return wrap(x.kind, x.dims.Clone(), stMap(x.data, func(v complex128) complex128 { return v / s }, true), x.herm && imag(s) == 0), nil
}

// ScalarDiv rejects s / x unconditionally: dividing a scalar by a vector or
// operator is undefined in this algebra and always surfaces
// ErrScalarDivision, even for invertible operators.
func ScalarDiv(_ complex128, x QObj) (QObj, error) {
	if err := validateObject(x); err != nil {
		return QObj{}, opErrorf(opScalarDiv, err)
	}

	return QObj{}, opErrorf(opScalarDiv, ErrScalarDivision)
}
