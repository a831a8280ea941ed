// SPDX-License-Identifier: MIT

// Package qobj: adjoint, transpose and conjugation.
package qobj

// Operation name constant for unified error wrapping (transpose).
const opTranspose = "Transpose"

// Adjoint returns the conjugate transpose: Ket↔Bra with conjugated
// elements, Operator to its conjugate transpose. Adjoint is an involution —
// applying it twice restores the original object, Dims included.
//
// Operators flagged Hermitian short-circuit to an equal copy without
// recomputation; the fast path is gated on the flag alone, never on a
// numerical check.
func (x QObj) Adjoint() QObj {
	if x.data == nil {
		return x
	}
	switch x.kind {
	case KindKet:
		return wrap(KindBra, x.dims.Clone(), stTranspose(stConj(x.data)), false)
	case KindBra:
		return wrap(KindKet, x.dims.Clone(), stTranspose(stConj(x.data)), false)
	default:
		if x.herm {
			return wrap(KindOperator, x.dims.Clone(), x.data.Clone(), true)
		}

		return wrap(KindOperator, x.dims.Clone(), stTranspose(stConj(x.data)), false)
	}
}

// Dag is the conventional short name for Adjoint.
func (x QObj) Dag() QObj { return x.Adjoint() }

// Conj returns the elementwise complex conjugate, variant unchanged.
// conj(H) equals transpose(H) for Hermitian H, so the hint survives.
func (x QObj) Conj() QObj {
	if x.data == nil {
		return x
	}

	return wrap(x.kind, x.dims.Clone(), stConj(x.data), x.herm)
}

// Transpose returns the structural transpose without conjugation —
// Operators only. A transposed Ket or Bra would change variant without the
// dual's conjugation, which only Adjoint may do; vector transposition
// exists internally as a primitive of Adjoint and is rejected here with
// ErrKindMismatch.
//
// Hermitian-flagged operators short-circuit to an unrecomputed copy, the
// same fast path Adjoint takes. The gate is the flag alone; an operator
// that merely happens to be numerically Hermitian takes the full
// structural transpose.
func (x QObj) Transpose() (QObj, error) {
	if err := validateOperator(x); err != nil {
		return QObj{}, opErrorf(opTranspose, err)
	}
	if x.herm {
		return wrap(KindOperator, x.dims.Clone(), x.data.Clone(), true), nil
	}

	return wrap(KindOperator, x.dims.Clone(), stTranspose(x.data), false), nil
}
