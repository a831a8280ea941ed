// SPDX-License-Identifier: MIT
// Package qobj: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the qobj
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package qobj

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qobj: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil object -> shape/index -> kind mismatch -> dims mismatch
// -> numeric-domain (zero norm, singular, convergence).

var (
	// ErrNilObject indicates that a zero-valued QObj (no kind, no storage)
	// was used as an operand. Operations must validate operands first.
	ErrNilObject = errors.New("qobj: nil or uninitialized object")

	// ErrBadShape is returned when raw input does not form a valid object:
	// empty vectors, ragged operator rows, or a Dims product that does not
	// match the element count.
	ErrBadShape = errors.New("qobj: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/AtVec) MUST return this, not panic.
	ErrOutOfRange = errors.New("qobj: index out of range")

	// ErrKindMismatch indicates an operation invoked on an unsupported
	// pairing of variants (Ket+Operator, Ket*Ket, mixed-variant tensor,
	// power of a Ket, transpose of a Bra, ...). Programmer error.
	ErrKindMismatch = errors.New("qobj: incompatible object kinds")

	// ErrDimsMismatch indicates operands whose composite dimension
	// sequences differ where identity is required — even when the total
	// sizes coincide. Never silently broadcast or truncated.
	ErrDimsMismatch = errors.New("qobj: dimension mismatch")

	// ErrScalarDivision rejects scalar-by-object division, which is
	// undefined for vectors and operators. Object-by-zero division is NOT
	// an error; it propagates IEEE NaN/Inf through the elements.
	ErrScalarDivision = errors.New("qobj: scalar divided by object is undefined")

	// ErrScalarResult marks a product whose mathematical result is a
	// scalar, not an object (Bra * Ket). Use BraKet or Inner instead.
	ErrScalarResult = errors.New("qobj: product is a scalar; use BraKet")

	// ErrZeroNorm is returned by Normalize when the state has zero norm.
	ErrZeroNorm = errors.New("qobj: cannot normalize zero-norm object")

	// ErrSparsePower signals a negative or fractional power requested on
	// sparse storage. The spectral kernels are dense-only; convert with
	// Dense() first.
	ErrSparsePower = errors.New("qobj: negative or fractional power requires dense storage")

	// ErrNotHermitian signals a spectral routine (LogM, SqrtM, fractional
	// Pow) invoked on an operator not flagged Hermitian. The flag is the
	// capability signal; it is never inferred from a numerical check.
	ErrNotHermitian = errors.New("qobj: operator is not flagged Hermitian")

	// ErrSingular is returned when a zero pivot survives partial pivoting
	// during inversion, i.e. the operator is numerically singular.
	ErrSingular = errors.New("qobj: singular operator")

	// ErrEigenFailed indicates that the Jacobi eigen routine failed to
	// converge under the configured tolerance/iteration budget.
	ErrEigenFailed = errors.New("qobj: eigen decomposition failed")
)
