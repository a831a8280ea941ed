// SPDX-License-Identifier: MIT

// Package qobj: the quantum object variant and its accessors.
// This file intentionally contains ONLY the closed Kind enumeration, the
// QObj value type and read-only accessors. Errors and options live in
// dedicated files (errors.go, options.go) per the global conventions.
package qobj

import "fmt"

// Kind is the closed variant tag over the three quantum object shapes.
// The zero Kind marks an uninitialized object; every operation rejects it
// with ErrNilObject.
type Kind uint8

const (
	// KindKet is a column vector of length N.
	KindKet Kind = iota + 1
	// KindBra is a row vector of length N, the conjugate-linear dual of a
	// Ket. It owns its own representation; it is never forced to be the
	// adjoint of a stored Ket.
	KindBra
	// KindOperator is a square N×N matrix.
	KindOperator
)

// String renders the variant name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindKet:
		return "Ket"
	case KindBra:
		return "Bra"
	case KindOperator:
		return "Operator"
	default:
		return "Invalid"
	}
}

// QObj is an immutable quantum object: a storage container, a composite
// dimension descriptor and a Hermitian/real-diagonal hint, tagged with a
// variant Kind. Values are produced by construction or by an algebra
// operation; the sole sanctioned in-place mutation is Normalize.
//
// The Hermitian hint is a cache, not a measurement: operations either
// preserve it with proof or drop it to false. It is never derived from a
// numerical check.
type QObj struct {
	kind Kind
	dims Dims
	data Storage
	herm bool
}

// Kind returns the variant tag.
func (x QObj) Kind() Kind { return x.kind }

// Dims returns an independent copy of the composite dimension descriptor.
func (x QObj) Dims() Dims { return x.dims.Clone() }

// Size returns the flat Hilbert-space dimension N.
func (x QObj) Size() int { return x.dims.Total() }

// Shape returns the storage shape: (N,1) for kets, (1,N) for bras, (N,N)
// for operators.
func (x QObj) Shape() (rows, cols int) {
	if x.data == nil {
		return 0, 0
	}

	return x.data.Rows(), x.data.Cols()
}

// IsHermitian reports the Hermitian/real-diagonal hint. False only means
// "not proven", never "proven not".
func (x QObj) IsHermitian() bool { return x.herm }

// IsSparse reports whether the object currently holds compressed-column
// storage. Storage kind never participates in equality.
func (x QObj) IsSparse() bool { return x.data != nil && x.data.IsSparse() }

// String renders a compact header, e.g. "Ket dims=(2,2) sparse=false".
func (x QObj) String() string {
	if x.kind == 0 {
		return "QObj(uninitialized)"
	}

	return fmt.Sprintf("%s dims=%s sparse=%t herm=%t", x.kind, x.dims, x.IsSparse(), x.herm)
}

// wrap assembles a QObj around freshly built storage. Internal: callers
// guarantee that the storage shape agrees with kind and dims.
func wrap(kind Kind, dims Dims, data Storage, herm bool) QObj {
	return QObj{kind: kind, dims: dims, data: data, herm: herm}
}
