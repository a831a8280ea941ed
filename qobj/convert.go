// SPDX-License-Identifier: MIT

// Package qobj: conversions, raw access and equality.
package qobj

import "gonum.org/v1/gonum/mat"

// Operation name constants for unified error wrapping (access).
const (
	opAt    = "At"
	opAtVec = "AtVec"
)

// Dense returns the object with storage forced dense. Elements, variant,
// Dims and the Hermitian hint are unchanged; already-dense objects come
// back as an equal copy.
func (x QObj) Dense() QObj {
	if x.data == nil {
		return x
	}

	return wrap(x.kind, x.dims.Clone(), toDense(x.data), x.herm)
}

// Sparse returns the object with storage forced to compressed-column form,
// dropping exact zeros. The inverse of Dense for interchange purposes;
// equality is unaffected either way.
func (x QObj) Sparse() QObj {
	if x.data == nil || x.data.IsSparse() {
		return x
	}
	entries := make([]Entry, 0, x.data.NNZ())
	forEachNonzero(x.data, func(i, j int, v complex128) {
		if v != 0 {
			entries = append(entries, Entry{Row: i, Col: j, Val: v})
		}
	})

	return wrap(x.kind, x.dims.Clone(), newCSCFromEntries(x.data.Rows(), x.data.Cols(), entries), x.herm)
}

// Full escapes the wrapper: it returns the elements as a freshly allocated
// gonum *mat.CDense (kets N×1, bras 1×N, operators N×N) for interop with
// external numeric code. Mutating the returned matrix never affects x.
func (x QObj) Full() *mat.CDense {
	if x.data == nil {
		return nil
	}

	return toDense(x.data).raw()
}

// Data returns the storage as currently held — sparse or dense, no
// conversion. The Storage interface is read-only; use Full for a mutable
// dense escape hatch.
func (x QObj) Data() Storage {
	return x.data
}

// At retrieves element (i, j) of the underlying storage with bounds
// behavior inherited from it: ErrOutOfRange on invalid indices, implicit
// sparse zeros read as 0.
func (x QObj) At(i, j int) (complex128, error) {
	if err := validateObject(x); err != nil {
		return 0, opErrorf(opAt, err)
	}
	v, err := x.data.At(i, j)
	if err != nil {
		return 0, opErrorf(opAt, err)
	}

	return v, nil
}

// AtVec retrieves element i of a Ket or Bra, hiding the orientation.
func (x QObj) AtVec(i int) (complex128, error) {
	if err := validateVector(x); err != nil {
		return 0, opErrorf(opAtVec, err)
	}
	var v complex128
	var err error
	if x.kind == KindKet {
		v, err = x.data.At(i, 0)
	} else {
		v, err = x.data.At(0, i)
	}
	if err != nil {
		return 0, opErrorf(opAtVec, err)
	}

	return v, nil
}

// Equal reports exact equality: same variant, identical Dims sequences and
// identical elements. Storage kind is representation only and never
// participates; Bra and Ket are never equal; the Hermitian hint is a cache,
// not identity, and is ignored.
func Equal(a, b QObj) bool {
	if a.kind != b.kind || a.kind == 0 {
		return false
	}
	if !a.dims.Equal(b.dims) {
		return false
	}

	return stEqual(a.data, b.data)
}

// EqualApprox is Equal with elementwise |x-y| <= atol + rtol*|y| closeness
// instead of exact element identity. Pass DefaultRTol/DefaultATol unless a
// computation's conditioning demands otherwise.
func EqualApprox(a, b QObj, rtol, atol float64) bool {
	if a.kind != b.kind || a.kind == 0 {
		return false
	}
	if !a.dims.Equal(b.dims) {
		return false
	}

	return stEqualApprox(a.data, b.data, rtol, atol)
}
