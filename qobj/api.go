// SPDX-License-Identifier: MIT

// Package qobj: construction facade.
// Constructors copy their numeric input (copy-on-construct) so the wrapped
// storage is exclusively owned by the returned object, validate shape
// against the composite dimension descriptor, and wrap failures with a
// stable operation tag.
package qobj

// Operation name constants for unified error wrapping (construction).
const (
	opNewKet            = "NewKet"
	opNewBra            = "NewBra"
	opNewOperator       = "NewOperator"
	opNewSparseKet      = "NewSparseKet"
	opNewSparseBra      = "NewSparseBra"
	opNewSparseOperator = "NewSparseOperator"
)

// NewKet wraps a column vector into a Ket. Dims default to the single
// factor (N); WithDims must multiply out to len(data). WithHermitian is
// rejected: the hint is an operator property.
//
// Steps:
//  1. Reject empty input (ErrBadShape).
//  2. Resolve options; validate dims product (ErrBadShape).
//  3. Copy elements into dense (or, with WithSparse, compressed) storage.
func NewKet(data []complex128, opts ...Option) (QObj, error) {
	return newVector(KindKet, data, opts, opNewKet)
}

// NewBra wraps a row vector into a Bra. The elements are stored exactly as
// given: a Bra already encodes the dual/conjugate form, so no conjugation
// happens here. Same validation as NewKet.
func NewBra(data []complex128, opts ...Option) (QObj, error) {
	return newVector(KindBra, data, opts, opNewBra)
}

// newVector shares Ket/Bra construction: validation, option gathering and
// the storage build with the variant-appropriate orientation.
func newVector(kind Kind, data []complex128, opts []Option, opTag string) (QObj, error) {
	n := len(data)
	if n == 0 {
		return QObj{}, opErrorf(opTag, ErrBadShape)
	}
	o, err := gatherOptions(n, opts)
	if err != nil {
		return QObj{}, opErrorf(opTag, err)
	}
	if o.herm {
		// Hermiticity is meaningless for vectors; surfacing the misuse
		// beats silently ignoring the flag.
		return QObj{}, opErrorf(opTag, ErrKindMismatch)
	}

	rows, cols := n, 1
	if kind == KindBra {
		rows, cols = 1, n
	}
	var st Storage
	if o.sparse {
		entries := make([]Entry, 0, n)
		for i, v := range data {
			if v == 0 {
				continue
			}
			if kind == KindKet {
				entries = append(entries, Entry{Row: i, Col: 0, Val: v})
			} else {
				entries = append(entries, Entry{Row: 0, Col: i, Val: v})
			}
		}
		st = newCSCFromEntries(rows, cols, entries)
	} else {
		st = newDenseFromSlice(rows, cols, data)
	}

	return wrap(kind, o.dims, st, false), nil
}

// NewOperator wraps a square matrix, given as row slices, into an Operator.
// All rows must have length len(rows); Dims default to (N). WithHermitian
// sets the hint — the producer asserts it, nothing is verified.
func NewOperator(rows [][]complex128, opts ...Option) (QObj, error) {
	n := len(rows)
	if n == 0 {
		return QObj{}, opErrorf(opNewOperator, ErrBadShape)
	}
	flat := make([]complex128, 0, n*n)
	for _, r := range rows {
		if len(r) != n {
			return QObj{}, opErrorf(opNewOperator, ErrBadShape)
		}
		flat = append(flat, r...)
	}
	o, err := gatherOptions(n, opts)
	if err != nil {
		return QObj{}, opErrorf(opNewOperator, err)
	}

	var st Storage
	if o.sparse {
		entries := make([]Entry, 0, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v := flat[i*n+j]; v != 0 {
					entries = append(entries, Entry{Row: i, Col: j, Val: v})
				}
			}
		}
		st = newCSCFromEntries(n, n, entries)
	} else {
		st = newDenseFromSlice(n, n, flat)
	}

	return wrap(KindOperator, o.dims, st, o.herm), nil
}

// NewSparseKet builds a length-n Ket from coordinate entries (Col must be
// 0). Duplicate coordinates are summed; explicit zeros are dropped.
func NewSparseKet(n int, entries []Entry, opts ...Option) (QObj, error) {
	return newSparseVector(KindKet, n, entries, opts, opNewSparseKet)
}

// NewSparseBra builds a length-n Bra from coordinate entries (Row must be
// 0). Elements are stored as given — the dual form is the caller's job.
func NewSparseBra(n int, entries []Entry, opts ...Option) (QObj, error) {
	return newSparseVector(KindBra, n, entries, opts, opNewSparseBra)
}

func newSparseVector(kind Kind, n int, entries []Entry, opts []Option, opTag string) (QObj, error) {
	if n <= 0 {
		return QObj{}, opErrorf(opTag, ErrBadShape)
	}
	o, err := gatherOptions(n, opts)
	if err != nil {
		return QObj{}, opErrorf(opTag, err)
	}
	if o.herm {
		return QObj{}, opErrorf(opTag, ErrKindMismatch)
	}
	rows, cols := n, 1
	if kind == KindBra {
		rows, cols = 1, n
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return QObj{}, opErrorf(opTag, ErrOutOfRange)
		}
	}

	return wrap(kind, o.dims, newCSCFromEntries(rows, cols, entries), false), nil
}

// NewSparseOperator builds an n×n Operator from coordinate entries.
// Duplicate coordinates are summed; explicit zeros are dropped. This is the
// natural constructor for structural operators (ladder, number, projector).
func NewSparseOperator(n int, entries []Entry, opts ...Option) (QObj, error) {
	if n <= 0 {
		return QObj{}, opErrorf(opNewSparseOperator, ErrBadShape)
	}
	o, err := gatherOptions(n, opts)
	if err != nil {
		return QObj{}, opErrorf(opNewSparseOperator, err)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return QObj{}, opErrorf(opNewSparseOperator, ErrOutOfRange)
		}
	}

	return wrap(KindOperator, o.dims, newCSCFromEntries(n, n, entries), o.herm), nil
}
