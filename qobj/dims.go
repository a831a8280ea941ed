// SPDX-License-Identifier: MIT

// Package qobj: composite dimension descriptor.
// This file contains ONLY the Dims type and its structural operations.
// Errors and options live in dedicated files (errors.go, options.go) per the
// global conventions.
package qobj

import (
	"strconv"
	"strings"
)

// Dims is an ordered sequence of positive subspace sizes (d1, d2, ..., dk)
// whose product is the total Hilbert-space dimension N. Two descriptors are
// compatible only when they are identical sequences — equal products are not
// enough. Concatenation Dims(A)+Dims(B) describes A ⊗ B.
//
// Complexity notes: all methods are O(k) in the factor count.
type Dims []int

// Total returns the product of all factors, i.e. the flat dimension N.
// An empty descriptor has total 0 (no valid object carries one).
func (d Dims) Total() int {
	if len(d) == 0 {
		return 0
	}
	n := 1
	for _, f := range d {
		n *= f
	}

	return n
}

// Equal reports whether d and o are identical factor sequences.
func (d Dims) Equal(o Dims) bool {
	if len(d) != len(o) {
		return false
	}
	for i, f := range d {
		if f != o[i] {
			return false
		}
	}

	return true
}

// Concat returns the descriptor of the tensor product: d's factors first,
// then o's. A fresh slice is allocated; neither input is mutated.
func (d Dims) Concat(o Dims) Dims {
	out := make(Dims, 0, len(d)+len(o))
	out = append(out, d...)
	out = append(out, o...)

	return out
}

// Clone returns an independent copy of the descriptor.
func (d Dims) Clone() Dims {
	out := make(Dims, len(d))
	copy(out, d)

	return out
}

// String renders the compact display form, e.g. "(2,2,3)".
func (d Dims) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, f := range d {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(f))
	}
	sb.WriteByte(')')

	return sb.String()
}

// validate reports ErrBadShape for empty descriptors or non-positive factors.
func (d Dims) validate() error {
	if len(d) == 0 {
		return ErrBadShape
	}
	for _, f := range d {
		if f <= 0 {
			return ErrBadShape
		}
	}

	return nil
}
