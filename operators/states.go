// SPDX-License-Identifier: MIT

// Package operators: ready-made states.
package operators

import (
	"github.com/bundseth/schrodinger/qobj"
)

const (
	opBasisKet       = "BasisKet"
	opCoherent       = "Coherent"
	opMaximallyMixed = "MaximallyMixed"
)

// BasisKet returns the length-n computational basis state |i⟩ with sparse
// storage: a single unit amplitude at index i (0-based).
func BasisKet(n, i int, opts ...qobj.Option) (qobj.QObj, error) {
	out, err := qobj.NewSparseKet(n, []qobj.Entry{{Row: i, Col: 0, Val: 1}}, opts...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opBasisKet, err)
	}

	return out, nil
}

// Coherent returns the truncated coherent state |α⟩ = D(α)|0⟩ of order n.
// Dense (the displacement exponential is dense). Norm approaches 1 as the
// truncation order grows past |α|².
func Coherent(n int, alpha complex128) (qobj.QObj, error) {
	d, err := Displace(n, alpha)
	if err != nil {
		return qobj.QObj{}, opErrorf(opCoherent, err)
	}
	vac, err := BasisKet(n, 0)
	if err != nil {
		return qobj.QObj{}, opErrorf(opCoherent, err)
	}
	out, err := d.Mul(vac)
	if err != nil {
		return qobj.QObj{}, opErrorf(opCoherent, err)
	}

	return out, nil
}

// MaximallyMixed returns the maximally mixed density operator I/n of order
// n. Sparse, Hermitian.
func MaximallyMixed(n int, opts ...qobj.Option) (qobj.QObj, error) {
	eye, err := Eye(n, opts...)
	if err != nil {
		return qobj.QObj{}, opErrorf(opMaximallyMixed, err)
	}

	return eye.Scale(complex(1/float64(n), 0)), nil
}
