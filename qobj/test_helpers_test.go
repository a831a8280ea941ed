// SPDX-License-Identifier: MIT
// Package qobj_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for states and operators.
//   - Keep all data finite and well-formed; numeric-domain cases build
//     their own inputs explicitly.

package qobj_test

import (
	"math/cmplx"
	"testing"

	"github.com/bundseth/schrodinger/qobj"
)

// Shared tolerance for spectral kernels under test.
const (
	testRTol = 1e-9
	testATol = 1e-10
)

// MustKet builds a Ket or fails the test (fatal on error).
func MustKet(t *testing.T, data []complex128, opts ...qobj.Option) qobj.QObj {
	t.Helper()
	k, err := qobj.NewKet(data, opts...)
	if err != nil {
		t.Fatalf("NewKet: %v", err)
	}

	return k
}

// MustBra builds a Bra or fails the test (fatal on error).
func MustBra(t *testing.T, data []complex128, opts ...qobj.Option) qobj.QObj {
	t.Helper()
	b, err := qobj.NewBra(data, opts...)
	if err != nil {
		t.Fatalf("NewBra: %v", err)
	}

	return b
}

// MustOperator builds an Operator or fails the test (fatal on error).
func MustOperator(t *testing.T, rows [][]complex128, opts ...qobj.Option) qobj.QObj {
	t.Helper()
	op, err := qobj.NewOperator(rows, opts...)
	if err != nil {
		t.Fatalf("NewOperator: %v", err)
	}

	return op
}

// MustEye builds the n×n identity with the Hermitian hint set.
func MustEye(t *testing.T, n int, opts ...qobj.Option) qobj.QObj {
	t.Helper()
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, n)
		rows[i][i] = 1
	}
	opts = append(opts, qobj.WithHermitian())

	return MustOperator(t, rows, opts...)
}

// MustAtVec reads a vector element or fails the test.
func MustAtVec(t *testing.T, x qobj.QObj, i int) complex128 {
	t.Helper()
	v, err := x.AtVec(i)
	if err != nil {
		t.Fatalf("AtVec(%d): %v", i, err)
	}

	return v
}

// MustAt reads a storage element or fails the test.
func MustAt(t *testing.T, x qobj.QObj, i, j int) complex128 {
	t.Helper()
	v, err := x.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertClose fails unless got and want agree within the shared tolerance.
func AssertClose(t *testing.T, got, want complex128, label string) {
	t.Helper()
	if cmplx.Abs(got-want) > testATol+testRTol*cmplx.Abs(want) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
}

// AssertEqualObj fails unless a and b are exactly equal as quantum objects.
func AssertEqualObj(t *testing.T, a, b qobj.QObj, label string) {
	t.Helper()
	if !qobj.Equal(a, b) {
		t.Fatalf("%s: objects differ: %v vs %v", label, a, b)
	}
}

// AssertApproxObj fails unless a and b are elementwise close.
func AssertApproxObj(t *testing.T, a, b qobj.QObj, label string) {
	t.Helper()
	if !qobj.EqualApprox(a, b, testRTol, testATol) {
		t.Fatalf("%s: objects differ beyond tolerance: %v vs %v", label, a, b)
	}
}
