// SPDX-License-Identifier: MIT

package qobj_test

import (
	"errors"
	"testing"

	"github.com/bundseth/schrodinger/qobj"
)

func TestNewKet_DefaultDims(t *testing.T) {
	t.Parallel()

	k := MustKet(t, []complex128{1, 0, 0})
	if k.Kind() != qobj.KindKet {
		t.Fatalf("kind: got %v", k.Kind())
	}
	if !k.Dims().Equal(qobj.Dims{3}) {
		t.Fatalf("dims default: got %v, want (3)", k.Dims())
	}
	r, c := k.Shape()
	if r != 3 || c != 1 {
		t.Fatalf("shape: got %dx%d, want 3x1", r, c)
	}
	if k.IsHermitian() {
		t.Fatalf("a fresh ket must not carry the Hermitian hint")
	}
}

func TestNewKet_CompositeDims(t *testing.T) {
	t.Parallel()

	k := MustKet(t, []complex128{0, 1, 0, 0}, qobj.WithDims(2, 2))
	if !k.Dims().Equal(qobj.Dims{2, 2}) {
		t.Fatalf("dims: got %v", k.Dims())
	}

	_, err := qobj.NewKet([]complex128{1, 0, 0}, qobj.WithDims(2, 2))
	if !errors.Is(err, qobj.ErrBadShape) {
		t.Fatalf("dims product mismatch: want ErrBadShape, got %v", err)
	}
}

func TestNewKet_EmptyAndHermitianRejected(t *testing.T) {
	t.Parallel()

	if _, err := qobj.NewKet(nil); !errors.Is(err, qobj.ErrBadShape) {
		t.Fatalf("empty ket: want ErrBadShape, got %v", err)
	}
	_, err := qobj.NewKet([]complex128{1, 0}, qobj.WithHermitian())
	if !errors.Is(err, qobj.ErrKindMismatch) {
		t.Fatalf("hermitian ket: want ErrKindMismatch, got %v", err)
	}
}

func TestNewOperator_ShapeValidation(t *testing.T) {
	t.Parallel()

	_, err := qobj.NewOperator([][]complex128{{1, 0}, {0}})
	if !errors.Is(err, qobj.ErrBadShape) {
		t.Fatalf("ragged rows: want ErrBadShape, got %v", err)
	}
	if _, err = qobj.NewOperator(nil); !errors.Is(err, qobj.ErrBadShape) {
		t.Fatalf("empty operator: want ErrBadShape, got %v", err)
	}
}

func TestConstruct_CopyOnConstruct(t *testing.T) {
	t.Parallel()

	buf := []complex128{1, 2}
	k := MustKet(t, buf)
	buf[0] = 42
	if got := MustAtVec(t, k, 0); got != 1 {
		t.Fatalf("constructor must copy its input; element became %v", got)
	}
}

func TestSparseConstructors_EqualDenseCounterparts(t *testing.T) {
	t.Parallel()

	sk, err := qobj.NewSparseKet(4, []qobj.Entry{{Row: 2, Col: 0, Val: 1}})
	if err != nil {
		t.Fatalf("NewSparseKet: %v", err)
	}
	dk := MustKet(t, []complex128{0, 0, 1, 0})
	if !sk.IsSparse() || dk.IsSparse() {
		t.Fatalf("storage kinds: sparse=%t dense=%t", sk.IsSparse(), dk.IsSparse())
	}
	// Storage kind never participates in equality.
	AssertEqualObj(t, sk, dk, "sparse vs dense ket")

	so, err := qobj.NewSparseOperator(2, []qobj.Entry{{Row: 0, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: -1}}, qobj.WithHermitian())
	if err != nil {
		t.Fatalf("NewSparseOperator: %v", err)
	}
	do := MustOperator(t, [][]complex128{{1, 0}, {0, -1}}, qobj.WithHermitian())
	AssertEqualObj(t, so, do, "sparse vs dense operator")
	if !so.IsHermitian() {
		t.Fatalf("herm hint lost in sparse constructor")
	}
}

func TestSparseConstructors_Validation(t *testing.T) {
	t.Parallel()

	_, err := qobj.NewSparseOperator(2, []qobj.Entry{{Row: 2, Col: 0, Val: 1}})
	if !errors.Is(err, qobj.ErrOutOfRange) {
		t.Fatalf("out-of-range entry: want ErrOutOfRange, got %v", err)
	}
	_, err = qobj.NewSparseKet(3, []qobj.Entry{{Row: 0, Col: 1, Val: 1}})
	if !errors.Is(err, qobj.ErrOutOfRange) {
		t.Fatalf("ket entry with Col!=0: want ErrOutOfRange, got %v", err)
	}
	// Duplicate coordinates sum; exact cancellation drops the entry.
	s, err := qobj.NewSparseOperator(2, []qobj.Entry{{Row: 0, Col: 1, Val: 2}, {Row: 0, Col: 1, Val: -2}})
	if err != nil {
		t.Fatalf("NewSparseOperator: %v", err)
	}
	if s.Data().NNZ() != 0 {
		t.Fatalf("cancelled duplicate should vanish, nnz=%d", s.Data().NNZ())
	}
}

func TestEqual_KindAndDimsGate(t *testing.T) {
	t.Parallel()

	k := MustKet(t, []complex128{1, 0})
	b := MustBra(t, []complex128{1, 0})
	// Bra and Ket are never comparable, even with identical elements.
	if qobj.Equal(k, b) {
		t.Fatalf("Ket and Bra must never be equal")
	}
	k4 := MustKet(t, []complex128{1, 0, 0, 0})
	k22 := MustKet(t, []complex128{1, 0, 0, 0}, qobj.WithDims(2, 2))
	if qobj.Equal(k4, k22) {
		t.Fatalf("dims (4) and (2,2) must differ under Equal")
	}
	if qobj.Equal(qobj.QObj{}, qobj.QObj{}) {
		t.Fatalf("uninitialized objects must not compare equal")
	}
}

func TestAt_BoundsInheritedFromStorage(t *testing.T) {
	t.Parallel()

	op := MustOperator(t, [][]complex128{{1, 2}, {3, 4}})
	if got := MustAt(t, op, 1, 0); got != 3 {
		t.Fatalf("At(1,0): got %v", got)
	}
	_, err := op.At(2, 0)
	if !errors.Is(err, qobj.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
	_, err = op.At(0, -1)
	if !errors.Is(err, qobj.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

func TestFullAndData_EscapeHatches(t *testing.T) {
	t.Parallel()

	k := MustKet(t, []complex128{3, 4})
	raw := k.Full()
	if r, c := raw.Dims(); r != 2 || c != 1 {
		t.Fatalf("Full shape: %dx%d", r, c)
	}
	// Full returns a copy: mutating it must not affect the object.
	raw.Set(0, 0, 99)
	if got := MustAtVec(t, k, 0); got != 3 {
		t.Fatalf("Full must copy; element became %v", got)
	}

	s, err := qobj.NewSparseKet(2, []qobj.Entry{{Row: 0, Col: 0, Val: 1}})
	if err != nil {
		t.Fatalf("NewSparseKet: %v", err)
	}
	if !s.Data().IsSparse() {
		t.Fatalf("Data must hand back storage as held")
	}
	if s.Dense().IsSparse() {
		t.Fatalf("Dense must force dense storage")
	}
	AssertEqualObj(t, s, s.Dense(), "Dense must not change value")
	AssertEqualObj(t, s, s.Dense().Sparse(), "Sparse round-trip must not change value")
}
