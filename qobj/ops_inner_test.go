// SPDX-License-Identifier: MIT

package qobj_test

import (
	"errors"
	"testing"

	"github.com/bundseth/schrodinger/qobj"
)

// Scenario: Inner, Dot, and BraKet(Adjoint(a), b) agree on vector pairs.
func TestInner_VectorAgreement(t *testing.T) {
	t.Parallel()

	a := MustKet(t, []complex128{1 + 1i, 2})
	b := MustKet(t, []complex128{3, 4i})

	// ⟨a|b⟩ = conj(1+1i)·3 + conj(2)·4i = (3-3i) + 8i = 3+5i.
	want := complex(3, 5)

	got, err := a.Inner(b)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	AssertClose(t, got, want, "Inner")

	got, err = qobj.Dot(a, b)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	AssertClose(t, got, want, "Dot")

	got, err = qobj.BraKet(a.Adjoint(), b)
	if err != nil {
		t.Fatalf("BraKet: %v", err)
	}
	AssertClose(t, got, want, "BraKet of adjoint")
}

func TestInner_ConjugateLinearInFirstArgument(t *testing.T) {
	t.Parallel()

	a := MustKet(t, []complex128{1i, 0})
	b := MustKet(t, []complex128{1, 0})

	ab, err := a.Inner(b)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	ba, err := b.Inner(a)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	AssertClose(t, ab, -1i, "conjugation lands on the left")
	AssertClose(t, ba, 1i, "swapping conjugates the result")
}

func TestInner_HilbertSchmidt(t *testing.T) {
	t.Parallel()

	x := MustOperator(t, [][]complex128{{1, 2i}, {0, 3}})
	y := MustOperator(t, [][]complex128{{4, 1}, {5, 1i}})

	// Tr(x†y) = Σ conj(x_ij)·y_ij = 4 + (-2i)(1) + 0 + 3i = 4 + i.
	got, err := x.Inner(y)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	AssertClose(t, got, complex(4, 1), "Hilbert-Schmidt sum")

	// ⟨x|x⟩ is the squared Frobenius norm: 1 + 4 + 9 = 14.
	got, err = x.Inner(x)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	AssertClose(t, got, 14, "self inner product")

	// Dot refuses operators.
	if _, err = qobj.Dot(x, y); !errors.Is(err, qobj.ErrKindMismatch) {
		t.Fatalf("Dot on operators: want ErrKindMismatch, got %v", err)
	}
}

func TestInner_CompatibilityGates(t *testing.T) {
	t.Parallel()

	k4 := MustKet(t, []complex128{1, 0, 0, 0})
	k22, err := qobj.NewKet([]complex128{1, 0, 0, 0}, qobj.WithDims(2, 2))
	if err != nil {
		t.Fatalf("NewKet: %v", err)
	}

	// Equal totals, different factorizations.
	if _, err = k4.Inner(k22); !errors.Is(err, qobj.ErrDimsMismatch) {
		t.Fatalf("want ErrDimsMismatch, got %v", err)
	}

	// Ket against bra.
	if _, err = k4.Inner(k4.Adjoint()); !errors.Is(err, qobj.ErrKindMismatch) {
		t.Fatalf("want ErrKindMismatch, got %v", err)
	}

	var zero qobj.QObj
	if _, err = k4.Inner(zero); !errors.Is(err, qobj.ErrNilObject) {
		t.Fatalf("want ErrNilObject, got %v", err)
	}
}

func TestInner_SparseOperandWalksStoredEntriesOnly(t *testing.T) {
	t.Parallel()

	s, err := qobj.NewSparseKet(4, []qobj.Entry{{Row: 1, Col: 0, Val: 2i}})
	if err != nil {
		t.Fatalf("NewSparseKet: %v", err)
	}
	d := MustKet(t, []complex128{9, 3, 9, 9})

	got, err := s.Inner(d)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	AssertClose(t, got, -6i, "conj(2i)*3")
}
