// SPDX-License-Identifier: MIT

package qobj_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/bundseth/schrodinger/qobj"
)

func TestUnary_Identities(t *testing.T) {
	t.Parallel()

	g := MustKet(t, []complex128{1, 2i})
	AssertEqualObj(t, g.Pos(), g, "+x == x")
	AssertEqualObj(t, g.Neg(), g.Scale(-1), "-x == -1*x")
	AssertEqualObj(t, g.Neg().Neg(), g, "double negation")
}

func TestScale_CommutesAndTracksHint(t *testing.T) {
	t.Parallel()

	// Scalar multiplication has no mirrored form: Scale IS s*x == x*s.
	g := MustKet(t, []complex128{1, 0})
	two := g.Scale(2)
	if got := MustAtVec(t, two, 0); got != 2 {
		t.Fatalf("2*g: got %v", got)
	}

	h := MustOperator(t, [][]complex128{{1, 0}, {0, -1}}, qobj.WithHermitian())
	if !h.Scale(3).IsHermitian() {
		t.Fatalf("real scaling must preserve the Hermitian hint")
	}
	if h.Scale(3i).IsHermitian() {
		t.Fatalf("complex scaling must drop the Hermitian hint")
	}
}

// Scenario: g = Ket([1,0]) — g + 1 broadcasts elementwise over vectors.
func TestAddScalar_VectorBroadcast(t *testing.T) {
	t.Parallel()

	g := MustKet(t, []complex128{1, 0})
	got, err := g.AddScalar(1)
	if err != nil {
		t.Fatalf("AddScalar: %v", err)
	}
	AssertEqualObj(t, got, MustKet(t, []complex128{2, 1}), "g+1")

	sub, err := g.SubScalar(1)
	if err != nil {
		t.Fatalf("SubScalar: %v", err)
	}
	AssertEqualObj(t, sub, MustKet(t, []complex128{0, -1}), "g-1")

	rev, err := qobj.ScalarSub(1, g)
	if err != nil {
		t.Fatalf("ScalarSub: %v", err)
	}
	AssertEqualObj(t, rev, MustKet(t, []complex128{0, 1}), "1-g")
}

// Operators take the other branch of the convention: s acts as s·Identity.
func TestAddScalar_OperatorIdentityOffset(t *testing.T) {
	t.Parallel()

	a := MustOperator(t, [][]complex128{{0, 1}, {1, 0}}, qobj.WithHermitian())
	got, err := a.AddScalar(2)
	if err != nil {
		t.Fatalf("AddScalar: %v", err)
	}
	AssertEqualObj(t, got, MustOperator(t, [][]complex128{{2, 1}, {1, 2}}), "A+2")
	if !got.IsHermitian() {
		t.Fatalf("real identity offset must keep the hint")
	}

	// A + 0 == A (additive identity on operators).
	same, err := a.AddScalar(0)
	if err != nil {
		t.Fatalf("AddScalar(0): %v", err)
	}
	AssertEqualObj(t, same, a, "A+0")

	// Sparse operators keep sparse storage under the diagonal offset.
	s, err := qobj.NewSparseOperator(3, []qobj.Entry{{Row: 0, Col: 1, Val: 1}})
	if err != nil {
		t.Fatalf("NewSparseOperator: %v", err)
	}
	off, err := s.AddScalar(5)
	if err != nil {
		t.Fatalf("AddScalar: %v", err)
	}
	if !off.IsSparse() {
		t.Fatalf("diagonal offset must preserve sparse storage")
	}
}

func TestAddSub_CompatibilityRules(t *testing.T) {
	t.Parallel()

	g := MustKet(t, []complex128{1, 0})
	e := MustKet(t, []complex128{0, 1})
	sum, err := g.Add(e)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	AssertEqualObj(t, sum, MustKet(t, []complex128{1, 1}), "g+e")

	// A - A == zero operator.
	a := MustOperator(t, [][]complex128{{1, 2}, {3, 4}})
	z, err := a.Sub(a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	AssertEqualObj(t, z, MustOperator(t, [][]complex128{{0, 0}, {0, 0}}), "A-A")

	// Mixed kinds fail.
	if _, err = g.Add(MustBra(t, []complex128{1, 0})); !errors.Is(err, qobj.ErrKindMismatch) {
		t.Fatalf("Ket+Bra: want ErrKindMismatch, got %v", err)
	}
	if _, err = g.Add(a); !errors.Is(err, qobj.ErrKindMismatch) {
		t.Fatalf("Ket+Operator: want ErrKindMismatch, got %v", err)
	}

	// Identical totals with different factor sequences fail.
	k4 := MustKet(t, []complex128{1, 0, 0, 0})
	k22 := MustKet(t, []complex128{1, 0, 0, 0}, qobj.WithDims(2, 2))
	if _, err = k4.Add(k22); !errors.Is(err, qobj.ErrDimsMismatch) {
		t.Fatalf("dims (4)+(2,2): want ErrDimsMismatch, got %v", err)
	}

	// Uninitialized operands fail first.
	if _, err = (qobj.QObj{}).Add(g); !errors.Is(err, qobj.ErrNilObject) {
		t.Fatalf("zero QObj: want ErrNilObject, got %v", err)
	}
}

func TestAddSub_StoragePromotion(t *testing.T) {
	t.Parallel()

	s1, err := qobj.NewSparseOperator(2, []qobj.Entry{{Row: 0, Col: 0, Val: 1}})
	if err != nil {
		t.Fatalf("NewSparseOperator: %v", err)
	}
	s2, err := qobj.NewSparseOperator(2, []qobj.Entry{{Row: 1, Col: 1, Val: 1}})
	if err != nil {
		t.Fatalf("NewSparseOperator: %v", err)
	}
	d := MustOperator(t, [][]complex128{{0, 1}, {1, 0}})

	ss, err := s1.Add(s2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !ss.IsSparse() {
		t.Fatalf("sparse+sparse must stay sparse")
	}
	sd, err := s1.Add(d)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sd.IsSparse() {
		t.Fatalf("sparse+dense must promote to dense")
	}
	AssertEqualObj(t, sd, MustOperator(t, [][]complex128{{1, 1}, {1, 0}}), "promotion value")
}

// Scenario: ρ = (1/4)·I₄ — ρ/2 == I₄/8, and division by zero is IEEE, not
// an error.
func TestDivScalar(t *testing.T) {
	t.Parallel()

	rho := MustEye(t, 4).Scale(0.25)
	half, err := rho.DivScalar(2)
	if err != nil {
		t.Fatalf("DivScalar: %v", err)
	}
	AssertApproxObj(t, half, MustEye(t, 4).Scale(0.125), "rho/2")

	g := MustKet(t, []complex128{1, 0})
	blown, err := g.DivScalar(0)
	if err != nil {
		t.Fatalf("x/0 must not error, got %v", err)
	}
	v0 := MustAtVec(t, blown, 0) // 1/0
	v1 := MustAtVec(t, blown, 1) // 0/0
	if !math.IsInf(real(v0), 1) && !cmplx.IsNaN(v0) {
		t.Fatalf("1/0 should propagate Inf/NaN, got %v", v0)
	}
	if !cmplx.IsNaN(v1) {
		t.Fatalf("0/0 should propagate NaN, got %v", v1)
	}
}

func TestScalarDiv_AlwaysRejected(t *testing.T) {
	t.Parallel()

	g := MustKet(t, []complex128{1, 0})
	if _, err := qobj.ScalarDiv(2, g); !errors.Is(err, qobj.ErrScalarDivision) {
		t.Fatalf("2/Ket: want ErrScalarDivision, got %v", err)
	}
	// Even for a perfectly invertible operator.
	if _, err := qobj.ScalarDiv(1, MustEye(t, 2)); !errors.Is(err, qobj.ErrScalarDivision) {
		t.Fatalf("1/I: want ErrScalarDivision, got %v", err)
	}
}
