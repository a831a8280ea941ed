// SPDX-License-Identifier: MIT

package qobj_test

import (
	"testing"

	"github.com/bundseth/schrodinger/qobj"
)

func TestDims_TotalAndEqual(t *testing.T) {
	t.Parallel()

	d := qobj.Dims{2, 2, 3}
	if got := d.Total(); got != 12 {
		t.Fatalf("Total: got %d, want 12", got)
	}
	if !d.Equal(qobj.Dims{2, 2, 3}) {
		t.Fatalf("Equal must hold for identical sequences")
	}
	// Equal products are NOT equal descriptors.
	if d.Equal(qobj.Dims{4, 3}) {
		t.Fatalf("Equal must compare sequences, not products")
	}
	if d.Equal(qobj.Dims{3, 2, 2}) {
		t.Fatalf("Equal must be order-sensitive")
	}
}

func TestDims_ConcatAndString(t *testing.T) {
	t.Parallel()

	a := qobj.Dims{2}
	b := qobj.Dims{3, 5}
	c := a.Concat(b)
	if !c.Equal(qobj.Dims{2, 3, 5}) {
		t.Fatalf("Concat: got %v", c)
	}
	// Concat allocates: mutating the result must not touch the inputs.
	c[0] = 99
	if a[0] != 2 {
		t.Fatalf("Concat aliased its input")
	}
	if got := (qobj.Dims{2, 2}).String(); got != "(2,2)" {
		t.Fatalf("String: got %q", got)
	}
}

func TestDims_EmptyTotal(t *testing.T) {
	t.Parallel()

	if got := (qobj.Dims{}).Total(); got != 0 {
		t.Fatalf("empty Total: got %d, want 0", got)
	}
}
