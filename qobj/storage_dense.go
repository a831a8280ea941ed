// SPDX-License-Identifier: MIT

// Package qobj: dense storage backend.
// denseMat wraps gonum's *mat.CDense so the rest of the package consumes a
// library matrix type rather than a bespoke container; Full() hands the raw
// CDense to callers for interop with external numeric code.
package qobj

import "gonum.org/v1/gonum/mat"

// denseMat is the dense complex container, row-major via gonum.
type denseMat struct {
	m *mat.CDense
}

// newDense allocates a zeroed rows×cols dense container.
// Shape validation happens at the constructor facade, not here.
func newDense(rows, cols int) *denseMat {
	return &denseMat{m: mat.NewCDense(rows, cols, nil)}
}

// newDenseFromSlice builds a dense container from a row-major element slice.
// The slice is copied; the caller keeps ownership of its buffer.
func newDenseFromSlice(rows, cols int, data []complex128) *denseMat {
	buf := make([]complex128, len(data))
	copy(buf, data)

	return &denseMat{m: mat.NewCDense(rows, cols, buf)}
}

// Rows returns the row count. Complexity: O(1).
func (d *denseMat) Rows() int {
	r, _ := d.m.Dims()

	return r
}

// Cols returns the column count. Complexity: O(1).
func (d *denseMat) Cols() int {
	_, c := d.m.Dims()

	return c
}

// At retrieves (i, j) with bounds checking. Complexity: O(1).
func (d *denseMat) At(i, j int) (complex128, error) {
	r, c := d.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, ErrOutOfRange
	}

	return d.m.At(i, j), nil
}

// IsSparse reports false: this is the dense backend.
func (d *denseMat) IsSparse() bool { return false }

// NNZ counts stored entries, i.e. every cell.
func (d *denseMat) NNZ() int {
	r, c := d.m.Dims()

	return r * c
}

// Clone returns a deep copy satisfying Storage.
func (d *denseMat) Clone() Storage { return d.clone() }

// clone is the concrete-typed deep copy used inside kernels.
func (d *denseMat) clone() *denseMat {
	r, c := d.m.Dims()
	out := newDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.m.Set(i, j, d.m.At(i, j))
		}
	}

	return out
}

// at reads (i, j) unchecked; kernels guarantee bounds.
func (d *denseMat) at(i, j int) complex128 { return d.m.At(i, j) }

// set writes (i, j) unchecked; kernels guarantee bounds.
func (d *denseMat) set(i, j int, v complex128) { d.m.Set(i, j, v) }

// apply overwrites every element with f(i, j, current) in row-major order.
func (d *denseMat) apply(f func(i, j int, v complex128) complex128) {
	r, c := d.m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.m.Set(i, j, f(i, j, d.m.At(i, j)))
		}
	}
}

// raw exposes the wrapped CDense for Full(); the returned matrix is a fresh
// copy so the wrapper's exclusive ownership is never leaked.
func (d *denseMat) raw() *mat.CDense {
	return d.clone().m
}
