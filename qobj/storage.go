// SPDX-License-Identifier: MIT

// Package qobj: the storage capability set and its dispatch helpers.
// The algebra engine operates purely through this surface and decides
// promotion explicitly: sparse op sparse stays sparse, any dense operand
// promotes the result to dense. No implicit coercion happens anywhere else.
package qobj

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Storage is the uniform contract over the two numeric containers: a
// compressed-column sparse matrix and a gonum-backed dense matrix, both over
// complex128 scalars. Vectors are stored as N×1 (ket) or 1×N (bra) matrices.
//
// Storage kind is representation only — it never participates in object
// identity. Implementations are immutable through this interface; mutation
// is confined to the package-private in-place helpers used by Normalize.
type Storage interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j), returning ErrOutOfRange for
	// invalid indices. Absent sparse entries read as 0.
	At(i, j int) (complex128, error)

	// IsSparse reports whether the container is compressed-column.
	IsSparse() bool

	// NNZ returns the number of explicitly stored entries (rows*cols for
	// dense storage).
	NNZ() int

	// Clone returns a deep, independent copy of the container.
	Clone() Storage
}

// atu reads (i, j) without bounds checking. Callers guarantee validity;
// kernels use it to keep hot loops free of error plumbing.
func atu(s Storage, i, j int) complex128 {
	switch m := s.(type) {
	case *denseMat:
		return m.at(i, j)
	case *cscMat:
		return m.at(i, j)
	default:
		v, _ := s.At(i, j)

		return v
	}
}

// forEachNonzero visits every explicitly stored entry in a deterministic
// order: column-major for sparse storage, row-major for dense.
func forEachNonzero(s Storage, f func(i, j int, v complex128)) {
	switch m := s.(type) {
	case *cscMat:
		for j := 0; j < m.cols; j++ {
			for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
				f(m.rowInd[p], j, m.val[p])
			}
		}
	default:
		rows, cols := s.Rows(), s.Cols()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				f(i, j, atu(s, i, j))
			}
		}
	}
}

// toDense converts any storage to a fresh dense container.
func toDense(s Storage) *denseMat {
	if d, ok := s.(*denseMat); ok {
		return d.clone()
	}
	out := newDense(s.Rows(), s.Cols())
	forEachNonzero(s, func(i, j int, v complex128) { out.set(i, j, v) })

	return out
}

// stScale returns s scaled by alpha, preserving the storage kind.
func stScale(s Storage, alpha complex128) Storage {
	switch m := s.(type) {
	case *cscMat:
		out := m.clone()
		for p := range out.val {
			out.val[p] *= alpha
		}

		return out
	default:
		out := toDense(s)
		out.apply(func(_, _ int, v complex128) complex128 { return alpha * v })

		return out
	}
}

// stScaleInPlace rescales the container by alpha without reallocating.
// Reserved for Normalize; everything else allocates fresh results.
func stScaleInPlace(s Storage, alpha complex128) {
	switch m := s.(type) {
	case *cscMat:
		for p := range m.val {
			m.val[p] *= alpha
		}
	case *denseMat:
		m.apply(func(_, _ int, v complex128) complex128 { return alpha * v })
	}
}

// stMap applies f elementwise. zeroFixed declares that f(0) == 0, which
// lets sparse storage keep its pattern; otherwise the result densifies so
// implicit zeros are mapped too.
func stMap(s Storage, f func(complex128) complex128, zeroFixed bool) Storage {
	if m, ok := s.(*cscMat); ok && zeroFixed {
		out := m.clone()
		for p := range out.val {
			out.val[p] = f(out.val[p])
		}

		return out
	}
	out := toDense(s)
	out.apply(func(_, _ int, v complex128) complex128 { return f(v) })

	return out
}

// stConj returns the elementwise complex conjugate, kind preserved.
func stConj(s Storage) Storage { return stMap(s, cmplx.Conj, true) }

// stTranspose returns the structural transpose (no conjugation), kind
// preserved.
func stTranspose(s Storage) Storage {
	if m, ok := s.(*cscMat); ok {
		return m.transpose()
	}
	rows, cols := s.Rows(), s.Cols()
	out := newDense(cols, rows)
	forEachNonzero(s, func(i, j int, v complex128) { out.set(j, i, v) })

	return out
}

// stAdd computes a+b for equal-shape containers. Promotion rule:
// sparse+sparse → sparse; any dense operand → dense.
func stAdd(a, b Storage) Storage {
	if sa, ok := a.(*cscMat); ok {
		if sb, ok := b.(*cscMat); ok {
			return cscAdd(sa, sb)
		}
	}
	out := toDense(a)
	forEachNonzero(b, func(i, j int, v complex128) { out.set(i, j, out.at(i, j)+v) })

	return out
}

// stMul computes the matrix product a·b (a is r×k, b is k×c).
// Promotion rule: sparse·sparse → sparse; any dense operand → dense.
func stMul(a, b Storage) Storage {
	if sa, ok := a.(*cscMat); ok {
		if sb, ok := b.(*cscMat); ok {
			return cscMul(sa, sb)
		}
	}
	rows, cols := a.Rows(), b.Cols()
	out := newDense(rows, cols)
	// Accumulate over the stored entries of a only; zeros contribute nothing.
	forEachNonzero(a, func(i, k int, av complex128) {
		for j := 0; j < cols; j++ {
			out.set(i, j, out.at(i, j)+av*atu(b, k, j))
		}
	})

	return out
}

// stKron computes the Kronecker product a ⊗ b.
// Promotion rule: sparse⊗sparse → sparse; any dense operand → dense.
func stKron(a, b Storage) Storage {
	br, bc := b.Rows(), b.Cols()
	if sa, ok := a.(*cscMat); ok {
		if sb, ok := b.(*cscMat); ok {
			entries := make([]Entry, 0, sa.NNZ()*sb.NNZ())
			forEachNonzero(sa, func(i1, j1 int, v1 complex128) {
				forEachNonzero(sb, func(i2, j2 int, v2 complex128) {
					entries = append(entries, Entry{Row: i1*br + i2, Col: j1*bc + j2, Val: v1 * v2})
				})
			})

			return newCSCFromEntries(a.Rows()*br, a.Cols()*bc, entries)
		}
	}
	out := newDense(a.Rows()*br, a.Cols()*bc)
	forEachNonzero(a, func(i1, j1 int, v1 complex128) {
		forEachNonzero(b, func(i2, j2 int, v2 complex128) {
			out.set(i1*br+i2, j1*bc+j2, v1*v2)
		})
	})

	return out
}

// stAddScalarDiag returns s + alpha·I for square storage, kind preserved.
func stAddScalarDiag(s Storage, alpha complex128) Storage {
	n := s.Rows()
	if m, ok := s.(*cscMat); ok {
		return cscAdd(m, cscIdentity(n, alpha))
	}
	out := toDense(s)
	for i := 0; i < n; i++ {
		out.set(i, i, out.at(i, i)+alpha)
	}

	return out
}

// stAddScalarAll returns s with alpha added to every element. The result is
// dense by necessity: implicit sparse zeros become alpha.
func stAddScalarAll(s Storage, alpha complex128) Storage {
	out := toDense(s)
	out.apply(func(_, _ int, v complex128) complex128 { return v + alpha })

	return out
}

// stEqual reports exact elementwise equality, ignoring storage kind.
func stEqual(a, b Storage) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if atu(a, i, j) != atu(b, i, j) {
				return false
			}
		}
	}

	return true
}

// stEqualApprox reports elementwise closeness under |x-y| <= atol+rtol*|y|,
// ignoring storage kind.
func stEqualApprox(a, b Storage, rtol, atol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, y := atu(a, i, j), atu(b, i, j)
			if cmplx.Abs(x-y) > atol+rtol*cmplx.Abs(y) {
				return false
			}
		}
	}

	return true
}

// stTrace sums the diagonal of square storage.
func stTrace(s Storage) complex128 {
	var tr complex128
	forEachNonzero(s, func(i, j int, v complex128) {
		if i == j {
			tr += v
		}
	})

	return tr
}

// stNorm2 computes the Euclidean (Frobenius) norm of the stored elements.
func stNorm2(s Storage) float64 {
	sq := make([]float64, 0, s.NNZ())
	forEachNonzero(s, func(_, _ int, v complex128) {
		re, im := real(v), imag(v)
		sq = append(sq, re*re+im*im)
	})
	if len(sq) == 0 {
		return 0
	}

	return math.Sqrt(floats.Sum(sq))
}

// identityStorage builds an n×n identity in the requested storage kind.
func identityStorage(n int, sparse bool) Storage {
	if sparse {
		return cscIdentity(n, 1)
	}
	out := newDense(n, n)
	for i := 0; i < n; i++ {
		out.set(i, i, 1)
	}

	return out
}
