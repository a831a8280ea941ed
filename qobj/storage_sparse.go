// SPDX-License-Identifier: MIT

// Package qobj: sparse storage backend.
// cscMat is a compressed-sparse-column matrix over complex128. No complex
// sparse container exists in the Go numeric ecosystem, so this backend is
// implemented here; it stays deliberately minimal — exactly the capability
// set Storage demands plus the merge/product/transpose kernels the engine
// dispatches to.
package qobj

import "sort"

// Entry is one coordinate-form element used to build sparse objects.
type Entry struct {
	Row int
	Col int
	Val complex128
}

// cscMat stores nonzeros column by column: column j occupies the half-open
// range colPtr[j]:colPtr[j+1] of rowInd/val, with rowInd sorted ascending
// inside each column. Invariant: len(colPtr) == cols+1.
type cscMat struct {
	rows, cols int
	colPtr     []int
	rowInd     []int
	val        []complex128
}

// newCSCFromEntries builds CSC storage from coordinate entries.
// Duplicates are summed; exact zeros (including cancelled duplicates) are
// dropped. Entries are consumed in deterministic column-major order.
// Complexity: O(nnz log nnz) for the sort.
func newCSCFromEntries(rows, cols int, entries []Entry) *cscMat {
	es := make([]Entry, len(entries))
	copy(es, entries)
	sort.Slice(es, func(a, b int) bool {
		if es[a].Col != es[b].Col {
			return es[a].Col < es[b].Col
		}

		return es[a].Row < es[b].Row
	})

	out := &cscMat{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
		rowInd: make([]int, 0, len(es)),
		val:    make([]complex128, 0, len(es)),
	}
	col := 0
	for k := 0; k < len(es); {
		// Merge duplicates at the same coordinate.
		e := es[k]
		sum := e.Val
		k++
		for k < len(es) && es[k].Row == e.Row && es[k].Col == e.Col {
			sum += es[k].Val
			k++
		}
		if sum == 0 {
			continue
		}
		for col < e.Col {
			col++
			out.colPtr[col] = len(out.rowInd)
		}
		out.rowInd = append(out.rowInd, e.Row)
		out.val = append(out.val, sum)
	}
	for col < cols {
		col++
		out.colPtr[col] = len(out.rowInd)
	}

	return out
}

// cscIdentity builds alpha·I as an n×n CSC matrix.
func cscIdentity(n int, alpha complex128) *cscMat {
	out := &cscMat{
		rows:   n,
		cols:   n,
		colPtr: make([]int, n+1),
		rowInd: make([]int, n),
		val:    make([]complex128, n),
	}
	for i := 0; i < n; i++ {
		out.colPtr[i+1] = i + 1
		out.rowInd[i] = i
		out.val[i] = alpha
	}

	return out
}

// Rows returns the row count. Complexity: O(1).
func (s *cscMat) Rows() int { return s.rows }

// Cols returns the column count. Complexity: O(1).
func (s *cscMat) Cols() int { return s.cols }

// At retrieves (i, j) with bounds checking; absent entries read as 0.
// Complexity: O(log nnz(column j)).
func (s *cscMat) At(i, j int) (complex128, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, ErrOutOfRange
	}

	return s.at(i, j), nil
}

// at reads (i, j) unchecked via binary search inside column j.
func (s *cscMat) at(i, j int) complex128 {
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	p := lo + sort.SearchInts(s.rowInd[lo:hi], i)
	if p < hi && s.rowInd[p] == i {
		return s.val[p]
	}

	return 0
}

// IsSparse reports true: this is the compressed-column backend.
func (s *cscMat) IsSparse() bool { return true }

// NNZ returns the stored entry count.
func (s *cscMat) NNZ() int { return len(s.val) }

// Clone returns a deep copy satisfying Storage.
func (s *cscMat) Clone() Storage { return s.clone() }

// clone is the concrete-typed deep copy used inside kernels.
func (s *cscMat) clone() *cscMat {
	out := &cscMat{
		rows:   s.rows,
		cols:   s.cols,
		colPtr: make([]int, len(s.colPtr)),
		rowInd: make([]int, len(s.rowInd)),
		val:    make([]complex128, len(s.val)),
	}
	copy(out.colPtr, s.colPtr)
	copy(out.rowInd, s.rowInd)
	copy(out.val, s.val)

	return out
}

// transpose returns the structural transpose in CSC form.
// Classic two-pass counting transpose. Complexity: O(nnz + rows + cols).
func (s *cscMat) transpose() *cscMat {
	out := &cscMat{
		rows:   s.cols,
		cols:   s.rows,
		colPtr: make([]int, s.rows+1),
		rowInd: make([]int, len(s.rowInd)),
		val:    make([]complex128, len(s.val)),
	}
	// Pass 1: count entries per original row (= transposed column).
	for _, i := range s.rowInd {
		out.colPtr[i+1]++
	}
	for i := 0; i < s.rows; i++ {
		out.colPtr[i+1] += out.colPtr[i]
	}
	// Pass 2: scatter; columns fill in ascending original-column order, so
	// rowInd stays sorted inside each transposed column.
	next := make([]int, s.rows)
	copy(next, out.colPtr[:s.rows])
	for j := 0; j < s.cols; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			i := s.rowInd[p]
			q := next[i]
			next[i]++
			out.rowInd[q] = j
			out.val[q] = s.val[p]
		}
	}

	return out
}

// cscAdd merges two equal-shape CSC matrices. Entries cancelling to exact
// zero are dropped. Complexity: O(nnz(a) + nnz(b)).
func cscAdd(a, b *cscMat) *cscMat {
	out := &cscMat{
		rows:   a.rows,
		cols:   a.cols,
		colPtr: make([]int, a.cols+1),
		rowInd: make([]int, 0, len(a.rowInd)+len(b.rowInd)),
		val:    make([]complex128, 0, len(a.val)+len(b.val)),
	}
	for j := 0; j < a.cols; j++ {
		pa, ea := a.colPtr[j], a.colPtr[j+1]
		pb, eb := b.colPtr[j], b.colPtr[j+1]
		for pa < ea || pb < eb {
			var row int
			var sum complex128
			switch {
			case pb >= eb || (pa < ea && a.rowInd[pa] < b.rowInd[pb]):
				row, sum = a.rowInd[pa], a.val[pa]
				pa++
			case pa >= ea || b.rowInd[pb] < a.rowInd[pa]:
				row, sum = b.rowInd[pb], b.val[pb]
				pb++
			default:
				row, sum = a.rowInd[pa], a.val[pa]+b.val[pb]
				pa++
				pb++
			}
			if sum == 0 {
				continue
			}
			out.rowInd = append(out.rowInd, row)
			out.val = append(out.val, sum)
		}
		out.colPtr[j+1] = len(out.rowInd)
	}

	return out
}

// cscMul computes the sparse product a·b (a is r×k, b is k×c) with a dense
// per-column accumulator. Complexity: O(Σ_j Σ_{k: b[k,j]≠0} nnz(a col k)).
func cscMul(a, b *cscMat) *cscMat {
	out := &cscMat{
		rows:   a.rows,
		cols:   b.cols,
		colPtr: make([]int, b.cols+1),
	}
	acc := make([]complex128, a.rows)
	marked := make([]int, 0, a.rows)
	for j := 0; j < b.cols; j++ {
		marked = marked[:0]
		for pb := b.colPtr[j]; pb < b.colPtr[j+1]; pb++ {
			k, bv := b.rowInd[pb], b.val[pb]
			for pa := a.colPtr[k]; pa < a.colPtr[k+1]; pa++ {
				i := a.rowInd[pa]
				if acc[i] == 0 {
					marked = append(marked, i)
				}
				acc[i] += a.val[pa] * bv
			}
		}
		sort.Ints(marked)
		for _, i := range marked {
			if acc[i] != 0 {
				out.rowInd = append(out.rowInd, i)
				out.val = append(out.val, acc[i])
			}
			acc[i] = 0
		}
		out.colPtr[j+1] = len(out.rowInd)
	}

	return out
}
