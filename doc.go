// Package schrodinger is an in-memory toolkit for finite-dimensional
// quantum mechanics — kets, bras and operators over composite Hilbert
// spaces, with the algebra that acts on them.
//
// 🚀 What is schrodinger?
//
//	A small, deterministic library that brings together:
//		• Quantum objects: Ket, Bra and Operator values with composite
//		  subspace bookkeeping and sparse or dense storage
//		• Algebra: addition, scaling, products, adjoints, tensor
//		  (Kronecker) products and inner products
//		• Matrix functions: exp, log, sqrt and fractional powers of
//		  operators via spectral decomposition
//		• Producers: ladder, number, projector, Pauli, displacement and
//		  squeeze operators, plus basis and coherent states
//
// ✨ Why choose schrodinger?
//
//   - Value semantics – every operation returns a fresh object; the only
//     sanctioned mutation is Normalize on a state
//   - Fail-fast contracts – dimension and variant mismatches surface as
//     sentinel errors at the offending call, never later
//   - Pure Go – dense storage rides on gonum, everything else is plain Go
//
// Under the hood, everything is organized under two subpackages:
//
//	qobj/      — Dims, storage backends, the QObj variant and the algebra
//	             engine with its numeric kernels
//	operators/ — named operators and states built on qobj constructors
//
// Quick example:
//
//	g, _ := qobj.NewKet([]complex128{1, 0})
//	e, _ := qobj.NewKet([]complex128{0, 1})
//	ge, _ := g.Tensor(e) // |ge⟩ with Dims (2,2)
//
//	go get github.com/bundseth/schrodinger
package schrodinger
