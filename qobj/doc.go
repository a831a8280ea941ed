// Package qobj implements finite-dimensional quantum objects and their
// algebra.
//
// The qobj package provides:
//
//   - Dims, the composite dimension descriptor: an ordered sequence of
//     subspace sizes identifying the Hilbert space, compared as a sequence
//     (never merely by product) and concatenated by tensor products.
//   - QObj, a closed variant over Ket, Bra and Operator, wrapping sparse
//     (compressed-column) or dense (gonum-backed) complex storage plus a
//     Hermitian/real-diagonal hint.
//   - The algebra engine: Add/Sub/Scale, the Mul dispatch table, Tensor,
//     Inner/Dot/BraKet, Adjoint/Conj/Transpose, with explicit storage
//     promotion (sparse op sparse stays sparse, dense wins otherwise).
//   - Matrix functions: ExpM, LogM, SqrtM and fractional Pow on dense
//     operators, via Hermitian Jacobi eigendecomposition or Padé
//     scaling-and-squaring.
//   - Norm/Normalize and the elementwise reductions Real, Imag, Abs, Abs2.
//
// One convention to internalize before anything else: scalar addition
// broadcasts elementwise over kets and bras, but adds scalar·Identity to
// operators. The asymmetry is deliberate and load-bearing.
//
// All operations validate eagerly and return package sentinels matchable
// with errors.Is; objects are immutable values except for the documented
// in-place Normalize.
package qobj
