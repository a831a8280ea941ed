// Package operators builds the standard structured operators and states of
// finite-dimensional quantum mechanics on top of qobj.
//
// The operators package provides:
//
//   - Truncated oscillator algebra: Destroy, Create, NumberOp, plus the
//     derived Displace and Squeeze exponentials.
//   - Structural operators: Zero, Eye, Projector — sparse by construction.
//   - Qubit and qudit Pauli families: SigmaX/SigmaY/SigmaZ, the ladder pair
//     SigmaP/SigmaM, and the generalized Shift and Clock operators.
//   - States: BasisKet, Coherent, MaximallyMixed.
//
// Producers return ready-made qobj values with the correct storage kind and
// Hermitian hint already set: diagonal-real constructions (Eye, NumberOp,
// Projector, SigmaX/Y/Z, MaximallyMixed) carry the hint, ladder and phase
// constructions do not. Optional qobj options (composite dims) pass through
// where the shape allows.
//
// All failures surface qobj's sentinel errors wrapped with the producer
// name; nothing here defines new failure modes of its own.
package operators
