// SPDX-License-Identifier: MIT

// Package qobj: functional configuration for object construction and
// numeric policy. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: option state is unexported; public APIs consume ...Option.
package qobj

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEigenTol is the off-diagonal convergence threshold of the
	// Hermitian Jacobi eigen kernel.
	DefaultEigenTol = 1e-12

	// DefaultRTol is the relative tolerance used by EqualApprox.
	DefaultRTol = 1e-9

	// DefaultATol is the absolute tolerance used by EqualApprox.
	DefaultATol = 1e-12

	// eigenIterFactor bounds Jacobi rotations at eigenIterFactor*n*n.
	eigenIterFactor = 64
)

// objOptions carries construction-time configuration. Zero value means:
// dims default to the single factor (N), dense storage, Hermitian hint off.
type objOptions struct {
	dims   Dims // nil → (N) derived from the data length
	herm   bool // Hermitian/real-diagonal hint (operators only)
	sparse bool // build compressed-column storage from dense input
}

// Option mutates construction options. Options are applied in order; the
// last write wins for a given field.
type Option func(*objOptions)

// WithDims sets the composite dimension descriptor. The product of the
// factors must match the object's flat dimension; constructors validate and
// return ErrBadShape otherwise.
func WithDims(dims ...int) Option {
	d := make(Dims, len(dims))
	copy(d, dims)

	return func(o *objOptions) { o.dims = d }
}

// WithHermitian marks the constructed operator as Hermitian with a real
// diagonal, enabling spectral fast paths. Only legal on operators; vector
// constructors reject it with ErrKindMismatch. The hint is trusted, never
// verified numerically — set it only when the producer can prove it.
func WithHermitian() Option {
	return func(o *objOptions) { o.herm = true }
}

// WithSparse stores the object in compressed-column form, dropping exact
// zeros. Element values and equality semantics are unaffected.
func WithSparse() Option {
	return func(o *objOptions) { o.sparse = true }
}

// gatherOptions applies opts over the zero configuration and resolves the
// dims default against the flat dimension n.
func gatherOptions(n int, opts []Option) (objOptions, error) {
	var o objOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.dims == nil {
		o.dims = Dims{n}
	}
	if err := o.dims.validate(); err != nil {
		return objOptions{}, err
	}
	if o.dims.Total() != n {
		return objOptions{}, ErrBadShape
	}

	return o, nil
}
