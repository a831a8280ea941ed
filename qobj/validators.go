// SPDX-License-Identifier: MIT

// Package qobj: central validators.
// All validation used by more than one operation lives here, so every facade
// fails fast with the same sentinel for the same violation. Validators
// return plain sentinels; facades add the op tag via opErrorf.
package qobj

import "fmt"

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil; wrapping a nil cause is a programmer error.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateObject rejects the zero QObj and objects with missing storage.
func validateObject(x QObj) error {
	if x.kind == 0 || x.data == nil {
		return ErrNilObject
	}

	return nil
}

// validatePair rejects uninitialized operands before any pairing logic.
func validatePair(a, b QObj) error {
	if err := validateObject(a); err != nil {
		return err
	}

	return validateObject(b)
}

// validateSameKind requires identical variants. Bra and Ket never mix.
func validateSameKind(a, b QObj) error {
	if a.kind != b.kind {
		return ErrKindMismatch
	}

	return nil
}

// validateSameDims requires identical factor sequences, not merely equal
// products. (2,2) and (4) are different spaces.
func validateSameDims(a, b QObj) error {
	if !a.dims.Equal(b.dims) {
		return ErrDimsMismatch
	}

	return nil
}

// validateOperator requires the Operator variant.
func validateOperator(x QObj) error {
	if err := validateObject(x); err != nil {
		return err
	}
	if x.kind != KindOperator {
		return ErrKindMismatch
	}

	return nil
}

// validateVector requires the Ket or Bra variant.
func validateVector(x QObj) error {
	if err := validateObject(x); err != nil {
		return err
	}
	if x.kind != KindKet && x.kind != KindBra {
		return ErrKindMismatch
	}

	return nil
}
