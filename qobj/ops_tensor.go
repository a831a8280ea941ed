// SPDX-License-Identifier: MIT

// Package qobj: tensor (Kronecker) products.
package qobj

// Operation name constants for unified error wrapping (tensor).
const (
	opTensor    = "Tensor"
	opTensorAll = "TensorAll"
)

// Tensor returns x ⊗ o for same-variant operands: Ket⊗Ket→Ket, Bra⊗Bra→Bra,
// Operator⊗Operator→Operator, via the standard Kronecker product on storage
// and descriptor concatenation on Dims (x's factors first).
//
// Mixed variants are rejected with ErrKindMismatch: a composite mixing
// vector and operator parts is not representable here — lift the vector to
// an Operator through an outer product first. Result storage:
// sparse⊗sparse stays sparse; any dense operand promotes. Kronecker
// products of Hermitian operators are Hermitian with real diagonals, so the
// hint survives when both operands carry it.
func (x QObj) Tensor(o QObj) (QObj, error) {
	if err := validatePair(x, o); err != nil {
		return QObj{}, opErrorf(opTensor, err)
	}
	if err := validateSameKind(x, o); err != nil {
		return QObj{}, opErrorf(opTensor, err)
	}

	return wrap(x.kind, x.dims.Concat(o.dims), stKron(x.data, o.data), x.herm && o.herm), nil
}

// TensorAll folds Tensor over xs from the left: xs[0] ⊗ xs[1] ⊗ ... — the
// composite descriptor is the concatenation of every operand's factors in
// order. At least one operand is required (ErrNilObject otherwise).
func TensorAll(xs ...QObj) (QObj, error) {
	if len(xs) == 0 {
		return QObj{}, opErrorf(opTensorAll, ErrNilObject)
	}
	out := xs[0]
	if err := validateObject(out); err != nil {
		return QObj{}, opErrorf(opTensorAll, err)
	}
	var err error
	for _, o := range xs[1:] {
		if out, err = out.Tensor(o); err != nil {
			return QObj{}, err
		}
	}

	return out, nil
}
