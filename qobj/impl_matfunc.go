// SPDX-License-Identifier: MIT

// Package qobj: the matrix-function layer.
// Operator-valued analytic functions — exponential, logarithm, principal
// square root and fractional powers — applied to an Operator's dense
// representation. Two kernels back the layer:
//
//   - a spectral kernel for Hermitian-flagged operators: f(A)=V·f(Λ)·V†
//     through the Jacobi eigen decomposition;
//   - a Padé-13 scaling-and-squaring kernel for the exponential of general
//     (non-Hermitian) operators.
//
// LogM, SqrtM and fractional Pow have no general complex kernel here and
// require the Hermitian flag; behavior outside that domain is deliberately
// an error rather than an ill-conditioned guess.
// Results are always dense. The Hermitian hint of a result is re-derived
// from the computed spectrum (imag-free function values), never assumed.
package qobj

import (
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping (matrix functions).
const (
	opExpM  = "ExpM"
	opLogM  = "LogM"
	opSqrtM = "SqrtM"
)

// ExpM returns the operator exponential e^A with dense storage.
// Hermitian-flagged operators take the spectral path (exact real spectrum,
// hint preserved); everything else goes through Padé scaling-and-squaring
// with the hint dropped. Sparse input densifies automatically.
func (x QObj) ExpM() (QObj, error) {
	if err := validateOperator(x); err != nil {
		return QObj{}, opErrorf(opExpM, err)
	}
	if x.herm {
		return x.applySpectral(func(l float64) complex128 { return complex(math.Exp(l), 0) }, opExpM)
	}
	out, err := expmPade(toDense(x.data))
	if err != nil {
		return QObj{}, opErrorf(opExpM, err)
	}

	return wrap(KindOperator, x.dims.Clone(), out, false), nil
}

// LogM returns the principal operator logarithm of a Hermitian-flagged
// Operator via the spectral kernel; unflagged operators report
// ErrNotHermitian. Negative eigenvalues produce complex logarithms and the
// result loses the Hermitian hint; zero eigenvalues propagate -Inf exactly
// as scalar log does.
func (x QObj) LogM() (QObj, error) {
	if err := validateOperator(x); err != nil {
		return QObj{}, opErrorf(opLogM, err)
	}
	if !x.herm {
		return QObj{}, opErrorf(opLogM, ErrNotHermitian)
	}

	return x.applySpectral(func(l float64) complex128 { return cmplx.Log(complex(l, 0)) }, opLogM)
}

// SqrtM returns the principal operator square root of a Hermitian-flagged
// Operator via the spectral kernel; unflagged operators report
// ErrNotHermitian. Negative eigenvalues yield imaginary roots and drop the
// Hermitian hint.
func (x QObj) SqrtM() (QObj, error) {
	if err := validateOperator(x); err != nil {
		return QObj{}, opErrorf(opSqrtM, err)
	}
	if !x.herm {
		return QObj{}, opErrorf(opSqrtM, ErrNotHermitian)
	}

	return x.applySpectral(func(l float64) complex128 { return cmplx.Sqrt(complex(l, 0)) }, opSqrtM)
}

// powSpectral handles negative and non-integer powers through the spectral
// kernel. Sparse storage is rejected — fractional powers of sparse
// operators must be densified explicitly (documented policy; see Pow).
func (x QObj) powSpectral(p float64, opTag string) (QObj, error) {
	if x.IsSparse() {
		return QObj{}, opErrorf(opTag, ErrSparsePower)
	}
	if !x.herm {
		return QObj{}, opErrorf(opTag, ErrNotHermitian)
	}

	return x.applySpectral(func(l float64) complex128 {
		return cmplx.Pow(complex(l, 0), complex(p, 0))
	}, opTag)
}

// applySpectral computes f(A) = V·diag(f(λ))·V† for a Hermitian-flagged
// operator. The result is dense, same Dims, and carries the Hermitian hint
// only when every function value came out real — re-derived here, never
// inherited.
func (x QObj) applySpectral(f func(float64) complex128, opTag string) (QObj, error) {
	work := toDense(x.data)
	n := work.Rows()
	vals, vecs, err := hermEigen(work, DefaultEigenTol, eigenIterFactor*n*n)
	if err != nil {
		return QObj{}, opErrorf(opTag, err)
	}

	fv := make([]complex128, n)
	hermOut := true
	for k, l := range vals {
		fv[k] = f(l)
		if imag(fv[k]) != 0 {
			hermOut = false
		}
	}

	// R[i,j] = Σ_k V[i,k]·f(λ_k)·conj(V[j,k]).
	out := newDense(n, n)
	for k := 0; k < n; k++ {
		if fv[k] == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			vik := vecs.at(i, k) * fv[k]
			if vik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.set(i, j, out.at(i, j)+vik*cmplx.Conj(vecs.at(j, k)))
			}
		}
	}

	return wrap(KindOperator, x.dims.Clone(), out, hermOut), nil
}

// padeTheta13 is the scaling threshold for the degree-13 approximant.
const padeTheta13 = 5.371920351148152

// padeB holds the degree-13 Padé numerator/denominator coefficients.
var padeB = [14]float64{
	64764752532480000, 32382376266240000, 7771770303897600,
	1187353796428800, 129060195264000, 10559470521600,
	670442572800, 33522128640, 1323241920,
	40840800, 960960, 16380, 182, 1,
}

// expmPade computes e^A for a general complex dense matrix with the
// Higham degree-13 Padé approximant under scaling and squaring.
//
// Steps:
//  1. Scale A by 2^-s so the 1-norm falls under padeTheta13.
//  2. Form the odd part U and even part V of the approximant from powers
//     A², A⁴, A⁶.
//  3. Solve (V−U)·F = (V+U); F ≈ e^(A/2^s).
//  4. Square F s times.
//
// Complexity: O(n³) per multiplication, 7 multiplications + one solve + s
// squarings.
func expmPade(a *denseMat) (*denseMat, error) {
	n := a.Rows()
	norm := oneNorm(a)
	s := 0
	if norm > padeTheta13 {
		s = int(math.Ceil(math.Log2(norm / padeTheta13)))
	}
	work := a.clone()
	if s > 0 {
		factor := complex(math.Ldexp(1, -s), 0)
		work.apply(func(_, _ int, v complex128) complex128 { return factor * v })
	}

	eye := newDense(n, n)
	for i := 0; i < n; i++ {
		eye.set(i, i, 1)
	}
	a2 := dMul(work, work)
	a4 := dMul(a2, a2)
	a6 := dMul(a2, a4)

	// U = A·(A⁶·(b13·A⁶ + b11·A⁴ + b9·A²) + b7·A⁶ + b5·A⁴ + b3·A² + b1·I)
	u := dMul(a6, dAdd(dAdd(dScale(padeB[13], a6), dScale(padeB[11], a4)), dScale(padeB[9], a2)))
	u = dAdd(u, dAdd(dAdd(dScale(padeB[7], a6), dScale(padeB[5], a4)), dAdd(dScale(padeB[3], a2), dScale(padeB[1], eye))))
	u = dMul(work, u)

	// V = A⁶·(b12·A⁶ + b10·A⁴ + b8·A²) + b6·A⁶ + b4·A⁴ + b2·A² + b0·I
	v := dMul(a6, dAdd(dAdd(dScale(padeB[12], a6), dScale(padeB[10], a4)), dScale(padeB[8], a2)))
	v = dAdd(v, dAdd(dAdd(dScale(padeB[6], a6), dScale(padeB[4], a4)), dAdd(dScale(padeB[2], a2), dScale(padeB[0], eye))))

	// (V−U)·F = (V+U)
	num := dAdd(v, u)
	den := dAdd(v, dScale(-1, u))
	lu, perm, err := luFactor(den)
	if err != nil {
		return nil, err
	}
	f := luSolve(lu, perm, num)

	for i := 0; i < s; i++ {
		f = dMul(f, f)
	}

	return f, nil
}

// oneNorm computes the maximum column sum of moduli.
func oneNorm(a *denseMat) float64 {
	rows, cols := a.Rows(), a.Cols()
	best := 0.0
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += cmplx.Abs(a.at(i, j))
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// Dense-only arithmetic shorthands for the Padé kernel; promotion logic is
// irrelevant here, everything is already dense.

func dMul(a, b *denseMat) *denseMat { return stMul(a, b).(*denseMat) }

func dAdd(a, b *denseMat) *denseMat { return stAdd(a, b).(*denseMat) }

func dScale(alpha float64, a *denseMat) *denseMat {
	return stScale(a, complex(alpha, 0)).(*denseMat)
}
