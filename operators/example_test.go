// SPDX-License-Identifier: MIT

package operators_test

import (
	"fmt"

	"github.com/bundseth/schrodinger/operators"
	"github.com/bundseth/schrodinger/qobj"
)

// The Jaynes–Cummings coupling term in a truncated cavity: σ+⊗a + σ−⊗a†.
func ExampleDestroy() {
	a, _ := operators.Destroy(3)
	ad, _ := operators.Create(3)

	up, _ := operators.SigmaP().Sparse().Tensor(a)
	down, _ := operators.SigmaM().Sparse().Tensor(ad)
	coupling, _ := up.Add(down)

	fmt.Println(coupling.Dims())
	fmt.Println(qobj.Equal(coupling, coupling.Adjoint()))
	// Output:
	// (2,3)
	// true
}

// The number operator counts excitations of a basis state.
func ExampleNumberOp() {
	num, _ := operators.NumberOp(5)
	three, _ := operators.BasisKet(5, 3)

	counted, _ := num.Mul(three)
	overlap, _ := three.Inner(counted)

	fmt.Println(overlap)
	// Output:
	// (3+0i)
}
